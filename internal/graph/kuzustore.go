//go:build cgo

package graph

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	kuzu "github.com/kuzudb/go-kuzu"
)

// KuzuStore implements the Store interface using KuzuDB as the graph
// backend. It requires CGO because the go-kuzu driver wraps KuzuDB's C
// library.
type KuzuStore struct {
	db   *kuzu.Database
	conn *kuzu.Connection
}

// Compile-time check that KuzuStore satisfies Store.
var _ Store = (*KuzuStore)(nil)

// NewKuzuStore creates a KuzuStore backed by an in-memory KuzuDB instance.
func NewKuzuStore() (*KuzuStore, error) {
	cfg := kuzu.DefaultSystemConfig()
	db, err := kuzu.OpenDatabase(":memory:", cfg)
	if err != nil {
		return nil, fmt.Errorf("kuzu: open database: %w", err)
	}
	conn, err := kuzu.OpenConnection(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("kuzu: open connection: %w", err)
	}
	return &KuzuStore{db: db, conn: conn}, nil
}

// NewKuzuFileStore creates a KuzuStore backed by a file-based KuzuDB at the
// given directory path. This lets diagram and impact runs reuse a graph
// built by an earlier analyze run instead of re-scanning the project.
func NewKuzuFileStore(dbPath string) (*KuzuStore, error) {
	// Ensure parent directory exists (KuzuDB creates the leaf directory).
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("kuzu: create parent directory: %w", err)
	}
	cfg := kuzu.DefaultSystemConfig()
	db, err := kuzu.OpenDatabase(dbPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("kuzu: open file database: %w", err)
	}
	conn, err := kuzu.OpenConnection(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("kuzu: open connection: %w", err)
	}
	return &KuzuStore{db: db, conn: conn}, nil
}

// Close releases the KuzuDB connection and database.
func (s *KuzuStore) Close() error {
	if s.conn != nil {
		s.conn.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
	return nil
}

// ---------- Schema setup ----------

// ddlStatements defines the Cypher DDL executed by InitSchema.
// Order matters: node tables must precede relationship tables.
var ddlStatements = []string{
	`CREATE NODE TABLE IF NOT EXISTS File(
		path STRING,
		category STRING,
		size INT64,
		PRIMARY KEY(path)
	)`,
	`CREATE NODE TABLE IF NOT EXISTS Cluster(
		name STRING,
		cohesion_score DOUBLE,
		PRIMARY KEY(name)
	)`,
	`CREATE REL TABLE IF NOT EXISTS DEPENDS_ON(FROM File TO File, root STRING)`,
	`CREATE REL TABLE IF NOT EXISTS BELONGS_TO(FROM File TO Cluster)`,
}

// InitSchema creates all node and relationship tables if they do not exist.
func (s *KuzuStore) InitSchema(_ context.Context) error {
	for _, stmt := range ddlStatements {
		res, err := s.conn.Query(stmt)
		if err != nil {
			return fmt.Errorf("kuzu: init schema: %w", err)
		}
		res.Close()
	}
	return nil
}

// ---------- Write operations ----------

// AddFile inserts a File node.
func (s *KuzuStore) AddFile(_ context.Context, node FileNode) error {
	return s.exec(
		"CREATE (f:File {path: $path, category: $cat, size: $size})",
		map[string]any{
			"path": node.Path,
			"cat":  string(node.Category),
			"size": node.Size,
		},
	)
}

// AddEdge inserts a DEPENDS_ON relationship. Both endpoints must already
// exist as File nodes; callers persisting an edge list insert placeholder
// nodes for unresolved targets first.
func (s *KuzuStore) AddEdge(_ context.Context, edge Edge) error {
	return s.exec(
		`MATCH (a:File {path: $src}), (b:File {path: $dst})
		 CREATE (a)-[:DEPENDS_ON {root: $root}]->(b)`,
		map[string]any{
			"src":  edge.Source,
			"dst":  edge.Target,
			"root": edge.Root,
		},
	)
}

// AddCluster inserts a Cluster node plus BELONGS_TO edges for its members.
func (s *KuzuStore) AddCluster(_ context.Context, node ClusterNode) error {
	if err := s.exec(
		"CREATE (c:Cluster {name: $name, cohesion_score: $score})",
		map[string]any{
			"name":  node.Name,
			"score": node.CohesionScore,
		},
	); err != nil {
		return err
	}
	for _, member := range node.Members {
		if err := s.exec(
			`MATCH (a:File {path: $src}), (b:Cluster {name: $dst})
			 CREATE (a)-[:BELONGS_TO]->(b)`,
			map[string]any{"src": member, "dst": node.Name},
		); err != nil {
			return err
		}
	}
	return nil
}

// ---------- Read operations ----------

// GetFile retrieves a single File node by path, or returns nil if not found.
func (s *KuzuStore) GetFile(_ context.Context, path string) (*FileNode, error) {
	rows, err := s.query(
		"MATCH (f:File {path: $path}) RETURN f.path, f.category, f.size",
		map[string]any{"path": path},
	)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	r := rows[0]
	return &FileNode{
		Path:     toString(r[0]),
		Category: Category(toString(r[1])),
		Size:     int64(toInt(r[2])),
	}, nil
}

// GetAllFiles returns every File node.
func (s *KuzuStore) GetAllFiles(_ context.Context) ([]FileNode, error) {
	rows, err := s.query("MATCH (f:File) RETURN f.path, f.category, f.size", nil)
	if err != nil {
		return nil, err
	}
	out := make([]FileNode, 0, len(rows))
	for _, r := range rows {
		out = append(out, FileNode{
			Path:     toString(r[0]),
			Category: Category(toString(r[1])),
			Size:     int64(toInt(r[2])),
		})
	}
	return out, nil
}

// GetAllEdges returns all DEPENDS_ON edges.
func (s *KuzuStore) GetAllEdges(_ context.Context) ([]Edge, error) {
	rows, err := s.query(
		"MATCH (a:File)-[r:DEPENDS_ON]->(b:File) RETURN a.path, b.path, r.root",
		nil,
	)
	if err != nil {
		return nil, err
	}
	out := make([]Edge, 0, len(rows))
	for _, r := range rows {
		out = append(out, Edge{
			Source: toString(r[0]),
			Target: toString(r[1]),
			Root:   toString(r[2]),
		})
	}
	return out, nil
}

// GetClusters returns all Cluster nodes with their members.
func (s *KuzuStore) GetClusters(_ context.Context) ([]ClusterNode, error) {
	rows, err := s.query(
		"MATCH (c:Cluster) RETURN c.name, c.cohesion_score",
		nil,
	)
	if err != nil {
		return nil, err
	}
	out := make([]ClusterNode, 0, len(rows))
	for _, r := range rows {
		name := toString(r[0])
		score := toFloat64(r[1])

		memberRows, err := s.query(
			"MATCH (f:File)-[:BELONGS_TO]->(c:Cluster {name: $name}) RETURN f.path",
			map[string]any{"name": name},
		)
		if err != nil {
			return nil, err
		}
		members := make([]string, 0, len(memberRows))
		for _, mr := range memberRows {
			members = append(members, toString(mr[0]))
		}

		out = append(out, ClusterNode{
			Name:          name,
			CohesionScore: score,
			Members:       members,
		})
	}
	return out, nil
}

// ---------- Graph traversal ----------

// GetDependencies performs a BFS over DEPENDS_ON edges starting from the
// given file path. It returns one DependencyChain per reachable file.
func (s *KuzuStore) GetDependencies(_ context.Context, path string, dir Direction, maxDepth int) ([]DependencyChain, error) {
	if maxDepth <= 0 {
		maxDepth = 10
	}

	// BFS state.
	type bfsEntry struct {
		path  []string
		depth int
	}
	visited := map[string]bool{path: true}
	queue := []bfsEntry{{path: []string{path}, depth: 0}}
	var chains []DependencyChain

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.depth >= maxDepth {
			continue
		}
		tip := cur.path[len(cur.path)-1]
		neighbors, err := s.fileNeighbors(tip, dir)
		if err != nil {
			return nil, err
		}
		for _, nb := range neighbors {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			newPath := make([]string, len(cur.path)+1)
			copy(newPath, cur.path)
			newPath[len(cur.path)] = nb
			chains = append(chains, DependencyChain{
				Nodes: newPath,
				Depth: cur.depth + 1,
			})
			queue = append(queue, bfsEntry{path: newPath, depth: cur.depth + 1})
		}
	}
	return chains, nil
}

// fileNeighbors returns immediate file neighbors along DEPENDS_ON edges.
func (s *KuzuStore) fileNeighbors(path string, dir Direction) ([]string, error) {
	var cypher string
	switch dir {
	case DirectionUpstream:
		cypher = "MATCH (a:File {path: $path})-[:DEPENDS_ON]->(b:File) RETURN b.path"
	case DirectionDownstream:
		cypher = "MATCH (a:File)-[:DEPENDS_ON]->(b:File {path: $path}) RETURN a.path"
	default:
		return nil, fmt.Errorf("kuzu: unknown direction: %s", dir)
	}
	rows, err := s.query(cypher, map[string]any{"path": path})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, toString(r[0]))
	}
	return out, nil
}

// AssessImpact computes the blast radius of the given set of changed files.
// It walks DEPENDS_ON edges downstream to find direct and transitive
// dependents, then computes a risk score from the fan-out ratio.
func (s *KuzuStore) AssessImpact(ctx context.Context, changedFiles []string) (*ImpactResult, error) {
	totalFiles, err := s.countTable("File")
	if err != nil {
		return nil, err
	}

	directSet := map[string]bool{}
	transitiveSet := map[string]bool{}

	for _, f := range changedFiles {
		chains, err := s.GetDependencies(ctx, f, DirectionDownstream, 1)
		if err != nil {
			return nil, err
		}
		for _, c := range chains {
			last := c.Nodes[len(c.Nodes)-1]
			directSet[last] = true
		}

		allChains, err := s.GetDependencies(ctx, f, DirectionDownstream, 10)
		if err != nil {
			return nil, err
		}
		for _, c := range allChains {
			last := c.Nodes[len(c.Nodes)-1]
			transitiveSet[last] = true
		}
	}

	// Remove changed files themselves from result sets.
	changedMap := map[string]bool{}
	for _, f := range changedFiles {
		changedMap[f] = true
	}
	direct := filterKeys(directSet, changedMap)
	transitive := filterKeys(transitiveSet, changedMap)

	risk := 0.0
	if totalFiles > 0 {
		risk = math.Min(1.0, float64(len(transitive))/float64(totalFiles))
	}

	return &ImpactResult{
		DirectlyAffected:     direct,
		TransitivelyAffected: transitive,
		RiskScore:            risk,
	}, nil
}

// ---------- Stats ----------

// Stats returns counts of the node and edge tables.
func (s *KuzuStore) Stats(_ context.Context) (*GraphStats, error) {
	files, err := s.countTable("File")
	if err != nil {
		return nil, err
	}
	clusters, err := s.countTable("Cluster")
	if err != nil {
		return nil, err
	}
	edges, err := s.countRelTable("DEPENDS_ON")
	if err != nil {
		return nil, err
	}
	return &GraphStats{
		FileCount:    files,
		EdgeCount:    edges,
		ClusterCount: clusters,
	}, nil
}

// ---------- Internal helpers ----------

// exec runs a parameterized Cypher statement that produces no result rows.
func (s *KuzuStore) exec(cypher string, params map[string]any) error {
	stmt, err := s.conn.Prepare(cypher)
	if err != nil {
		return fmt.Errorf("kuzu: prepare: %w", err)
	}
	defer stmt.Close()

	res, err := s.conn.Execute(stmt, params)
	if err != nil {
		return fmt.Errorf("kuzu: execute: %w", err)
	}
	res.Close()
	return nil
}

// query runs a parameterized Cypher statement and collects all result rows.
// Each row is a []any slice with values in column order.
func (s *KuzuStore) query(cypher string, params map[string]any) ([][]any, error) {
	var res *kuzu.QueryResult
	var err error

	if len(params) == 0 {
		res, err = s.conn.Query(cypher)
	} else {
		var stmt *kuzu.PreparedStatement
		stmt, err = s.conn.Prepare(cypher)
		if err != nil {
			return nil, fmt.Errorf("kuzu: prepare: %w", err)
		}
		defer stmt.Close()
		res, err = s.conn.Execute(stmt, params)
	}
	if err != nil {
		return nil, fmt.Errorf("kuzu: query: %w", err)
	}
	defer res.Close()

	var rows [][]any
	for res.HasNext() {
		tuple, err := res.Next()
		if err != nil {
			return nil, fmt.Errorf("kuzu: next: %w", err)
		}
		vals, err := tuple.GetAsSlice()
		if err != nil {
			return nil, fmt.Errorf("kuzu: row values: %w", err)
		}
		rows = append(rows, vals)
	}
	return rows, nil
}

// countTable returns the number of rows in a node table.
func (s *KuzuStore) countTable(table string) (int, error) {
	// Table name is a fixed internal constant, not user input.
	cypher := fmt.Sprintf("MATCH (n:%s) RETURN count(n)", table)
	rows, err := s.query(cypher, nil)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, nil
	}
	return toInt(rows[0][0]), nil
}

// countRelTable returns the number of rows in a relationship table.
func (s *KuzuStore) countRelTable(table string) (int, error) {
	cypher := fmt.Sprintf("MATCH ()-[r:%s]->() RETURN count(r)", table)
	rows, err := s.query(cypher, nil)
	if err != nil {
		// Table may not exist yet; treat as zero.
		return 0, nil
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, nil
	}
	return toInt(rows[0][0]), nil
}

// filterKeys returns keys from set that are not in exclude.
func filterKeys(set, exclude map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		if !exclude[k] {
			out = append(out, k)
		}
	}
	return out
}

// ---------- Type coercion helpers ----------
// KuzuDB returns typed Go values (int64, float64, bool, string).
// These helpers safely coerce any -> concrete type.

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func toInt(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	case int32:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

func toFloat64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
