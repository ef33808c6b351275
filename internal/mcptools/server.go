package mcptools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewGraphMCPServer creates an MCP server with all 5 dependency-graph tools registered.
func NewGraphMCPServer(svc *GraphService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "code-modernizer",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_project",
		Description: "Scan a web project (PHP, JS, HTML, CSS) and build its file dependency graph. Extracts references with pattern matching, resolves them recursively, and computes file clusters.",
	}, svc.AnalyzeProject)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_dependencies",
		Description: "Traverse the file dependency graph upstream (what a file references) or downstream (what references it). Returns dependency chains up to the specified depth.",
	}, svc.GetDependencies)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "assess_impact",
		Description: "Compute the blast radius of modifying a set of files. Returns directly and transitively affected files with a risk score.",
	}, svc.AssessImpact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_entry_points",
		Description: "Identify the files most likely to be navigation roots of a web project (index.php, main controllers, routers).",
	}, svc.FindEntryPoints)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_clusters",
		Description: "Return all file clusters discovered during graph building. Clusters are groups of tightly connected files with cohesion scores.",
	}, svc.GetClusters)

	return server
}

// RunMCPServer starts an HTTP server exposing the dependency-graph MCP tools.
func RunMCPServer(ctx context.Context, svc *GraphService, addr string) error {
	server := NewGraphMCPServer(svc)

	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
