package graph

import (
	"log"
	"path/filepath"
	"regexp"
	"strings"
)

// Options controls analyzer behavior.
type Options struct {
	// ExcludeImages drops edges whose target has an image extension.
	ExcludeImages bool

	// HandleDynamic drops references that contain runtime-interpolated
	// content. When false, dynamic references are logged as warnings but
	// still resolved, so a dynamic literal surfaces as a literal edge.
	HandleDynamic bool
}

// DefaultOptions returns the standard analyzer configuration: images
// excluded, dynamic references skipped.
func DefaultOptions() Options {
	return Options{ExcludeImages: true, HandleDynamic: true}
}

// maxRecursionDepth bounds the depth-first descent. The visited set already
// guarantees termination for any finite candidate set; the cap is a safety
// net against pathological reference chains.
const maxRecursionDepth = 1000

// Analyzer builds the dependency edge list for a set of candidate files
// under one project root. It is single-threaded and owns its visited set
// and edge list for the duration of one AnalyzeDependencies call; it is not
// safe for concurrent use.
type Analyzer struct {
	root       string
	files      []string        // root-call order
	candidates map[string]bool // canonical membership for recursion
	opts       Options

	visited map[string]bool
	edges   []Edge
}

// NewAnalyzer creates an Analyzer over the given candidate files. root is
// the project root directory all references resolve under.
func NewAnalyzer(root string, candidates []string, opts Options) *Analyzer {
	a := &Analyzer{
		root:       root,
		files:      candidates,
		candidates: make(map[string]bool, len(candidates)),
		opts:       opts,
	}
	for _, f := range candidates {
		a.candidates[canonKey(f)] = true
	}
	return a
}

// AnalyzeDependencies walks every candidate file depth-first, pre-order,
// and returns the accumulated edge list. Each file is extracted from at
// most once per call, whether it is reached as a root call or as a
// recursive target. An empty candidate list yields an empty edge list.
func (a *Analyzer) AnalyzeDependencies() []Edge {
	a.visited = make(map[string]bool, len(a.files))
	a.edges = []Edge{}
	for _, f := range a.files {
		a.analyzeFile(f, 0)
	}
	return a.edges
}

func (a *Analyzer) analyzeFile(file string, depth int) {
	if depth > maxRecursionDepth {
		log.Printf("WARNING: max recursion depth reached at %s, pruning descent", file)
		return
	}

	key := canonKey(file)
	if a.visited[key] {
		return
	}
	a.visited[key] = true

	source := a.displayPath(file)
	emitted := make(map[string]bool)

	for _, ref := range ExtractFile(file) {
		if isDynamic(ref) {
			if a.opts.HandleDynamic {
				log.Printf("dynamic reference detected and skipped: %s", ref)
				continue
			}
			log.Printf("WARNING: dynamic reference detected: %s", ref)
			// Falls through: the literal is resolved and emitted below.
		}

		target := a.displayPath(a.canonicalize(ref))
		if a.opts.ExcludeImages && isImageFile(target) {
			continue
		}
		if emitted[target] {
			continue
		}
		emitted[target] = true

		a.edges = append(a.edges, Edge{Source: source, Target: target, Root: a.root})
		if a.candidates[canonKey(target)] {
			a.analyzeFile(target, depth+1)
		}
	}
}

// canonicalize turns a raw reference into a canonical path: absolute
// references are cleaned in place, relative ones are joined under the
// project root first. Cleaning is idempotent, so canonicalizing an already
// canonical path is a no-op.
func (a *Analyzer) canonicalize(ref string) string {
	if filepath.IsAbs(ref) {
		return filepath.Clean(ref)
	}
	return filepath.Clean(filepath.Join(a.root, ref))
}

// displayPath re-anchors path under the root in forward-slash form.
func (a *Analyzer) displayPath(path string) string {
	return DisplayPath(a.root, path)
}

// DisplayPath expresses path relative to root, then re-anchors it under
// root with forward-slash separators: root/relative/path. This is the file
// identifier format used in edges and store nodes.
func DisplayPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(filepath.Clean(path))
	}
	return filepath.ToSlash(filepath.Join(root, rel))
}

// canonKey normalizes a path for visited-set and candidate membership so
// that a file reached as a root call and as a recursive target compares
// equal.
func canonKey(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// varInterpPattern matches shell/PHP-style variable interpolation: a dollar
// sign followed by an identifier (including the high-bit bytes PHP allows
// in names).
var varInterpPattern = regexp.MustCompile(`\$[a-zA-Z_\x{7f}-\x{ff}][a-zA-Z0-9_\x{7f}-\x{ff}]*`)

// dynamicIndicators are literal substrings that mark a reference as built
// at runtime rather than statically resolvable.
var dynamicIndicators = []string{"${", "}", "+", "<?php", "?>"}

// isDynamic reports whether ref contains runtime-interpolated content.
func isDynamic(ref string) bool {
	for _, ind := range dynamicIndicators {
		if strings.Contains(ref, ind) {
			return true
		}
	}
	return varInterpPattern.MatchString(ref)
}

// imageExtensions are the extensions excluded under Options.ExcludeImages.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp"}

// isImageFile reports whether path has an image extension, case-insensitively.
func isImageFile(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
