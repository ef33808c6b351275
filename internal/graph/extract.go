package graph

import (
	"log"
	"os"
	"regexp"
)

// Pattern tables, one ordered list per category. Every pattern is applied
// case-insensitively against raw file text and captures the reference
// literal in group 1. The tables are fixed configuration: they never vary
// per run and must not be mutated.

var serverScriptPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:include|require)(?:_once)?\s*['"]([^'"]+)['"]`),
	regexp.MustCompile(`(?i)use\s+([^;]+)`),
	regexp.MustCompile(`(?i)<script[^>]*src=['"]([^'"]+)['"]`),
	regexp.MustCompile(`(?i)echo\s*['"]<script[^>]*src=['"]([^'"]+)['"]`),
	regexp.MustCompile(`(?i)<link[^>]*href=['"]([^'"]+\.css)['"]`),
	regexp.MustCompile(`(?i)<img[^>]*src=['"]([^'"]+)['"]`),
}

var browserScriptPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:import|export)(?:.*?from)?\s+['"]([^'"]+)['"]`),
	regexp.MustCompile(`(?i)(?:const|let|var)?\s*.*?require\s*\(\s*['"]([^'"]+)['"]`),
	regexp.MustCompile(`(?i)import\s*\(\s*['"]([^'"]+)['"]`),
	regexp.MustCompile(`(?i)fetch\s*\(\s*['"]([^'"]+)['"]`),
	regexp.MustCompile(`(?i)\$\.ajax\s*\(\s*\{[^}]*url\s*:\s*['"]([^'"]+)['"]`),
	regexp.MustCompile(`(?i)\.open\s*\(\s*['"](?:GET|POST|PUT|DELETE)['"],\s*['"]([^'"]+)['"]`),
}

var markupPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script[^>]*src=['"]([^'"]+)['"]`),
	regexp.MustCompile(`(?i)<link[^>]*href=['"]([^'"]+\.css)['"]`),
	regexp.MustCompile(`(?i)<img[^>]*src=['"]([^'"]+)['"]`),
}

var stylesheetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)@import\s+['"]([^'"]+)['"]`),
	regexp.MustCompile(`(?i)url\s*\(\s*['"]?([^'"]+)['"]?\s*\)`),
}

var categoryPatterns = map[Category][]*regexp.Regexp{
	CategoryServerScript:  serverScriptPatterns,
	CategoryBrowserScript: browserScriptPatterns,
	CategoryMarkup:        markupPatterns,
	CategoryStylesheet:    stylesheetPatterns,
}

// externalPatterns recognize references that point outside the project:
// network URLs, protocol-relative URLs, bare www hosts, and any scheme.
var externalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^https?://`),
	regexp.MustCompile(`(?i)^//`),
	regexp.MustCompile(`(?i)^www\.`),
	regexp.MustCompile(`(?i)^\w+://`),
}

// Extract returns the raw reference strings found in content, using the
// pattern set selected by path's extension. Patterns run in table order and
// their matches are concatenated; duplicates are kept. External references
// are filtered out here, before any dynamic classification downstream.
// An unrecognized extension yields nil.
func Extract(path string, content []byte) []string {
	patterns, ok := categoryPatterns[CategoryFor(path)]
	if !ok {
		return nil
	}

	text := string(content)
	var refs []string
	for _, p := range patterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			ref := m[1]
			if isExternal(ref) {
				continue
			}
			refs = append(refs, ref)
		}
	}
	return refs
}

// ExtractFile reads path from disk and extracts its references. A read
// failure is logged and yields zero references; it never aborts the
// caller's traversal.
func ExtractFile(path string) []string {
	content, err := os.ReadFile(path)
	if err != nil {
		log.Printf("error reading file %s: %v", path, err)
		return nil
	}
	return Extract(path, content)
}

// isExternal reports whether ref points outside the project.
func isExternal(ref string) bool {
	for _, p := range externalPatterns {
		if p.MatchString(ref) {
			return true
		}
	}
	return false
}
