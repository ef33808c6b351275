package scan

import (
	"path/filepath"
	"regexp"
	"strings"
)

// commonEntryPoints are file names that almost always serve as a page the
// web server dispatches to directly.
var commonEntryPoints = map[string]bool{
	"index.php":     true,
	"main.php":      true,
	"app.php":       true,
	"home.php":      true,
	"front.php":     true,
	"public.php":    true,
	"start.php":     true,
	"bootstrap.php": true,
}

// entryPointPatterns are name shapes that suggest a dispatchable page.
var entryPointPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^index_`),
	regexp.MustCompile(`^main_`),
	regexp.MustCompile(`_controller\.php$`),
	regexp.MustCompile(`^route`),
}

// EntryPoints filters files down to the ones that look like entry points of
// the project: pages a request lands on, as opposed to included classes or
// API/ajax helpers. When the heuristics match nothing, every file is
// returned so the caller still has a starting set.
func EntryPoints(files []string) []string {
	var entries []string
	for _, f := range files {
		if isLikelyEntryPoint(filepath.Base(f)) {
			entries = append(entries, f)
		}
	}
	if len(entries) == 0 {
		return files
	}
	return entries
}

// isLikelyEntryPoint applies the naming heuristics to a single file name.
func isLikelyEntryPoint(filename string) bool {
	lower := strings.ToLower(filename)
	if commonEntryPoints[lower] {
		return true
	}

	// PascalCase names and class/api/ajax keywords suggest an included
	// definition file, not a page.
	isPascalCase := filename != "" && filename[0] >= 'A' && filename[0] <= 'Z' &&
		!strings.Contains(filename, "_")
	hasExcludedKeyword := strings.Contains(lower, "class") ||
		strings.Contains(lower, "api") ||
		strings.Contains(lower, "ajax")

	matchesPattern := false
	for _, p := range entryPointPatterns {
		if p.MatchString(lower) {
			matchesPattern = true
			break
		}
	}

	return !isPascalCase && !hasExcludedKeyword && matchesPattern
}
