package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/vkbaba/code-modernizer/internal/config"
	"github.com/vkbaba/code-modernizer/internal/graph"
)

// CLI flags parsed from command line.
type cliFlags struct {
	ProjectRoot   string
	OutputDir     string
	Format        string
	Files         string
	ExcludeDirs   string
	ShowPath      bool
	IncludeImages bool
	KeepDynamic   bool
	Addr          string
	ServeMCP      bool
	Version       bool

	set map[string]bool // flags the user passed explicitly
	cfg *config.ProjectConfig
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var flags cliFlags

	fs := flag.NewFlagSet("modernizer", flag.ContinueOnError)
	fs.StringVar(&flags.ProjectRoot, "project-root", ".", "path to the target web project")
	fs.StringVar(&flags.OutputDir, "output-dir", "", "output directory for generated diagrams")
	fs.StringVar(&flags.Format, "format", "mermaid", "diagram format: mermaid, plantuml, ascii, dot, html")
	fs.StringVar(&flags.Files, "files", "", "comma-separated file names to analyze instead of the whole tree")
	fs.StringVar(&flags.ExcludeDirs, "exclude-dirs", "", "comma-separated directory names to skip while scanning")
	fs.BoolVar(&flags.ShowPath, "show-path", false, "label diagram nodes with full paths instead of base names")
	fs.BoolVar(&flags.IncludeImages, "include-images", false, "keep edges that point at image files")
	fs.BoolVar(&flags.KeepDynamic, "keep-dynamic", false, "resolve dynamic references instead of skipping them")
	fs.StringVar(&flags.Addr, "addr", ":8137", "listen address for the MCP server")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as MCP server for agent integration")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	flags.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { flags.set[f.Name] = true })

	if flags.Version {
		fmt.Println(version)
		return nil
	}

	if flags.ServeMCP {
		return runServeMCP(flags.Addr)
	}

	cfg, err := config.Load(flags.ProjectRoot)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyConfig(&flags, cfg)
	flags.cfg = cfg

	cmd := "analyze"
	rest := fs.Args()
	if len(rest) > 0 {
		cmd = rest[0]
		rest = rest[1:]
	}

	switch cmd {
	case "analyze":
		return runAnalyze(flags)
	case "diagram":
		return runDiagram(flags)
	case "export":
		return runExport(flags)
	case "impact":
		return runImpact(flags, rest)
	case "deps":
		return runDeps(flags, rest)
	case "entrypoints":
		return runEntryPoints(flags)
	case "endpoints":
		return runEndpoints(flags)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

// applyConfig fills in flag values from the project config file, without
// overriding anything the user passed explicitly on the command line.
func applyConfig(flags *cliFlags, cfg *config.ProjectConfig) {
	if !flags.set["output-dir"] && cfg.OutputDir != "" {
		flags.OutputDir = cfg.OutputDir
	}
	if !flags.set["format"] && cfg.Format != "" {
		flags.Format = cfg.Format
	}
	if !flags.set["exclude-dirs"] && len(cfg.ExcludeDirs) > 0 {
		flags.ExcludeDirs = strings.Join(cfg.ExcludeDirs, ",")
	}
	if !flags.set["show-path"] && cfg.ShowPath {
		flags.ShowPath = true
	}
	if !flags.set["include-images"] && cfg.ExcludeImages != nil {
		flags.IncludeImages = !*cfg.ExcludeImages
	}
	if !flags.set["keep-dynamic"] && cfg.HandleDynamic != nil {
		flags.KeepDynamic = !*cfg.HandleDynamic
	}
}

// analyzerOptions converts CLI flags to resolver options.
func analyzerOptions(flags cliFlags) graph.Options {
	opts := graph.DefaultOptions()
	opts.ExcludeImages = !flags.IncludeImages
	opts.HandleDynamic = !flags.KeepDynamic
	return opts
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
