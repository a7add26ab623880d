// repoaudit reports likely-dead components and hooks and simple code-quality
// signals for a conventionally laid out TypeScript/JavaScript project.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phobologic/repoaudit/internal/content"
	"github.com/phobologic/repoaudit/internal/conventions"
	"github.com/phobologic/repoaudit/internal/discover"
	"github.com/phobologic/repoaudit/internal/model"
	"github.com/phobologic/repoaudit/internal/quality"
	"github.com/phobologic/repoaudit/internal/ranking"
	"github.com/phobologic/repoaudit/internal/report"
	"github.com/phobologic/repoaudit/internal/symbols"
	"github.com/phobologic/repoaudit/internal/usage"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	verbose          bool
	respectGitignore bool
	showVersion      bool
}

func run(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "repoaudit [project-dir]",
		Short: "Report unused components, unused hooks and code-quality hot spots",
		Long: `repoaudit scans the src/ tree of a project and prints a plain-text report:
the largest files, files using 'any', TODO/FIXME markers, console.log calls,
components under src/components/{atoms,molecules,organisms} and use* hooks
that no other file mentions, and the routes under src/app.

Usage detection is a plain substring search; treat results as leads, not proof.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				_, _ = fmt.Fprintf(stdout, "repoaudit %s\n", version)
				return nil
			}
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return audit(dir, opts, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log scan progress and unreadable files to stderr")
	f.BoolVar(&opts.respectGitignore, "respect-gitignore", false, "skip files matched by the project's .gitignore")
	f.BoolVarP(&opts.showVersion, "version", "V", false, "show version and exit")

	return cmd
}

func audit(dir string, opts options, stdout, stderr io.Writer) error {
	root, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving project dir: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("project dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", root)
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	conv, err := conventions.Default()
	if err != nil {
		return err
	}
	analyzer, err := quality.Compile(quality.Markers{
		TypeEscapes: conv.TypeEscapePatterns,
		Work:        conv.WorkMarkers,
		Debug:       conv.DebugMarker,
	})
	if err != nil {
		return err
	}

	files, err := discover.Files(root, discover.Options{
		Dir:              conv.SourceRoot,
		Extensions:       conv.Extensions,
		RespectGitignore: opts.respectGitignore,
	})
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	logger.Debug("corpus collected", slog.String("root", conv.SourceRoot), slog.Int("files", len(files)))

	cache := content.NewCache(root, logger)
	metrics := analyzer.Analyze(files, cache)

	components := symbols.Components(root, conv.ComponentRoots)
	hooks := symbols.Hooks(files, symbols.HookRule{Prefix: conv.HookPrefix, Excludes: conv.HookNameExcludes})
	logger.Debug("symbols extracted", slog.Int("components", len(components)), slog.Int("hooks", len(hooks)))

	syms := make([]model.Symbol, 0, len(components)+len(hooks))
	syms = append(syms, components...)
	syms = append(syms, hooks...)
	verdicts := usage.NewScanner(files, cache, conv.ScanPathExcludes).Scan(syms)

	routes, err := discover.Routes(root, discover.RouteOptions{
		AppRoot:    conv.AppRoot,
		Entry:      conv.RouteEntry,
		Extensions: conv.Extensions,
	})
	if err != nil {
		return fmt.Errorf("discovering routes: %w", err)
	}

	rep := ranking.Build(ranking.Input{
		Metrics:        metrics,
		Verdicts:       verdicts,
		Routes:         routes,
		ComponentRoots: conv.ComponentRoots,
		TopN:           conv.TopN,
	})

	_, _ = fmt.Fprint(stdout, report.Encode(rep, conv.TopN))
	return nil
}
