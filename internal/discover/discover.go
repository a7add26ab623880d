// Package discover enumerates the source corpus and the app routes of a project.
package discover

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// Options controls corpus discovery.
type Options struct {
	Dir              string   // Directory to walk, relative to base
	Extensions       []string // Exact, case-sensitive filename suffixes
	RespectGitignore bool     // Drop files matched by base/.gitignore
}

// Files returns every file under base/opts.Dir whose name ends with one of
// opts.Extensions. Paths are relative to base and slash-separated. The result
// is sorted only for stable output; callers must not rely on the order.
//
// Unreadable directories are skipped silently and a missing Dir yields an
// empty corpus.
func Files(base string, opts Options) ([]string, error) {
	var gi *ignore.GitIgnore
	if opts.RespectGitignore {
		gi = loadGitignore(base)
	}

	root := filepath.Join(base, filepath.FromSlash(opts.Dir))
	var results []string

	err := filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip errors
		}
		if d.IsDir() {
			return nil
		}
		if !hasExtension(d.Name(), opts.Extensions) {
			return nil
		}

		rel, err := filepath.Rel(base, p)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}

		results = append(results, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(results)
	return results, nil
}

// RouteOptions controls route discovery.
type RouteOptions struct {
	AppRoot    string   // Directory holding the routes, relative to base
	Entry      string   // Entry file name without extension, e.g. "page"
	Extensions []string // Extensions the entry file may carry
}

// Routes lists one route per directory under base/opts.AppRoot that directly
// contains an entry file. The app root itself is "/".
func Routes(base string, opts RouteOptions) ([]string, error) {
	pattern := entryPattern(opts.Entry, opts.Extensions)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("route entry pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	root := filepath.Join(base, filepath.FromSlash(opts.AppRoot))
	seen := make(map[string]struct{})
	var routes []string

	err := filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if ok, _ := doublestar.Match(pattern, d.Name()); !ok {
			return nil
		}

		rel, err := filepath.Rel(root, filepath.Dir(p))
		if err != nil {
			return nil
		}
		route := path.Clean("/" + filepath.ToSlash(rel))
		if _, dup := seen[route]; dup {
			return nil
		}
		seen[route] = struct{}{}
		routes = append(routes, route)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(routes)
	return routes, nil
}

// entryPattern builds a brace pattern such as "page{.ts,.tsx}".
func entryPattern(entry string, extensions []string) string {
	escaped := make([]string, len(extensions))
	for i, ext := range extensions {
		escaped[i] = escapeMeta(ext)
	}
	return escapeMeta(entry) + "{" + strings.Join(escaped, ",") + "}"
}

func escapeMeta(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '{', '}', ',', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func hasExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func loadGitignore(base string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(base, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
