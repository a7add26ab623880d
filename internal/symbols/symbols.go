// Package symbols derives the candidate component and hook names whose usage
// is checked across the corpus.
package symbols

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/phobologic/repoaudit/internal/model"
)

// Components returns one component symbol per immediate subdirectory of each
// root. Roots are slash-separated and relative to base; roots that do not
// exist contribute nothing. Files inside a component directory are not
// inspected: the directory name stands for whatever it exports.
func Components(base string, roots []string) []model.Symbol {
	var syms []model.Symbol
	for _, root := range roots {
		entries, err := os.ReadDir(filepath.Join(base, filepath.FromSlash(root)))
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !isDir(base, root, e) {
				continue
			}
			syms = append(syms, model.Symbol{
				Name:          e.Name(),
				DeclaringPath: path.Join(root, e.Name()),
				Category:      model.Component,
				Root:          root,
			})
		}
	}
	return syms
}

// isDir reports whether e is a directory, following symlinks.
func isDir(base, root string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(base, filepath.FromSlash(root), e.Name()))
	return err == nil && info.IsDir()
}

// HookRule describes which files declare hooks.
type HookRule struct {
	Prefix   string   // Base name must start with this
	Excludes []string // Base name must contain none of these
}

// Matches reports whether a base file name declares a hook.
func (r HookRule) Matches(name string) bool {
	if !strings.HasPrefix(name, r.Prefix) {
		return false
	}
	for _, ex := range r.Excludes {
		if strings.Contains(name, ex) {
			return false
		}
	}
	return true
}

// Hooks returns one hook symbol per corpus file matched by rule, named after
// the file's base name without its final extension.
func Hooks(files []string, rule HookRule) []model.Symbol {
	var syms []model.Symbol
	for _, f := range files {
		name := path.Base(f)
		if !rule.Matches(name) {
			continue
		}
		syms = append(syms, model.Symbol{
			Name:          strings.TrimSuffix(name, path.Ext(name)),
			DeclaringPath: f,
			Category:      model.Hook,
		})
	}
	return syms
}
