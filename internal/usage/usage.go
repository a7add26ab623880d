// Package usage classifies symbols as used or unused by plain substring
// search over the corpus.
//
// The check is textual: a name counts as referenced wherever it appears,
// including comments, string literals and longer identifiers ("Card" is found
// in "CardHeader"). Files excluded from a symbol's scan never contribute a
// match, even when they hold a genuine external reference.
package usage

import (
	"strings"

	"github.com/phobologic/repoaudit/internal/model"
)

// TextSource yields the text of a corpus file, or "" when it is unreadable.
type TextSource interface {
	Text(path string) string
}

// Scanner checks symbols against a fixed corpus.
type Scanner struct {
	files    []string
	source   TextSource
	excludes []string
}

// NewScanner returns a scanner over files. Any file whose path contains one
// of excludes (e.g. ".stories.", ".test.") is never a triggering match.
func NewScanner(files []string, source TextSource, excludes []string) *Scanner {
	return &Scanner{files: files, source: source, excludes: excludes}
}

// IsUsed reports whether any file outside the symbol's declaration, and not
// excluded, contains the symbol name. The first match wins.
func (s *Scanner) IsUsed(sym model.Symbol) bool {
	for _, f := range s.files {
		if declares(sym, f) || s.excluded(f) {
			continue
		}
		if strings.Contains(s.source.Text(f), sym.Name) {
			return true
		}
	}
	return false
}

// Scan returns exactly one verdict per symbol, in input order.
func (s *Scanner) Scan(symbols []model.Symbol) []model.Verdict {
	verdicts := make([]model.Verdict, len(symbols))
	for i, sym := range symbols {
		verdicts[i] = model.Verdict{Symbol: sym, Used: s.IsUsed(sym)}
	}
	return verdicts
}

func (s *Scanner) excluded(path string) bool {
	for _, ex := range s.excludes {
		if strings.Contains(path, ex) {
			return true
		}
	}
	return false
}

// declares reports whether path is part of the symbol's own declaration.
// Component directories use a raw string prefix, so "atoms/Card" also claims
// "atoms/CardHeader/index.tsx".
func declares(sym model.Symbol, path string) bool {
	if sym.Category == model.Component {
		return strings.HasPrefix(path, sym.DeclaringPath)
	}
	return path == sym.DeclaringPath
}
