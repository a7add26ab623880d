// Package quality computes per-file code-quality counters over the corpus.
package quality

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/phobologic/repoaudit/internal/content"
	"github.com/phobologic/repoaudit/internal/model"
)

// Markers lists the textual signals counted in every file.
type Markers struct {
	TypeEscapes []string // Regular expressions, e.g. `:\s*any\b`
	Work        []string // Case-insensitive literals, e.g. "TODO:"
	Debug       string   // Literal, e.g. "console.log"
}

// Analyzer counts markers in file contents.
type Analyzer struct {
	typeEscapes []*regexp.Regexp
	work        []*regexp.Regexp
	debug       string
}

// Compile builds an Analyzer from m.
func Compile(m Markers) (*Analyzer, error) {
	a := &Analyzer{debug: m.Debug}
	for _, expr := range m.TypeEscapes {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compiling type-escape pattern %q: %w", expr, err)
		}
		a.typeEscapes = append(a.typeEscapes, re)
	}
	for _, lit := range m.Work {
		a.work = append(a.work, regexp.MustCompile("(?i)"+regexp.QuoteMeta(lit)))
	}
	return a, nil
}

// Measure computes the metrics of a single file. Unreadable content yields
// all-zero metrics.
func (a *Analyzer) Measure(path string, c content.Content) model.QualityMetrics {
	m := model.QualityMetrics{Path: path}
	if !c.Readable {
		return m
	}

	m.Lines = CountLines(c.Text)
	m.AnyCount = countAll(a.typeEscapes, c.Text)
	m.TodoCount = countAll(a.work, c.Text)
	if a.debug != "" {
		m.ConsoleCount = strings.Count(c.Text, a.debug)
	}
	return m
}

// Loader yields file contents by corpus path.
type Loader interface {
	Load(path string) content.Content
}

// Analyze measures every file, returning one record per path in input order.
func (a *Analyzer) Analyze(files []string, loader Loader) []model.QualityMetrics {
	records := make([]model.QualityMetrics, len(files))
	for i, f := range files {
		records[i] = a.Measure(f, loader.Load(f))
	}
	return records
}

// CountLines returns the number of newline-delimited segments in text. A
// trailing newline starts one more, empty, line.
func CountLines(text string) int {
	return strings.Count(text, "\n") + 1
}

func countAll(patterns []*regexp.Regexp, text string) int {
	n := 0
	for _, re := range patterns {
		n += len(re.FindAllStringIndex(text, -1))
	}
	return n
}
