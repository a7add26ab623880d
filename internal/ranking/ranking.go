// Package ranking turns per-file metrics and usage verdicts into the ranked,
// filtered lists shown in the audit report.
//
// Every function is pure: inputs are copied before sorting and never
// modified. Ties are broken by path (or symbol name) so output is stable.
package ranking

import (
	"sort"

	"github.com/phobologic/repoaudit/internal/model"
)

// Largest returns the n records with the most lines.
func Largest(records []model.QualityMetrics, n int) []model.QualityMetrics {
	return truncate(sortedBy(records, func(m model.QualityMetrics) int { return m.Lines }), n)
}

// TypeEscapes returns the n records with the most type-escape markers,
// dropping records that have none. Truncation happens before the filter.
func TypeEscapes(records []model.QualityMetrics, n int) []model.QualityMetrics {
	top := truncate(sortedBy(records, func(m model.QualityMetrics) int { return m.AnyCount }), n)
	return nonZero(top, func(m model.QualityMetrics) int { return m.AnyCount })
}

// WorkMarkers returns every record with at least one TODO/FIXME marker,
// most first.
func WorkMarkers(records []model.QualityMetrics) []model.QualityMetrics {
	key := func(m model.QualityMetrics) int { return m.TodoCount }
	return sortedBy(nonZero(records, key), key)
}

// DebugStatements returns every record with at least one debug statement,
// most first.
func DebugStatements(records []model.QualityMetrics) []model.QualityMetrics {
	key := func(m model.QualityMetrics) int { return m.ConsoleCount }
	return sortedBy(nonZero(records, key), key)
}

// Unused returns the symbols of the given category with a negative verdict,
// each once. Components are grouped by root in the order roots are given,
// then sorted by name; hooks are sorted by declaring path.
func Unused(verdicts []model.Verdict, category model.Category, roots []string) []model.Symbol {
	type key struct{ name, path string }
	seen := make(map[key]struct{})

	var syms []model.Symbol
	for i := range verdicts {
		v := &verdicts[i]
		if v.Used || v.Symbol.Category != category {
			continue
		}
		k := key{v.Symbol.Name, v.Symbol.DeclaringPath}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		syms = append(syms, v.Symbol)
	}

	rootOrder := make(map[string]int, len(roots))
	for i, r := range roots {
		rootOrder[r] = i
	}
	sort.SliceStable(syms, func(i, j int) bool {
		a, b := syms[i], syms[j]
		if a.Root != b.Root {
			return rootOrder[a.Root] < rootOrder[b.Root]
		}
		if a.Category == model.Component && a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.DeclaringPath < b.DeclaringPath
	})
	return syms
}

// Input gathers everything Build needs.
type Input struct {
	Metrics        []model.QualityMetrics
	Verdicts       []model.Verdict
	Routes         []string
	ComponentRoots []string
	TopN           int
}

// Build assembles the complete report.
func Build(in Input) *model.Report {
	return &model.Report{
		Largest:          Largest(in.Metrics, in.TopN),
		TypeEscapes:      TypeEscapes(in.Metrics, in.TopN),
		WorkMarkers:      WorkMarkers(in.Metrics),
		DebugStatements:  DebugStatements(in.Metrics),
		UnusedComponents: Unused(in.Verdicts, model.Component, in.ComponentRoots),
		UnusedHooks:      Unused(in.Verdicts, model.Hook, nil),
		Routes:           in.Routes,
	}
}

// sortedBy returns a copy of records ordered by key descending, then path.
func sortedBy(records []model.QualityMetrics, key func(model.QualityMetrics) int) []model.QualityMetrics {
	out := make([]model.QualityMetrics, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		ki, kj := key(out[i]), key(out[j])
		if ki != kj {
			return ki > kj
		}
		return out[i].Path < out[j].Path
	})
	return out
}

func nonZero(records []model.QualityMetrics, key func(model.QualityMetrics) int) []model.QualityMetrics {
	var out []model.QualityMetrics
	for _, r := range records {
		if key(r) > 0 {
			out = append(out, r)
		}
	}
	return out
}

func truncate(records []model.QualityMetrics, n int) []model.QualityMetrics {
	if n >= 0 && n < len(records) {
		return records[:n]
	}
	return records
}
