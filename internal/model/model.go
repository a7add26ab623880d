// Package model defines core data structures for repoaudit.
package model

// Category indicates which naming convention produced a symbol.
type Category string

const (
	Component Category = "component"
	Hook      Category = "hook"
)

// Symbol is a candidate name whose usage is checked across the corpus.
//
// For components DeclaringPath is the component directory and every file
// beneath it belongs to the declaration. For hooks it is the single file the
// name was derived from.
type Symbol struct {
	Name          string
	DeclaringPath string
	Category      Category
	Root          string // Category root a component was found under; empty for hooks
}

// Verdict is the usage classification of a single symbol.
type Verdict struct {
	Symbol Symbol
	Used   bool
}

// QualityMetrics holds the per-file counters computed by the quality analyzer.
type QualityMetrics struct {
	Path         string
	Lines        int
	AnyCount     int
	TodoCount    int
	ConsoleCount int
}

// Report is the aggregated audit result, ready for rendering.
type Report struct {
	Largest          []QualityMetrics
	TypeEscapes      []QualityMetrics
	WorkMarkers      []QualityMetrics
	DebugStatements  []QualityMetrics
	UnusedComponents []Symbol
	UnusedHooks      []Symbol
	Routes           []string
}
