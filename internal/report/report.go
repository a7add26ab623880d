// Package report renders an audit report as plain text.
package report

import (
	"fmt"
	"strings"

	"github.com/phobologic/repoaudit/internal/model"
)

// Encode renders r in section order: largest files, type escapes, work
// markers, debug statements, unused components, unused hooks, routes.
// topN is only used in the section titles.
func Encode(r *model.Report, topN int) string {
	var b strings.Builder

	b.WriteString("--- Code Quality Audit Scan ---\n")

	section(&b, fmt.Sprintf("Top %d Largest Files (Candidates for splitting)", topN))
	for _, m := range r.Largest {
		fmt.Fprintf(&b, "%d lines: %s\n", m.Lines, m.Path)
	}

	section(&b, fmt.Sprintf("Top %d Files using 'any' (Type safety risks)", topN))
	for _, m := range r.TypeEscapes {
		fmt.Fprintf(&b, "%d uses: %s\n", m.AnyCount, m.Path)
	}

	section(&b, "Files with TODOs/FIXMEs")
	for _, m := range r.WorkMarkers {
		fmt.Fprintf(&b, "%d found: %s\n", m.TodoCount, m.Path)
	}

	section(&b, "Files with console.log (Cleanup needed)")
	for _, m := range r.DebugStatements {
		fmt.Fprintf(&b, "%d found: %s\n", m.ConsoleCount, m.Path)
	}

	b.WriteString("\n--- Analyzing Components ---\n")
	for _, s := range r.UnusedComponents {
		fmt.Fprintf(&b, "UNUSED COMPONENT: %s (%s)\n", s.Name, s.Root)
	}
	fmt.Fprintf(&b, "Total Potentially Unused Components: %d\n", len(r.UnusedComponents))

	b.WriteString("\n--- Analyzing Hooks ---\n")
	for _, s := range r.UnusedHooks {
		fmt.Fprintf(&b, "UNUSED HOOK: %s (%s)\n", s.Name, s.DeclaringPath)
	}
	fmt.Fprintf(&b, "Total Potentially Unused Hooks: %d\n", len(r.UnusedHooks))

	b.WriteString("\n--- Analyzing Routes/Pages ---\n")
	for _, route := range r.Routes {
		fmt.Fprintf(&b, "ROUTE: %s\n", route)
	}

	return b.String()
}

func section(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n[%s]\n", title)
}
