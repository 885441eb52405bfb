package formatter

import (
	"sort"
	"strings"
)

// kindRank orders plain imports ahead of from-imports within a group
func kindRank(k ImportKind) int {
	if k == FromImport {
		return 1
	}
	return 0
}

// SortStatements returns the statements ordered by (group, kind rank,
// lowercased module path). The sort is stable: full ties keep their
// original relative order.
func SortStatements(stmts []ImportStatement) []ImportStatement {
	sorted := make([]ImportStatement, len(stmts))
	copy(sorted, stmts)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		if kindRank(a.Kind) != kindRank(b.Kind) {
			return kindRank(a.Kind) < kindRank(b.Kind)
		}
		return a.SortKey < b.SortKey
	})

	return sorted
}

// RenderBlock renders the canonical import block: non-empty groups in
// group order, exactly one blank line between consecutive groups, no
// blank line at either edge of the block. Statement raw text is emitted
// verbatim. Zero statements render as empty text.
func RenderBlock(stmts []ImportStatement) string {
	if len(stmts) == 0 {
		return ""
	}

	sorted := SortStatements(stmts)

	var lines []string
	for i, stmt := range sorted {
		if i > 0 && stmt.Group != sorted[i-1].Group {
			lines = append(lines, "")
		}
		lines = append(lines, stmt.Raw)
	}

	return strings.Join(lines, "\n")
}

// Reassemble joins prefix, canonical block and suffix back into one
// document. The prefix is followed immediately by the block; a single
// blank line separates the block from the suffix unless the suffix
// already starts with one.
func Reassemble(prefix []string, block string, suffix []string) string {
	var lines []string
	lines = append(lines, prefix...)

	if block != "" {
		lines = append(lines, strings.Split(block, "\n")...)
		if len(suffix) > 0 && strings.TrimSpace(suffix[0]) != "" {
			lines = append(lines, "")
		}
	}

	lines = append(lines, suffix...)
	return strings.Join(lines, "\n")
}
