package formatter

import (
	"regexp"
	"strings"
)

// Document splits a source file into the lines before the leading import
// region, the import statements themselves, and everything after. Joining
// Prefix, the original statement text and Suffix reproduces the original
// file exactly.
type Document struct {
	Prefix     []string
	Statements []ImportStatement
	Suffix     []string
}

var importStartRe = regexp.MustCompile(`^(from\s+\S+\s+import\b|import\s+\S+)`)

// IsImportLine reports whether a line begins an import statement once
// leading whitespace is stripped.
func IsImportLine(line string) bool {
	return importStartRe.MatchString(strings.TrimSpace(line))
}

func isCommentLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// bracketDelta returns the net bracket nesting change of a line, ignoring
// anything after a comment marker. Brackets inside string literals are
// not tracked; the scanner is lexical, not syntactic.
func bracketDelta(line string) int {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	delta := 0
	for _, r := range line {
		switch r {
		case '(', '[', '{':
			delta++
		case ')', ']', '}':
			delta--
		}
	}
	return delta
}

// ExtractDocument scans lines into a Document. Only the leading
// contiguous import region is recognized: it starts at the first import
// statement, tolerates blank and comment-only separator lines, and ends
// at the first ordinary code line. Later lines that resemble imports stay
// in the suffix untouched. Separator lines after the last statement are
// pushed to the suffix so trailing comments stay with the code they
// precede.
func ExtractDocument(lines []string) Document {
	var doc Document

	i := 0
	seenImport := false
	var pending []string // separator lines not yet committed to the region

	for i < len(lines) {
		line := lines[i]

		if IsImportLine(line) {
			seenImport = true
			pending = nil // separators inside the region are dropped
			raw, next := consumeStatement(lines, i)
			doc.Statements = append(doc.Statements, parseStatement(raw))
			i = next
			continue
		}

		if !seenImport {
			doc.Prefix = append(doc.Prefix, line)
			i++
			continue
		}

		if strings.TrimSpace(line) == "" || isCommentLine(line) {
			pending = append(pending, line)
			i++
			continue
		}

		// ordinary code ends the import region
		break
	}

	if !seenImport {
		// No import region at all: the whole document is suffix and the
		// reassembled output equals the input.
		doc.Prefix = nil
		doc.Suffix = append([]string{}, lines...)
		return doc
	}

	doc.Suffix = append(doc.Suffix, pending...)
	doc.Suffix = append(doc.Suffix, lines[i:]...)
	return doc
}

// consumeStatement gathers the full raw text of the statement starting at
// lines[start] and returns it with the index of the first line after it.
// Unclosed brackets absorb following lines; if they never close the
// remainder of the file becomes part of this statement (best effort). A
// trailing backslash appends the next line.
func consumeStatement(lines []string, start int) (string, int) {
	var b strings.Builder
	depth := 0
	i := start

	for i < len(lines) {
		line := lines[i]
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		depth += bracketDelta(line)
		i++

		if depth > 0 {
			continue
		}
		if strings.HasSuffix(strings.TrimRight(line, " \t"), `\`) {
			continue
		}
		break
	}

	return b.String(), i
}

// parseStatement derives the kind, module path and sort key from a raw
// statement. Malformed statements keep an empty module path and are later
// classified as third-party so nothing is ever dropped.
func parseStatement(raw string) ImportStatement {
	stmt := ImportStatement{Raw: raw}

	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) > 0 && fields[0] == "from" {
		stmt.Kind = FromImport
	}
	if len(fields) > 1 {
		// "import a, b" sorts by its first module path
		stmt.Module = strings.TrimSuffix(fields[1], ",")
	}
	stmt.SortKey = strings.ToLower(stmt.Module)

	return stmt
}
