package formatter

import "errors"

// ErrNotText marks content that cannot be treated as UTF-8 text; such
// files are skipped, never rewritten.
var ErrNotText = errors.New("not valid UTF-8 text")

// ImportKind distinguishes plain "import x" statements from
// "from x import y" statements.
type ImportKind int

const (
	PlainImport ImportKind = iota
	FromImport
)

// ImportGroup represents the canonical ordering category of an import
// statement. The declaration order is the rendering order.
type ImportGroup int

const (
	FutureGroup ImportGroup = iota
	StdGroup
	ThirdPartyGroup
	LocalGroup
)

// String returns a short label for reporting
func (g ImportGroup) String() string {
	switch g {
	case FutureGroup:
		return "future"
	case StdGroup:
		return "stdlib"
	case ThirdPartyGroup:
		return "third-party"
	case LocalGroup:
		return "local"
	}
	return "unknown"
}

// ImportStatement is one import construct extracted from the leading
// import region. Raw preserves the statement text verbatim, including
// embedded newlines for parenthesized or backslash-continued statements.
// Statements are immutable once extracted, except for the Group assigned
// by the classifier.
type ImportStatement struct {
	Raw     string      // statement text, possibly multi-line
	Kind    ImportKind  // plain import vs from-import
	Module  string      // dotted module path, leading dots for relative imports
	SortKey string      // lowercased module path
	Group   ImportGroup // assigned by the classifier
}

// Status describes the terminal state of one file's rewrite pipeline.
type Status int

const (
	StatusUnchanged Status = iota
	StatusRewritten
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusRewritten:
		return "rewritten"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Result is the outcome of processing a single file.
type Result struct {
	Path       string
	Status     Status
	BackupPath string // set when a backup was written
	Err        error  // set when Status is StatusFailed
}
