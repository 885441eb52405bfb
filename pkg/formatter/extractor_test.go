package formatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsImportLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"plain import", "import os", true},
		{"dotted import", "import os.path", true},
		{"from import", "from datetime import datetime", true},
		{"relative from import", "from . import sibling", true},
		{"future import", "from __future__ import annotations", true},
		{"indented import", "    import os", true},
		{"parenthesized from import", "from a import (", true},
		{"bare import keyword", "import", false},
		{"assignment", "x = 1", false},
		{"comment", "# import os", false},
		{"word prefix", "importlib.reload(m)", false},
		{"blank", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsImportLine(tt.line), "IsImportLine(%q)", tt.line)
		})
	}
}

func TestExtractDocument(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		prefix []string
		raws   []string
		suffix []string
	}{
		{
			name:   "leading imports then code",
			lines:  []string{"import os", "import sys", "", "print(1)"},
			raws:   []string{"import os", "import sys"},
			suffix: []string{"", "print(1)"},
		},
		{
			name:   "prefix before first import",
			lines:  []string{"#!/usr/bin/env python", `"""Docstring."""`, "", "import os", "x = 1"},
			prefix: []string{"#!/usr/bin/env python", `"""Docstring."""`, ""},
			raws:   []string{"import os"},
			suffix: []string{"x = 1"},
		},
		{
			name: "parenthesized statement spans lines",
			lines: []string{
				"from foo import (",
				"    a,",
				"    b,",
				")",
				"x = 1",
			},
			raws:   []string{"from foo import (\n    a,\n    b,\n)"},
			suffix: []string{"x = 1"},
		},
		{
			name:   "backslash continuation",
			lines:  []string{`import a, \`, "    b", "y = 2"},
			raws:   []string{"import a, \\\n    b"},
			suffix: []string{"y = 2"},
		},
		{
			name:   "comment between imports is a separator",
			lines:  []string{"import b", "# grouped by hand", "import a", "x = 1"},
			raws:   []string{"import b", "import a"},
			suffix: []string{"x = 1"},
		},
		{
			name:   "blank lines between imports do not end the region",
			lines:  []string{"import b", "", "", "import a", "x = 1"},
			raws:   []string{"import b", "import a"},
			suffix: []string{"x = 1"},
		},
		{
			name:   "trailing separators belong to the suffix",
			lines:  []string{"import os", "", "# entry point", "def main(): pass"},
			raws:   []string{"import os"},
			suffix: []string{"", "# entry point", "def main(): pass"},
		},
		{
			name:   "no imports at all",
			lines:  []string{"x = 1", "", "y = 2"},
			suffix: []string{"x = 1", "", "y = 2"},
		},
		{
			name:   "imports after code stay in the suffix",
			lines:  []string{"import os", "x = 1", "import sys"},
			raws:   []string{"import os"},
			suffix: []string{"x = 1", "import sys"},
		},
		{
			name:   "unterminated bracket absorbs the remainder",
			lines:  []string{"from a import (", "    b,", "    c,"},
			raws:   []string{"from a import (\n    b,\n    c,"},
			suffix: nil,
		},
		{
			name:   "bracket in trailing comment is ignored",
			lines:  []string{"import os  # see (docs", "x = 1"},
			raws:   []string{"import os  # see (docs"},
			suffix: []string{"x = 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			doc := ExtractDocument(tt.lines)

			req.Equal(tt.prefix, doc.Prefix, "prefix")

			var raws []string
			for _, stmt := range doc.Statements {
				raws = append(raws, stmt.Raw)
			}
			req.Equal(tt.raws, raws, "statement raw text")

			req.Equal(tt.suffix, doc.Suffix, "suffix")
		})
	}
}

func TestParseStatement(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		kind    ImportKind
		module  string
		sortKey string
	}{
		{"plain import", "import os", PlainImport, "os", "os"},
		{"dotted import", "import os.path", PlainImport, "os.path", "os.path"},
		{"multi-target import uses first module", "import os, sys", PlainImport, "os", "os"},
		{"from import", "from datetime import datetime", FromImport, "datetime", "datetime"},
		{"relative bare", "from . import x", FromImport, ".", "."},
		{"relative dotted", "from ..pkg.sub import y", FromImport, "..pkg.sub", "..pkg.sub"},
		{"sort key is lowercased", "import Django", PlainImport, "Django", "django"},
		{"multiline from import", "from foo import (\n    a,\n)", FromImport, "foo", "foo"},
		{"malformed bare import", "import", PlainImport, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			stmt := parseStatement(tt.raw)
			req.Equal(tt.raw, stmt.Raw)
			req.Equal(tt.kind, stmt.Kind)
			req.Equal(tt.module, stmt.Module)
			req.Equal(tt.sortKey, stmt.SortKey)
		})
	}
}
