package formatter

import (
	"strings"

	"github.com/siyuan-infoblox/py-imports-group/pkg/std"
)

// Classifier assigns every module path to exactly one import group. The
// standard-library table is fixed at construction and never mutated
// afterwards.
type Classifier struct {
	extra map[string]bool // first segments treated as stdlib on top of pkg/std
}

// NewClassifier creates a classifier, optionally extending the standard
// library table with extra first segments from the configuration.
func NewClassifier(extraStdlib []string) *Classifier {
	c := &Classifier{extra: make(map[string]bool, len(extraStdlib))}
	for _, name := range extraStdlib {
		c.extra[name] = true
	}
	return c
}

// Classify maps a module path to its group. Classification is purely
// lexical and total: unknown or empty module paths fall through to
// ThirdPartyGroup so no statement is ever dropped.
func (c *Classifier) Classify(module string) ImportGroup {
	if module == "__future__" || strings.HasPrefix(module, "__future__.") {
		return FutureGroup
	}

	// Leading dots mean a relative import of the local package
	if strings.HasPrefix(module, ".") {
		return LocalGroup
	}

	head := module
	if i := strings.IndexByte(module, '.'); i >= 0 {
		head = module[:i]
	}
	if head == "" {
		return ThirdPartyGroup
	}

	if std.IsStandardModule(head) || c.extra[head] {
		return StdGroup
	}

	return ThirdPartyGroup
}
