package formatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifier_Classify(t *testing.T) {
	req := require.New(t)
	c := NewClassifier(nil)

	tests := []struct {
		name   string
		module string
		want   ImportGroup
	}{
		{"future", "__future__", FutureGroup},
		{"future dotted head", "__future__.annotations", FutureGroup},
		{"relative bare dot", ".", LocalGroup},
		{"relative single dot", ".sibling", LocalGroup},
		{"relative double dot", "..pkg.sub", LocalGroup},
		{"stdlib", "os", StdGroup},
		{"stdlib dotted", "os.path", StdGroup},
		{"stdlib datetime", "datetime", StdGroup},
		{"third party", "django", ThirdPartyGroup},
		{"third party dotted", "numpy.linalg", ThirdPartyGroup},
		{"case sensitive stdlib lookup", "OS", ThirdPartyGroup},
		{"empty module path", "", ThirdPartyGroup},
		{"future lookalike", "__futures__", ThirdPartyGroup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.want, c.Classify(tt.module), "Classify(%q)", tt.module)
		})
	}
}

func TestClassifier_ExtraStdlib(t *testing.T) {
	req := require.New(t)
	c := NewClassifier([]string{"companylib"})

	req.Equal(StdGroup, c.Classify("companylib"))
	req.Equal(StdGroup, c.Classify("companylib.models"))
	req.Equal(ThirdPartyGroup, c.Classify("otherlib"))

	// The base table is unaffected by the extras
	req.Equal(StdGroup, c.Classify("os"))
}

func TestImportGroupOrdering(t *testing.T) {
	req := require.New(t)
	req.True(FutureGroup < StdGroup)
	req.True(StdGroup < ThirdPartyGroup)
	req.True(ThirdPartyGroup < LocalGroup)
}
