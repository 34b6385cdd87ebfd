package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/gitstatustree/internal/theme"
)

func TestStylerPlainMatchesText(t *testing.T) {
	styler := NewStyler(theme.Default(), false, false)

	lines := []Line{
		{Prefix: "├── ", Name: "src/", IsDir: true, Depth: 1},
		{Prefix: "│   └── ", Code: ".M", Name: "main.go", Depth: 2},
		{Prefix: "└── ", Code: "??", Name: "notes.txt", Depth: 1},
	}

	for _, line := range lines {
		assert.Equal(t, line.Text(), styler.Format(line))
	}
}

func TestStylerIconsPrependIcon(t *testing.T) {
	styler := NewStyler(theme.Default(), false, true)

	line := Line{Prefix: "└── ", Code: "MM", Name: "main.go", Depth: 1}
	got := styler.Format(line)

	require.NotEqual(t, line.Text(), got)
	assert.True(t, strings.HasPrefix(got, "└── MM "))
	assert.True(t, strings.HasSuffix(got, " main.go"))
}

func TestIsConflictCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{code: "??", want: true},
		{code: "!!", want: true},
		{code: "UU", want: true},
		{code: "DD", want: true},
		{code: "AU", want: true},
		{code: "MM", want: false},
		{code: ".M", want: false},
		{code: "A.", want: false},
		{code: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, isConflictCode(tt.code))
		})
	}
}
