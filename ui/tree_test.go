package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTreePrefix(t *testing.T) {
	tests := []struct {
		name         string
		depth        int
		isLast       bool
		parentIsLast []bool
		want         string
	}{
		{"root level has no prefix", 0, false, nil, ""},
		{"first level branch", 1, false, nil, "├── "},
		{"first level last branch", 1, true, nil, "└── "},
		{"nested under continuing parent", 2, false, []bool{false}, "│   ├── "},
		{"nested under last parent", 2, true, []bool{true}, "    └── "},
		{"deep mixed ancestry", 3, true, []bool{false, true}, "│       └── "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildTreePrefix(tt.depth, tt.isLast, tt.parentIsLast))
		})
	}
}

func TestStatusGlyph(t *testing.T) {
	assert.Equal(t, "✓", StatusGlyph("success"))
	assert.Equal(t, "✗", StatusGlyph("failure"))
	assert.Equal(t, "?", StatusGlyph("unknown"))
}
