// Package ui holds the box-drawing helpers shared by the step-tree renderers.
package ui

import "strings"

const (
	TreeBranch     = "├── " // step with more siblings below
	TreeLastBranch = "└── " // last step at its level
	TreeContinue   = "│   " // ancestor has more siblings
	TreeIndent     = "    " // ancestor was last at its level
)

// BuildTreePrefix generates the prefix for a node at the given depth.
// parentIsLast records, outermost first, whether each ancestor was the last
// among its own siblings; that decides between a vertical continuation line
// and plain indentation at each level.
func BuildTreePrefix(depth int, isLast bool, parentIsLast []bool) string {
	if depth == 0 {
		return ""
	}

	var prefix strings.Builder
	for i := 0; i < depth-1; i++ {
		if i < len(parentIsLast) && parentIsLast[i] {
			prefix.WriteString(TreeIndent)
		} else {
			prefix.WriteString(TreeContinue)
		}
	}
	if isLast {
		prefix.WriteString(TreeLastBranch)
	} else {
		prefix.WriteString(TreeBranch)
	}
	return prefix.String()
}

// StatusGlyph returns the single-character marker used for an outcome string
// in text output.
func StatusGlyph(outcome string) string {
	switch outcome {
	case "success":
		return "✓"
	case "failure":
		return "✗"
	case "skipped":
		return "⊝"
	case "ignored":
		return "~"
	case "pending":
		return "…"
	default:
		return "?"
	}
}
