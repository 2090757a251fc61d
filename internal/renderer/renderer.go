// Package renderer owns the box-drawing line format shared by the scanner
// (which emits it) and the export codec (which parses it). Both sides use
// the constants here so the renderer and parser cannot drift apart.
package renderer

import (
	"fmt"
	"strings"
	"time"
)

const (
	// Tree drawing characters
	Vertical     = "│"
	Branch       = "├──"
	LastBranch   = "└──"
	Spacing      = "    "
	Continuation = "│   "

	// IndentWidth is the column width of one nesting level. Spacing and
	// Continuation must both stay this wide or depth parsing breaks.
	IndentWidth = 4

	// TimeFormat is used for the report header and CSV timestamps.
	TimeFormat = "2006-01-02 15:04:05"
)

const headerRuleWidth = 80

// Line assembles one rendered tree row. Directories carry a trailing slash;
// a non-empty size label is appended in brackets.
func Line(prefix string, isLast bool, name string, isDir bool, sizeLabel string) string {
	connector := Branch
	if isLast {
		connector = LastBranch
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(connector)
	b.WriteString(" ")
	b.WriteString(name)
	if isDir {
		b.WriteString("/")
	}
	if sizeLabel != "" {
		b.WriteString(" [")
		b.WriteString(sizeLabel)
		b.WriteString("]")
	}
	return b.String()
}

// ChildPrefix extends a prefix for entries nested under a directory: a blank
// segment below a terminal branch, a vertical bar segment otherwise.
func ChildPrefix(prefix string, isLast bool) string {
	if isLast {
		return prefix + Spacing
	}
	return prefix + Continuation
}

// Header returns the report header block preceding the rendered lines.
func Header(rootPath string, generated time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Folder Tree: %s\n", rootPath)
	fmt.Fprintf(&b, "Generated: %s\n", generated.Format(TimeFormat))
	b.WriteString(strings.Repeat("-", headerRuleWidth))
	b.WriteString("\n\n")
	return b.String()
}

// Report joins the header and tree lines into the text consumed by the
// display and by both export codec paths.
func Report(rootPath string, generated time.Time, lines []string) string {
	return Header(rootPath, generated) + strings.Join(lines, "\n")
}
