// Package export converts rendered tree-report text back into structured
// forms: a node forest for JSON export and flat table rows for CSV export.
// Reconstruction is best-effort: lines that do not match the rendering are
// skipped, never fatal.
package export

import (
	"regexp"
	"strings"

	"foldertree/internal/renderer"
)

// entry is one parsed tree line.
type entry struct {
	depth int
	name  string
	isDir bool
	size  string
}

// sizeSuffix matches the bracketed size label appended after an entry name.
var sizeSuffix = regexp.MustCompile(` \[([^\[\]]*)\]$`)

// parseLine splits a rendered tree row into depth, name, type and size
// label. ok is false for continuation-bar-only lines, header remnants and
// anything else that does not match the rendering.
func parseLine(line string) (entry, bool) {
	rest := line
	depth := 0
	for {
		if strings.HasPrefix(rest, renderer.Continuation) {
			rest = rest[len(renderer.Continuation):]
			depth++
			continue
		}
		if strings.HasPrefix(rest, renderer.Spacing) {
			rest = rest[len(renderer.Spacing):]
			depth++
			continue
		}
		break
	}

	var name string
	switch {
	case strings.HasPrefix(rest, renderer.Branch+" "):
		name = rest[len(renderer.Branch)+1:]
	case strings.HasPrefix(rest, renderer.LastBranch+" "):
		name = rest[len(renderer.LastBranch)+1:]
	default:
		return entry{}, false
	}

	e := entry{depth: depth}

	// The size label is display metadata; strip it before the trailing
	// slash check so sized directories still classify as directories.
	if m := sizeSuffix.FindStringSubmatch(name); m != nil {
		e.size = m[1]
		name = name[:len(name)-len(m[0])]
	}
	if strings.HasSuffix(name, "/") {
		e.isDir = true
		name = strings.TrimSuffix(name, "/")
	}
	e.name = name

	return e, name != ""
}

// stripHeader drops the report header when present: everything up to and
// including the dashed separator line, plus one following blank line.
func stripHeader(lines []string) []string {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) >= 4 && strings.Count(trimmed, "-") == len(trimmed) {
			start := i + 1
			if start < len(lines) && strings.TrimSpace(lines[start]) == "" {
				start++
			}
			return lines[start:]
		}
	}
	return lines
}
