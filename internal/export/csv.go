package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"foldertree/internal/renderer"
)

// RowType classifies a table row.
type RowType string

const (
	RowDirectory RowType = "Directory"
	RowFile      RowType = "File"
)

// TableRow is one flattened entry of the CSV export.
type TableRow struct {
	Type     RowType
	Name     string
	Path     string
	Size     string
	Modified string
}

// csvHeader is the fixed literal column set.
var csvHeader = []string{"Type", "Name", "Path", "Size", "Modified"}

// ParseRows flattens rendered tree text into table rows, reconstructing each
// entry's full path under rootPath. The modified timestamp comes from the
// live filesystem and stays blank when the path no longer exists.
func ParseRows(lines []string, rootPath string) []TableRow {
	var rows []TableRow
	var pathStack []string

	for _, line := range stripHeader(lines) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, ok := parseLine(line)
		if !ok {
			continue
		}

		depth := e.depth
		if depth > len(pathStack) {
			// Indentation jumped past the known ancestry; anchor at the
			// deepest level we have.
			depth = len(pathStack)
		}
		pathStack = append(pathStack[:depth], e.name)

		fullPath := filepath.Join(append([]string{rootPath}, pathStack...)...)

		row := TableRow{
			Type: RowFile,
			Name: e.name,
			Path: fullPath,
			Size: e.size,
		}
		if e.isDir {
			row.Type = RowDirectory
		}
		if info, err := os.Stat(fullPath); err == nil {
			row.Modified = info.ModTime().Format(renderer.TimeFormat)
		}

		rows = append(rows, row)
	}

	return rows
}

// CSV renders tree-report text as the CSV export document.
func CSV(text, rootPath string) ([]byte, error) {
	rows := ParseRows(strings.Split(text, "\n"), rootPath)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := []string{string(row.Type), row.Name, row.Path, row.Size, row.Modified}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
