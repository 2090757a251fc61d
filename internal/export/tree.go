package export

import (
	"encoding/json"
	"strings"
	"time"

	"foldertree/internal/renderer"
)

// NodeType classifies a parsed tree entry.
type NodeType string

const (
	NodeDirectory NodeType = "directory"
	NodeFile      NodeType = "file"
)

// TreeNode is one entry of the reconstructed structure. Children is present
// in the JSON form only for directories.
type TreeNode struct {
	Name     string
	Type     NodeType
	Children []*TreeNode
}

// MarshalJSON emits {name, type} for files and {name, type, children} for
// directories, with children always an array.
func (n *TreeNode) MarshalJSON() ([]byte, error) {
	type leaf struct {
		Name string   `json:"name"`
		Type NodeType `json:"type"`
	}
	if n.Type != NodeDirectory {
		return json.Marshal(leaf{Name: n.Name, Type: n.Type})
	}

	children := n.Children
	if children == nil {
		children = []*TreeNode{}
	}
	return json.Marshal(struct {
		leaf
		Children []*TreeNode `json:"children"`
	}{leaf{Name: n.Name, Type: n.Type}, children})
}

// ParseTree reconstructs the node forest from rendered tree text. The result
// mirrors the top-level entries of the scanned folder; there is no synthetic
// wrapping root.
func ParseTree(lines []string) []*TreeNode {
	forest := []*TreeNode{}

	// Each frame holds the container accepting entries one level below the
	// directory that opened it.
	type frame struct {
		container *[]*TreeNode
		depth     int
	}
	stack := []frame{{&forest, -1}}

	for _, line := range stripHeader(lines) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, ok := parseLine(line)
		if !ok {
			continue
		}

		for len(stack) > 1 && e.depth <= stack[len(stack)-1].depth {
			stack = stack[:len(stack)-1]
		}

		node := &TreeNode{Name: e.name, Type: NodeFile}
		if e.isDir {
			node.Type = NodeDirectory
			node.Children = []*TreeNode{}
		}

		top := stack[len(stack)-1]
		*top.container = append(*top.container, node)

		if e.isDir {
			stack = append(stack, frame{&node.Children, e.depth})
		}
	}

	return forest
}

// Document is the JSON export payload.
type Document struct {
	Folder    string      `json:"folder"`
	Generated string      `json:"generated"`
	Structure []*TreeNode `json:"structure"`
}

// JSON renders tree-report text as the JSON export document.
func JSON(text, folder string, generated time.Time) ([]byte, error) {
	doc := Document{
		Folder:    folder,
		Generated: generated.Format(renderer.TimeFormat),
		Structure: ParseTree(strings.Split(text, "\n")),
	}
	return json.MarshalIndent(doc, "", "  ")
}
