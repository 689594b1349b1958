package compose

import (
	"fmt"
	"strings"
)

// Span is a leaf text run inside a content block.
type Span struct {
	Type string `json:"_type,omitempty"`
	Text string `json:"text"`
}

// Block is one node of a block-tree body.
type Block struct {
	Type     string `json:"_type,omitempty"`
	Children []Span `json:"children"`
}

// BlockError reports a body block that carries no text runs.
type BlockError struct {
	Index int
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("malformed body block %d: no text runs", e.Index)
}

// TextSource yields the plain text the inferencer analyses. Two variants
// exist: a flat content string and a block tree flattened in document order.
type TextSource interface {
	PlainText() (string, error)
}

type flatText string

func (f flatText) PlainText() (string, error) {
	return string(f), nil
}

type blockTree []Block

func (b blockTree) PlainText() (string, error) {
	var sb strings.Builder
	for i, block := range b {
		if len(block.Children) == 0 {
			return "", &BlockError{Index: i}
		}
		for _, child := range block.Children {
			sb.WriteString(child.Text)
			sb.WriteString(" ")
		}
	}
	return sb.String(), nil
}

// textSource picks the body shape: a non-empty flat content string wins,
// otherwise the block tree (possibly empty) is flattened.
func (d *Document) textSource() TextSource {
	if d.Content != "" {
		return flatText(d.Content)
	}
	return blockTree(d.Body)
}
