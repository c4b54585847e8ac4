package ir

import (
	"encoding/json"
	"fmt"
)

type irBase struct {
	Type    string         `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Marks   []Mark         `json:"marks,omitempty"`
	Content []*Node        `json:"content,omitempty"`
	Text    *string        `json:"text,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:  n.Type,
		Attrs: n.Attrs,
		Marks: n.Marks,
	}
	switch n.Kind {
	case LeafKind:
		text := n.Text
		base.Text = &text
	default:
		base.Content = n.Content
	}
	return json.Marshal(base)
}

func (n *Node) UnmarshalJSON(d []byte) error {
	tmp := &irBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	if tmp.Type == "" {
		return fmt.Errorf("%w: missing type", ErrBadNode)
	}
	*n = Node{
		Type:  tmp.Type,
		Attrs: tmp.Attrs,
		Marks: tmp.Marks,
	}
	if tmp.Text != nil {
		if len(tmp.Content) != 0 {
			return fmt.Errorf("%w: %s node has both text and content", ErrBadNode, tmp.Type)
		}
		n.Kind = LeafKind
		n.Text = *tmp.Text
		return nil
	}
	n.Kind = ContainerKind
	n.Content = tmp.Content
	if n.Content == nil {
		n.Content = []*Node{}
	}
	for i, c := range n.Content {
		if c == nil {
			return fmt.Errorf("%w: null child %d of %s", ErrBadNode, i, tmp.Type)
		}
	}
	return nil
}

type markBase struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

func (m Mark) MarshalJSON() ([]byte, error) {
	return json.Marshal(markBase{Type: m.Type, Attrs: m.Attrs})
}

func (m *Mark) UnmarshalJSON(d []byte) error {
	tmp := &markBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	if tmp.Type == "" {
		return fmt.Errorf("%w: mark missing type", ErrBadNode)
	}
	m.Type = tmp.Type
	m.Attrs = tmp.Attrs
	return nil
}
