package ir

import "fmt"

// Kind distinguishes the two shapes a Node can take.
type Kind int

const (
	ContainerKind Kind = iota
	LeafKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		ContainerKind: "Container",
		LeafKind:      "Leaf",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Container": ContainerKind,
		"Leaf":      LeafKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}
