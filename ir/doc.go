// Package ir provides the in-memory document tree used by docdiff.
//
// # Overview
//
// A document is a tree of typed nodes. Every Node is one of two kinds:
//
//   - ContainerKind: an ordered list of child nodes (Content)
//   - LeafKind: a text payload (Text)
//
// Both kinds carry a type name (paragraph, heading, text, ...), an attribute
// map and an ordered list of marks. Marks are formatting annotations such as
// bold or link; the diff annotation produced by libdiff is one more mark.
//
// # Equality
//
// Node identity is structural. Equal compares kind, type, attrs (key by key,
// numbers by value), marks (order sensitive) and then text or children.
// Hash is consistent with Equal and is used to reject unequal nodes quickly.
//
// # JSON
//
// Nodes encode to and decode from the ProseMirror JSON shape:
//
//	{"type": "paragraph", "attrs": {...}, "content": [
//	    {"type": "text", "text": "Hello", "marks": [{"type": "bold"}]}
//	]}
//
// A node decodes as a leaf iff the "text" key is present.
//
// # Related Packages
//
//   - github.com/signadot/docdiff/libdiff - diffing of document trees
//   - github.com/signadot/docdiff/parse - decoding JSON and YAML documents
package ir
