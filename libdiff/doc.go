// Package libdiff computes merged, annotated diffs of document trees.
//
// # Usage
//
//	// Merge two versions of a document
//	merged, err := libdiff.DiffNode(oldDoc, newDoc)
//
//	// Swap the direction of a merged tree
//	reversed := libdiff.Reverse(merged)
//
// The merged tree contains the content of both inputs. Every leaf or
// subtree present only in the old document carries a diff mark of type
// Deleted, every leaf or subtree present only in the new one a diff mark of
// type Inserted; unchanged content carries no diff mark.
//
// # Algorithm
//
// Children are first normalized so that every run of adjacent leaves forms
// one unit. Common prefixes and suffixes of units are copied. In the rest,
// the longest run of equal units is kept and the units around it are paired
// from both ends: containers of the same markup are diffed recursively,
// leaf runs are diffed word by word, and anything else is replaced.
//
// Word diffs encode every distinct token as one private use character and
// run a character diff with semantic cleanup
// (github.com/sergi/go-diff/diffmatchpatch) over the encoded strings.
//
// # Related Packages
//
//   - github.com/signadot/docdiff/ir - document trees
//   - github.com/signadot/docdiff/review - accepting and rejecting changes
package libdiff
