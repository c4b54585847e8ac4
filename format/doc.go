// Package format names the serializations docdiff reads and writes.
//
// # Related Packages
//
//   - github.com/signadot/docdiff/parse - Parse text to document trees
//   - github.com/signadot/docdiff/encode - Encode document trees to text
package format
