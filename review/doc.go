// Package review resolves the changes recorded in a merged document tree.
//
// Accepting a change keeps the new version of it: Deleted content is
// dropped and the diff mark is stripped from Inserted content. Rejecting
// a change does the inverse and restores the old version. Resolve applies
// either to selected top-level blocks only; selectors can be written as
// expr-lang expressions with CompileSelector.
package review
