// Package document models the Perch configuration document as a tree of
// scalars, lists, and mappings, and provides copy-on-write mutation
// operations addressed by dot-separated key paths.
//
// A mutation never alters its input document. Each operation returns a new
// document in which the nodes along the mutated path are fresh copies and
// all unaffected subtrees are shared with the input.
package document
