// Package cst holds the concrete syntax tree for RCL. The tree retains
// every source token's text, comments and blank-line markers included, so
// the original buffer can be reconstructed exactly. Nodes live in an arena
// and are addressed by index; the tree is a strict tree with exclusive
// ownership, never a shared graph.
package cst
