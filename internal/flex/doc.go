// Package flex implements the flexbox-style constraint solver that maps a
// tree of layout nodes onto a fixed-size cell grid.
//
// It supports row/column directions, grow/shrink weights with deterministic
// integer distribution, cross-axis alignment, padding, margin, gap and
// min/max constraints. Types are re-exported through the root panel package
// for public consumption.
//
// The main entry point is [Solve], which takes a [Layoutable] tree and
// computes an absolute [Rect] for each node.
package flex
