// Package panel provides a layout and rendering engine for fixed-size cell
// grids, such as instrument displays and terminal-like screens.
//
// Callers build a tree of layout nodes, solve it against the grid size, paint
// the tree into a grid, and diff successive grids to obtain the minimal set
// of cell updates for their device driver. The engine owns no event loop and
// performs no device I/O.
package panel
