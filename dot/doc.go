// SPDX-License-Identifier: MIT

// Package dot renders the covering relation of a poset as Graphviz DOT
// text — the conventional way to draw a Hasse diagram. Output is plain
// text; rasterization is left to external tooling (dot, graphviz
// bindings, online viewers).
//
// Edges point from the covered element to its cover and the graph uses
// rankdir=BT, so smaller elements sit lower in the drawing, matching
// the usual mathematical presentation.
package dot
