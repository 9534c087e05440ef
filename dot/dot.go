// SPDX-License-Identifier: MIT

package dot

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/finpos/hasse"
)

// Render converts a covering-relation poset to Graphviz DOT format.
// Nodes are element ids; each covering pair x < y becomes an edge
// x -> y. Output is deterministic: nodes and edge targets are emitted
// in ascending order. Complexity: O(n log n + e log e).
func Render(p *hasse.Poset) string {
	cov := p.Covers()

	var buf bytes.Buffer
	buf.WriteString("digraph poset {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  node [shape=circle];\n")
	buf.WriteString("\n")

	for _, x := range slices.Sorted(maps.Keys(cov)) {
		fmt.Fprintf(&buf, "  %d;\n", x)
	}

	buf.WriteString("\n")
	for _, x := range slices.Sorted(maps.Keys(cov)) {
		for _, y := range cov[x].Sorted() {
			fmt.Fprintf(&buf, "  %d -> %d;\n", x, y)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}
