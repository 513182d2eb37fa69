package indices

import (
	"github.com/revealedpref/garp/cycles"
	"github.com/revealedpref/garp/graphbuild"
)

// Afriat computes the Afriat efficiency index directly: the final estimate
// of cycles.AfriatDFS's single pruned pass, with no ILP involved (spec
// §4.5's only index with an exact closed-form DFS).
func Afriat(g *graphbuild.Graph) float64 {
	mask := graphbuild.NewEdgeMask(g.EdgeCount())

	return cycles.AfriatDFS(g, mask)
}
