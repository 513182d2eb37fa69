package garp

import (
	"fmt"

	"github.com/revealedpref/garp/graphbuild"
	"github.com/revealedpref/garp/matrix"
	"github.com/revealedpref/garp/scc"
)

// DataRationalizable reports whether the revealed-preference relation
// built from P,Q has no cycle containing a strict edge (spec §6's
// data_rationalizable, §9's GARP/rationalizable definition).
func DataRationalizable(P, Q *matrix.Dense) (bool, error) {
	g, err := graphbuild.Build(P, Q)
	if err != nil {
		return false, fmt.Errorf("garp: %w", err)
	}

	return !scc.HasStrictCycle(g, graphbuild.NewEdgeMask(g.EdgeCount())), nil
}
