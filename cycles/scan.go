package cycles

import "github.com/revealedpref/garp/graphbuild"

// ScanLen1 returns the vertices with a strict (weight > 0) self-loop still
// present under mask. The base graph never has self-loops (graphbuild masks
// self-comparisons at construction), so in practice this only fires on a
// symmetric-extension graph.
func ScanLen1(g *graphbuild.Graph, mask graphbuild.EdgeMask) []int32 {
	var out []int32
	for v := 0; v < g.T; v++ {
		lo, hi := g.Out(v)
		for i := lo; i < hi; i++ {
			if mask.Test(int(i)) {
				continue
			}
			if g.Head[i] == int32(v) && g.Weight[i] > 0 {
				out = append(out, int32(v))

				break
			}
		}
	}

	return out
}

// ScanLen2 returns every pair (v,u), v<u, with edges both ways under mask
// and at least one of them strict.
func ScanLen2(g *graphbuild.Graph, mask graphbuild.EdgeMask) [][2]int32 {
	var out [][2]int32
	for v := 0; v < g.T; v++ {
		lo, hi := g.Out(v)
		for i := lo; i < hi; i++ {
			if mask.Test(int(i)) {
				continue
			}
			u := g.Head[i]
			if u <= int32(v) {
				continue
			}
			strict := g.Weight[i] > 0
			ulo, uhi := g.Out(int(u))
			for j := ulo; j < uhi; j++ {
				if mask.Test(int(j)) {
					continue
				}
				if g.Head[j] == int32(v) {
					if strict || g.Weight[j] > 0 {
						out = append(out, [2]int32{int32(v), u})
					}

					break
				}
			}
		}
	}

	return out
}
