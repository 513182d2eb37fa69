package cycles

import "github.com/revealedpref/garp/graphbuild"

const (
	white = 0
	gray  = 1
	black = 2
)

// Exists reports whether g, restricted by mask, has any cycle at all.
// Ordinary three-color DFS; returns on the first back edge found.
func Exists(g *graphbuild.Graph, mask graphbuild.EdgeMask) bool {
	state := make([]byte, g.T)

	var visit func(v int32) bool
	visit = func(v int32) bool {
		state[v] = gray
		lo, hi := g.Out(int(v))
		for i := lo; i < hi; i++ {
			if mask.Test(int(i)) {
				continue
			}
			w := g.Head[i]
			switch state[w] {
			case white:
				if visit(w) {
					return true
				}
			case gray:
				return true
			}
		}
		state[v] = black

		return false
	}

	for v := int32(0); v < int32(g.T); v++ {
		if state[v] == white && visit(v) {
			return true
		}
	}

	return false
}
