package cycles

import "github.com/revealedpref/garp/graphbuild"

type afriatFrame struct {
	v            int32
	edgeIter, hi int32
}

// AfriatDFS returns max over elementary cycles of the minimum edge weight
// on the cycle (0 if g has no cycle at all) — Afriat's critical cost of
// money index, computed exactly by one pruned DFS walk: the running
// estimate e only ever grows, and once an edge's weight drops to or below e
// it can no longer improve any future cycle's bottleneck, so it is skipped
// for the remainder of the walk. On every cycle closure the stack unwinds
// back to the cycle's start without retiring the vertices in between — one
// of them may still reach a higher-bottleneck cycle through a different
// out-edge that hasn't been tried yet. A vertex is only retired once its
// out-edge iterator is exhausted; a vertex unwound by a cycle closure gets
// a fresh iterator when it is reached again.
func AfriatDFS(g *graphbuild.Graph, mask graphbuild.EdgeMask) float64 {
	T := g.T
	onStackPos := make([]int32, T)
	for i := range onStackPos {
		onStackPos[i] = -1
	}
	done := make([]bool, T)

	var path []int32
	var pathWeight []float64 // pathWeight[i] = weight of edge used to reach path[i]
	var frames []afriatFrame
	e := 0.0

	pushFrame := func(v int32) {
		lo, hi := g.Out(int(v))
		onStackPos[v] = int32(len(path))
		path = append(path, v)
		frames = append(frames, afriatFrame{v: v, edgeIter: lo, hi: hi})
	}

	for start := int32(0); start < int32(T); start++ {
		if done[start] || onStackPos[start] != -1 {
			continue
		}
		pathWeight = append(pathWeight, 0)
		pushFrame(start)

		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			advanced := false

			for top.edgeIter < top.hi {
				ei := top.edgeIter
				top.edgeIter++
				if mask.Test(int(ei)) || g.Weight[ei] <= e {
					continue
				}
				w := g.Head[ei]
				if done[w] {
					continue
				}

				pos := onStackPos[w]
				if pos == -1 {
					pathWeight = append(pathWeight, g.Weight[ei])
					pushFrame(w)
					advanced = true

					break
				}

				segMin := g.Weight[ei]
				for k := int(pos) + 1; k < len(path); k++ {
					if pathWeight[k] < segMin {
						segMin = pathWeight[k]
					}
				}
				if segMin > e {
					e = segMin
				}

				for len(path)-1 > int(pos) {
					v := path[len(path)-1]
					onStackPos[v] = -1
					path = path[:len(path)-1]
					pathWeight = pathWeight[:len(pathWeight)-1]
					frames = frames[:len(frames)-1]
				}
				advanced = true

				break
			}
			if advanced {
				continue
			}

			v := top.v
			onStackPos[v] = -1
			done[v] = true
			path = path[:len(path)-1]
			pathWeight = pathWeight[:len(pathWeight)-1]
			frames = frames[:len(frames)-1]
		}
	}

	return e
}
