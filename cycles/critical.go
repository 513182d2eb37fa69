package cycles

import "github.com/revealedpref/garp/graphbuild"

type criticalFrame struct {
	v            int32
	edgeIter, hi int32
}

// CriticalDFS walks g under mask, and on every closing cycle removes the
// edge with the smallest residual cost (mutating mask in place) before
// continuing. Rather than restarting the whole search after a removal, it
// unwinds the explicit DFS stack back to the removed edge's source vertex
// and resumes iterating that vertex's remaining out-edges — the cycles
// produced are sufficient to break every cycle reachable from each DFS
// root, though not necessarily the minimal such set.
func CriticalDFS(g *graphbuild.Graph, mask graphbuild.EdgeMask, residual ResidualCost, onCycle func(cycleEdges []int32)) {
	T := g.T
	onStackPos := make([]int32, T)
	for i := range onStackPos {
		onStackPos[i] = -1
	}
	done := make([]bool, T)

	var path []int32     // vertex stack
	var pathEdge []int32 // pathEdge[i] = edge used to reach path[i]; pathEdge[0] is unused
	var frames []criticalFrame

	pushFrame := func(v int32) {
		lo, hi := g.Out(int(v))
		onStackPos[v] = int32(len(path))
		path = append(path, v)
		frames = append(frames, criticalFrame{v: v, edgeIter: lo, hi: hi})
	}

	for start := int32(0); start < int32(T); start++ {
		if done[start] || onStackPos[start] != -1 {
			continue
		}
		pathEdge = append(pathEdge, -1)
		pushFrame(start)

		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			advanced := false

			for top.edgeIter < top.hi {
				ei := top.edgeIter
				top.edgeIter++
				if mask.Test(int(ei)) {
					continue
				}
				w := g.Head[ei]
				if done[w] {
					continue
				}

				pos := onStackPos[w]
				if pos == -1 {
					pathEdge = append(pathEdge, ei)
					pushFrame(w)
					advanced = true

					break
				}

				// Back edge to path[pos]: close the cycle path[pos..top] + ei.
				cycleEdges := make([]int32, 0, len(path)-int(pos)+1)
				for k := int(pos) + 1; k < len(path); k++ {
					cycleEdges = append(cycleEdges, pathEdge[k])
				}
				cycleEdges = append(cycleEdges, ei)

				best := cycleEdges[0]
				bestCost := residual(best)
				for _, e := range cycleEdges[1:] {
					if c := residual(e); c < bestCost {
						bestCost = c
						best = e
					}
				}
				onCycle(cycleEdges)
				mask.Set(int(best))

				targetDepth := len(path) - 1
				if best != ei {
					targetDepth = int(pos)
					for k := int(pos) + 1; k < len(path); k++ {
						if pathEdge[k] == best {
							targetDepth = k - 1

							break
						}
					}
				}
				for len(path)-1 > targetDepth {
					v := path[len(path)-1]
					onStackPos[v] = -1
					path = path[:len(path)-1]
					pathEdge = pathEdge[:len(pathEdge)-1]
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
			pathEdge = pathEdge[:len(pathEdge)-1]
			frames = frames[:len(frames)-1]
		}
	}
}
