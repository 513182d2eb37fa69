package scc

import (
	"github.com/revealedpref/garp/graphbuild"
)

// Partition is the result of a full Tarjan pass: Comp[v] is v's component
// id. Trivial components (a lone vertex with no self-loop) all share id 0;
// nontrivial components are numbered 1..Count, and Members[k-1] lists the
// vertices of component k.
type Partition struct {
	Comp    []int32
	Count   int32
	Members [][]int32
}

// tarjanFrame is one level of the explicit DFS stack, replacing recursion so
// large T cannot blow the goroutine stack (spec §9).
type tarjanFrame struct {
	v        int32
	edgeIter int32 // next out-edge index to examine, within [lo,hi)
	lo, hi   int32
}

// Tarjan computes the full SCC partition of g, considering only edges not
// removed by mask (a nil mask means "no edges removed").
func Tarjan(g *graphbuild.Graph, mask graphbuild.EdgeMask) *Partition {
	T := g.T
	const unvisited = -1
	index := make([]int32, T)
	lowlink := make([]int32, T)
	onStack := make([]bool, T)
	for i := range index {
		index[i] = unvisited
	}

	var stack []int32 // Tarjan's SCC stack (not the DFS call stack)
	var frames []tarjanFrame
	var next int32
	comp := make([]int32, T)
	var compMembers [][]int32
	var nextComp int32

	pushFrame := func(v int32) {
		lo, hi := g.Out(int(v))
		index[v] = next
		lowlink[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = true
		frames = append(frames, tarjanFrame{v: v, edgeIter: lo, lo: lo, hi: hi})
	}

	for start := int32(0); start < int32(T); start++ {
		if index[start] != unvisited {
			continue
		}
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
				if index[w] == unvisited {
					pushFrame(w)
					advanced = true

					break
				} else if onStack[w] {
					if index[w] < lowlink[top.v] {
						lowlink[top.v] = index[w]
					}
				}
			}
			if advanced {
				continue
			}

			// All out-edges of top.v examined; pop and propagate lowlink.
			v := top.v
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := &frames[len(frames)-1]
				if lowlink[v] < lowlink[parent.v] {
					lowlink[parent.v] = lowlink[v]
				}
			}

			if lowlink[v] == index[v] {
				// v is a component root; pop the SCC stack down to v.
				var members []int32
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					members = append(members, w)
					if w == v {
						break
					}
				}
				if isNontrivial(g, mask, members) {
					nextComp++
					for _, m := range members {
						comp[m] = nextComp
					}
					compMembers = append(compMembers, members)
				}
			}
		}
	}

	return &Partition{Comp: comp, Count: nextComp, Members: compMembers}
}

// isNontrivial reports whether a single-vertex component has a self-loop
// (which, per the base-graph invariant, cannot happen outside the symmetric
// extension) — otherwise a lone vertex is trivial.
func isNontrivial(g *graphbuild.Graph, mask graphbuild.EdgeMask, members []int32) bool {
	if len(members) > 1 {
		return true
	}
	v := members[0]
	lo, hi := g.Out(int(v))
	for i := lo; i < hi; i++ {
		if g.Head[i] == v && !mask.Test(int(i)) {
			return true
		}
	}

	return false
}
