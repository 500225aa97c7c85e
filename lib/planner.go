package lib

import "container/heap"

// =============================================================================
// Forward A* planner
// =============================================================================
// Ground: original_source/AI/src/lib.rs's plan_instances/SearchNode (a Rust
// BinaryHeap min-heap by f=g+h), reimplemented with container/heap in the
// same idiom as rules_engine.go's dijkstraHeap (priorityItem/priorityHeap
// pair implementing heap.Interface).

// searchNode is one frontier entry in the A* open set.
type searchNode struct {
	state   *WorldState
	g       float64
	f       float64
	actions []int
	index   int // heap bookkeeping
}

// searchHeap is a min-heap ordered by f, ties broken by insertion order
// (the heap is stable because Go's container/heap pop order for equal keys
// follows sift order, but we additionally tag a monotonically increasing
// sequence number to make tie-breaking deterministic).
type searchHeap struct {
	items   []*searchNode
	seq     []int64
	nextSeq int64
}

func (h *searchHeap) Len() int { return len(h.items) }
func (h *searchHeap) Less(i, j int) bool {
	if h.items[i].f != h.items[j].f {
		return h.items[i].f < h.items[j].f
	}
	return h.seq[i] < h.seq[j]
}
func (h *searchHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.seq[i], h.seq[j] = h.seq[j], h.seq[i]
	h.items[i].index = i
	h.items[j].index = j
}
func (h *searchHeap) Push(x any) {
	node := x.(*searchNode)
	node.index = len(h.items)
	h.items = append(h.items, node)
	h.seq = append(h.seq, h.nextSeq)
	h.nextSeq++
}
func (h *searchHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	h.items = old[:n-1]
	h.seq = h.seq[:n-1]
	return item
}

// heuristic is 0 if the goal is already satisfied, else 1.0 — cheap but
// weak; it barely discriminates between unsatisfied states.
func heuristic(state *WorldState, goal Goal) float64 {
	if goal.SatisfiedBy(state) {
		return 0.0
	}
	return 1.0
}

// PlanInstances runs a bounded forward A* search from start over actions to
// satisfy goal. Returns the plan (indices into actions) if found before the
// node cap is exceeded, else (nil, false). Never panics on pathological
// inputs — bounded search simply gives up.
func PlanInstances(start *WorldState, actions []ActionInstance, goal Goal, maxNodes int) (Plan, bool) {
	open := &searchHeap{}
	heap.Init(open)
	seen := make(map[string]bool)

	heap.Push(open, &searchNode{
		state:   start.Clone(),
		g:       0,
		f:       heuristic(start, goal),
		actions: nil,
	})

	nodesExpanded := 0
	for open.Len() > 0 {
		node := heap.Pop(open).(*searchNode)
		nodesExpanded++
		if nodesExpanded > maxNodes {
			return nil, false
		}

		if goal.SatisfiedBy(node.state) {
			return Plan(node.actions), true
		}

		fp := node.state.Fingerprint()
		if seen[fp] {
			continue
		}
		seen[fp] = true

		for i, a := range actions {
			if !a.IsApplicable(node.state) {
				continue
			}
			newState := node.state.Clone()
			newState.ApplyEffects(a.Effects)
			g2 := node.g + a.Cost
			h2 := heuristic(newState, goal)

			newActions := make([]int, len(node.actions)+1)
			copy(newActions, node.actions)
			newActions[len(node.actions)] = i

			heap.Push(open, &searchNode{
				state:   newState,
				g:       g2,
				f:       g2 + h2,
				actions: newActions,
			})
		}
	}

	return nil, false
}
