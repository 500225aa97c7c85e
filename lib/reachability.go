package lib

import "container/heap"

// =============================================================================
// Hex movement reachability
// =============================================================================
// Ground: lib/rules_engine.go's dijkstraItem/dijkstraHeap/dijkstraMovement
// (heap-based Dijkstra over hex neighbors with a visited-cost map and
// re-push on improvement), adapted from proto-backed RulesEngine/v1.AllPaths
// lookups to the plain TerrainTile/Unit types, with tiles skipped for
// impassable terrain, friendly occupants, and move costs beyond the unit's
// remaining moves.

type reachItem struct {
	coord AxialCoord
	cost  int
}

type reachHeap []reachItem

func (h reachHeap) Len() int            { return len(h) }
func (h reachHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h reachHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *reachHeap) Push(x any)         { *h = append(*h, x.(reachItem)) }
func (h *reachHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Reachable runs Dijkstra from unit's position, bounded by its MovesLeft,
// and returns every reachable hex mapped to its move cost (the starting
// hex included at cost 0).
//
// A neighbor is skipped when:
//   - it lies outside world.Radius (if the world is bounded),
//   - its terrain is impassable or BlocksMovement,
//   - it is occupied by a unit on the same team as the mover.
//
// A neighbor occupied by an enemy unit is NOT skipped: it is a valid
// Dijkstra node (its cost is tracked) so the grounder can enumerate
// Attack-from positions adjacent to it, but MoveUnit will never be asked to
// land a unit on an occupied hex — the grounder only emits Move actions to
// unoccupied reachable hexes.
func Reachable(world *GameWorld, unit *Unit) map[AxialCoord]int {
	visited := map[AxialCoord]int{unit.Pos: 0}

	pq := &reachHeap{}
	heap.Init(pq)
	heap.Push(pq, reachItem{coord: unit.Pos, cost: 0})

	var neighbors [6]AxialCoord
	for pq.Len() > 0 {
		current := heap.Pop(pq).(reachItem)
		if best, ok := visited[current.coord]; ok && current.cost > best {
			continue
		}

		current.coord.Neighbors(&neighbors)
		for _, n := range neighbors {
			if !world.InRadius(n) {
				continue
			}
			tile := world.TerrainAt(n)
			if !tile.Passable() {
				continue
			}
			if occ := world.UnitAt(n); occ != nil && occ.Team == unit.Team && occ.ID != unit.ID {
				continue
			}

			newCost := current.cost + tile.MoveCost
			if newCost > unit.MovesLeft {
				continue
			}
			if existing, ok := visited[n]; !ok || newCost < existing {
				visited[n] = newCost
				heap.Push(pq, reachItem{coord: n, cost: newCost})
			}
		}
	}

	return visited
}

// ReachableEmptyHexes filters Reachable's result down to hexes a unit could
// actually land on: unoccupied, and not the unit's own starting hex.
func ReachableEmptyHexes(world *GameWorld, unit *Unit) map[AxialCoord]int {
	all := Reachable(world, unit)
	out := make(map[AxialCoord]int, len(all))
	for coord, cost := range all {
		if coord == unit.Pos {
			continue
		}
		if world.UnitAt(coord) != nil {
			continue
		}
		out[coord] = cost
	}
	return out
}
