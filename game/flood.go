package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/gosweep-server/util/collections"
)

// Visitor handles a cell reached by the flood, returning whether the flood
// should continue outwards from it.
type Visitor func(*Cell) bool
type NeighborGetter func(*Cell) []*Cell

// flood performs a breadth-first walk from origin. Every cell is visited at
// most once, so the walk ends after at most one visit per cell of the board.
func flood(origin *Cell, visit Visitor, getNeighbors NeighborGetter) {
	visited := collections.NewSet(origin.Point())
	if !visit(origin) {
		return
	}

	var frontier deque.Deque[*Cell]
	enqueueNeighbors := func(cell *Cell) {
		for _, neighbor := range getNeighbors(cell) {
			if !visited.Contains(neighbor.Point()) {
				frontier.PushBack(neighbor)
			}
		}
	}

	enqueueNeighbors(origin)
	for frontier.Len() > 0 {
		cell := frontier.PopFront()

		// A cell may sit in the queue more than once if several of its
		// neighbours expanded before it was popped
		if visited.Contains(cell.Point()) {
			continue
		}
		visited.Add(cell.Point())

		if visit(cell) {
			enqueueNeighbors(cell)
		}
	}
}
