package game

import (
	"fmt"
	"strconv"
)

// Point is a grid coordinate. X grows to the right, Y grows downwards.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

type Cell struct {
	board *Board

	x, y   int
	isMine bool
	state  CellState
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.x, cell.y)
}

func (cell *Cell) Point() Point {
	return Point{cell.x, cell.y}
}

func (cell *Cell) State() CellState {
	return cell.state
}

func (cell *Cell) IsRevealed() bool {
	return cell.state >= Empty && cell.state <= Number8
}

func (cell *Cell) IsFlagged() bool {
	return cell.state == Flag
}

// glyph is the single character used for the cell in a board view
func (cell *Cell) glyph() string {
	switch {
	case cell.state == Unrevealed:
		return "-"
	case cell.state == Flag:
		return "F"
	case cell.state == Empty:
		return " "
	default:
		return strconv.Itoa(int(cell.state))
	}
}

// Neighbors returns the up to 8 cells touching this one, never the cell itself
func (cell *Cell) Neighbors() []*Cell {
	board := cell.board
	neighbors := make([]*Cell, 0, 8)

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if neighbor := board.cellAt(cell.x+dx, cell.y+dy); neighbor != nil {
				neighbors = append(neighbors, neighbor)
			}
		}
	}
	return neighbors
}

// NumMines returns the number of mined neighbours at this instant
func (cell *Cell) NumMines() int {
	numMines := 0
	for _, neighbor := range cell.Neighbors() {
		if neighbor.isMine {
			numMines++
		}
	}
	return numMines
}

// reveal digs a mine-free cell, cascading outwards when it has no mined
// neighbours.
func (cell *Cell) reveal() {
	numMines := cell.NumMines()
	if numMines == 0 {
		cell.cascadeEmpty()
	} else {
		cell.setState(CellState(numMines))
	}
}

func (cell *Cell) cascadeEmpty() {
	flood(
		cell,
		func(cell *Cell) bool {
			if cell.isMine || !(cell.state == Unrevealed || cell.state == Flag) {
				return false
			}
			numMines := cell.NumMines()
			cell.setState(CellState(numMines))
			return numMines == 0
		},
		func(cell *Cell) []*Cell {
			return cell.Neighbors()
		},
	)
}

// removeMine clears the mine under the cell and brings the counts of its
// revealed neighbours back in line with the remaining mines.
func (cell *Cell) removeMine() {
	if !cell.isMine {
		return
	}
	cell.isMine = false
	cell.board.numMines--

	for _, neighbor := range cell.Neighbors() {
		if neighbor.IsRevealed() {
			neighbor.setState(CellState(neighbor.NumMines()))
		}
	}
}

func (cell *Cell) setState(state CellState) {
	cell.state = state
}
