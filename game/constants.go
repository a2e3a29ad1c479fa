package game

type CellState int

// The revealed states share their integer value with the number of mined
// neighbours, so CellState(n) is the state of a dug cell with n adjacent mines.
const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
)

var CellStates = []CellState{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Flag,
}

const (
	// DefaultSize is the side length of a random board when none is configured
	DefaultSize = 10

	// MineOdds is the 1-in-N chance that a cell of a random board holds a mine
	MineOdds = 4
)
