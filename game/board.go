package game

import (
	"github.com/pkg/errors"
	"math/rand"
	"strings"
	"sync"
)

// Board is the shared minefield. Every exported method runs as a single
// transaction under the board's lock, so concurrent players never observe a
// half-applied dig or cascade.
type Board struct {
	mu sync.Mutex

	size       int // in number of cells, along either side
	numMines   int
	numPlayers int
	cells      [][]Cell
}

func createBoard(size int) *Board {
	board := &Board{
		size:  size,
		cells: make([][]Cell, size),
	}

	for y := 0; y < size; y++ {
		row := make([]Cell, size)
		board.cells[y] = row

		for x := 0; x < size; x++ {
			cell := &row[x]
			cell.board = board
			cell.x, cell.y = x, y
			cell.state = Unrevealed
		}
	}

	return board
}

// NewRandomBoard creates a size×size board where each cell independently
// holds a mine with probability 1/MineOdds.
func NewRandomBoard(size int, rnd *rand.Rand) *Board {
	board := createBoard(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if rnd.Intn(MineOdds) == 0 {
				board.cells[y][x].isMine = true
				board.numMines++
			}
		}
	}
	return board
}

// NewBoard creates a board from a square mine layout, indexed [y][x].
func NewBoard(mines [][]bool) (*Board, error) {
	size := len(mines)
	if size == 0 {
		return nil, errors.New("board has no rows")
	}

	board := createBoard(size)
	for y, row := range mines {
		if len(row) != size {
			return nil, errors.Errorf("row %d has %d cells, expected %d", y, len(row), size)
		}
		for x, isMine := range row {
			if isMine {
				board.cells[y][x].isMine = true
				board.numMines++
			}
		}
	}
	return board, nil
}

func (board *Board) Size() int {
	return board.size
}

// NumMines returns the number of mines still on the board
func (board *Board) NumMines() int {
	board.mu.Lock()
	defer board.mu.Unlock()

	return board.numMines
}

func (board *Board) cellAt(x, y int) *Cell {
	if x >= 0 && y >= 0 && x < board.size && y < board.size {
		return &board.cells[y][x]
	}
	return nil
}

// Look renders the board as seen by players: one line per row, top to bottom,
// each terminated by CRLF.
func (board *Board) Look() string {
	board.mu.Lock()
	defer board.mu.Unlock()

	return board.look()
}

func (board *Board) look() string {
	var out strings.Builder
	glyphs := make([]string, board.size)

	for y := range board.cells {
		for x := range board.cells[y] {
			glyphs[x] = board.cells[y][x].glyph()
		}
		out.WriteString(strings.Join(glyphs, " "))
		out.WriteString("\r\n")
	}
	return out.String()
}

// Dig reveals the cell at (x, y) and returns the resulting view.
//
// Digging a mine removes it, reveals the cell as if it had been clear all
// along and reports exploded. Digging outside the board or digging a cell that
// is already revealed leaves the board untouched.
func (board *Board) Dig(x, y int) (view string, exploded bool) {
	board.mu.Lock()
	defer board.mu.Unlock()

	cell := board.cellAt(x, y)
	if cell == nil || cell.IsRevealed() {
		return board.look(), false
	}

	if cell.isMine {
		cell.removeMine()
		exploded = true
	}
	cell.reveal()

	return board.look(), exploded
}

// Flag marks an unrevealed cell. Any other cell is left as is.
func (board *Board) Flag(x, y int) string {
	board.mu.Lock()
	defer board.mu.Unlock()

	if cell := board.cellAt(x, y); cell != nil && cell.state == Unrevealed {
		cell.setState(Flag)
	}
	return board.look()
}

// Deflag returns a flagged cell to unrevealed. Any other cell is left as is.
func (board *Board) Deflag(x, y int) string {
	board.mu.Lock()
	defer board.mu.Unlock()

	if cell := board.cellAt(x, y); cell != nil && cell.state == Flag {
		cell.setState(Unrevealed)
	}
	return board.look()
}

// AddPlayer registers a new player and returns the player count including them
func (board *Board) AddPlayer() int {
	board.mu.Lock()
	defer board.mu.Unlock()

	board.numPlayers++
	return board.numPlayers
}

// RemovePlayer unregisters a player and returns the remaining count
func (board *Board) RemovePlayer() int {
	board.mu.Lock()
	defer board.mu.Unlock()

	if board.numPlayers > 0 {
		board.numPlayers--
	}
	return board.numPlayers
}

// NumPlayers returns the number of connected players
func (board *Board) NumPlayers() int {
	board.mu.Lock()
	defer board.mu.Unlock()

	return board.numPlayers
}
