package game

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
	"math/rand"
	"strings"
)

// BoardSnapshot describes a starting board. When Mines is set it holds the
// layout in the text board format; otherwise a random board of Size is drawn
// from Seed.
type BoardSnapshot struct {
	Seed  int64  `yaml:"seed,omitempty"`
	Size  int    `yaml:"size,omitempty"`
	Mines string `yaml:"mines,omitempty"`
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func (snapshot *BoardSnapshot) CreateBoard() (*Board, error) {
	if strings.TrimSpace(snapshot.Mines) != "" {
		return LoadBoard(strings.NewReader(snapshot.Mines))
	}

	if snapshot.Size <= 0 {
		return nil, errors.Errorf("snapshot has no mines and invalid size %d", snapshot.Size)
	}
	return NewRandomBoard(snapshot.Size, rand.New(rand.NewSource(snapshot.Seed))), nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "parsing board snapshot")
	}
	return &snapshot, nil
}

// Snapshot captures the mines currently on the board
func (board *Board) Snapshot() *BoardSnapshot {
	board.mu.Lock()
	defer board.mu.Unlock()

	var mines strings.Builder
	tokens := make([]string, board.size)
	for y := range board.cells {
		for x := range board.cells[y] {
			if board.cells[y][x].isMine {
				tokens[x] = "1"
			} else {
				tokens[x] = "0"
			}
		}
		mines.WriteString(strings.Join(tokens, " "))
		mines.WriteString("\n")
	}

	return &BoardSnapshot{
		Size:  board.size,
		Mines: mines.String(),
	}
}
