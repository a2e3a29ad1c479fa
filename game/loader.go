package game

import (
	"bufio"
	"github.com/pkg/errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LoadBoard reads a board in the text format: one row per line, each row a
// space-separated list of 0 (clear) and 1 (mine). Blank lines are skipped.
func LoadBoard(r io.Reader) (*Board, error) {
	var mines [][]bool

	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		row := make([]bool, len(tokens))
		for x, token := range tokens {
			switch token {
			case "0":
			case "1":
				row[x] = true
			default:
				return nil, errors.Errorf("line %d: invalid cell %q", lineNum, token)
			}
		}
		mines = append(mines, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading board")
	}

	return NewBoard(mines)
}

// LoadBoardFile loads a board from disk. Files ending in .yaml or .yml are read
// as a BoardSnapshot, anything else as the text format.
func LoadBoardFile(path string) (*Board, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening board file")
	}
	defer file.Close()

	var board *Board
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var data []byte
		if data, err = io.ReadAll(file); err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
		var snapshot *BoardSnapshot
		if snapshot, err = LoadSnapshot(string(data)); err == nil {
			board, err = snapshot.CreateBoard()
		}
	default:
		board, err = LoadBoard(file)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return board, nil
}
