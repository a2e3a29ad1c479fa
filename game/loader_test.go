package game

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadBoard(t *testing.T) {
	board, err := LoadBoard(strings.NewReader("0 1\r\n1 1\r\n\r\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, board.Size())
	assert.Equal(t, 3, board.NumMines())
	assert.Equal(t, "- -\r\n- -\r\n", board.Look())
}

func TestLoadBoardRejectsMalformed(t *testing.T) {
	for name, layout := range map[string]string{
		"empty":      "",
		"blank":      "\n\n",
		"ragged":     "0 0 0\n0 0\n0 0 0\n",
		"not square": "0 0 0\n0 0 0\n",
		"bad token":  "0 0\n0 2\n",
		"word":       "0 x\n0 0\n",
	} {
		_, err := LoadBoard(strings.NewReader(layout))
		assert.Error(t, err, name)
	}
}

func TestLoadBoardFile(t *testing.T) {
	dir := t.TempDir()

	textPath := filepath.Join(dir, "board.txt")
	require.NoError(t, os.WriteFile(textPath, []byte(threeByThree), 0644))
	board, err := LoadBoardFile(textPath)
	require.NoError(t, err)
	assert.Equal(t, 3, board.NumMines())

	yamlPath := filepath.Join(dir, "board.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("mines: |\n  0 0\n  0 1\n"), 0644))
	board, err = LoadBoardFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 2, board.Size())
	assert.Equal(t, 1, board.NumMines())

	_, err = LoadBoardFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	badPath := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(badPath, []byte("size: [nope"), 0644))
	_, err = LoadBoardFile(badPath)
	assert.Error(t, err)
}

func TestSnapshotRoundTrip(t *testing.T) {
	board := mustLoad(t, threeByThree)

	snapshot, err := LoadSnapshot(board.Snapshot().Serialize())
	require.NoError(t, err)
	assert.Equal(t, strings.ReplaceAll(threeByThree, "\r", ""), snapshot.Mines)

	restored, err := snapshot.CreateBoard()
	require.NoError(t, err)
	assert.Equal(t, board.Snapshot(), restored.Snapshot())
}

func TestSnapshotTracksRemovedMines(t *testing.T) {
	board := mustLoad(t, threeByThree)
	board.Dig(1, 0)

	assert.Equal(t, "0 0 0\n1 0 0\n0 0 1\n", board.Snapshot().Mines)
}

func TestSnapshotRandomBoard(t *testing.T) {
	snapshot, err := LoadSnapshot("seed: 99\nsize: 6\n")
	require.NoError(t, err)

	first, err := snapshot.CreateBoard()
	require.NoError(t, err)
	second, err := snapshot.CreateBoard()
	require.NoError(t, err)

	assert.Equal(t, 6, first.Size())
	assert.Equal(t, first.Snapshot(), second.Snapshot())

	_, err = (&BoardSnapshot{}).CreateBoard()
	assert.Error(t, err)
}
