package setup

import (
	"strings"
	"testing"

	cerr "github.com/saeidalz13/battleship-cli/internal/error"
	mb "github.com/saeidalz13/battleship-cli/models/battleship"
	"github.com/stretchr/testify/require"
)

var names = []string{"player-1", "player-2"}

func TestParseValidInput(t *testing.T) {
	input := `
5 e
2
Q 1 1 A1 b2
P 2 1 D4 C3
A1 B2 b2 B3
A1 B2 B3 A1 D1 E1 D4 D4 D5 D5
`
	s, err := Parse(strings.NewReader(input), len(names))
	require.NoError(t, err)

	require.Equal(t, 5, s.Width)
	require.Equal(t, byte('E'), s.Height)
	require.Equal(t, 2, s.ShipCount)
	require.Len(t, s.Ships, 2)

	require.Equal(t, mb.ShipTypeQ, s.Ships[0].Type)
	require.Equal(t, []mb.Position{mb.NewPosition('A', 1), mb.NewPosition('B', 2)}, s.Ships[0].Positions)
	require.Equal(t, 2, s.Ships[1].Width)
	require.Equal(t, 1, s.Ships[1].Height)

	require.Len(t, s.FiringSequences, 2)
	require.Len(t, s.FiringSequences[0], 4)
	require.Len(t, s.FiringSequences[1], 10)
	require.Equal(t, mb.NewPosition('B', 2), s.FiringSequences[0][2])
}

func TestParseRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: "   \n\n"},
		{name: "single line", input: "5 E"},
		{name: "missing firing line", input: "5 E\n1\nP 1 1 A1 A1\nA1"},
		{name: "extra line", input: "5 E\n1\nP 1 1 A1 A1\nA1\nA1\nA1"},
		{name: "width not a number", input: "five E\n1\nP 1 1 A1 A1\nA1\nA1"},
		{name: "zero width", input: "0 E\n1\nP 1 1 A1 A1\nA1\nA1"},
		{name: "signed width", input: "+5 E\n1\nP 1 1 A1 A1\nA1\nA1"},
		{name: "height not a letter", input: "5 5\n1\nP 1 1 A1 A1\nA1\nA1"},
		{name: "height two letters", input: "5 EE\n1\nP 1 1 A1 A1\nA1\nA1"},
		{name: "negative ship count", input: "5 E\n-1\nA1\nA1"},
		{name: "unknown ship type", input: "5 E\n1\nR 1 1 A1 A1\nA1\nA1"},
		{name: "ship width not a number", input: "5 E\n1\nP x 1 A1 A1\nA1\nA1"},
		{name: "zero ship height", input: "5 E\n1\nP 1 0 A1 A1\nA1\nA1"},
		{name: "missing ship position", input: "5 E\n1\nP 1 1 A1\nA1\nA1"},
		{name: "bad ship position", input: "5 E\n1\nP 1 1 A1 1A\nA1\nA1"},
		{name: "bad target", input: "5 E\n1\nP 1 1 A1 A1\nA1 BB\nA1"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(test.input), len(names))
			require.ErrorIs(t, err, cerr.ErrMalformedInput)
		})
	}
}

func TestParseAllowsEmptyFiringSequence(t *testing.T) {
	s, err := Parse(strings.NewReader("5 E\n0\n\nA1"), len(names))
	require.NoError(t, err)
	require.Empty(t, s.FiringSequences[0])
	require.Len(t, s.FiringSequences[1], 1)
}

// Trailing whitespace is trimmed with the rest of the input, so the last
// player cannot be given an empty firing sequence.
func TestParseDropsEmptyLastFiringSequence(t *testing.T) {
	for _, input := range []string{"5 E\n0\nA1\n", "5 E\n0\nA1\n ", "5 E\n0\nA1\n\t\n"} {
		_, err := Parse(strings.NewReader(input), len(names))
		require.ErrorIs(t, err, cerr.ErrMalformedInput)
		require.ErrorContains(t, err, "expected 4 lines of input, got 3")
	}
}

func TestConfigure(t *testing.T) {
	s, err := Parse(strings.NewReader("5 E\n2\nQ 1 1 A1 B2\nP 2 1 D4 C3\nA1 B2\nA1"), len(names))
	require.NoError(t, err)

	players, err := Configure(s, names)
	require.NoError(t, err)
	require.Len(t, players, 2)

	p1, p2 := players[0], players[1]
	require.Equal(t, "player-1", p1.Name())
	require.Equal(t, 2, p1.ShipCount())
	require.Equal(t, 5, p1.BattleArea().Width())
	require.Equal(t, byte('E'), p1.BattleArea().Height())
	require.Equal(t, 3, p1.BattleArea().OccupiedCells())
	require.Equal(t, []mb.Position{mb.NewPosition('A', 1), mb.NewPosition('B', 2)}, p1.PendingTargets())

	require.Equal(t, []mb.Position{
		mb.NewPosition('B', 2),
		mb.NewPosition('C', 3),
		mb.NewPosition('C', 4),
	}, p2.BattleArea().OccupiedPositions())

	cell, ok := p2.BattleArea().CellAt(mb.NewPosition('B', 2))
	require.True(t, ok)
	require.Equal(t, mb.ShipTypeQ.CellHealth(), cell.Health())
}

func TestConfigureRejectsInvalidPlacement(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedErr error
	}{
		{
			name:        "ship past last column",
			input:       "5 E\n1\nP 2 1 A1 A5\nA1\nA1",
			expectedErr: cerr.ErrOutOfBounds,
		},
		{
			name:        "ship past last row",
			input:       "5 E\n1\nP 1 2 E1 A1\nA1\nA1",
			expectedErr: cerr.ErrOutOfBounds,
		},
		{
			name:        "origin row outside area",
			input:       "5 C\n1\nP 1 1 A1 D1\nA1\nA1",
			expectedErr: cerr.ErrOutOfBounds,
		},
		{
			name:        "overlapping ships",
			input:       "5 E\n2\nP 2 2 A1 A1\nQ 1 1 B2 C3\nA1\nA1",
			expectedErr: cerr.ErrOverlap,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := Parse(strings.NewReader(test.input), len(names))
			require.NoError(t, err)

			players, err := Configure(s, names)
			require.ErrorIs(t, err, test.expectedErr)
			require.Nil(t, players)
		})
	}
}

func TestConfigureRequiresOneSequencePerPlayer(t *testing.T) {
	s, err := Parse(strings.NewReader("5 E\n1\nP 1 1 A1 A1\nA1\nA1"), len(names))
	require.NoError(t, err)

	_, err = Configure(s, []string{"a", "b", "c"})
	require.ErrorIs(t, err, cerr.ErrMalformedInput)
}

func TestEndToEnd(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedState mb.GameState
		expectedWin   string
	}{
		{
			name:          "both ships sink in the first round",
			input:         "5 E\n1\nP 1 1 A1 A1\nA1\nA1",
			expectedState: mb.GameStateDrawn,
		},
		{
			name:          "only player 2 hits",
			input:         "5 E\n1\nP 1 1 A1 B2\nA1\nA1",
			expectedState: mb.GameStateWon,
			expectedWin:   "player-2",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := Parse(strings.NewReader(test.input), len(names))
			require.NoError(t, err)
			players, err := Configure(s, names)
			require.NoError(t, err)

			game, err := mb.NewGame(players)
			require.NoError(t, err)

			res := game.Start()
			require.Equal(t, test.expectedState, res.State)
			require.Equal(t, test.expectedWin, res.Winner)
			if test.expectedState == mb.GameStateDrawn {
				for _, p := range players {
					require.Zero(t, p.ShipCount())
				}
			}
		})
	}
}
