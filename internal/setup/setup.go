// Package setup turns the fixed-format text description of a match into
// configured players. The layout is:
//
//	<width> <height letter>
//	<ship count>
//	<type> <width> <height> <pos player 1> ... <pos player N>   (ship count lines)
//	<firing sequence of player 1>
//	...
//	<firing sequence of player N>
package setup

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-cli/internal/error"
	mb "github.com/saeidalz13/battleship-cli/models/battleship"
)

const (
	battleAreaLine = 0
	shipCountLine  = 1
	firstShipLine  = 2

	// type, width and height precede the per-player positions
	shipLineFixedFields = 3
)

type ShipSpec struct {
	Type      mb.ShipType
	Width     int
	Height    int
	Positions []mb.Position
}

// Setup is the validated, not yet applied, content of the input.
type Setup struct {
	Width           int
	Height          byte
	ShipCount       int
	Ships           []ShipSpec
	FiringSequences [][]mb.Position
}

// Parse reads the whole input and validates its format for numPlayers
// players. It does not place ships; see Configure.
func Parse(r io.Reader, numPlayers int) (Setup, error) {
	lines, err := readLines(r)
	if err != nil {
		return Setup{}, err
	}
	if len(lines) == 0 {
		return Setup{}, cerr.ErrNoInput()
	}
	if len(lines) < firstShipLine {
		return Setup{}, cerr.ErrLineCount(firstShipLine+numPlayers, len(lines))
	}

	var s Setup
	if s.Width, s.Height, err = parseBattleArea(lines[battleAreaLine]); err != nil {
		return Setup{}, err
	}
	if s.ShipCount, err = parseShipCount(lines[shipCountLine]); err != nil {
		return Setup{}, err
	}

	expected := firstShipLine + s.ShipCount + numPlayers
	if len(lines) != expected {
		return Setup{}, cerr.ErrLineCount(expected, len(lines))
	}

	s.Ships = make([]ShipSpec, 0, s.ShipCount)
	for i := 0; i < s.ShipCount; i++ {
		lineNo := firstShipLine + i
		spec, err := parseShipLine(lines[lineNo], lineNo+1, numPlayers)
		if err != nil {
			return Setup{}, err
		}
		s.Ships = append(s.Ships, spec)
	}

	s.FiringSequences = make([][]mb.Position, 0, numPlayers)
	for _, line := range lines[firstShipLine+s.ShipCount:] {
		sequence, err := parseFiringSequence(line)
		if err != nil {
			return Setup{}, err
		}
		s.FiringSequences = append(s.FiringSequences, sequence)
	}

	return s, nil
}

// Configure builds one player per name and applies the setup to each.
// The first placement error aborts the whole configuration.
func Configure(s Setup, names []string) ([]*mb.Player, error) {
	if len(s.FiringSequences) != len(names) {
		return nil, cerr.ErrLineCount(firstShipLine+s.ShipCount+len(names), firstShipLine+s.ShipCount+len(s.FiringSequences))
	}

	players := make([]*mb.Player, len(names))
	for i, name := range names {
		p := mb.NewPlayer(name)
		p.SetBattleArea(s.Width, s.Height)
		p.SetShipCount(s.ShipCount)
		players[i] = p
	}

	for i, spec := range s.Ships {
		if len(spec.Positions) != len(players) {
			return nil, cerr.ErrInvalidShipLine(firstShipLine+i+1, "expected one position per player")
		}
		for j, p := range players {
			if _, err := p.PlaceShip(spec.Width, spec.Height, spec.Positions[j], spec.Type); err != nil {
				return nil, fmt.Errorf("%s: %w", p.Name(), err)
			}
		}
	}

	for i, p := range players {
		p.SetFiringSequence(s.FiringSequences[i])
	}
	return players, nil
}

func readLines(r io.Reader) ([]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil, nil
	}

	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	return lines, scanner.Err()
}

func parseBattleArea(line string) (int, byte, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 || len(fields[1]) != 1 || !mb.IsRowLetter(fields[1][0]) {
		return 0, 0, cerr.ErrInvalidBattleArea(line)
	}

	width, err := strconv.Atoi(fields[0])
	if err != nil || width < 1 || width > mb.MaxColumn || !isDigits(fields[0]) {
		return 0, 0, cerr.ErrInvalidBattleArea(line)
	}

	return width, strings.ToUpper(fields[1])[0], nil
}

func parseShipCount(line string) (int, error) {
	if !isDigits(line) {
		return 0, cerr.ErrInvalidShipCount(line)
	}
	count, err := strconv.Atoi(line)
	if err != nil {
		return 0, cerr.ErrInvalidShipCount(line)
	}
	return count, nil
}

func parseShipLine(line string, lineNo, numPlayers int) (ShipSpec, error) {
	fields := strings.Fields(line)
	if len(fields) != shipLineFixedFields+numPlayers {
		return ShipSpec{}, cerr.ErrInvalidShipLine(lineNo, fmt.Sprintf("expected %d fields, got %d", shipLineFixedFields+numPlayers, len(fields)))
	}

	shipType, err := mb.ParseShipType(fields[0])
	if err != nil {
		return ShipSpec{}, err
	}

	width, errW := strconv.Atoi(fields[1])
	height, errH := strconv.Atoi(fields[2])
	if errW != nil || errH != nil {
		return ShipSpec{}, cerr.ErrInvalidShipLine(lineNo, "ship width and height must be integers")
	}
	if width < 1 || height < 1 {
		return ShipSpec{}, cerr.ErrInvalidShipSize(width, height)
	}

	spec := ShipSpec{Type: shipType, Width: width, Height: height, Positions: make([]mb.Position, 0, numPlayers)}
	for _, token := range fields[shipLineFixedFields:] {
		p, err := mb.ParsePosition(token)
		if err != nil {
			return ShipSpec{}, err
		}
		spec.Positions = append(spec.Positions, p)
	}
	return spec, nil
}

func parseFiringSequence(line string) ([]mb.Position, error) {
	tokens := strings.Fields(line)
	sequence := make([]mb.Position, 0, len(tokens))
	for _, token := range tokens {
		p, err := mb.ParsePosition(token)
		if err != nil {
			return nil, err
		}
		sequence = append(sequence, p)
	}
	return sequence, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
