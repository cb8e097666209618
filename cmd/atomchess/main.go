package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atomchess/atomchess/internal/atomic"
)

// Interactive two-player game in the terminal. Moves are entered as a pair
// of algebraic squares, e.g. "e2 e4" or "e2e4".
func main() {
	game := atomic.NewGame()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("atomchess: captures explode, pawns shrug it off, lose your king and it's over.")
	fmt.Println("Enter moves like \"e2 e4\". Type \"quit\" to stop.")

	for game.Status() == atomic.StatusActive {
		fmt.Println()
		fmt.Print(game.Render())
		fmt.Printf("%s to move> ", game.Turn())

		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			return
		}

		from, to, err := parseMove(line)
		if err != nil {
			fmt.Println(err)
			continue
		}

		result, err := game.SubmitMove(from, to)
		switch {
		case errors.Is(err, atomic.ErrInvalidCoordinate):
			fmt.Printf("bad square in %q, use a1-h8\n", line)
		case errors.Is(err, atomic.ErrIllegalMove):
			fmt.Printf("illegal move: %s %s\n", from, to)
		case err != nil:
			fmt.Println(err)
		case result.Capture:
			fmt.Printf("boom: %s takes %s", from, to)
			if len(result.Exploded) > 0 {
				fmt.Printf(", blast clears %s", strings.Join(result.Exploded, " "))
			}
			fmt.Println()
		}
	}

	fmt.Println()
	fmt.Print(game.Render())
	switch game.Status() {
	case atomic.StatusWhiteWon:
		fmt.Println("white wins")
	case atomic.StatusBlackWon:
		fmt.Println("black wins")
	}
}

func parseMove(line string) (string, string, error) {
	fields := strings.Fields(line)
	switch {
	case len(fields) == 2:
		return fields[0], fields[1], nil
	case len(fields) == 1 && len(fields[0]) == 4:
		return fields[0][:2], fields[0][2:], nil
	}
	return "", "", fmt.Errorf("can't read %q, enter moves like \"e2 e4\"", line)
}
