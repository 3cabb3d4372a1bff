package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bombs-cli/bombs/internal/mines"
)

// handler runs one parsed command against the REPL's game. The returned
// bool reports whether the input was accepted; accepted commands trigger a
// re-render.
type handler func(r *repl, args []string) bool

var commandTable = map[string]handler{
	"reveal":      (*repl).reveal,
	"flag":        func(r *repl, args []string) bool { return r.setFlags(args, true) },
	"unflag":      func(r *repl, args []string) bool { return r.setFlags(args, false) },
	"help":        (*repl).help,
	"restart":     (*repl).restart,
	"exit":        (*repl).exit,
	"bombs_left?": (*repl).bombsLeft,
}

// parsePlaces turns "i1 j1 i2 j2 ..." into coordinates. The core assumes
// well-typed integers, so all rejection happens here.
func parsePlaces(args []string) ([]mines.Place, error) {
	if len(args) == 0 || len(args)%2 != 0 {
		return nil, errors.New("coordinates must come in (row, column) pairs")
	}
	places := make([]mines.Place, 0, len(args)/2)
	for k := 0; k < len(args); k += 2 {
		row, err := strconv.Atoi(args[k])
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", args[k])
		}
		col, err := strconv.Atoi(args[k+1])
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", args[k+1])
		}
		places = append(places, mines.Place{Row: row, Col: col})
	}
	return places, nil
}

// reveal applies each coordinate in order with no rollback. A losing move
// ends the game and stops further processing immediately.
func (r *repl) reveal(args []string) bool {
	places, err := parsePlaces(args)
	if err != nil {
		fmt.Fprintf(r.out, "reveal: %s\n", err)
		return false
	}
	for _, p := range places {
		switch r.game.TryReveal(p) {
		case mines.NotApplicable:
			fmt.Fprintf(r.out, "Failed revealing cell [%d, %d]: you cannot reveal a flagged cell.\n", p.Row, p.Col)
		case mines.OutOfBounds:
			fmt.Fprintf(r.out, "Failed revealing cell [%d, %d]: it does not exist in the grid.\n", p.Row, p.Col)
		case mines.LosingMove:
			r.game.End()
			return true
		}
	}
	return true
}

func (r *repl) setFlags(args []string, value bool) bool {
	places, err := parsePlaces(args)
	if err != nil {
		fmt.Fprintf(r.out, "flag: %s\n", err)
		return false
	}
	for _, p := range places {
		switch r.game.TrySetFlag(p, value) {
		case mines.NotApplicable:
			fmt.Fprintf(r.out, "Failed (un)flagging cell [%d, %d]: the cell has already been revealed.\n", p.Row, p.Col)
		case mines.OutOfBounds:
			fmt.Fprintf(r.out, "Failed (un)flagging cell [%d, %d]: it does not exist in the grid.\n", p.Row, p.Col)
		}
	}
	return true
}

func (r *repl) help([]string) bool {
	fmt.Fprint(r.out, `H E L P:
(1.) Type "flag i1 j1 i2 j2 ... in jn" to flag the cell in the ith row (0-indexed) of the jth column (0-indexed) of the grid.
(2.) Type "unflag i1 j1 i2 j2 ... in jn" to unflag the cell in the ith row (0-indexed) of the jth column (0-indexed) of the grid.
(3.) Type "reveal i1 j1 i2 j2 ... in jn" to reveal the cell in the ith row (0-indexed) of the jth column (0-indexed) of the grid.
(4.) Type "exit" to exit the game.
(5.) Type "restart" to restart the game.
(6.) Type "bombs_left?" to query how many bombs haven't been flagged.
`)
	return true
}

func (r *repl) restart([]string) bool {
	r.game.Restart()
	return true
}

func (r *repl) exit([]string) bool {
	r.quit = true
	return true
}

func (r *repl) bombsLeft([]string) bool {
	fmt.Fprintf(r.out, "There are %d bombs left.\n", r.game.BombsLeft())
	return true
}
