package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bombs-cli/bombs/internal/mines"
)

type repl struct {
	game *mines.Game
	in   *bufio.Scanner
	out  io.Writer
	quit bool
}

func newRepl(game *mines.Game, in io.Reader, out io.Writer) *repl {
	return &repl{
		game: game,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Run drives the command loop until the game is over, the player exits, or
// input runs dry. Win detection is polled here after every accepted
// command; the core never ends the game on its own.
func (r *repl) Run() error {
	fmt.Fprintln(r.out, "Welcome to B O M B S")
	fmt.Fprintln(r.out, renderGrid(r.game))
	for r.game.State() == mines.Active {
		fmt.Fprintln(r.out, `Please enter a command or "help" for a list of commands.`)
		if !r.in.Scan() {
			return r.in.Err()
		}
		fields := strings.Fields(r.in.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, ok := commandTable[fields[0]]
		if !ok {
			log.WithField("command", fields[0]).Debug("unknown command")
			continue
		}
		accepted := cmd(r, fields[1:])
		if r.quit {
			return nil
		}
		if r.game.IsWon() {
			r.game.End()
		}
		if accepted {
			fmt.Fprintln(r.out, renderGrid(r.game))
		}
	}
	if r.game.IsWon() {
		fmt.Fprintln(r.out, "You won!")
	} else {
		fmt.Fprintln(r.out, "You lost.")
	}
	return nil
}
