package main

import (
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/cobra"

	"github.com/bombs-cli/bombs/internal/config"
	"github.com/bombs-cli/bombs/internal/mines"
)

var log = logrus.New()

func newRootCmd() *cobra.Command {
	var (
		rows       int
		cols       int
		likelihood float64
		debug      bool
		logPath    string
	)
	cmd := &cobra.Command{
		Use:   "bombs",
		Short: "Play minesweeper in your terminal",
		Long: `Bombs is a line-oriented minesweeper: reveal cells by coordinate, flag
the ones hiding bombs and clear the whole grid without setting one off.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(debug, logPath); err != nil {
				return err
			}
			rows, cols, likelihood = config.Clamp(rows, cols, likelihood)
			log.WithFields(logrus.Fields{
				"rows": rows, "cols": cols, "likelihood": likelihood,
			}).Info("starting game")
			rnd := rand.New(rand.NewPCG(
				new(maphash.Hash).Sum64(),
				new(maphash.Hash).Sum64(),
			))
			game := mines.New(rows, cols, likelihood, rnd)
			return newRepl(game, os.Stdin, cmd.OutOrStdout()).Run()
		},
	}
	cmd.Flags().IntVarP(&rows, "rows", "r", config.Rows(), "grid height")
	cmd.Flags().IntVarP(&cols, "cols", "c", config.Cols(), "grid width")
	cmd.Flags().Float64VarP(&likelihood, "likelihood", "p",
		config.Likelihood(), "per-cell bomb probability")
	cmd.Flags().BoolVar(&debug, "debug", false, "log at debug level")
	cmd.Flags().StringVar(&logPath, "log-file", config.LogPath(), "log file destination")
	return cmd
}

func setupLogging(debug bool, path string) error {
	level := logrus.InfoLevel
	if debug {
		level = logrus.DebugLevel
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to set up log file: %w", err)
	}
	for _, l := range []*logrus.Logger{log, mines.Log} {
		l.SetLevel(level)
		// the terminal belongs to the renderer, logs go to the file hook
		l.SetOutput(io.Discard)
		l.AddHook(hook)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
