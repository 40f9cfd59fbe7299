package main

import (
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/rylanh006/minesweeper/internal/board"
	"github.com/rylanh006/minesweeper/internal/cli"
)

var log = logrus.New()

var (
	difficulty string
	width      int
	height     int
	mines      int
	seed       uint64
)

func init() {
	flag.StringVar(&difficulty, "difficulty", "beginner",
		"one of 'beginner', 'intermediate', 'expert'")
	flag.IntVar(&width, "width", 0, "board width (overrides difficulty)")
	flag.IntVar(&height, "height", 0, "board height (overrides difficulty)")
	flag.IntVar(&mines, "mines", 0, "mine count (overrides difficulty)")
	flag.Uint64Var(&seed, "seed", 0, "rng seed, 0 for random")
}

// setupLogging sends everything to a rotating file so log lines do not
// tear up the board in the terminal.
func setupLogging() {
	log.SetOutput(io.Discard)

	dir, err := os.UserCacheDir()
	if err != nil {
		dir = "."
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   filepath.Join(dir, "minesweeper", "play.log"),
		MaxSize:    5, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to set up log file:", err)
		return
	}
	log.AddHook(hook)
	cli.Log = log
}

func gameParams() (board.Params, error) {
	if width != 0 || height != 0 || mines != 0 {
		return board.Params{Width: width, Height: height, MineCount: mines}, nil
	}
	return board.ParseDifficulty(difficulty)
}

func createRand() *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func main() {
	flag.Parse()
	setupLogging()

	params, err := gameParams()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	b, err := board.New(params, createRand())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log.WithFields(logrus.Fields{
		"seed": params.Seed(), "rngSeed": seed,
	}).Info("starting game")

	if err := cli.NewSession(b, os.Stdin, os.Stdout).Run(); err != nil {
		log.WithError(err).Error("game loop failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
