// Package cli is the line-oriented front end: it parses player commands
// from a reader and renders the board to a writer, talking to the engine
// only through its command and display surface.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rylanh006/minesweeper/internal/board"
)

var Log = logrus.New()

type command struct {
	x, y int
	verb byte // 'r', 'f' or 'q'
}

var errUsage = fmt.Errorf("enter a command like '3 4 r' (reveal) or '3 4 f' (flag), or 'q' to quit")

func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		if strings.EqualFold(fields[0], "q") {
			return command{verb: 'q'}, nil
		}
		return command{}, errUsage
	case 3:
		x, err := strconv.Atoi(fields[0])
		if err != nil {
			return command{}, fmt.Errorf("first coordinate must be an int")
		}
		y, err := strconv.Atoi(fields[1])
		if err != nil {
			return command{}, fmt.Errorf("second coordinate must be an int")
		}
		switch strings.ToLower(fields[2]) {
		case "r":
			return command{x: x, y: y, verb: 'r'}, nil
		case "f":
			return command{x: x, y: y, verb: 'f'}, nil
		default:
			return command{}, errUsage
		}
	default:
		return command{}, errUsage
	}
}

// Session drives one game over a reader/writer pair.
type Session struct {
	board *board.Board
	in    *bufio.Scanner
	out   io.Writer
}

func NewSession(b *board.Board, in io.Reader, out io.Writer) *Session {
	return &Session{
		board: b,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

func (s *Session) render() {
	fmt.Fprintf(s.out, "\n%d mines\n", s.board.MineCount())
	fmt.Fprint(s.out, s.board.View().ToString(s.board.Width()))
}

// Run loops until the game ends or input runs out. It returns the scanner
// error, if any; quitting and finishing are both nil.
func (s *Session) Run() error {
	s.render()
	for !s.board.GameOver() {
		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			return s.in.Err()
		}
		line := s.in.Text()

		cmd, err := parseCommand(line)
		if err != nil {
			fmt.Fprintln(s.out, err.Error())
			continue
		}

		Log.WithFields(logrus.Fields{
			"verb": string(cmd.verb), "x": cmd.x, "y": cmd.y,
		}).Debug("player command")

		switch cmd.verb {
		case 'q':
			fmt.Fprintln(s.out, "bye")
			return nil
		case 'r':
			s.board.Reveal(cmd.x, cmd.y)
		case 'f':
			s.board.ToggleFlag(cmd.x, cmd.y)
		}
		s.render()
	}

	if s.board.Win() {
		fmt.Fprintln(s.out, "you win!")
	} else {
		// show the full board under the loss
		s.board.RevealAll()
		s.render()
		fmt.Fprintln(s.out, "you hit a mine!")
	}
	return nil
}
