package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/rylanh006/minesweeper/internal/board"
	"github.com/rylanh006/minesweeper/internal/session"
)

/*
 * The websocket loop speaks compact command lines, one move per line:
 *
 *	g		no-op, just echo the current state
 *	o x y	reveal the cell at x, y
 *	f x y	toggle a flag at x, y
 *	a		reveal the whole board (post-loss display)
 *
 * After each message the full session DTO is written back.
 */

var commandNargs = map[string]int{
	"g": 0,
	"o": 2,
	"f": 2,
	"a": 0,
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = fmt.Errorf("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = fmt.Errorf("second argument must be an int")
		return
	}
	return
}

func executeCommand(sess *session.Session, c string) error {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return nil
	}

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command")
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("invalid number of arguments")
	}

	switch parts[0] {
	case "g":
		return nil
	case "o":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return err
		}
		sess.Do(func(b *board.Board) { b.Reveal(x, y) })
		return nil
	case "f":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return err
		}
		sess.Do(func(b *board.Board) { b.ToggleFlag(x, y) })
		return nil
	case "a":
		sess.Do(func(b *board.Board) { b.RevealAll() })
		return nil
	}
	return fmt.Errorf("invalid command")
}

func (app *application) wsRunGameLoop(conn *websocket.Conn, sess *session.Session) error {
	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		message := strings.TrimSpace(string(buf))
		for _, line := range strings.Split(message, "\n") {
			if err := executeCommand(sess, strings.TrimSpace(line)); err != nil {
				return err
			}
		}

		if err := conn.WriteJSON(newSessionDTO(sess)); err != nil {
			return fmt.Errorf("unable to write json: %w", err)
		}
	}
}

func (app *application) wsConnect(w http.ResponseWriter, r *http.Request) {
	sess, ok := app.fetchSession(w, r)
	if !ok {
		return
	}

	conn, err := app.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		app.logger.Error("unable to upgrade", "error", err)
		return
	}
	defer conn.Close()

	app.logger.Debug("established WS connection")

	if err := app.wsRunGameLoop(conn, sess); err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			return
		}
		app.logger.Warn("error in ws loop", "error", err)
	}
}
