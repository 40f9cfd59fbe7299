package main

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rylanh006/minesweeper/internal/board"
	"github.com/rylanh006/minesweeper/internal/handlers"
	"github.com/rylanh006/minesweeper/internal/session"
)

func (app *application) handleNewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := parseNewGameDTO(r.URL.Query())
	if err != nil {
		app.badRequest(w, err)
		return
	}

	params, err := dto.Params()
	if err != nil {
		app.badRequest(w, err)
		return
	}

	b, err := app.newBoard(params)
	if err != nil {
		app.badRequest(w, err)
		return
	}

	sess := app.sessions.Create(b)
	app.logger.Debug("created session",
		slog.Int64("id", sess.Id), slog.String("seed", params.Seed()))

	handlers.SendJSONOrLog(w, app.logger, newSessionDTO(sess))
}

func (app *application) fetchSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		app.badRequest(w, errors.New("session id must be an int"))
		return nil, false
	}
	sess, err := app.sessions.Get(id)
	if errors.Is(err, session.ErrNotFound) {
		app.notFound(w)
		return nil, false
	}
	if err != nil {
		app.internalError(w, "failed to fetch session", "error", err)
		return nil, false
	}
	return sess, true
}

func (app *application) handleFetchGame(w http.ResponseWriter, r *http.Request) {
	sess, ok := app.fetchSession(w, r)
	if !ok {
		return
	}
	handlers.SendJSONOrLog(w, app.logger, newSessionDTO(sess))
}

func (app *application) handleMove(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	move, err := decodeGameMove(query.Get("move"))
	if err != nil {
		app.badRequest(w, err)
		return
	}

	pos, err := parsePosition(query)
	if err != nil {
		app.badRequest(w, err)
		return
	}

	sess, ok := app.fetchSession(w, r)
	if !ok {
		return
	}

	sess.Do(func(b *board.Board) {
		if !b.Params().InBounds(pos.X, pos.Y) {
			return // the engine shrugs at this too
		}
		switch move {
		case moveReveal:
			b.Reveal(pos.X, pos.Y)
		case moveFlag:
			b.ToggleFlag(pos.X, pos.Y)
		}
	})

	handlers.SendJSONOrLog(w, app.logger, newSessionDTO(sess))
}

func (app *application) handleRevealAll(w http.ResponseWriter, r *http.Request) {
	sess, ok := app.fetchSession(w, r)
	if !ok {
		return
	}

	sess.Do(func(b *board.Board) { b.RevealAll() })

	handlers.SendJSONOrLog(w, app.logger, newSessionDTO(sess))
}

func (app *application) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		app.badRequest(w, errors.New("session id must be an int"))
		return
	}
	app.sessions.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}
