package main

import (
	"log/slog"
	"math/rand/v2"
	"net/http"
	"sync"

	"github.com/rylanh006/minesweeper/internal/board"
	"github.com/rylanh006/minesweeper/internal/config"
	"github.com/rylanh006/minesweeper/internal/handlers"
	"github.com/rylanh006/minesweeper/internal/session"
)

type application struct {
	logger   *slog.Logger
	sessions *session.Store
	ws       *config.WebSocket
	rnd      *rand.Rand
	rndMu    sync.Mutex // rand.Rand is not safe for concurrent handlers
}

func (app *application) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /status", app.handleStatus)
	mux.HandleFunc("POST /", app.handleNewGame)
	mux.HandleFunc("GET /{id}", app.handleFetchGame)
	mux.HandleFunc("POST /{id}/move", app.handleMove)
	mux.HandleFunc("POST /{id}/reveal", app.handleRevealAll)
	mux.HandleFunc("DELETE /{id}", app.handleDeleteGame)
	mux.HandleFunc("GET /{id}/connect", app.wsConnect)
	return mux
}

func (app *application) newBoard(params board.Params) (*board.Board, error) {
	app.rndMu.Lock()
	defer app.rndMu.Unlock()
	return board.New(params, app.rnd)
}

func (app *application) badRequest(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusBadRequest)
	handlers.SendErrorOrLog(w, app.logger, err)
}

func (app *application) notFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}

func (app *application) internalError(w http.ResponseWriter, msg string, args ...any) {
	w.WriteHeader(http.StatusInternalServerError)
	app.logger.Error(msg, args...)
}

func (app *application) handleStatus(w http.ResponseWriter, r *http.Request) {
	handlers.SendMessageOrLog(w, app.logger, "ok")
}
