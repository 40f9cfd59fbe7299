package main

import (
	"strconv"

	"github.com/rylanh006/minesweeper/internal/board"
	"github.com/rylanh006/minesweeper/internal/session"
)

// sessionDTO exposes only the display surface of a game: glyph grid,
// dimensions and outcome. Mine positions never leave the server.
type sessionDTO struct {
	SessionId string     `json:"session_id"`
	Grid      board.View `json:"grid"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	MineCount int        `json:"mine_count"`
	GameOver  bool       `json:"game_over"`
	Win       bool       `json:"win"`
	StartedAt int64      `json:"started_at"`
	EndedAt   *int64     `json:"ended_at,omitempty"`
}

func newSessionDTO(s *session.Session) *sessionDTO {
	dto := &sessionDTO{
		SessionId: strconv.FormatInt(s.Id, 10),
		StartedAt: s.StartedAt.UnixMilli(),
	}
	s.Do(func(b *board.Board) {
		dto.Grid = b.View()
		dto.Width = b.Width()
		dto.Height = b.Height()
		dto.MineCount = b.MineCount()
		dto.GameOver = b.GameOver()
		dto.Win = b.Win()
	})
	if endedAt := s.EndedAt(); endedAt != nil {
		e := endedAt.UnixMilli()
		dto.EndedAt = &e
	}
	return dto
}
