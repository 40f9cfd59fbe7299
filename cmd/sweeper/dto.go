package main

import (
	"github.com/gorilla/schema"

	"github.com/rylanh006/minesweeper/internal/board"
)

type newGameDTO struct {
	Width      int    `schema:"width"`
	Height     int    `schema:"height"`
	MineCount  int    `schema:"mine_count"`
	Difficulty string `schema:"difficulty"`
}

func parseNewGameDTO(src map[string][]string) (newGameDTO, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto newGameDTO
	err := dec.Decode(&dto, src)
	return dto, err
}

// Params resolves either a difficulty preset or explicit dimensions; the
// engine validates the result either way.
func (dto newGameDTO) Params() (board.Params, error) {
	if dto.Difficulty != "" {
		return board.ParseDifficulty(dto.Difficulty)
	}
	return board.Params{
		Width:     dto.Width,
		Height:    dto.Height,
		MineCount: dto.MineCount,
	}, nil
}

type position struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func parsePosition(src map[string][]string) (position, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var pos position
	err := dec.Decode(&pos, src)
	return pos, err
}
