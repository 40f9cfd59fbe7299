package main

import (
	"fmt"
	"strings"
)

type gameMove uint8

const (
	moveReveal gameMove = iota + 1
	moveFlag
)

var errBadMove = fmt.Errorf("move must be one of 'reveal', 'flag'")

func decodeGameMove(s string) (gameMove, error) {
	switch strings.ToLower(s) {
	case "reveal":
		return moveReveal, nil
	case "flag":
		return moveFlag, nil
	default:
		return 0, errBadMove
	}
}
