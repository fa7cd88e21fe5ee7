package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrOutOfRange    = errors.New("coordinates are out of range")
	ErrInvalidPlayer = errors.New("invalid player")
)
