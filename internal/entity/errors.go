package entity

import "errors"

var (
	// Layout errors
	ErrInvalidLayout = errors.New("invalid layout")
	ErrInvalidColor  = errors.New("invalid color")
	ErrInvalidPoint  = errors.New("invalid point")
)
