package domain

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidID    = errors.New("invalid id")
	ErrIDMismatch   = errors.New("rate id does not match path id")
	ErrDuplicateID  = errors.New("duplicate id")
	ErrUnavailable  = errors.New("reservation is unavailable during this time")
	ErrInvalidTable = errors.New("no table for the requested entity type")
)
