package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrTeamNotFound          = errors.New("team not found")
	ErrTeamAmbiguous         = errors.New("team key matches more than one team")
)
