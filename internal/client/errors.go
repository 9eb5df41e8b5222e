package client

import "errors"

var (
	ErrNilAdapter     = errors.New("adapter is nil")
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingFlag    = errors.New("missing required flag")
)
