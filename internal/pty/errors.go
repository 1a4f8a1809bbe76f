package pty

import (
	"github.com/pkg/errors"
)

// errors
var (
	ErrDoesNotExist  = errors.New("object does not exist")
	ErrInvalidSchema = errors.New("invalid schema, expected 'tag' or 'code'")
	ErrUnknownSeed   = errors.New("unknown seed list")
)
