package compdb

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrTraversal     = errors.New("scanning sources")
	ErrPath          = errors.New("resolving source path")
	ErrWrite         = errors.New("writing database")
)
