package repository

import "errors"

var (
	ErrAppendFailed = errors.New("failed to append ticket")
)
