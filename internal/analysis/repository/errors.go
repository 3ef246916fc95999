package repository

import "errors"

var (
	ErrCacheMiss = errors.New("repository: analysis not cached")
)
