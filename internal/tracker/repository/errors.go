package repository

import "errors"

var (
	ErrTrackerNotFound = errors.New("repository: tracker not found")
)
