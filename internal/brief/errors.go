package brief

import "errors"

var (
	ErrTrackerRequired = errors.New("tracker_id is required")
	ErrTrackerNotFound = errors.New("tracker not found")
)
