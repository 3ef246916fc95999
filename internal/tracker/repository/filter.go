package repository

import (
	"strings"

	"brandpulse-srv/internal/model"
)

// Match reports whether t passes the list filters.
func (o ListOptions) Match(t model.Tracker) bool {
	if o.Brand != "" && !strings.EqualFold(o.Brand, t.Brand) {
		return false
	}
	if o.Platform != "" && o.Platform != t.Platform {
		return false
	}
	return true
}
