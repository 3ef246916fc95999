package model

import "time"

// Tracker - An influencer/brand pair followed on the dashboard
type Tracker struct {
	ID         string    `json:"id"`
	Influencer string    `json:"influencer"`
	Brand      string    `json:"brand"`
	Platform   Platform  `json:"platform"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
