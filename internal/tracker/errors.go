package tracker

import "errors"

var (
	ErrTrackerNotFound   = errors.New("tracker not found")
	ErrInvalidInfluencer = errors.New("influencer is required and must be at most 100 characters")
	ErrInvalidBrand      = errors.New("brand is required and must be at most 100 characters")
	ErrInvalidPlatform   = errors.New("platform must be one of instagram, youtube, tiktok, twitter")
	ErrNotesTooLong      = errors.New("notes must be at most 500 characters")
)
