package http

import (
	"errors"
	"net/http"

	"brandpulse-srv/internal/tracker"
	pkgErrors "brandpulse-srv/pkg/errors"
)

var (
	errTrackerNotFound   = pkgErrors.NewHTTPError(http.StatusNotFound, "Tracker not found")
	errInvalidInfluencer = pkgErrors.NewHTTPError(http.StatusBadRequest, "Influencer is required and must be at most 100 characters")
	errInvalidBrand      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Brand is required and must be at most 100 characters")
	errInvalidPlatform   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Platform must be one of instagram, youtube, tiktok, twitter")
	errNotesTooLong      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Notes must be at most 500 characters")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, tracker.ErrTrackerNotFound):
		return errTrackerNotFound
	case errors.Is(err, tracker.ErrInvalidInfluencer):
		return errInvalidInfluencer
	case errors.Is(err, tracker.ErrInvalidBrand):
		return errInvalidBrand
	case errors.Is(err, tracker.ErrInvalidPlatform):
		return errInvalidPlatform
	case errors.Is(err, tracker.ErrNotesTooLong):
		return errNotesTooLong
	default:
		return err
	}
}
