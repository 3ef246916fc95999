package http

import (
	"errors"
	"net/http"

	"brandpulse-srv/internal/analysis"
	pkgErrors "brandpulse-srv/pkg/errors"
)

var (
	errInvalidInfluencer = pkgErrors.NewHTTPError(http.StatusBadRequest, "Influencer is required and must be at most 100 characters")
	errInvalidBrand      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Brand is required and must be at most 100 characters")
	errInvalidPlatform   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Platform must be one of instagram, youtube, tiktok, twitter")
	errInvalidLimit      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Limit is out of range")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrInvalidInfluencer):
		return errInvalidInfluencer
	case errors.Is(err, analysis.ErrInvalidBrand):
		return errInvalidBrand
	case errors.Is(err, analysis.ErrInvalidPlatform):
		return errInvalidPlatform
	case errors.Is(err, analysis.ErrInvalidLimit):
		return errInvalidLimit
	default:
		return err
	}
}
