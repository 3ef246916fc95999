package http

import (
	"net/http"

	"brandpulse-srv/internal/brief"
	pkgErrors "brandpulse-srv/pkg/errors"
	"brandpulse-srv/pkg/response"
)

var errMapping = response.ErrorMapping{
	brief.ErrTrackerRequired: pkgErrors.NewHTTPError(http.StatusBadRequest, "tracker_id is required"),
	brief.ErrTrackerNotFound: pkgErrors.NewHTTPError(http.StatusNotFound, "Tracker not found"),
}
