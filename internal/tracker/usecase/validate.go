package usecase

import (
	"strings"
	"unicode/utf8"

	"brandpulse-srv/internal/model"
	"brandpulse-srv/internal/tracker"
)

func validateName(value string, invalid error) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" || utf8.RuneCountInString(value) > tracker.MaxNameLength {
		return "", invalid
	}
	return value, nil
}

// validatePlatform lowercases the platform. Empty means instagram.
func validatePlatform(value string) (model.Platform, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return model.PlatformInstagram, nil
	}
	p := model.Platform(value)
	if !p.IsValid() {
		return "", tracker.ErrInvalidPlatform
	}
	return p, nil
}

func validateNotes(value string) (string, error) {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > tracker.MaxNotesLength {
		return "", tracker.ErrNotesTooLong
	}
	return value, nil
}
