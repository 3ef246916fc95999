package analysis

import "errors"

var (
	ErrInvalidInfluencer = errors.New("influencer is required")
	ErrInvalidBrand      = errors.New("brand is required")
	ErrInvalidPlatform   = errors.New("platform must be one of instagram, youtube, tiktok, twitter")
	ErrInvalidLimit      = errors.New("limit is out of range")
	ErrEmptyCorpus       = errors.New("post corpus is empty")
)

// ParseError reports a model response the normalizer could not read at all.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return "parse llm response: " + e.Reason + ": " + e.Err.Error()
	}
	return "parse llm response: " + e.Reason
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
