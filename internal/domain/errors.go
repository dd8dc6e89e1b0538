package domain

import "errors"

var (
	ErrSampleTooLarge    = errors.New("sample larger than population")
	ErrCatalogInvalid    = errors.New("almanac catalog invalid")
	ErrUpstreamLLM       = errors.New("upstream LLM failure")
	ErrMalformedResponse = errors.New("LLM returned malformed analysis")
)
