package loader

import "fmt"

// ConfigurationError reports missing or invalid construction parameters.
// It is never retried.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return e.Msg
}

// RemoteServiceError reports a failed media platform call: session
// establishment, media lookup, or caption asset lookup.
type RemoteServiceError struct {
	Op  string
	Err error
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}

// CaptionUnavailableError reports a selected caption track whose contents
// could not be resolved, fetched, or parsed. It aborts the load that
// encountered it.
type CaptionUnavailableError struct {
	CaptionID string
	Err       error
}

func (e *CaptionUnavailableError) Error() string {
	return fmt.Sprintf("caption %s unavailable: %v", e.CaptionID, e.Err)
}

func (e *CaptionUnavailableError) Unwrap() error {
	return e.Err
}
