package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

var (
	// NoMessageOnWireError reports that the request is missing a message.
	NoMessageOnWireError = New("no message on wire")
	// MissingRunConfigurationError reports that a request did not name a run configuration.
	MissingRunConfigurationError = New("run configuration is required")
	// SessionNotRegisteredError reports a request from an IDE session that has not sent its workspace root yet.
	SessionNotRegisteredError = New("session is not registered with a workspace root")
)

// IsBadRequest reports whether the error is a bad request from the caller.
func IsBadRequest(e error) bool {
	return stderr.Is(e, NoMessageOnWireError) || stderr.Is(e, MissingRunConfigurationError) || stderr.Is(e, SessionNotRegisteredError)
}
