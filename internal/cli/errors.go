package cli

import (
	"errors"

	"github.com/roach88/codelog/internal/record"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric      = "E001" // Generic/unknown error
	ErrCodeDatabase     = "E002" // Database could not be opened or written
	ErrCodeRules        = "E003" // Rules file could not be loaded
	ErrCodeInvalidInput = "E004" // Malformed argument (e.g., non-integer index)

	// Account and session errors
	ErrCodeMissingField       = "E101" // Required input empty
	ErrCodeUserExists         = "E102" // Username taken
	ErrCodeInvalidCredentials = "E103" // Login failed
	ErrCodeNotLoggedIn        = "E104" // No active session
	ErrCodeAccountNotFound    = "E105" // Session account vanished

	// Question log errors
	ErrCodeEmptyNumber     = "E111" // Question number empty
	ErrCodeUnknownPlatform = "E112" // Platform outside the enumerated set
	ErrCodeUnknownTopic    = "E113" // Topic outside the enumerated set
	ErrCodeIndexOutOfRange = "E114" // Removal position outside the list
)

// errorMapping ties a sentinel to its code and the message shown for it.
// An empty message means the wrapped error text is shown.
type errorMapping struct {
	err     error
	code    string
	message string
}

var userErrors = []errorMapping{
	{record.ErrMissingField, ErrCodeMissingField, ""},
	{record.ErrUserExists, ErrCodeUserExists, "User already exists"},
	// Never say which half of the credentials was wrong.
	{record.ErrInvalidCredentials, ErrCodeInvalidCredentials, "Invalid credentials"},
	{record.ErrNotLoggedIn, ErrCodeNotLoggedIn, "Not logged in. Run 'codelog login' first."},
	{record.ErrSessionAccountNotFound, ErrCodeAccountNotFound, ""},
	{record.ErrEmptyNumber, ErrCodeEmptyNumber, "Enter question number"},
	{record.ErrUnknownPlatform, ErrCodeUnknownPlatform, ""},
	{record.ErrUnknownTopic, ErrCodeUnknownTopic, ""},
	{record.ErrIndexOutOfRange, ErrCodeIndexOutOfRange, ""},
}

// MapError returns the error code, display message and exit code for err.
// Errors carrying a record sentinel are user errors; anything else is a
// command error.
func MapError(err error) (code, message string, exitCode int) {
	for _, m := range userErrors {
		if errors.Is(err, m.err) {
			message = m.message
			if message == "" {
				message = err.Error()
			}
			return m.code, message, ExitFailure
		}
	}
	return ErrCodeGeneric, err.Error(), ExitCommandError
}

// fail reports err through the formatter and returns the ExitError the
// command should return.
func fail(f *OutputFormatter, err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		reason := exitErr.Reason
		if reason == "" {
			reason = ErrCodeGeneric
		}
		_ = f.Error(reason, exitErr.Error(), nil)
		return exitErr
	}

	code, message, exit := MapError(err)
	_ = f.Error(code, message, nil)
	return &ExitError{Code: exit, Reason: code, Message: message, Err: err}
}

// codedError builds an ExitError carrying a CLI error code.
func codedError(exit int, reason, message string, err error) *ExitError {
	e := WrapExitError(exit, message, err)
	e.Reason = reason
	return e
}
