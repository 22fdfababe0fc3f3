package record

import "errors"

// Sentinel errors shared by the tracker components. Callers wrap them with
// context and match them with errors.Is.
var (
	// ErrMissingField reports a required input that is empty.
	ErrMissingField = errors.New("missing field")

	// ErrUserExists reports a sign-up for a username that is already taken.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials reports a failed login. It deliberately does not
	// say whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmptyNumber reports a question event without a problem number.
	ErrEmptyNumber = errors.New("question number is empty")

	// ErrUnknownPlatform reports a platform outside Platforms.
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrUnknownTopic reports a topic outside Topics.
	ErrUnknownTopic = errors.New("unknown topic")

	// ErrSessionAccountNotFound reports a session whose username no longer
	// resolves to an account.
	ErrSessionAccountNotFound = errors.New("session account not found")

	// ErrIndexOutOfRange reports a removal position outside the event list.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotLoggedIn reports a session-scoped operation without a session.
	ErrNotLoggedIn = errors.New("not logged in")
)
