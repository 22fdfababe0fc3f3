package tracker

import "github.com/google/uuid"

// ActionIDGenerator mints the correlation ID attached to every log line an
// operation emits. Implemented by UUIDv7Generator and, in tests,
// testutil.SequentialIDGenerator.
type ActionIDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 action IDs.
//
// Stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate returns a new hyphenated UUIDv7.
//
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
