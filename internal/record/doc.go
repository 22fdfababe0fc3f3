// Package record defines the persisted records of the tracker: accounts,
// journal entries and question events, plus the canonical codec used to write
// the account store.
//
// This package imports nothing internal. Every other internal package builds
// on it.
//
// Key constraints:
//   - Records are validated at construction (NewAccount, NewLogEntry,
//     NewQuestionEvent); the zero value of a record is never persisted.
//   - All text is NFC normalized at construction, so exact string equality
//     survives a round trip through the store.
//   - JSON field names follow the persisted layout: "name", "logs",
//     "questions", "date".
package record
