package record

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// ISODateLayout is the layout of QuestionEvent.SolvedOn.
const ISODateLayout = "2006-01-02"

// Account is one user of the tracker. Username is the key of the account
// store and is not repeated inside the persisted record.
type Account struct {
	Username    string          `json:"-"`
	Password    string          `json:"password"`
	DisplayName string          `json:"name"`
	Logs        []LogEntry      `json:"logs"`
	Questions   []QuestionEvent `json:"questions"`
}

// LogEntry is one free-text journal entry.
type LogEntry struct {
	Text       string `json:"text"`
	CapturedOn string `json:"date"` // display format, e.g. "3/14/2025"
}

// QuestionEvent records one solved problem.
type QuestionEvent struct {
	Platform string `json:"platform"`
	Topic    string `json:"topic"`
	Number   string `json:"number"`
	SolvedOn string `json:"date"` // ISO YYYY-MM-DD
}

// Accounts is the whole account store keyed by username.
type Accounts map[string]Account

// NewAccount validates and builds an account with empty logs and questions.
// The username and display name are trimmed; the password is kept as typed.
func NewAccount(username, password, displayName string) (Account, error) {
	username = nfc(strings.TrimSpace(username))
	if username == "" {
		return Account{}, fmt.Errorf("%w: username", ErrMissingField)
	}
	if password == "" {
		return Account{}, fmt.Errorf("%w: password", ErrMissingField)
	}
	return Account{
		Username:    username,
		Password:    nfc(password),
		DisplayName: nfc(strings.TrimSpace(displayName)),
		Logs:        []LogEntry{},
		Questions:   []QuestionEvent{},
	}, nil
}

// NewLogEntry validates and builds a journal entry. Text that trims to empty
// is rejected with ErrMissingField.
func NewLogEntry(text, capturedOn string) (LogEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return LogEntry{}, fmt.Errorf("%w: log text", ErrMissingField)
	}
	return LogEntry{Text: nfc(text), CapturedOn: capturedOn}, nil
}

// NewQuestionEvent validates and builds a question event. The number is
// trimmed and must not be empty; platform and topic are resolved to their
// canonical spelling.
func NewQuestionEvent(platform, topic, number, solvedOn string) (QuestionEvent, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return QuestionEvent{}, ErrEmptyNumber
	}
	p, err := ParsePlatform(platform)
	if err != nil {
		return QuestionEvent{}, err
	}
	t, err := ParseTopic(topic)
	if err != nil {
		return QuestionEvent{}, err
	}
	if _, err := time.Parse(ISODateLayout, solvedOn); err != nil {
		return QuestionEvent{}, fmt.Errorf("invalid solved date %q: %w", solvedOn, err)
	}
	return QuestionEvent{
		Platform: p,
		Topic:    t,
		Number:   nfc(number),
		SolvedOn: solvedOn,
	}, nil
}

// Name returns the display name, falling back to the username.
func (a Account) Name() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return a.Username
}

// Clone returns a deep copy so callers can mutate logs and questions without
// aliasing the store's slices.
func (a Account) Clone() Account {
	c := a
	c.Logs = append([]LogEntry{}, a.Logs...)
	c.Questions = append([]QuestionEvent{}, a.Questions...)
	return c
}

// NormalizeCredential applies the same normalization NewAccount applies to a
// stored username or password, for comparison against user input.
func NormalizeCredential(s string) string {
	return nfc(s)
}

func nfc(s string) string {
	return norm.NFC.String(s)
}
