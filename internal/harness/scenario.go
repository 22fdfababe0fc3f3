package harness

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/codelog/internal/record"
	"github.com/roach88/codelog/internal/stats"
)

// DefaultStart is the clock date used when a scenario sets no start.
const DefaultStart = "2025-01-01"

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Start is the ISO date the fixed clock starts on.
	Start string `yaml:"start,omitempty"`

	// Flow contains the steps to run, in order.
	Flow []FlowStep `yaml:"flow"`

	// Assertions validate the final state.
	Assertions []Assertion `yaml:"assertions"`
}

// FlowStep invokes one operation and optionally checks its outcome.
type FlowStep struct {
	// Invoke is the operation name (see the Step* constants).
	Invoke string `yaml:"invoke"`

	// Args contains the operation arguments.
	Args map[string]interface{} `yaml:"args"`

	// Expect specifies the expected outcome. If nil the step must succeed.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies expected step behavior.
type ExpectClause struct {
	// Error is the expected error name (e.g. "UserExists"). Empty means the
	// step must succeed.
	Error string `yaml:"error,omitempty"`

	// Suggestion is the suggestion save_log must return.
	Suggestion string `yaml:"suggestion,omitempty"`
}

// Operation names a flow step can invoke.
const (
	StepSignup         = "signup"
	StepLogin          = "login"
	StepLogout         = "logout"
	StepSaveLog        = "save_log"
	StepLogQuestion    = "log_question"
	StepRemoveQuestion = "remove_question"
	StepAdvanceDays    = "advance_days"
	StepReopen         = "reopen"
	StepClearAccounts  = "clear_accounts"
)

var knownSteps = map[string]bool{
	StepSignup:         true,
	StepLogin:          true,
	StepLogout:         true,
	StepSaveLog:        true,
	StepLogQuestion:    true,
	StepRemoveQuestion: true,
	StepAdvanceDays:    true,
	StepReopen:         true,
	StepClearAccounts:  true,
}

// errorNames maps the names used in expect clauses to sentinel errors.
var errorNames = map[string]error{
	"MissingField":           record.ErrMissingField,
	"UserExists":             record.ErrUserExists,
	"InvalidCredentials":     record.ErrInvalidCredentials,
	"EmptyNumber":            record.ErrEmptyNumber,
	"UnknownPlatform":        record.ErrUnknownPlatform,
	"UnknownTopic":           record.ErrUnknownTopic,
	"SessionAccountNotFound": record.ErrSessionAccountNotFound,
	"IndexOutOfRange":        record.ErrIndexOutOfRange,
	"NotLoggedIn":            record.ErrNotLoggedIn,
}

// Assertion validates the final state.
type Assertion struct {
	// Type specifies the assertion type:
	// - "logged_in": a session for User is restored
	// - "logged_out": no session is restored
	// - "welcome": the dashboard welcome equals Text
	// - "platform_counts": per-platform counts equal Platforms, in order
	// - "growth": the growth series equals Labels and Data
	// - "suggestion": the dashboard suggestion equals Text
	// - "question_count": the session has Count questions
	// - "log_count": the session has Count journal entries
	Type string `yaml:"type"`

	User      string                `yaml:"user,omitempty"`
	Text      string                `yaml:"text,omitempty"`
	Platforms []stats.PlatformCount `yaml:"platforms,omitempty"`
	Labels    []string              `yaml:"labels,omitempty"`
	Data      []int                 `yaml:"data,omitempty"`
	Count     *int                  `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertLoggedIn       = "logged_in"
	AssertLoggedOut      = "logged_out"
	AssertWelcome        = "welcome"
	AssertPlatformCounts = "platform_counts"
	AssertGrowth         = "growth"
	AssertSuggestion     = "suggestion"
	AssertQuestionCount  = "question_count"
	AssertLogCount       = "log_count"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "assertion:" vs "assertions:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Start != "" {
		if _, err := time.Parse(record.ISODateLayout, s.Start); err != nil {
			return fmt.Errorf("start: %w", err)
		}
	}

	if len(s.Flow) == 0 {
		return fmt.Errorf("flow list is required and must be non-empty")
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, step := range s.Flow {
		if step.Invoke == "" {
			return fmt.Errorf("flow[%d]: invoke is required", i)
		}
		if !knownSteps[step.Invoke] {
			return fmt.Errorf("flow[%d]: unknown operation %q", i, step.Invoke)
		}
		if step.Args == nil {
			return fmt.Errorf("flow[%d]: args is required (use empty map if no args)", i)
		}
		if step.Expect != nil && step.Expect.Error != "" {
			if _, ok := errorNames[step.Expect.Error]; !ok {
				return fmt.Errorf("flow[%d].expect: unknown error %q", i, step.Expect.Error)
			}
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertLoggedIn:
		if a.User == "" {
			return fmt.Errorf("assertions[%d]: user is required for logged_in", index)
		}
	case AssertLoggedOut, AssertPlatformCounts:
	case AssertWelcome, AssertSuggestion:
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for %s", index, a.Type)
		}
	case AssertGrowth:
		if len(a.Labels) != len(a.Data) {
			return fmt.Errorf("assertions[%d]: labels and data must have the same length", index)
		}
	case AssertQuestionCount, AssertLogCount:
		if a.Count == nil || *a.Count < 0 {
			return fmt.Errorf("assertions[%d]: non-negative count is required for %s", index, a.Type)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
