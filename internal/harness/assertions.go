package harness

import (
	"context"
	"fmt"
	"slices"

	"github.com/roach88/codelog/internal/stats"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion failed: %s: expected %s, actual %s", e.Type, e.Expected, e.Actual)
}

// evaluate checks one assertion against the current state.
func (h *Harness) evaluate(ctx context.Context, a Assertion) error {
	switch a.Type {
	case AssertLoggedIn, AssertLoggedOut:
		return h.assertSession(ctx, a)
	case AssertQuestionCount:
		qs, err := h.tracker.Questions(ctx)
		if err != nil {
			return err
		}
		return assertCount(a, len(qs))
	case AssertLogCount:
		logs, err := h.tracker.Logs(ctx)
		if err != nil {
			return err
		}
		return assertCount(a, len(logs))
	}

	d, err := h.tracker.Dashboard(ctx)
	if err != nil {
		return err
	}

	switch a.Type {
	case AssertWelcome:
		return assertText(a, d.Welcome)
	case AssertSuggestion:
		return assertText(a, d.Suggestion)
	case AssertPlatformCounts:
		return assertPlatformCounts(a, d.Platforms)
	case AssertGrowth:
		return assertGrowth(a, d.Growth)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

func (h *Harness) assertSession(ctx context.Context, a Assertion) error {
	sess, err := h.tracker.Restore(ctx)
	if err != nil {
		return err
	}

	actual := "logged out"
	if sess != nil {
		actual = "logged in as " + sess.Username
	}
	expected := "logged out"
	if a.Type == AssertLoggedIn {
		expected = "logged in as " + a.User
	}
	if actual != expected {
		return &AssertionError{Type: a.Type, Expected: expected, Actual: actual}
	}
	return nil
}

func assertText(a Assertion, actual string) error {
	if actual != a.Text {
		return &AssertionError{Type: a.Type, Expected: fmt.Sprintf("%q", a.Text), Actual: fmt.Sprintf("%q", actual)}
	}
	return nil
}

func assertCount(a Assertion, actual int) error {
	if actual != *a.Count {
		return &AssertionError{Type: a.Type, Expected: fmt.Sprint(*a.Count), Actual: fmt.Sprint(actual)}
	}
	return nil
}

// assertPlatformCounts compares in order; nil and empty are equal.
func assertPlatformCounts(a Assertion, actual []stats.PlatformCount) error {
	if !slices.Equal(a.Platforms, actual) {
		return &AssertionError{Type: a.Type, Expected: fmt.Sprint(a.Platforms), Actual: fmt.Sprint(actual)}
	}
	return nil
}

func assertGrowth(a Assertion, actual stats.Series) error {
	if !slices.Equal(a.Labels, actual.Labels) || !slices.Equal(a.Data, actual.Data) {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("%v %v", a.Labels, a.Data),
			Actual:   fmt.Sprintf("%v %v", actual.Labels, actual.Data),
		}
	}
	return nil
}
