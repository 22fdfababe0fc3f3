package harness

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/roach88/codelog/internal/accounts"
	"github.com/roach88/codelog/internal/store"
	"github.com/roach88/codelog/internal/testutil"
	"github.com/roach88/codelog/internal/tracker"
)

// Harness is the test execution engine.
// It runs scenarios with a fixed clock and sequential action IDs.
type Harness struct {
	path    string
	store   *store.Store
	tracker *tracker.Tracker
	clock   *testutil.FixedClock
	ids     *testutil.SequentialIDGenerator
}

// Run executes a test scenario in dir and returns the result.
//
// Each scenario runs against a fresh database file in dir, which must be
// empty or unique per call (t.TempDir() in tests).
//
// Execution flow:
// 1. Open a fresh database with a fixed clock
// 2. Execute flow steps, checking each expect clause
// 3. Evaluate assertions against the final state
// 4. Return result with pass/fail, trace, and errors
//
// Returns an error only when the harness itself fails (database
// unavailable, malformed step args); scenario mismatches are reported in
// the result.
func Run(ctx context.Context, scenario *Scenario, dir string) (*Result, error) {
	start := scenario.Start
	if start == "" {
		start = DefaultStart
	}

	h := &Harness{
		path:  filepath.Join(dir, scenario.Name+".db"),
		clock: testutil.NewFixedClockOn(start),
		ids:   testutil.NewSequentialIDGenerator(scenario.Name),
	}
	if err := h.open(); err != nil {
		return nil, err
	}
	// reopen replaces h.store
	defer func() { h.store.Close() }()

	result := NewResult()
	if err := h.executeFlow(ctx, scenario.Flow, result); err != nil {
		return nil, err
	}

	for i, a := range scenario.Assertions {
		if err := h.evaluate(ctx, a); err != nil {
			result.AddError(fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}

	return result, nil
}

// open opens the database file and builds a tracker over it, the way a new
// process would.
func (h *Harness) open() error {
	st, err := store.Open(h.path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	h.store = st
	h.tracker = tracker.New(st, tracker.WithClock(h.clock), tracker.WithActionIDs(h.ids))
	return nil
}

// executeFlow runs each step and checks its expect clause.
func (h *Harness) executeFlow(ctx context.Context, flow []FlowStep, result *Result) error {
	for i, step := range flow {
		suggestion, stepErr, err := h.execute(ctx, step)
		if err != nil {
			return fmt.Errorf("flow[%d] %s: %w", i, step.Invoke, err)
		}

		outcome := "ok"
		if stepErr != nil {
			outcome = errorName(stepErr)
		}
		result.AddTrace(step.Invoke, step.Args, outcome)

		want := "ok"
		if step.Expect != nil && step.Expect.Error != "" {
			want = step.Expect.Error
		}
		if outcome != want {
			result.AddError(fmt.Sprintf("flow[%d] %s: expected %s, got %s (%v)", i, step.Invoke, want, outcome, stepErr))
			continue
		}
		if step.Expect != nil && step.Expect.Suggestion != "" && suggestion != step.Expect.Suggestion {
			result.AddError(fmt.Sprintf("flow[%d] %s: expected suggestion %q, got %q", i, step.Invoke, step.Expect.Suggestion, suggestion))
		}
	}
	return nil
}

// execute runs one step. stepErr is the operation's own error, which the
// scenario may expect; err is a harness failure.
func (h *Harness) execute(ctx context.Context, step FlowStep) (suggestion string, stepErr, err error) {
	args := step.Args

	switch step.Invoke {
	case StepSignup:
		_, stepErr = h.tracker.SignUp(ctx, stringArg(args, "username"), stringArg(args, "password"), stringArg(args, "name"))
	case StepLogin:
		_, _, stepErr = h.tracker.Login(ctx, stringArg(args, "username"), stringArg(args, "password"))
	case StepLogout:
		stepErr = h.tracker.Logout(ctx)
	case StepSaveLog:
		_, suggestion, stepErr = h.tracker.SaveLog(ctx, stringArg(args, "text"))
	case StepLogQuestion:
		_, _, stepErr = h.tracker.LogQuestion(ctx, stringArg(args, "platform"), stringArg(args, "topic"), stringArg(args, "number"))
	case StepRemoveQuestion:
		index, err := intArg(args, "index")
		if err != nil {
			return "", nil, err
		}
		_, _, stepErr = h.tracker.RemoveQuestion(ctx, index)
	case StepAdvanceDays:
		days, err := intArg(args, "days")
		if err != nil {
			return "", nil, err
		}
		h.clock.AdvanceDays(days)
	case StepReopen:
		if err := h.store.Close(); err != nil {
			return "", nil, err
		}
		if err := h.open(); err != nil {
			return "", nil, err
		}
		_, stepErr = h.tracker.Restore(ctx)
	case StepClearAccounts:
		if err := h.store.Delete(ctx, accounts.UsersKey); err != nil {
			return "", nil, err
		}
	default:
		return "", nil, fmt.Errorf("unknown operation %q", step.Invoke)
	}
	return suggestion, stepErr, nil
}

// errorName returns the expect-clause name of err's sentinel, or its text
// when it carries none.
func errorName(err error) string {
	for name, sentinel := range errorNames {
		if errors.Is(err, sentinel) {
			return name
		}
	}
	return err.Error()
}

// stringArg returns args[key] as a string. YAML scalars such as numbers are
// formatted, so `number: 1` and `number: "1"` are equivalent.
func stringArg(args map[string]interface{}, key string) string {
	switch v := args[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}

func intArg(args map[string]interface{}, key string) (int, error) {
	v, ok := args[key].(int)
	if !ok {
		return 0, fmt.Errorf("arg %q must be an integer, got %T", key, args[key])
	}
	return v, nil
}
