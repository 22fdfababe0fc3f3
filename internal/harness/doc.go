// Package harness runs scripted CodeLog sessions as conformance tests.
//
// A scenario is a YAML file listing tracker operations to perform, each
// optionally expecting a specific error, followed by assertions on the
// final state:
//
//	name: remove_drops_platform
//	description: "Removing the last event for a platform drops the platform"
//	start: "2025-03-14"
//	flow:
//	  - invoke: signup
//	    args: { username: alice, password: secret }
//	  - invoke: login
//	    args: { username: alice, password: secret }
//	  - invoke: log_question
//	    args: { platform: AtCoder, topic: Math, number: abc100_a }
//	  - invoke: remove_question
//	    args: { index: 5 }
//	    expect: { error: IndexOutOfRange }
//	assertions:
//	  - type: platform_counts
//	    platforms: [{ platform: AtCoder, count: 1 }]
//
// Besides the tracker operations, a flow can advance the clock
// (advance_days), simulate a new process on the same database (reopen) and
// wipe the account store underneath a live session (clear_accounts).
//
// # Deterministic Testing
//
// Every scenario runs against a fresh SQLite file with a fixed clock and
// sequential action IDs, so the step trace is identical across runs and can
// be compared against a golden file with RunWithGolden.
package harness
