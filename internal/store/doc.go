// Package store provides SQLite-backed durable storage for the tracker.
//
// The store is a small string-keyed key-value table. The tracker keeps two
// entries in it:
//   - "users": the canonical JSON account store
//   - "currentUser": the active username, absent when logged out
//
// # Consistency
//
// Update runs a read-modify-write of one key inside a single immediate
// transaction. Callers that mutate the account store always go through
// Update, so the value they modify is the value on disk at that moment, even
// if another process wrote it in between.
//
// Every write bumps the key's revision. Revisions are logical counters, never
// timestamps.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - _txlock=immediate: Transactions take the write lock up front
package store
