//go:build vectordebug

package vector

// debugChecks enables precondition checks that the slot bounds checks
// do not already cover.
const debugChecks = true
