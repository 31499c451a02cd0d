// Package queries contains read-only operations over the latest committed state.
// Query handlers read through the reader ports and never open a unit of work, so
// they do not wait for state-mutating operations in progress.
package queries
