// Package order provides the Order aggregate and the state machine that governs its
// lifecycle from placement to completed delivery.
//
// The package includes:
//   - Order: the aggregate root tracking parties, quantities and progress
//   - Status: the externally visible lifecycle state
//   - TransitPhase: the sub-phase of the IN_TRANSIT macro-state
//   - Event: the record of each successful transition
//
// Lifecycle:
//
//	PLACED ──┬──> CONFIRMED ──> IN_TRANSIT ──> COMPLETED
//	         └──> REJECTED        │
//	                              └─ ASSIGNED ──> ACCEPTED ──> PICKED_UP
//
// Key business rules:
//   - Only the owning herder confirms or rejects a placed order
//   - Only the buyer requests transportation and confirms delivery
//   - Only the assigned transporter accepts the request and confirms pick-up
//   - No stage may be skipped or repeated; REJECTED and COMPLETED are terminal
//   - Every transition checks state, then actor, then arguments, and mutates
//     nothing unless all checks pass
package order
