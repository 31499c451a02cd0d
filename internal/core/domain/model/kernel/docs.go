// Package kernel provides core domain primitives shared by the registry and the
// order lifecycle.
//
// The package includes:
//   - Principal: the identity of the actor issuing an operation
//
// Principals are immutable value objects. They are never created or destroyed by the
// engine, only observed on incoming operations and compared against the actors
// recorded on profiles and orders.
package kernel
