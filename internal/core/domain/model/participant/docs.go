// Package participant provides the registered profiles of supply-chain participants:
// herders, slaughterhouses and transporters.
//
// Key business rules:
//   - Each profile kind has its own id space, assigned sequentially from FirstID
//   - A principal owns at most one profile of each kind
//   - Prices and livestock counts are stored as declared; only non-negativity is checked
//   - Profiles are immutable once registered
package participant
