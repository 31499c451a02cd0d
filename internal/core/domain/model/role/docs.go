// Package role implements the identity and role registry rules.
//
// The package includes:
//   - Role: the category a principal acts under (Herder, Slaughterhouse, Transporter)
//   - Assignment: the aggregate binding one principal to one role
//
// Key business rules:
//   - A principal holds at most one role, chosen exactly once
//   - Once chosen, a role is immutable
//   - Profile registration requires the matching role
//   - Buyers are not a role; any principal may place orders
package role
