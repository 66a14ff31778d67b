// Package services provides domain services: business rules that span
// aggregates and do not naturally belong to a single one.
//
// The package includes:
//   - DuplicateDetector: decides whether a new order submission repeats the
//     kiosk's latest order closely enough to be a client retry.
package services
