// Package aggregates defines domain-facing aggregate contracts.
//
// Contracts avoid persistence and transport details. Each write method is a boundary where
// invariants must hold atomically.
package aggregates
