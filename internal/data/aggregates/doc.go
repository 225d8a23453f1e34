// Package aggregates implements the write side of the village domain.
//
// An aggregate composes the table repos in internal/data/repos inside one transaction
// (TxRunner), translates driver errors through MapError and reports every write to Hooks.
// Services never call repo write methods directly.
package aggregates
