// Package models defines the core domain models for the wealth planner.
//
// # Models
//
//   - User: registered account that owns all other records
//   - Asset: a holding (property, shares, cash) or a liability (mortgage, loan)
//   - Loan: fixed-payment terms attached to a liability asset
//   - Expense: a recurring outflow with a tagged frequency
//
// # Design Principles
//
//  1. **Plain data**: models carry no behavior beyond construction. The
//     numeric engines in internal/calculator define their own input types
//     and the service layer maps between the two.
//  2. **Avoid circular references**: relationships use ID strings, never
//     pointers.
//  3. **Tagged variants over loose maps**: Expense.Frequency is a closed
//     enum, not a free-form field inspected at runtime.
package models
