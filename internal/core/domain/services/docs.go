// Package services contains stateless domain services: the pricing engine,
// the settlement calculator, and the inventory planner. All three are pure
// functions over aggregates; command handlers apply their outputs inside a
// single unit of work.
package services
