// Package order contains the Order aggregate and its value objects: the
// lifecycle Status state machine with its central transition table, immutable
// order Items, the PaymentMethod, and the city-scoped order code format.
//
// All status changes go through the aggregate's transition methods, which
// validate the transition table and the acting user's authority before any
// mutation, so an illegal transition never leaves partial changes behind.
package order
