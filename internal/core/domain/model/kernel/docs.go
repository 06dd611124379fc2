// Package kernel contains shared value objects used across all aggregates:
// identifiers (UUID), the closed set of delivery cities with their order-code
// prefixes, and the authenticated Actor with its role. These types carry their
// own validation so aggregates can rely on them being well-formed.
package kernel
