// Package goRBAC provides a compact role-based access control engine that
// maps up to 256 permission roles onto a single 256-bit bitmap per principal,
// with Redis-backed or in-memory persistence, audit notifications, and
// fail-closed enforcement primitives.
//
// The package is designed for embedding in concurrent server workloads:
// Engine methods are safe to call from multiple goroutines after
// initialization through [Builder.Build].
//
// # Architecture boundaries
//
// goRBAC is the public surface. It exposes [Engine], [Builder], [Config], the
// [RoleStore] contract, and the audit types. The bitmap value type and the
// symbolic-name registry live in the role subpackage; HTTP guards live in
// middleware.
//
// # What this package must NOT do
//
//   - Decide who may call Grant/Revoke. Administration is self-hosted: guard
//     the mutating call sites with [Engine.RequireAny]/[Engine.RequireAll].
//   - Expose the Redis client or record encoding in its public API.
//   - Distinguish an unknown principal from one with an empty bitmap; both
//     read as the zero Role.
//
// # Performance contract
//
// HasAny/HasAll and the Require variants are the hot path: one store read,
// constant-time bitmap comparison, no allocation beyond the store round-trip.
// Grant and Revoke are allowed one optimistic read-modify-write cycle.
package goRBAC
