// Package role provides the immutable 256-bit role bitmap value type and the
// symbolic-name registry used by goRBAC membership checks.
//
// # Value semantics
//
// [Role] is a plain value: every operation ([Encode], [Combine], [Role.Union],
// [Role.Difference]) returns a new value and never mutates an operand. Two
// Roles are equal iff their bitmaps are equal, so == works and Roles can be
// used as map keys. The zero value is the empty bitmap.
//
// # Architecture boundaries
//
// This package is a pure in-memory data structure with no I/O. It provides the
// codec ([Role.Bytes]/[FromBytes]) used by the engine's persisted records and
// the hex form ([Role.Hex]/[ParseHex]) used in audit payloads.
//
// # What this package must NOT do
//
//   - Access Redis, databases, or the network.
//   - Import goRBAC or middleware.
//   - Grow beyond 256 bits; identifier width is fixed by the uint8 domain.
package role
