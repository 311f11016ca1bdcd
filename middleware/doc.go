// Package middleware provides net/http guards that enforce goRBAC role
// membership at the edge of a handler chain.
//
// A guard is built from a [PrincipalResolver] (where the caller identity
// comes from) and a required role bitmap. [RequireAny] passes when the
// principal holds at least one required bit, [RequireAll] when it holds them
// all. Requests without a resolvable principal get 401; failed checks get
// 403; a store failure gets 503 — the guard never fails open.
//
// # What this package must NOT do
//
//   - Mutate role assignments. Guards are read-only consumers of the engine.
//   - Invent principals: a request with no resolvable identity is rejected,
//     not defaulted.
package middleware
