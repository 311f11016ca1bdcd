package goRBAC

import "errors"

var (
	// ErrAuthorizationDenied is returned by RequireAny and RequireAll when the
	// principal's bitmap does not satisfy the required roles. The enclosing
	// operation must not proceed past the check.
	ErrAuthorizationDenied = errors.New("authorization denied")
	// ErrEngineNotReady is returned when an Engine method is called on a nil
	// or unbuilt engine.
	ErrEngineNotReady = errors.New("engine not initialized")
	// ErrStoreUnavailable wraps backend I/O failures. Enforcement fails closed
	// when the bitmap cannot be read.
	ErrStoreUnavailable = errors.New("role store unavailable")
	// ErrRoleNameUnknown is returned by Engine.Roles for unregistered names.
	ErrRoleNameUnknown = errors.New("role name not registered")
	// ErrRegistryNotConfigured is returned by Engine.Roles when the engine was
	// built without role names.
	ErrRegistryNotConfigured = errors.New("role registry not configured")
)
