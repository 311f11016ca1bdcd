package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// PrincipalResolver extracts the acting principal from a request. Returning
// false rejects the request with 401 before any role check runs.
type PrincipalResolver func(r *http.Request) (string, bool)

// PrincipalFromHeader resolves the principal from a trusted header, e.g. one
// set by an authenticating reverse proxy. Empty header values resolve to no
// principal.
func PrincipalFromHeader(name string) PrincipalResolver {
	return func(r *http.Request) (string, bool) {
		value := r.Header.Get(name)
		if value == "" {
			return "", false
		}
		return value, true
	}
}

// PrincipalFromJWT resolves the principal from the subject claim of a signed
// bearer token. The keyfunc follows the jwt package contract; tokens that
// fail signature or claim validation resolve to no principal.
func PrincipalFromJWT(keyfunc jwt.Keyfunc) PrincipalResolver {
	return func(r *http.Request) (string, bool) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			return "", false
		}

		parsed, err := jwt.Parse(token, keyfunc)
		if err != nil || !parsed.Valid {
			return "", false
		}

		subject, err := parsed.Claims.GetSubject()
		if err != nil || subject == "" {
			return "", false
		}

		return subject, true
	}
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	token := value[len(bearer):]
	if token == "" {
		return "", false
	}

	return token, true
}
