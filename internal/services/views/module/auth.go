package module

import (
	"crypto/subtle"
	"net/http"
	"strings"

	perr "skythread/internal/platform/errors"
)

// tokenAuth guards the analytics routes with a static bearer token.
// It satisfies middleware.AuthPort
type tokenAuth struct {
	token string
}

func (a tokenAuth) Parse(r *http.Request) (userID string, tenantID string, err error) {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	const scheme = "Bearer "
	if !strings.HasPrefix(raw, scheme) {
		return "", "", perr.Unauthorizedf("missing bearer token")
	}
	got := strings.TrimSpace(raw[len(scheme):])
	if subtle.ConstantTimeCompare([]byte(got), []byte(a.token)) != 1 {
		return "", "", perr.Unauthorizedf("invalid bearer token")
	}
	return "admin", "", nil
}
