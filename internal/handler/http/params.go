package http

import (
	"net/http"
	"strconv"
	"strings"
)

// optionalQuery returns nil when the query parameter is absent or blank.
func optionalQuery[T ~string](r *http.Request, name string) *T {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	v := T(raw)
	return &v
}

// intQuery parses a non-negative integer query parameter, falling back to def.
func intQuery(r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
