package utils

import (
	"net/http"
	"strconv"
)

// QueryInt reads an integer query parameter. A missing value yields def;
// a value that is not an integer is reported with ok=false.
func QueryInt(r *http.Request, name string, def int) (value int, ok bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
