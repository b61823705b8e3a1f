package binder

import (
	"net/http"
)

// BindQuery fills `query:"name"` fields from the URL query string. A
// parameter given several times fills a slice field; scalar fields take
// the first occurrence. Absent or empty parameters ("?count=") leave fields
// untouched, so use a pointer field to tell "missing" from the zero value.
//
//	type listRequest struct {
//		Count *int `query:"count"`
//	}
func BindQuery() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		q := r.URL.Query()
		return bind(v, "query", func(name string) []string {
			values := q[name]
			for _, value := range values {
				if value != "" {
					return values
				}
			}
			return nil
		}, ErrInvalidQuery)
	}
}
