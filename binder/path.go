package binder

import (
	"fmt"
	"net/http"
)

// Path fills `path:"name"` fields using extractor, which matches
// chi.URLParam:
//
//	type renderRequest struct {
//		ID uuid.UUID `path:"id"`
//	}
//
//	r.Get("/fluids/{id}", handler.Wrap(render,
//		handler.WithBinder[handler.Context, renderRequest](binder.Path(chi.URLParam)),
//	))
func Path(extractor func(r *http.Request, key string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor is nil", ErrInvalidPath)
		}
		return bind(v, "path", func(name string) []string {
			if value := extractor(r, name); value != "" {
				return []string{value}
			}
			return nil
		}, ErrInvalidPath)
	}
}
