// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request struct already filled by
// the binders given to Wrap, and returns a Response:
//
//	type generateRequest struct {
//		Count *int `query:"count"`
//	}
//
//	func generate(ctx handler.Context, req generateRequest) handler.Response {
//		return handler.JSON(items, handler.WithJSONMeta(map[string]any{"count": n}))
//	}
//
//	r.Get("/fluids", handler.Wrap(generate,
//		handler.WithBinder[handler.Context, generateRequest](binder.BindQuery()),
//		handler.WithErrorHandler[handler.Context, generateRequest](handler.NewErrorHandler(log)),
//	))
//
// Failed binds and Error responses go to the ErrorHandler. NewErrorHandler
// writes them as {"error":{"code":…,"message":…}} envelopes.
package handler
