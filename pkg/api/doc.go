// Package api exposes fluid generation over HTTP.
//
//	srv := api.New(fluid.Dictionary(), api.WithLogger(log))
//	http.ListenAndServe(":8080", srv.Routes())
//
// JSON endpoints answer with a {"data": ..., "meta": ..., "error": ...}
// envelope. Errors carry a stable code:
//
//	{"error":{"code":"invalid_count","message":"count must be an integer between 1 and 1000"}}
//
// A fluid is returned as its rendered words together with the equivalent
// version 4 UUID, so clients can store the compact form and render it later
// through GET /fluids/{uuid}.
//
// With WithLimiter each client address pays one token per generated fluid.
// A request that does not fit the remaining quota is rejected whole with
// 429 rate_limited and a Retry-After header. A count larger than the whole
// quota can never succeed and gets 400 invalid_count instead.
package api
