// Package environment resolves the deployment environment from APP_ENV and
// carries it through request contexts so handlers and log records can see it.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	router.Use(environment.Middleware(env))
package environment
