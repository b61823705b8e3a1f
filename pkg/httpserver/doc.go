// Package httpserver runs an http.Handler with graceful shutdown tied to a
// context.
//
//	cfg, err := config.Load[httpserver.Config](config.WithPrefix("HTTP_"))
//	if err != nil {
//		return err
//	}
//	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	return httpserver.New(cfg, log).Run(ctx, router)
//
// Run blocks until ctx is cancelled or the listener fails. On cancellation
// in-flight requests get Config.ShutdownTimeout to finish.
package httpserver
