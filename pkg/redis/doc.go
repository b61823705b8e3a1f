// Package redis connects to Redis for the shared rate limit store used when
// several fluid API replicas must enforce one quota.
//
//	cfg := config.MustLoad[redis.Config](config.WithPrefix("FLUID_REDIS_"))
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := ratelimiter.NewRedisStore(client)
//	srv := api.New(dict, api.WithReadinessCheck(redis.Healthcheck(client)))
package redis
