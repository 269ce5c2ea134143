package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
)

// ConnectToRedis opens a client and verifies the connection with a ping
// before handing it to the stores.
func ConnectToRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, domain.ErrDbConnection.Wrap(err)
	}
	return client, nil
}
