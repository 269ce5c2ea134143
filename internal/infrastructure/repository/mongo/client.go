package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
)

// Connect opens a client against the given URI and verifies it with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, domain.ErrDbConnection.Wrap(err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, domain.ErrDbConnection.Wrap(err)
	}
	return client, nil
}

func Close(ctx context.Context, client *mongo.Client) error {
	return client.Disconnect(ctx)
}

func paginationOpts(page, perPage int) *options.FindOptions {
	skip := int64((page - 1) * perPage)
	limit := int64(perPage)
	return options.Find().SetSkip(skip).SetLimit(limit)
}
