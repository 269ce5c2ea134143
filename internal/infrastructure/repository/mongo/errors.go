package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
)

const errorsCollection = "errors"

type errorDoc struct {
	Level     string `bson:"level"`
	Message   string `bson:"message"`
	Code      int    `bson:"code"`
	Timestamp int64  `bson:"timestamp"`
}

// ErrorAuditRepo persists recovered failures for later inspection.
type ErrorAuditRepo struct {
	collection *mongo.Collection
}

func NewErrorAuditRepo(db *mongo.Database) *ErrorAuditRepo {
	return &ErrorAuditRepo{collection: db.Collection(errorsCollection)}
}

var _ domain.ErrorAuditRepository = (*ErrorAuditRepo)(nil)

func (r *ErrorAuditRepo) Save(ctx context.Context, rec *domain.ErrorRecord) error {
	doc := errorDoc{
		Level:     rec.Level,
		Message:   rec.Message,
		Code:      rec.Code,
		Timestamp: rec.Timestamp.UnixMilli(),
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return domain.NewDomainError(domain.ErrCodePersisting, "failed to save the error record", err)
	}
	return nil
}
