package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rwagatenga/FarmerOrderingSystemBackend/internal/domain"
)

const fertilizersCollection = "fertilizers"

type fertilizerDoc struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Name               string             `bson:"name"`
	QuantityAvailable  float64            `bson:"quantityAvailable"`
	MaxQuantityPerAcre float64            `bson:"maxQuantityPerAcre"`
	PricePerKg         float64            `bson:"pricePerKg"`
	PricingID          string             `bson:"pricingID,omitempty"`
	Timestamp          time.Time          `bson:"timestamp"`
}

func (d *fertilizerDoc) toDomain() *domain.Fertilizer {
	return &domain.Fertilizer{
		ID:                 d.ID.Hex(),
		Name:               d.Name,
		QuantityAvailable:  d.QuantityAvailable,
		MaxQuantityPerAcre: d.MaxQuantityPerAcre,
		PricePerKg:         d.PricePerKg,
		PricingID:          d.PricingID,
		Timestamp:          d.Timestamp,
	}
}

type FertilizerRepo struct {
	collection *mongo.Collection
}

func NewFertilizerRepo(db *mongo.Database) *FertilizerRepo {
	return &FertilizerRepo{collection: db.Collection(fertilizersCollection)}
}

var _ domain.FertilizerRepository = (*FertilizerRepo)(nil)

func (r *FertilizerRepo) Create(ctx context.Context, f *domain.Fertilizer) (*domain.Fertilizer, error) {
	doc := fertilizerDoc{
		Name:               f.Name,
		QuantityAvailable:  f.QuantityAvailable,
		MaxQuantityPerAcre: f.MaxQuantityPerAcre,
		PricePerKg:         f.PricePerKg,
		PricingID:          f.PricingID,
		Timestamp:          time.Now(),
	}
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to create the fertilizer", err)
	}
	doc.ID = result.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *FertilizerRepo) GetByID(ctx context.Context, id string) (*domain.Fertilizer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc fertilizerDoc
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to read the fertilizer", err)
	}
	return doc.toDomain(), nil
}

func (r *FertilizerRepo) Update(ctx context.Context, id string, upd domain.FertilizerUpdate) (*domain.Fertilizer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	set := bson.M{}
	if upd.Name != "" {
		set["name"] = upd.Name
	}
	if upd.QuantityAvailable > 0 {
		set["quantityAvailable"] = upd.QuantityAvailable
	}
	if upd.MaxQuantityPerAcre > 0 {
		set["maxQuantityPerAcre"] = upd.MaxQuantityPerAcre
	}
	if upd.PricePerKg > 0 {
		set["pricePerKg"] = upd.PricePerKg
	}
	if upd.PricingID != "" {
		set["pricingID"] = upd.PricingID
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc fertilizerDoc
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to update the fertilizer", err)
	}
	return doc.toDomain(), nil
}

func (r *FertilizerRepo) List(ctx context.Context, page, perPage int) ([]domain.Fertilizer, int64, error) {
	totalItems, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, domain.NewDomainError(domain.ErrCodePersisting, "failed to count the fertilizers", err)
	}
	opts := paginationOpts(page, perPage).SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, domain.NewDomainError(domain.ErrCodePersisting, "failed to list the fertilizers", err)
	}
	defer cursor.Close(ctx)

	fertilizers, err := decodeFertilizers(ctx, cursor, perPage)
	if err != nil {
		return nil, 0, err
	}
	return fertilizers, totalItems, nil
}

func (r *FertilizerRepo) ListAll(ctx context.Context) ([]domain.Fertilizer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to list the fertilizers", err)
	}
	defer cursor.Close(ctx)
	return decodeFertilizers(ctx, cursor, 0)
}

func (r *FertilizerRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return domain.NewDomainError(domain.ErrCodePersisting, "failed to delete the fertilizer", err)
	}
	return nil
}

func decodeFertilizers(ctx context.Context, cursor *mongo.Cursor, hint int) ([]domain.Fertilizer, error) {
	fertilizers := make([]domain.Fertilizer, 0, hint)
	for cursor.Next(ctx) {
		var doc fertilizerDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to decode the fertilizer", err)
		}
		fertilizers = append(fertilizers, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to iterate the fertilizers", err)
	}
	return fertilizers, nil
}
