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

const seedsCollection = "seeds"

type seedDoc struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty"`
	Name                  string             `bson:"name"`
	QuantityAvailable     float64            `bson:"quantityAvailable"`
	CompatibleFertilizers []string           `bson:"compatibleFertilizers"`
	MaxQuantityPerAcre    float64            `bson:"maxQuantityPerAcre"`
	PricePerKg            float64            `bson:"pricePerKg"`
	PricingID             string             `bson:"pricingID,omitempty"`
	Timestamp             time.Time          `bson:"timestamp"`
}

func (d *seedDoc) toDomain() *domain.Seed {
	return &domain.Seed{
		ID:                    d.ID.Hex(),
		Name:                  d.Name,
		QuantityAvailable:     d.QuantityAvailable,
		CompatibleFertilizers: d.CompatibleFertilizers,
		MaxQuantityPerAcre:    d.MaxQuantityPerAcre,
		PricePerKg:            d.PricePerKg,
		PricingID:             d.PricingID,
		Timestamp:             d.Timestamp,
	}
}

type SeedRepo struct {
	collection *mongo.Collection
}

func NewSeedRepo(db *mongo.Database) *SeedRepo {
	return &SeedRepo{collection: db.Collection(seedsCollection)}
}

var _ domain.SeedRepository = (*SeedRepo)(nil)

func (r *SeedRepo) Create(ctx context.Context, s *domain.Seed) (*domain.Seed, error) {
	doc := seedDoc{
		Name:                  s.Name,
		QuantityAvailable:     s.QuantityAvailable,
		CompatibleFertilizers: s.CompatibleFertilizers,
		MaxQuantityPerAcre:    s.MaxQuantityPerAcre,
		PricePerKg:            s.PricePerKg,
		PricingID:             s.PricingID,
		Timestamp:             time.Now(),
	}
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to create the seed", err)
	}
	doc.ID = result.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *SeedRepo) GetByID(ctx context.Context, id string) (*domain.Seed, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc seedDoc
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to read the seed", err)
	}
	return doc.toDomain(), nil
}

func (r *SeedRepo) Update(ctx context.Context, id string, upd domain.SeedUpdate) (*domain.Seed, error) {
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
	if upd.CompatibleFertilizers != nil {
		set["compatibleFertilizers"] = upd.CompatibleFertilizers
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
	var doc seedDoc
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to update the seed", err)
	}
	return doc.toDomain(), nil
}

func (r *SeedRepo) List(ctx context.Context, page, perPage int) ([]domain.Seed, int64, error) {
	totalItems, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, domain.NewDomainError(domain.ErrCodePersisting, "failed to count the seeds", err)
	}
	opts := paginationOpts(page, perPage).SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, domain.NewDomainError(domain.ErrCodePersisting, "failed to list the seeds", err)
	}
	defer cursor.Close(ctx)

	seeds, err := decodeSeeds(ctx, cursor, perPage)
	if err != nil {
		return nil, 0, err
	}
	return seeds, totalItems, nil
}

func (r *SeedRepo) ListAll(ctx context.Context) ([]domain.Seed, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to list the seeds", err)
	}
	defer cursor.Close(ctx)
	return decodeSeeds(ctx, cursor, 0)
}

func (r *SeedRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return domain.NewDomainError(domain.ErrCodePersisting, "failed to delete the seed", err)
	}
	return nil
}

func decodeSeeds(ctx context.Context, cursor *mongo.Cursor, hint int) ([]domain.Seed, error) {
	seeds := make([]domain.Seed, 0, hint)
	for cursor.Next(ctx) {
		var doc seedDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to decode the seed", err)
		}
		seeds = append(seeds, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to iterate the seeds", err)
	}
	return seeds, nil
}
