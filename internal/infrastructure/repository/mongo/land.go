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

const landsCollection = "lands"

type landDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	FarmerID    primitive.ObjectID `bson:"farmerID"`
	LandAddress string             `bson:"landAddress"`
	LandUPI     string             `bson:"landUPI"`
	SizeInAcres float64            `bson:"sizeInAcres"`
	Timestamp   time.Time          `bson:"timestamp"`
}

func (d *landDoc) toDomain() *domain.Land {
	return &domain.Land{
		ID:          d.ID.Hex(),
		FarmerID:    d.FarmerID.Hex(),
		LandAddress: d.LandAddress,
		LandUPI:     d.LandUPI,
		SizeInAcres: d.SizeInAcres,
		Timestamp:   d.Timestamp,
	}
}

type LandRepo struct {
	collection *mongo.Collection
}

func NewLandRepo(db *mongo.Database) *LandRepo {
	return &LandRepo{collection: db.Collection(landsCollection)}
}

var _ domain.LandRepository = (*LandRepo)(nil)

func (r *LandRepo) Create(ctx context.Context, l *domain.Land) (*domain.Land, error) {
	farmerOID, err := primitive.ObjectIDFromHex(l.FarmerID)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "Invalid farmer id", err)
	}
	doc := landDoc{
		FarmerID:    farmerOID,
		LandAddress: l.LandAddress,
		LandUPI:     l.LandUPI,
		SizeInAcres: l.SizeInAcres,
		Timestamp:   time.Now(),
	}
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to create the land", err)
	}
	doc.ID = result.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *LandRepo) GetByID(ctx context.Context, id string) (*domain.Land, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc landDoc
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to read the land", err)
	}
	return doc.toDomain(), nil
}

func (r *LandRepo) Update(ctx context.Context, id string, upd domain.LandUpdate) (*domain.Land, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	set := bson.M{}
	if upd.LandAddress != "" {
		set["landAddress"] = upd.LandAddress
	}
	if upd.LandUPI != "" {
		set["landUPI"] = upd.LandUPI
	}
	if upd.SizeInAcres > 0 {
		set["sizeInAcres"] = upd.SizeInAcres
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc landDoc
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to update the land", err)
	}
	return doc.toDomain(), nil
}

func (r *LandRepo) List(ctx context.Context, page, perPage int) ([]domain.Land, int64, error) {
	totalItems, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, domain.NewDomainError(domain.ErrCodePersisting, "failed to count the lands", err)
	}
	opts := paginationOpts(page, perPage).SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, domain.NewDomainError(domain.ErrCodePersisting, "failed to list the lands", err)
	}
	defer cursor.Close(ctx)

	lands, err := decodeLands(ctx, cursor, perPage)
	if err != nil {
		return nil, 0, err
	}
	return lands, totalItems, nil
}

func (r *LandRepo) ListAll(ctx context.Context) ([]domain.Land, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to list the lands", err)
	}
	defer cursor.Close(ctx)
	return decodeLands(ctx, cursor, 0)
}

func (r *LandRepo) ListByFarmer(ctx context.Context, farmerID string) ([]domain.Land, error) {
	oid, err := primitive.ObjectIDFromHex(farmerID)
	if err != nil {
		return nil, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"farmerID": oid}, options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to list the lands", err)
	}
	defer cursor.Close(ctx)
	return decodeLands(ctx, cursor, 0)
}

func decodeLands(ctx context.Context, cursor *mongo.Cursor, hint int) ([]domain.Land, error) {
	lands := make([]domain.Land, 0, hint)
	for cursor.Next(ctx) {
		var doc landDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to decode the land", err)
		}
		lands = append(lands, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to iterate the lands", err)
	}
	return lands, nil
}
