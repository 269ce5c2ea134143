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

const pricingCollection = "pricings"

type pricingDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ProductType string             `bson:"productType"`
	ProductID   primitive.ObjectID `bson:"productID"`
	PricePerKg  float64            `bson:"pricePerKg"`
	Timestamp   time.Time          `bson:"timestamp"`
}

func (d *pricingDoc) toDomain() *domain.Pricing {
	return &domain.Pricing{
		ID:          d.ID.Hex(),
		ProductType: domain.ProductType(d.ProductType),
		ProductID:   d.ProductID.Hex(),
		PricePerKg:  d.PricePerKg,
		Timestamp:   d.Timestamp,
	}
}

type PricingRepo struct {
	collection *mongo.Collection
}

func NewPricingRepo(db *mongo.Database) *PricingRepo {
	return &PricingRepo{collection: db.Collection(pricingCollection)}
}

var _ domain.PricingRepository = (*PricingRepo)(nil)

func (r *PricingRepo) Create(ctx context.Context, p *domain.Pricing) (*domain.Pricing, error) {
	productOID, err := primitive.ObjectIDFromHex(p.ProductID)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "Invalid product id", err)
	}
	doc := pricingDoc{
		ProductType: string(p.ProductType),
		ProductID:   productOID,
		PricePerKg:  p.PricePerKg,
		Timestamp:   time.Now(),
	}
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to create the pricing", err)
	}
	doc.ID = result.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *PricingRepo) GetByID(ctx context.Context, id string) (*domain.Pricing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *PricingRepo) GetByProductID(ctx context.Context, productID string) (*domain.Pricing, error) {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"productID": oid})
}

func (r *PricingRepo) findOne(ctx context.Context, filter bson.M) (*domain.Pricing, error) {
	var doc pricingDoc
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to read the pricing", err)
	}
	return doc.toDomain(), nil
}

func (r *PricingRepo) UpdatePrice(ctx context.Context, id, productID string, pricePerKg float64) (*domain.Pricing, error) {
	filter := bson.M{}
	switch {
	case id != "":
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, nil
		}
		filter["_id"] = oid
	case productID != "":
		oid, err := primitive.ObjectIDFromHex(productID)
		if err != nil {
			return nil, nil
		}
		filter["productID"] = oid
	default:
		return nil, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc pricingDoc
	err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": bson.M{"pricePerKg": pricePerKg}}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to update the pricing", err)
	}
	return doc.toDomain(), nil
}

func (r *PricingRepo) List(ctx context.Context, page, perPage int) ([]domain.Pricing, int64, error) {
	totalItems, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, domain.NewDomainError(domain.ErrCodePersisting, "failed to count the pricings", err)
	}
	opts := paginationOpts(page, perPage).SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, domain.NewDomainError(domain.ErrCodePersisting, "failed to list the pricings", err)
	}
	defer cursor.Close(ctx)

	pricings, err := decodePricings(ctx, cursor, perPage)
	if err != nil {
		return nil, 0, err
	}
	return pricings, totalItems, nil
}

func (r *PricingRepo) ListAll(ctx context.Context) ([]domain.Pricing, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to list the pricings", err)
	}
	defer cursor.Close(ctx)
	return decodePricings(ctx, cursor, 0)
}

func decodePricings(ctx context.Context, cursor *mongo.Cursor, hint int) ([]domain.Pricing, error) {
	pricings := make([]domain.Pricing, 0, hint)
	for cursor.Next(ctx) {
		var doc pricingDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to decode the pricing", err)
		}
		pricings = append(pricings, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to iterate the pricings", err)
	}
	return pricings, nil
}
