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

const ordersCollection = "orders"

type orderDoc struct {
	ID                        primitive.ObjectID `bson:"_id,omitempty"`
	FarmerID                  primitive.ObjectID `bson:"farmerID"`
	LandID                    primitive.ObjectID `bson:"landID"`
	FertilizerID              primitive.ObjectID `bson:"fertilizerID,omitempty"`
	SeedID                    primitive.ObjectID `bson:"seedID,omitempty"`
	FertilizerQuantityOrdered float64            `bson:"fertilizerQuantityOrdered"`
	SeedQuantityOrdered       float64            `bson:"seedQuantityOrdered"`
	Status                    string             `bson:"status"`
	PaymentStatus             string             `bson:"paymentStatus"`
	SeedPricePerUnit          float64            `bson:"seedPricePerUnit"`
	SeedTotalPrice            float64            `bson:"seedTotalPrice"`
	FertilizerPricePerUnit    float64            `bson:"fertilizerPricePerUnit"`
	FertilizerTotalPrice      float64            `bson:"fertilizerTotalPrice"`
	Timestamp                 time.Time          `bson:"timestamp"`
}

func hexOrEmpty(oid primitive.ObjectID) string {
	if oid.IsZero() {
		return ""
	}
	return oid.Hex()
}

func (d *orderDoc) toDomain() *domain.Order {
	return &domain.Order{
		ID:                        d.ID.Hex(),
		FarmerID:                  d.FarmerID.Hex(),
		LandID:                    d.LandID.Hex(),
		FertilizerID:              hexOrEmpty(d.FertilizerID),
		SeedID:                    hexOrEmpty(d.SeedID),
		FertilizerQuantityOrdered: d.FertilizerQuantityOrdered,
		SeedQuantityOrdered:       d.SeedQuantityOrdered,
		Status:                    domain.OrderStatus(d.Status),
		PaymentStatus:             domain.PaymentStatus(d.PaymentStatus),
		SeedPricePerUnit:          d.SeedPricePerUnit,
		SeedTotalPrice:            d.SeedTotalPrice,
		FertilizerPricePerUnit:    d.FertilizerPricePerUnit,
		FertilizerTotalPrice:      d.FertilizerTotalPrice,
		Timestamp:                 d.Timestamp,
	}
}

type OrderRepo struct {
	collection *mongo.Collection
}

func NewOrderRepo(db *mongo.Database) *OrderRepo {
	return &OrderRepo{collection: db.Collection(ordersCollection)}
}

var _ domain.OrderRepository = (*OrderRepo)(nil)

func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	farmerOID, err := primitive.ObjectIDFromHex(o.FarmerID)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "Invalid farmer id", err)
	}
	landOID, err := primitive.ObjectIDFromHex(o.LandID)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "Invalid land id", err)
	}

	doc := orderDoc{
		FarmerID:                  farmerOID,
		LandID:                    landOID,
		FertilizerQuantityOrdered: o.FertilizerQuantityOrdered,
		SeedQuantityOrdered:       o.SeedQuantityOrdered,
		Status:                    string(o.Status),
		PaymentStatus:             string(o.PaymentStatus),
		SeedPricePerUnit:          o.SeedPricePerUnit,
		SeedTotalPrice:            o.SeedTotalPrice,
		FertilizerPricePerUnit:    o.FertilizerPricePerUnit,
		FertilizerTotalPrice:      o.FertilizerTotalPrice,
		Timestamp:                 time.Now(),
	}
	if o.FertilizerID != "" {
		oid, err := primitive.ObjectIDFromHex(o.FertilizerID)
		if err != nil {
			return nil, domain.NewDomainError(domain.ErrCodeValidation, "Invalid fertilizer id", err)
		}
		doc.FertilizerID = oid
	}
	if o.SeedID != "" {
		oid, err := primitive.ObjectIDFromHex(o.SeedID)
		if err != nil {
			return nil, domain.NewDomainError(domain.ErrCodeValidation, "Invalid seed id", err)
		}
		doc.SeedID = oid
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to create the order", err)
	}
	doc.ID = result.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc orderDoc
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to read the order", err)
	}
	return doc.toDomain(), nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, upd domain.OrderStatusUpdate) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	set := bson.M{}
	if upd.Status != "" {
		set["status"] = string(upd.Status)
	}
	if upd.PaymentStatus != "" {
		set["paymentStatus"] = string(upd.PaymentStatus)
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc orderDoc
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to update the order", err)
	}
	return doc.toDomain(), nil
}

func (r *OrderRepo) List(ctx context.Context, farmerID string, page, perPage int) ([]domain.Order, int64, error) {
	filter := bson.M{}
	if farmerID != "" {
		oid, err := primitive.ObjectIDFromHex(farmerID)
		if err != nil {
			return []domain.Order{}, 0, nil
		}
		filter["farmerID"] = oid
	}

	totalItems, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, domain.NewDomainError(domain.ErrCodePersisting, "failed to count the orders", err)
	}
	opts := paginationOpts(page, perPage).SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, domain.NewDomainError(domain.ErrCodePersisting, "failed to list the orders", err)
	}
	defer cursor.Close(ctx)

	orders := make([]domain.Order, 0, perPage)
	for cursor.Next(ctx) {
		var doc orderDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, domain.NewDomainError(domain.ErrCodePersisting, "failed to decode the order", err)
		}
		orders = append(orders, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, domain.NewDomainError(domain.ErrCodePersisting, "failed to iterate the orders", err)
	}
	return orders, totalItems, nil
}
