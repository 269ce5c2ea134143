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

const usersCollection = "users"

type userDoc struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Name              string             `bson:"name"`
	Email             string             `bson:"email"`
	Phone             string             `bson:"phoneNumber"`
	Address           string             `bson:"address"`
	Category          string             `bson:"category"`
	Password          string             `bson:"password"`
	PasswordExpiresAt *time.Time         `bson:"passwordExpiresAt,omitempty"`
	LoginTries        int                `bson:"loginTries"`
	LoggedIn          bool               `bson:"loggedIn"`
	Timestamp         time.Time          `bson:"timestamp"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:                d.ID.Hex(),
		Name:              d.Name,
		Email:             d.Email,
		Phone:             d.Phone,
		Address:           d.Address,
		Category:          domain.Category(d.Category),
		Password:          d.Password,
		PasswordExpiresAt: d.PasswordExpiresAt,
		LoginTries:        d.LoginTries,
		LoggedIn:          d.LoggedIn,
		Timestamp:         d.Timestamp,
	}
}

type UserRepo struct {
	collection *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{collection: db.Collection(usersCollection)}
}

var _ domain.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	doc := userDoc{
		Name:              u.Name,
		Email:             u.Email,
		Phone:             u.Phone,
		Address:           u.Address,
		Category:          string(u.Category),
		Password:          u.Password,
		PasswordExpiresAt: u.PasswordExpiresAt,
		LoginTries:        u.LoginTries,
		LoggedIn:          u.LoggedIn,
		Timestamp:         time.Now(),
	}
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to create the user", err)
	}
	doc.ID = result.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"phoneNumber": phone})
}

func (r *UserRepo) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to read the user", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepo) Update(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	set := bson.M{}
	if upd.Name != "" {
		set["name"] = upd.Name
	}
	if upd.Email != "" {
		set["email"] = upd.Email
	}
	if upd.Phone != "" {
		set["phoneNumber"] = upd.Phone
	}
	if upd.Address != "" {
		set["address"] = upd.Address
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc userDoc
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.NewDomainError(domain.ErrCodePersisting, "failed to update the user", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepo) SetLoggedIn(ctx context.Context, id string, loggedIn bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"loggedIn": loggedIn}})
	if err != nil {
		return domain.NewDomainError(domain.ErrCodePersisting, "failed to update the login state", err)
	}
	return nil
}

func (r *UserRepo) ListByCategory(ctx context.Context, category domain.Category, page, perPage int) ([]domain.User, int64, error) {
	filter := bson.M{"category": string(category)}

	totalItems, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, domain.NewDomainError(domain.ErrCodePersisting, "failed to count the users", err)
	}

	opts := paginationOpts(page, perPage).SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, domain.NewDomainError(domain.ErrCodePersisting, "failed to list the users", err)
	}
	defer cursor.Close(ctx)

	users := make([]domain.User, 0, perPage)
	for cursor.Next(ctx) {
		var doc userDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, domain.NewDomainError(domain.ErrCodePersisting, "failed to decode the user", err)
		}
		users = append(users, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, domain.NewDomainError(domain.ErrCodePersisting, "failed to iterate the users", err)
	}
	return users, totalItems, nil
}
