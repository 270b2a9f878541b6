package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dotwatch/dotwatch-api/internal/core/domain"
)

// The original deployment named this collection "admin" (singular); kept for
// data compatibility.
const collectionAdmins = "admin"

type AdminRepository struct {
	col *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{col: db.Collection(collectionAdmins)}
}

// Insert adds a new admin document and returns the store-assigned id.
func (r *AdminRepository) Insert(ctx context.Context, a *domain.Admin) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

// FindAll returns every admin document, unfiltered.
func (r *AdminRepository) FindAll(ctx context.Context) ([]domain.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	admins := []domain.Admin{}
	if err := cur.All(ctx, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

// FindByEmail retrieves the first admin with this email (equality, limit 1).
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Admin
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, err
	}
	return &a, nil
}

// EnsureIndexes creates the email lookup index on the admin collection.
func (r *AdminRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
