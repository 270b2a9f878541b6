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

const collectionMachines = "machines"

type MachineRepository struct {
	col *mongo.Collection
}

func NewMachineRepository(db *mongo.Database) *MachineRepository {
	return &MachineRepository{col: db.Collection(collectionMachines)}
}

// Insert adds a new machine document and returns the store-assigned id.
func (r *MachineRepository) Insert(ctx context.Context, m *domain.Machine) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

// FindByUserID returns every machine owned by the given user id.
func (r *MachineRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Machine, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	machines := []domain.Machine{}
	if err := cur.All(ctx, &machines); err != nil {
		return nil, err
	}
	return machines, nil
}

// FindByUserAndMachineID retrieves the first machine matching the compound
// (userId, machineId) key.
func (r *MachineRepository) FindByUserAndMachineID(ctx context.Context, userID, machineID string) (*domain.Machine, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.Machine
	err := r.col.FindOne(ctx, bson.M{"userId": userID, "machineId": machineID}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMachineNotFound
		}
		return nil, err
	}
	return &m, nil
}

// DeleteByUserAndMachineID removes every machine matching the compound key
// in a single DeleteMany command.
func (r *MachineRepository) DeleteByUserAndMachineID(ctx context.Context, userID, machineID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"userId": userID, "machineId": machineID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the compound ownership index on machines.
func (r *MachineRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "machineId", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
