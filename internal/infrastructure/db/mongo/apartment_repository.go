package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/altosdelparque/residential-system/internal/core/domain"
)

const apartmentsCollection = "apartments"

// ApartmentRepository implements ports.ApartmentRepository using MongoDB.
type ApartmentRepository struct {
	coll *mongo.Collection
}

func NewApartmentRepository(db *mongo.Database) *ApartmentRepository {
	return &ApartmentRepository{coll: db.Collection(apartmentsCollection)}
}

type apartmentDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	domain.Apartment `bson:",inline"`
}

func (r *ApartmentRepository) Create(ctx context.Context, a *domain.Apartment) (*domain.Apartment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, apartmentDoc{Apartment: *a})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateApartment
		}
		return nil, fmt.Errorf("insert apartment: %w", err)
	}

	created := *a
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ApartmentRepository) FindByID(ctx context.Context, id string) (*domain.Apartment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApartmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc apartmentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApartmentNotFound
		}
		return nil, fmt.Errorf("find apartment: %w", err)
	}

	apartment := doc.Apartment
	apartment.ID = doc.ID.Hex()
	return &apartment, nil
}

func (r *ApartmentRepository) FindByOwner(ctx context.Context, ownerID string) ([]*domain.Apartment, error) {
	return r.find(ctx, bson.M{"owner_id": ownerID})
}

func (r *ApartmentRepository) List(ctx context.Context) ([]*domain.Apartment, error) {
	return r.find(ctx, bson.M{})
}

func (r *ApartmentRepository) UpdateStatus(ctx context.Context, id string, status domain.ApartmentStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrApartmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"status": string(status)},
		"$currentDate": bson.M{"updated_at": true},
	})
	if err != nil {
		return fmt.Errorf("update apartment status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrApartmentNotFound
	}
	return nil
}

// EnsureIndexes creates the apartment indexes: a unique (number, tower) pair
// and the owner lookup index.
func (r *ApartmentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "number", Value: 1}, {Key: "tower", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	})
	return err
}

func (r *ApartmentRepository) find(ctx context.Context, filter bson.M) ([]*domain.Apartment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list apartments: %w", err)
	}
	defer cursor.Close(ctx)

	var apartments []*domain.Apartment
	for cursor.Next(ctx) {
		var doc apartmentDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode apartment: %w", err)
		}
		apartment := doc.Apartment
		apartment.ID = doc.ID.Hex()
		apartments = append(apartments, &apartment)
	}
	return apartments, cursor.Err()
}
