package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/altosdelparque/residential-system/internal/core/domain"
)

const maintenanceCollection = "maintenance"

// MaintenanceRepository implements ports.MaintenanceRepository using MongoDB.
type MaintenanceRepository struct {
	coll *mongo.Collection
}

func NewMaintenanceRepository(db *mongo.Database) *MaintenanceRepository {
	return &MaintenanceRepository{coll: db.Collection(maintenanceCollection)}
}

type maintenanceDoc struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	domain.Maintenance `bson:",inline"`
}

func (r *MaintenanceRepository) Create(ctx context.Context, m *domain.Maintenance) (*domain.Maintenance, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, maintenanceDoc{Maintenance: *m})
	if err != nil {
		return nil, fmt.Errorf("insert maintenance: %w", err)
	}

	created := *m
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MaintenanceRepository) FindByID(ctx context.Context, id string) (*domain.Maintenance, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMaintenanceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc maintenanceDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMaintenanceNotFound
		}
		return nil, fmt.Errorf("find maintenance: %w", err)
	}

	task := doc.Maintenance
	task.ID = doc.ID.Hex()
	return &task, nil
}

func (r *MaintenanceRepository) UpdateStatus(ctx context.Context, id string, status domain.MaintenanceStatus, completedDate *time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMaintenanceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"status": string(status)}
	if completedDate != nil {
		set["completed_date"] = completedDate.UTC()
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set":         set,
		"$currentDate": bson.M{"updated_at": true},
	})
	if err != nil {
		return fmt.Errorf("update maintenance status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMaintenanceNotFound
	}
	return nil
}

func (r *MaintenanceRepository) List(ctx context.Context) ([]*domain.Maintenance, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list maintenance: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []*domain.Maintenance
	for cursor.Next(ctx) {
		var doc maintenanceDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode maintenance: %w", err)
		}
		task := doc.Maintenance
		task.ID = doc.ID.Hex()
		tasks = append(tasks, &task)
	}
	return tasks, cursor.Err()
}
