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

const damageReportsCollection = "damage_reports"

// DamageRepository implements ports.DamageRepository using MongoDB.
type DamageRepository struct {
	coll *mongo.Collection
}

func NewDamageRepository(db *mongo.Database) *DamageRepository {
	return &DamageRepository{coll: db.Collection(damageReportsCollection)}
}

type damageDoc struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	domain.DamageReport `bson:",inline"`
}

func (r *DamageRepository) Create(ctx context.Context, report *domain.DamageReport) (*domain.DamageReport, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, damageDoc{DamageReport: *report})
	if err != nil {
		return nil, fmt.Errorf("insert damage report: %w", err)
	}

	created := *report
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *DamageRepository) FindByID(ctx context.Context, id string) (*domain.DamageReport, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDamageReportNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc damageDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDamageReportNotFound
		}
		return nil, fmt.Errorf("find damage report: %w", err)
	}

	report := doc.DamageReport
	report.ID = doc.ID.Hex()
	return &report, nil
}

func (r *DamageRepository) UpdateStatus(ctx context.Context, id string, status domain.DamageStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrDamageReportNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set":         bson.M{"status": string(status)},
		"$currentDate": bson.M{"updated_at": true},
	})
	if err != nil {
		return fmt.Errorf("update damage report status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrDamageReportNotFound
	}
	return nil
}

func (r *DamageRepository) ListByReporter(ctx context.Context, userID string) ([]*domain.DamageReport, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"reported_by": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list damage reports: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []*domain.DamageReport
	for cursor.Next(ctx) {
		var doc damageDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode damage report: %w", err)
		}
		report := doc.DamageReport
		report.ID = doc.ID.Hex()
		reports = append(reports, &report)
	}
	return reports, cursor.Err()
}
