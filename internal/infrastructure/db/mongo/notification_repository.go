package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/altosdelparque/residential-system/internal/core/domain"
)

const notificationsCollection = "notifications"

// NotificationRepository implements ports.NotificationRepository using MongoDB.
type NotificationRepository struct {
	coll *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{coll: db.Collection(notificationsCollection)}
}

type notificationDoc struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	domain.Notification `bson:",inline"`
}

func (r *NotificationRepository) Insert(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, notificationDoc{Notification: *n})
	if err != nil {
		return nil, fmt.Errorf("insert notification: %w", err)
	}

	created := *n
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id string) (*domain.Notification, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotificationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc notificationDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("find notification: %w", err)
	}

	notification := doc.Notification
	notification.ID = doc.ID.Hex()
	return &notification, nil
}

// ListForUser returns the user's direct notifications plus every broadcast
// whose audience covers the user's role.
func (r *NotificationRepository) ListForUser(ctx context.Context, userID, role string) ([]*domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	audiences := []string{string(domain.RecipientAll)}
	switch role {
	case domain.RoleOwner:
		audiences = append(audiences, string(domain.RecipientOwners))
	case domain.RoleTenant:
		audiences = append(audiences, string(domain.RecipientTenants))
	case domain.RoleAdmin, domain.RoleSecurity:
		audiences = append(audiences, string(domain.RecipientStaff))
	}

	filter := bson.M{"$or": bson.A{
		bson.M{"recipient_id": userID},
		bson.M{"recipient_type": bson.M{"$in": audiences}, "recipient_id": ""},
	}}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var notifications []*domain.Notification
	for cursor.Next(ctx) {
		var doc notificationDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode notification: %w", err)
		}
		notification := doc.Notification
		notification.ID = doc.ID.Hex()
		notifications = append(notifications, &notification)
	}
	return notifications, cursor.Err()
}

// MarkRead flags a direct notification as read; only the recipient may do so.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotificationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "recipient_id": userID},
		bson.M{
			"$set":         bson.M{"is_read": true},
			"$currentDate": bson.M{"updated_at": true},
		},
	)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

// EnsureIndexes creates the notification lookup indexes.
func (r *NotificationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "recipient_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "recipient_type", Value: 1}}},
	})
	return err
}
