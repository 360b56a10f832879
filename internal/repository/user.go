package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
)

// userDocument is the raw shape of a users document
type userDocument struct {
	ID        string     `bson:"_id"`
	Name      *string    `bson:"name,omitempty"`
	Email     *string    `bson:"email,omitempty"`
	Role      *string    `bson:"role,omitempty"`
	Status    *string    `bson:"status,omitempty"`
	CreatedAt *time.Time `bson:"created_at,omitempty"`
}

// toUser fills typed defaults: a missing role is patient and a missing
// status is active.
func toUser(doc *userDocument) models.User {
	u := models.User{
		ID:     doc.ID,
		Role:   models.RolePatient,
		Status: models.UserStatusActive,
	}
	if doc.Name != nil {
		u.Name = *doc.Name
	}
	if doc.Email != nil {
		u.Email = *doc.Email
	}
	if doc.Role != nil && *doc.Role != "" {
		u.Role = models.Role(*doc.Role)
	}
	if doc.Status != nil && *doc.Status != "" {
		u.Status = models.UserStatus(*doc.Status)
	}
	if doc.CreatedAt != nil {
		u.CreatedAt = doc.CreatedAt.UTC()
	}
	return u
}

type mongoUserRepository struct {
	store *MongoStore
}

func (r *mongoUserRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.Role != "" {
		query["role"] = string(filter.Role)
	}

	opts := options.Find().SetSort(bson.M{"_id": 1})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.store.collection(UserCollection).Find(ctx, query, opts)
	if err != nil {
		return nil, upstream("list users", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, upstream("decode users", err)
	}

	users := make([]models.User, 0, len(docs))
	for i := range docs {
		users = append(users, toUser(&docs[i]))
	}
	return users, nil
}

func (r *mongoUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	var doc userDocument
	err := r.store.collection(UserCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound("user", id)
	}
	if err != nil {
		return nil, upstream("get user", err)
	}

	u := toUser(&doc)
	return &u, nil
}

func (r *mongoUserRepository) Exists(ctx context.Context, id string) (bool, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	n, err := r.store.collection(UserCollection).CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, upstream("check user", err)
	}
	return n > 0, nil
}
