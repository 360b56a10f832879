package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/JonnyWalker81/moodtrack/backend/internal/logger"
)

const (
	MoodMonthCollection    = "mood_months"
	UserCollection         = "users"
	WeeklyReportCollection = "weekly_reports"

	// moodSchemaVersion is stamped on every mood month document written
	moodSchemaVersion = 1

	defaultTimeout = 5 * time.Second
)

// MongoOptions configures the MongoDB connection
type MongoOptions struct {
	URI         string
	Database    string
	MaxPoolSize uint64
	Timeout     time.Duration
}

// MongoStore implements Store on MongoDB
type MongoStore struct {
	client   *mongo.Client
	database string
	timeout  time.Duration
}

// ConnectMongo dials MongoDB and verifies the connection with a ping
func ConnectMongo(ctx context.Context, opts MongoOptions) (*MongoStore, error) {
	clientOpts := options.Client().ApplyURI(opts.URI)
	if opts.MaxPoolSize > 0 {
		clientOpts.SetMaxPoolSize(opts.MaxPoolSize)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, upstream("connect mongo", err)
	}

	store := NewMongoStore(client, opts.Database, opts.Timeout)
	if err := store.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Ctx(ctx).Info("connected to mongo",
		logger.String("database", opts.Database),
	)
	return store, nil
}

// NewMongoStore wraps an existing client
func NewMongoStore(client *mongo.Client, database string, timeout time.Duration) *MongoStore {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &MongoStore{
		client:   client,
		database: database,
		timeout:  timeout,
	}
}

func (m *MongoStore) Moods() MoodRepository {
	return &mongoMoodRepository{store: m, users: m.Users()}
}

func (m *MongoStore) Users() UserRepository {
	return &mongoUserRepository{store: m}
}

func (m *MongoStore) Reports() ReportRepository {
	return &mongoReportRepository{store: m}
}

// Ping checks the primary is reachable
func (m *MongoStore) Ping(ctx context.Context) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return upstream("ping mongo", err)
	}
	return nil
}

// Close disconnects the client
func (m *MongoStore) Close(ctx context.Context) error {
	logger.Ctx(ctx).Info("closing mongo db connections")
	return m.client.Disconnect(ctx)
}

// EnsureIndexes creates the secondary indexes every collection relies on
func (m *MongoStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		MoodMonthCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "year", Value: 1}, {Key: "month", Value: 1}}},
		},
		UserCollection: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "role", Value: 1}}},
		},
		WeeklyReportCollection: {
			{Keys: bson.D{{Key: "week_start", Value: -1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := m.collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return upstream(fmt.Sprintf("create indexes on %s", collection), err)
		}
	}
	return nil
}

func (m *MongoStore) collection(name string) *mongo.Collection {
	return m.client.Database(m.database).Collection(name)
}

func (m *MongoStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.timeout)
}
