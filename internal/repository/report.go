package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
)

type mongoReportRepository struct {
	store *MongoStore
}

func (r *mongoReportRepository) Upsert(ctx context.Context, report *models.WeeklyReport) error {
	if report == nil || report.ID == "" {
		return fmt.Errorf("%w: report id is required", ErrValidation)
	}

	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.store.collection(WeeklyReportCollection).ReplaceOne(ctx, bson.M{"_id": report.ID}, report, opts); err != nil {
		return upstream("upsert weekly report", err)
	}
	return nil
}

func (r *mongoReportRepository) GetByID(ctx context.Context, id string) (*models.WeeklyReport, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	var report models.WeeklyReport
	err := r.store.collection(WeeklyReportCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, upstream("get weekly report", err)
	}
	return &report, nil
}

func (r *mongoReportRepository) List(ctx context.Context, limit int) ([]models.WeeklyReport, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "week_start", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.store.collection(WeeklyReportCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, upstream("list weekly reports", err)
	}

	reports := make([]models.WeeklyReport, 0)
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, upstream("decode weekly reports", err)
	}
	return reports, nil
}
