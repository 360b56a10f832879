package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JonnyWalker81/moodtrack/backend/internal/calendar"
	"github.com/JonnyWalker81/moodtrack/backend/internal/logger"
	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
)

// unknownMoodID replaces a missing mood id on read
const unknownMoodID = "unknown"

// moodMonthDocument is the raw shape of a mood_months document. Every field
// is optional on read; toMoodMonth turns absent fields into typed defaults.
type moodMonthDocument struct {
	ID            string                             `bson:"_id"`
	UserID        *string                            `bson:"user_id,omitempty"`
	Year          *int                               `bson:"year,omitempty"`
	Month         *int                               `bson:"month,omitempty"`
	SchemaVersion *int                               `bson:"schema_version,omitempty"`
	Days          map[string][]moodSelectionDocument `bson:"days,omitempty"`
	UpdatedAt     *time.Time                         `bson:"updated_at,omitempty"`
}

type moodSelectionDocument struct {
	MoodID *string    `bson:"mood_id,omitempty"`
	Note   *string    `bson:"note,omitempty"`
	At     *time.Time `bson:"at,omitempty"`
}

func toSelectionDocument(m models.MoodSelection) moodSelectionDocument {
	doc := moodSelectionDocument{MoodID: &m.MoodID}
	if m.Note != "" {
		doc.Note = &m.Note
	}
	if m.At != "" {
		if t, err := time.Parse(time.RFC3339Nano, m.At); err == nil {
			t = calendar.NormalizeTimestamp(t)
			doc.At = &t
		}
	}
	return doc
}

func toSelectionDocuments(moods []models.MoodSelection) []moodSelectionDocument {
	docs := make([]moodSelectionDocument, 0, len(moods))
	for _, m := range moods {
		docs = append(docs, toSelectionDocument(m))
	}
	return docs
}

// toMoodMonth converts a raw document into the model, filling defaults for
// missing fields.
func toMoodMonth(doc *moodMonthDocument, userID, month string) *models.MoodMonth {
	result := &models.MoodMonth{
		UserID: userID,
		Days:   make(map[string]models.DayMoodRecord),
	}
	if doc == nil {
		result.Year, result.Month, _ = monthOf(month)
		return result
	}

	if doc.UserID != nil {
		result.UserID = *doc.UserID
	}
	if doc.Year != nil && doc.Month != nil {
		result.Year, result.Month = *doc.Year, *doc.Month
	} else {
		key := monthFromDocumentID(doc.ID)
		if key == "" {
			key = month
		}
		result.Year, result.Month, _ = monthOf(key)
	}

	prefix := month
	if result.Year > 0 && result.Month > 0 {
		prefix = time.Date(result.Year, time.Month(result.Month), 1, 0, 0, 0, 0, time.UTC).Format(calendar.MonthLayout)
	}

	for day, selections := range doc.Days {
		moods := make([]models.MoodSelection, 0, len(selections))
		for _, s := range selections {
			m := models.MoodSelection{MoodID: unknownMoodID}
			if s.MoodID != nil && *s.MoodID != "" {
				m.MoodID = *s.MoodID
			}
			if s.Note != nil {
				m.Note = *s.Note
			}
			if s.At != nil {
				m.At = calendar.FormatTimestamp(*s.At)
			}
			moods = append(moods, m)
		}
		result.Days[day] = models.DayMoodRecord{Date: prefix + "-" + day, Moods: moods}
	}
	return result
}

type mongoMoodRepository struct {
	store *MongoStore
	users UserRepository
}

func (r *mongoMoodRepository) GetMonth(ctx context.Context, userID, month string) (*models.MoodMonth, error) {
	if _, _, err := monthOf(month); err != nil {
		return nil, err
	}
	doc, err := r.findMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}
	return toMoodMonth(doc, userID, month), nil
}

func (r *mongoMoodRepository) GetDay(ctx context.Context, userID, date string) (*models.DayMoodRecord, error) {
	month, day, err := splitDate(date)
	if err != nil {
		return nil, err
	}
	doc, err := r.findMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}
	return dayOf(toMoodMonth(doc, userID, month), date, day), nil
}

func (r *mongoMoodRepository) AddMood(ctx context.Context, userID, date string, mood models.MoodSelection) (*models.DayMoodRecord, error) {
	month, day, err := splitDate(date)
	if err != nil {
		return nil, err
	}
	if err := r.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	// A full day fails the $exists filter, so the upsert collides with the
	// existing _id instead of appending.
	field := "days." + day
	filter := bson.M{
		"_id": monthDocumentID(userID, month),
		field + "." + strconv.Itoa(maxMoods-1): bson.M{"$exists": false},
	}
	update := bson.M{
		"$push":        bson.M{field: toSelectionDocument(mood)},
		"$set":         bson.M{"updated_at": time.Now().UTC()},
		"$setOnInsert": r.insertFields(userID, month),
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	for attempt := 0; attempt < 2; attempt++ {
		doc, err := r.findOneAndUpdate(ctx, filter, update, opts)
		if err == nil {
			return dayOf(toMoodMonth(doc, userID, month), date, day), nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return nil, upstream("add mood", err)
		}

		// A duplicate key also happens when two writers create the month
		// document at once; only a full day is a limit violation.
		current, getErr := r.GetDay(ctx, userID, date)
		if getErr != nil {
			return nil, getErr
		}
		if len(current.Moods) >= maxMoods {
			return nil, limitExceeded(date)
		}
		logger.Ctx(ctx).Debug("retrying mood append after concurrent insert",
			logger.String("date", date),
		)
	}
	return nil, limitExceeded(date)
}

func (r *mongoMoodRepository) UpsertDay(ctx context.Context, userID, date string, moods []models.MoodSelection) (*models.DayMoodRecord, error) {
	month, day, err := splitDate(date)
	if err != nil {
		return nil, err
	}
	if len(moods) > maxMoods {
		return nil, limitExceeded(date)
	}
	if err := r.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	if len(moods) == 0 {
		if err := r.unsetDay(ctx, userID, month, day); err != nil {
			return nil, err
		}
		return &models.DayMoodRecord{Date: date, Moods: []models.MoodSelection{}}, nil
	}

	update := bson.M{
		"$set": bson.M{
			"days." + day: toSelectionDocuments(moods),
			"updated_at":  time.Now().UTC(),
		},
		"$setOnInsert": r.insertFields(userID, month),
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	doc, err := r.findOneAndUpdate(ctx, bson.M{"_id": monthDocumentID(userID, month)}, update, opts)
	if err != nil {
		return nil, upstream("upsert mood day", err)
	}
	return dayOf(toMoodMonth(doc, userID, month), date, day), nil
}

func (r *mongoMoodRepository) DeleteDay(ctx context.Context, userID, date string) error {
	month, day, err := splitDate(date)
	if err != nil {
		return err
	}
	if err := r.requireUser(ctx, userID); err != nil {
		return err
	}
	return r.unsetDay(ctx, userID, month, day)
}

func (r *mongoMoodRepository) unsetDay(ctx context.Context, userID, month, day string) error {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	_, err := r.store.collection(MoodMonthCollection).UpdateOne(ctx,
		bson.M{"_id": monthDocumentID(userID, month)},
		bson.M{
			"$unset": bson.M{"days." + day: ""},
			"$set":   bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return upstream("delete mood day", err)
	}
	return nil
}

func (r *mongoMoodRepository) insertFields(userID, month string) bson.M {
	year, mon, _ := monthOf(month)
	return bson.M{
		"user_id":        userID,
		"year":           year,
		"month":          mon,
		"schema_version": moodSchemaVersion,
	}
}

func (r *mongoMoodRepository) requireUser(ctx context.Context, userID string) error {
	ok, err := r.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("user", userID)
	}
	return nil
}

func (r *mongoMoodRepository) findMonth(ctx context.Context, userID, month string) (*moodMonthDocument, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	var doc moodMonthDocument
	err := r.store.collection(MoodMonthCollection).
		FindOne(ctx, bson.M{"_id": monthDocumentID(userID, month)}).
		Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, upstream("get mood month", err)
	}
	return &doc, nil
}

func (r *mongoMoodRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M, opts *options.FindOneAndUpdateOptions) (*moodMonthDocument, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	var doc moodMonthDocument
	if err := r.store.collection(MoodMonthCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func dayOf(month *models.MoodMonth, date, day string) *models.DayMoodRecord {
	if record, ok := month.Days[day]; ok {
		return &record
	}
	return &models.DayMoodRecord{Date: date, Moods: []models.MoodSelection{}}
}
