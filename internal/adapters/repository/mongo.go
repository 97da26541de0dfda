package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pranayjha5666/harsha4/internal/domain/model"
	"github.com/pranayjha5666/harsha4/pkg/logger"
	"github.com/pranayjha5666/harsha4/pkg/metrics"
)

// Collection names. The two ledgers share a shape but are stored apart and
// never cross-reference each other.
const (
	submissionCollectionName = "photos"
	scheduleCollectionName   = "schedule"
	articleCollectionName    = "articles"
)

// Default store configuration.
const (
	defaultTimeout = 10 * time.Second
	defaultDBName  = "campus"
)

// MongoStore implements Store against a MongoDB deployment.
type MongoStore struct {
	uri          string
	databaseName string
	timeout      time.Duration
	logger       logger.Logger

	client   *mongo.Client
	database *mongo.Database

	submissions *mongo.Collection
	schedule    *mongo.Collection
	articles    *mongo.Collection
}

// NewMongoStore connects to the document store and prepares collections.
func NewMongoStore(ctx context.Context, opts ...Option) (*MongoStore, error) {
	s := &MongoStore{
		uri:          "mongodb://localhost:27017",
		databaseName: defaultDBName,
		timeout:      defaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return nil, translate(err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, translate(err)
	}

	s.client = client
	s.database = client.Database(s.databaseName)
	s.submissions = s.database.Collection(submissionCollectionName)
	s.schedule = s.database.Collection(scheduleCollectionName)
	s.articles = s.database.Collection(articleCollectionName)

	if err := s.ensureIndexes(ctx); err != nil {
		s.logger.Warn(ctx, "failed to ensure indexes", logger.Error(err))
	}

	return s, nil
}

// Close disconnects from the store.
func (s *MongoStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	if err := s.client.Disconnect(ctx); err != nil {
		return translate(err)
	}
	return nil
}

// ensureIndexes creates the unique name index both ledgers rely on for
// duplicate-free concurrent seeding.
func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, ledger := range []model.Ledger{model.LedgerCompetition, model.LedgerEnthusiasm} {
		if _, err := s.ledgerCollection(ledger).Indexes().CreateOne(ctx, idx); err != nil {
			return translate(err)
		}
	}
	return nil
}

func (s *MongoStore) ledgerCollection(ledger model.Ledger) *mongo.Collection {
	return s.database.Collection(string(ledger))
}

// opCtx bounds a single store call by the configured timeout.
func (s *MongoStore) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// observe records latency and error metrics for one store call.
func observe(op string, start time.Time, err error) {
	metrics.RecordStoreOperation(op, float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordStoreError(op)
	}
}

// translate maps driver errors onto this package's sentinels so callers
// never see raw driver failures.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case errors.Is(err, context.DeadlineExceeded),
		mongo.IsTimeout(err),
		mongo.IsNetworkError(err):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	default:
		return fmt.Errorf("store operation failed: %w", err)
	}
}

func (s *MongoStore) SeedEntity(ctx context.Context, ledger model.Ledger, name string) (inserted bool, err error) {
	if !ledger.Valid() {
		return false, ErrBadLedger
	}
	start := time.Now()
	defer func() { observe("seed_entity", start, err) }()

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	entry := bson.M{"name": name, "score": 0}
	res, err := s.ledgerCollection(ledger).UpdateOne(ctx,
		bson.M{"name": name},
		bson.M{"$setOnInsert": entry},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		// A concurrent seed pass won the insert; the entry exists.
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, translate(err)
	}
	return res.UpsertedCount > 0, nil
}

func (s *MongoStore) ListScores(ctx context.Context, ledger model.Ledger) (entries []model.ScoreEntry, err error) {
	if !ledger.Valid() {
		return nil, ErrBadLedger
	}
	start := time.Now()
	defer func() { observe("list_scores", start, err) }()

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	// ObjectID ids ascend with insertion time, giving the deterministic
	// tie-break on equal scores.
	cursor, err := s.ledgerCollection(ledger).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "score", Value: -1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, translate(err)
	}
	entries = []model.ScoreEntry{}
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, translate(err)
	}
	return entries, nil
}

func (s *MongoStore) SetScore(ctx context.Context, ledger model.Ledger, name string, score int) (entry model.ScoreEntry, err error) {
	if !ledger.Valid() {
		return model.ScoreEntry{}, ErrBadLedger
	}
	start := time.Now()
	defer func() { observe("set_score", start, err) }()

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	err = s.ledgerCollection(ledger).FindOneAndUpdate(ctx,
		bson.M{"name": name},
		bson.M{"$set": bson.M{"score": score}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&entry)
	if err != nil {
		return model.ScoreEntry{}, translate(err)
	}
	return entry, nil
}

func (s *MongoStore) InsertSubmission(ctx context.Context, sub *model.Submission) (err error) {
	start := time.Now()
	defer func() { observe("insert_submission", start, err) }()

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	sub.ID = primitive.NewObjectID().Hex()
	if _, err = s.submissions.InsertOne(ctx, sub); err != nil {
		return translate(err)
	}
	return nil
}

func (s *MongoStore) ListSubmissions(ctx context.Context, date string) (subs []model.Submission, err error) {
	start := time.Now()
	defer func() { observe("list_submissions", start, err) }()

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	filter := bson.M{}
	if date != "" {
		filter["date"] = date
	}
	cursor, err := s.submissions.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}),
	)
	if err != nil {
		return nil, translate(err)
	}
	subs = []model.Submission{}
	if err = cursor.All(ctx, &subs); err != nil {
		return nil, translate(err)
	}
	return subs, nil
}

func (s *MongoStore) AdjustLikeCount(ctx context.Context, id string, delta int) (sub model.Submission, err error) {
	start := time.Now()
	defer func() { observe("adjust_like_count", start, err) }()

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	// The delta is applied by the store itself, never via a local
	// read-then-write, so concurrent adjustments cannot lose updates.
	err = s.submissions.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"likeCount": delta}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&sub)
	if err != nil {
		return model.Submission{}, translate(err)
	}
	return sub, nil
}

func (s *MongoStore) DeleteSubmission(ctx context.Context, id string) (sub model.Submission, err error) {
	start := time.Now()
	defer func() { observe("delete_submission", start, err) }()

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	if err = s.submissions.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&sub); err != nil {
		return model.Submission{}, translate(err)
	}
	return sub, nil
}

func (s *MongoStore) CountSubmissions(ctx context.Context) (count int64, err error) {
	start := time.Now()
	defer func() { observe("count_submissions", start, err) }()

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	count, err = s.submissions.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, translate(err)
	}
	return count, nil
}

func (s *MongoStore) InsertGame(ctx context.Context, game *model.Game) (err error) {
	start := time.Now()
	defer func() { observe("insert_game", start, err) }()

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	game.ID = primitive.NewObjectID().Hex()
	if _, err = s.schedule.InsertOne(ctx, game); err != nil {
		return translate(err)
	}
	return nil
}

func (s *MongoStore) FindGamesByDate(ctx context.Context, date string) (games []model.Game, err error) {
	start := time.Now()
	defer func() { observe("find_games_by_date", start, err) }()

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	cursor, err := s.schedule.Find(ctx, bson.M{"date": date},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, translate(err)
	}
	games = []model.Game{}
	if err = cursor.All(ctx, &games); err != nil {
		return nil, translate(err)
	}
	return games, nil
}

func (s *MongoStore) DeleteGame(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { observe("delete_game", start, err) }()

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	res, err := s.schedule.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) InsertArticle(ctx context.Context, article *model.Article) (err error) {
	start := time.Now()
	defer func() { observe("insert_article", start, err) }()

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	article.ID = primitive.NewObjectID().Hex()
	article.CreatedAt = time.Now().UTC()
	if _, err = s.articles.InsertOne(ctx, article); err != nil {
		return translate(err)
	}
	return nil
}

func (s *MongoStore) FindArticlesBetween(ctx context.Context, from, to time.Time) (articles []model.Article, err error) {
	start := time.Now()
	defer func() { observe("find_articles_between", start, err) }()

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	cursor, err := s.articles.Find(ctx,
		bson.M{"recordDate": bson.M{"$gte": from, "$lte": to}},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, translate(err)
	}
	articles = []model.Article{}
	if err = cursor.All(ctx, &articles); err != nil {
		return nil, translate(err)
	}
	return articles, nil
}

func (s *MongoStore) DeleteArticle(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { observe("delete_article", start, err) }()

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	res, err := s.articles.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
