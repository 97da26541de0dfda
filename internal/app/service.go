// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pranayjha5666/harsha4/internal/adapters/media"
	"github.com/pranayjha5666/harsha4/internal/adapters/repository"
	"github.com/pranayjha5666/harsha4/internal/domain/model"
	"github.com/pranayjha5666/harsha4/pkg/logger"
	"github.com/pranayjha5666/harsha4/pkg/metrics"
)

// Service implements the API dependencies for the campus aggregator.
// It holds no mutable state between calls; every cross-call guarantee is
// delegated to the document store.
type Service struct {
	store       repository.Store
	media       media.Releaser
	departments []string
	logger      logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the document store the service operates on.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithMediaReleaser sets the external media release client.
func WithMediaReleaser(r media.Releaser) Option {
	return func(s *Service) {
		if r != nil {
			s.media = r
		}
	}
}

// WithDepartments sets the canonical list of names seeded into both ledgers.
func WithDepartments(names []string) Option {
	return func(s *Service) {
		if len(names) > 0 {
			s.departments = names
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service from options.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// mapStoreErr lifts repository sentinels into the core error taxonomy.
func mapStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrUnavailable):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	default:
		return err
	}
}

// EnsureSeeded inserts {name, score: 0} into both ledgers for every
// canonical department, skipping names that already exist. Safe to call
// on every process start and under concurrent callers: the insert is an
// atomic insert-if-absent at the store, so a seed pass never resets an
// already-scored entity. Per-name failures are logged and do not block
// the remaining names. Returns the number of entries newly created.
func (s *Service) EnsureSeeded(ctx context.Context) int {
	inserted := 0
	for _, ledger := range []model.Ledger{model.LedgerCompetition, model.LedgerEnthusiasm} {
		for _, name := range s.departments {
			created, err := s.store.SeedEntity(ctx, ledger, name)
			if err != nil {
				metrics.RecordSeedOutcome("failed")
				s.logger.Warn(ctx, "seeding failed for name",
					logger.String("ledger", string(ledger)),
					logger.String("name", name),
					logger.Error(err),
				)
				continue
			}
			if created {
				inserted++
				metrics.RecordSeedOutcome("inserted")
			} else {
				metrics.RecordSeedOutcome("existing")
			}
		}
	}
	s.logger.Info(ctx, "ledger seeding complete",
		logger.Int("inserted", inserted),
		logger.Int("departments", len(s.departments)),
	)
	return inserted
}

// Scores returns a ledger sorted by score descending, ties broken by
// insertion order.
func (s *Service) Scores(ctx context.Context, ledger model.Ledger) ([]model.ScoreEntry, error) {
	if !ledger.Valid() {
		return nil, fmt.Errorf("%w: unknown ledger %q", ErrInvalidArgument, ledger)
	}
	entries, err := s.store.ListScores(ctx, ledger)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return entries, nil
}

// SetScore overwrites the stored score for name and returns the updated
// entry. The write is a total overwrite, never an increment; repeating it
// with the same value produces the same observable state. An unseeded
// name fails with ErrNotFound, never implicit creation.
func (s *Service) SetScore(ctx context.Context, ledger model.Ledger, name string, score int) (model.ScoreEntry, error) {
	if !ledger.Valid() {
		return model.ScoreEntry{}, fmt.Errorf("%w: unknown ledger %q", ErrInvalidArgument, ledger)
	}
	if strings.TrimSpace(name) == "" {
		return model.ScoreEntry{}, fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	entry, err := s.store.SetScore(ctx, ledger, name, score)
	if err != nil {
		return model.ScoreEntry{}, mapStoreErr(err)
	}
	metrics.RecordScoreOverwrite()
	return entry, nil
}

// SubmitPhoto records a new submission with its like counter at zero.
func (s *Service) SubmitPhoto(ctx context.Context, imageRef, category, date string) (model.Submission, error) {
	switch {
	case strings.TrimSpace(imageRef) == "":
		return model.Submission{}, fmt.Errorf("%w: imageRef is required", ErrInvalidArgument)
	case strings.TrimSpace(date) == "":
		return model.Submission{}, fmt.Errorf("%w: date is required", ErrInvalidArgument)
	}
	sub := model.Submission{
		ImageRef: imageRef,
		Category: category,
		Date:     date,
	}
	if err := s.store.InsertSubmission(ctx, &sub); err != nil {
		return model.Submission{}, mapStoreErr(err)
	}
	s.refreshSubmissionGauge(ctx)
	return sub, nil
}

// Photos lists submissions ordered by date descending. A non-empty date
// restricts the result to exact matches on that date.
func (s *Service) Photos(ctx context.Context, date string) ([]model.Submission, error) {
	subs, err := s.store.ListSubmissions(ctx, date)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return subs, nil
}

// AdjustLike applies a +1 or -1 delta to a submission's like counter and
// returns the updated submission. The delta lands at the storage layer as
// an atomic increment, so concurrent adjustments are all durably
// reflected regardless of interleaving. The counter has no floor at zero.
func (s *Service) AdjustLike(ctx context.Context, id string, delta int) (model.Submission, error) {
	if strings.TrimSpace(id) == "" {
		return model.Submission{}, fmt.Errorf("%w: id is required", ErrInvalidArgument)
	}
	if delta != 1 && delta != -1 {
		return model.Submission{}, fmt.Errorf("%w: delta must be +1 or -1", ErrInvalidArgument)
	}
	sub, err := s.store.AdjustLikeCount(ctx, id, delta)
	if err != nil {
		return model.Submission{}, mapStoreErr(err)
	}
	if delta > 0 {
		metrics.RecordLikeAdjustment("like")
	} else {
		metrics.RecordLikeAdjustment("dislike")
	}
	return sub, nil
}

// DeletePhoto removes a submission and releases its media reference.
// The metadata removal is authoritative: when the media release fails the
// record stays deleted, the failure is logged and reported, and no retry
// happens. Reports whether the media reference was released.
func (s *Service) DeletePhoto(ctx context.Context, id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, fmt.Errorf("%w: id is required", ErrInvalidArgument)
	}
	sub, err := s.store.DeleteSubmission(ctx, id)
	if err != nil {
		return false, mapStoreErr(err)
	}
	s.refreshSubmissionGauge(ctx)

	if s.media == nil {
		return false, nil
	}
	if err := s.media.Release(ctx, sub.ImageRef); err != nil {
		metrics.RecordMediaRelease("failed")
		s.logger.Warn(ctx, "media release failed; reference dropped",
			logger.String("id", id),
			logger.String("imageRef", sub.ImageRef),
			logger.Error(err),
		)
		return false, nil
	}
	metrics.RecordMediaRelease("released")
	return true, nil
}

// AddGame stores a new schedule entry. Duplicate team/date combinations
// are permitted.
func (s *Service) AddGame(ctx context.Context, game model.Game) (model.Game, error) {
	switch {
	case strings.TrimSpace(game.TeamA) == "":
		return model.Game{}, fmt.Errorf("%w: teamA is required", ErrInvalidArgument)
	case strings.TrimSpace(game.TeamB) == "":
		return model.Game{}, fmt.Errorf("%w: teamB is required", ErrInvalidArgument)
	case strings.TrimSpace(game.Date) == "":
		return model.Game{}, fmt.Errorf("%w: date is required", ErrInvalidArgument)
	}
	if err := s.store.InsertGame(ctx, &game); err != nil {
		return model.Game{}, mapStoreErr(err)
	}
	return game, nil
}

// FindGames returns schedule entries for an exact date match. When team
// is non-blank the result is restricted to entries where team equals
// teamA or teamB in full, case-insensitively. An empty result is a
// valid, non-error outcome.
func (s *Service) FindGames(ctx context.Context, date, team string) ([]model.Game, error) {
	if strings.TrimSpace(date) == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidArgument)
	}
	games, err := s.store.FindGamesByDate(ctx, date)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	team = strings.TrimSpace(team)
	if team == "" {
		return games, nil
	}
	matched := make([]model.Game, 0, len(games))
	for _, g := range games {
		if strings.EqualFold(g.TeamA, team) || strings.EqualFold(g.TeamB, team) {
			matched = append(matched, g)
		}
	}
	return matched, nil
}

// DeleteGame removes a schedule entry by id.
func (s *Service) DeleteGame(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidArgument)
	}
	return mapStoreErr(s.store.DeleteGame(ctx, id))
}

// AddArticle stores a new article. CreatedAt is stamped at insertion by
// the store, independent of the caller-supplied record date.
func (s *Service) AddArticle(ctx context.Context, department, body string, recordDate time.Time) (model.Article, error) {
	switch {
	case strings.TrimSpace(department) == "":
		return model.Article{}, fmt.Errorf("%w: department is required", ErrInvalidArgument)
	case strings.TrimSpace(body) == "":
		return model.Article{}, fmt.Errorf("%w: body is required", ErrInvalidArgument)
	case recordDate.IsZero():
		return model.Article{}, fmt.Errorf("%w: recordDate is required", ErrInvalidArgument)
	}
	article := model.Article{
		Department: department,
		Body:       body,
		RecordDate: recordDate.UTC(),
	}
	if err := s.store.InsertArticle(ctx, &article); err != nil {
		return model.Article{}, mapStoreErr(err)
	}
	return article, nil
}

// ArticlesOn returns articles whose record date falls within the UTC
// calendar day of the given instant, inclusive at both ends.
func (s *Service) ArticlesOn(ctx context.Context, day time.Time) ([]model.Article, error) {
	if day.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidArgument)
	}
	from, to := dayWindow(day)
	articles, err := s.store.FindArticlesBetween(ctx, from, to)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return articles, nil
}

// DeleteArticle removes an article by id.
func (s *Service) DeleteArticle(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidArgument)
	}
	return mapStoreErr(s.store.DeleteArticle(ctx, id))
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	ctx := context.Background()
	stats := map[string]interface{}{
		"departments":  len(s.departments),
		"mediaEnabled": s.media != nil,
	}
	if count, err := s.store.CountSubmissions(ctx); err == nil {
		stats["submissions"] = count
		metrics.UpdateSubmissionCount(int(count))
	}
	return stats
}

// refreshSubmissionGauge best-effort updates the submission gauge.
func (s *Service) refreshSubmissionGauge(ctx context.Context) {
	if count, err := s.store.CountSubmissions(ctx); err == nil {
		metrics.UpdateSubmissionCount(int(count))
	}
}

// dayWindow computes the inclusive UTC window [00:00:00.000, 23:59:59.999]
// for the calendar day containing t.
func dayWindow(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	from := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	to := from.Add(24*time.Hour - time.Millisecond)
	return from, to
}
