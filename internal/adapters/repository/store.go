// Package repository defines the document store interface and errors.
package repository

import (
	"context"
	"time"

	"github.com/pranayjha5666/harsha4/internal/domain/model"
)

// Store provides access to the shared document store. All durability and
// cross-call consistency is delegated to the store's atomicity guarantees:
// atomic upsert for seeding, atomic increment for like counters, atomic
// single-document overwrite for score updates. Implementations never leak
// raw driver errors; every failure maps onto this package's sentinels.
type Store interface {
	// SeedEntity inserts {name, score: 0} into the ledger if and only if no
	// entry with that name exists. Reports whether a new entry was created.
	SeedEntity(ctx context.Context, ledger model.Ledger, name string) (bool, error)

	// ListScores returns all ledger entries sorted by score descending,
	// ties broken by insertion order.
	ListScores(ctx context.Context, ledger model.Ledger) ([]model.ScoreEntry, error)

	// SetScore overwrites the score for name and returns the updated entry.
	// Returns ErrNotFound when the name was never seeded; no implicit
	// creation happens on update.
	SetScore(ctx context.Context, ledger model.Ledger, name string, score int) (model.ScoreEntry, error)

	// InsertSubmission stores a new submission, assigning its ID.
	InsertSubmission(ctx context.Context, sub *model.Submission) error

	// ListSubmissions returns submissions ordered by date descending,
	// optionally restricted to an exact date match when date is non-empty.
	ListSubmissions(ctx context.Context, date string) ([]model.Submission, error)

	// AdjustLikeCount applies delta to the stored like counter using the
	// store's native increment and returns the updated document.
	AdjustLikeCount(ctx context.Context, id string, delta int) (model.Submission, error)

	// DeleteSubmission removes a submission and returns the removed
	// document so callers can release its media reference.
	DeleteSubmission(ctx context.Context, id string) (model.Submission, error)

	// CountSubmissions returns the number of stored submissions.
	CountSubmissions(ctx context.Context) (int64, error)

	// InsertGame stores a new schedule entry, assigning its ID.
	// Duplicates are permitted.
	InsertGame(ctx context.Context, game *model.Game) error

	// FindGamesByDate returns all schedule entries whose date field equals
	// date exactly.
	FindGamesByDate(ctx context.Context, date string) ([]model.Game, error)

	// DeleteGame removes a schedule entry by id.
	DeleteGame(ctx context.Context, id string) error

	// InsertArticle stores a new article, assigning its ID and stamping
	// CreatedAt.
	InsertArticle(ctx context.Context, article *model.Article) error

	// FindArticlesBetween returns articles whose RecordDate falls within
	// [from, to], inclusive both ends.
	FindArticlesBetween(ctx context.Context, from, to time.Time) ([]model.Article, error)

	// DeleteArticle removes an article by id.
	DeleteArticle(ctx context.Context, id string) error
}
