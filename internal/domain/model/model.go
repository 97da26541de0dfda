// Package model contains domain models passed between layers.
package model

import "time"

// Ledger selects one of the two independent score ledgers.
type Ledger string

const (
	// LedgerCompetition holds per-department competition scores.
	LedgerCompetition Ledger = "scores"
	// LedgerEnthusiasm holds per-department enthusiasm points.
	LedgerEnthusiasm Ledger = "enthusiasm"
)

// Valid reports whether l names a known ledger.
func (l Ledger) Valid() bool {
	return l == LedgerCompetition || l == LedgerEnthusiasm
}

// ScoreEntry is one named entity in a ledger. Name is immutable after
// creation; Score is overwritten whole, never incremented.
type ScoreEntry struct {
	ID    string `bson:"_id,omitempty" json:"id"`
	Name  string `bson:"name" json:"name"`
	Score int    `bson:"score" json:"score"`
}

// Submission is one photo submission with its attached like counter.
// ImageRef is an opaque reference into the external media store.
type Submission struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	ImageRef  string `bson:"imageRef" json:"imageRef"`
	Category  string `bson:"category" json:"category"`
	Date      string `bson:"date" json:"date"` // calendar date, string-keyed
	LikeCount int    `bson:"likeCount" json:"likeCount"`
}

// Game is a scheduled match. Date and Time are opaque strings matched
// by exact equality, not calendar values.
type Game struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	TeamA    string `bson:"teamA" json:"teamA"`
	TeamB    string `bson:"teamB" json:"teamB"`
	Venue    string `bson:"venue" json:"venue"`
	GameName string `bson:"gameName" json:"gameName"`
	Winner   string `bson:"winner" json:"winner"`
	Date     string `bson:"date" json:"date"`
	Time     string `bson:"time" json:"time"`
}

// Article is a short text record. CreatedAt is stamped by the store at
// insertion; RecordDate is the explicit logical date used for windowed
// retrieval and is independent of CreatedAt.
type Article struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	Department string    `bson:"department" json:"department"`
	Body       string    `bson:"body" json:"body"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	RecordDate time.Time `bson:"recordDate" json:"recordDate"`
}
