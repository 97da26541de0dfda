package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pranayjha5666/harsha4/internal/adapters/http/api"
	service "github.com/pranayjha5666/harsha4/internal/app"
	"github.com/pranayjha5666/harsha4/internal/domain/model"
	"github.com/pranayjha5666/harsha4/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// mockDeps is a canned Dependencies implementation. Err, when set, is
// returned from every operation.
type mockDeps struct {
	err     error
	entries []model.ScoreEntry
	subs    []model.Submission
	games   []model.Game
	posts   []model.Article

	lastLedger model.Ledger
	lastDelta  int
	lastTeam   string
	lastDay    time.Time
	deleted    []string
}

func (m *mockDeps) Scores(_ context.Context, ledger model.Ledger) ([]model.ScoreEntry, error) {
	m.lastLedger = ledger
	return m.entries, m.err
}

func (m *mockDeps) SetScore(_ context.Context, ledger model.Ledger, name string, score int) (model.ScoreEntry, error) {
	m.lastLedger = ledger
	if m.err != nil {
		return model.ScoreEntry{}, m.err
	}
	return model.ScoreEntry{ID: "id-0001", Name: name, Score: score}, nil
}

func (m *mockDeps) SubmitPhoto(_ context.Context, imageRef, category, date string) (model.Submission, error) {
	if m.err != nil {
		return model.Submission{}, m.err
	}
	return model.Submission{ID: "id-0002", ImageRef: imageRef, Category: category, Date: date}, nil
}

func (m *mockDeps) Photos(_ context.Context, _ string) ([]model.Submission, error) {
	return m.subs, m.err
}

func (m *mockDeps) AdjustLike(_ context.Context, id string, delta int) (model.Submission, error) {
	m.lastDelta = delta
	if m.err != nil {
		return model.Submission{}, m.err
	}
	return model.Submission{ID: id, LikeCount: delta}, nil
}

func (m *mockDeps) DeletePhoto(_ context.Context, id string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.deleted = append(m.deleted, id)
	return true, nil
}

func (m *mockDeps) AddGame(_ context.Context, game model.Game) (model.Game, error) {
	if m.err != nil {
		return model.Game{}, m.err
	}
	game.ID = "id-0003"
	return game, nil
}

func (m *mockDeps) FindGames(_ context.Context, date, team string) ([]model.Game, error) {
	m.lastTeam = team
	if date == "" {
		return nil, service.ErrInvalidArgument
	}
	return m.games, m.err
}

func (m *mockDeps) DeleteGame(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockDeps) AddArticle(_ context.Context, department, body string, recordDate time.Time) (model.Article, error) {
	if m.err != nil {
		return model.Article{}, m.err
	}
	return model.Article{ID: "id-0004", Department: department, Body: body, RecordDate: recordDate}, nil
}

func (m *mockDeps) ArticlesOn(_ context.Context, day time.Time) ([]model.Article, error) {
	m.lastDay = day
	return m.posts, m.err
}

func (m *mockDeps) DeleteArticle(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

func newMux(deps *mockDeps) *http.ServeMux {
	server := api.NewServer(deps, &mockStatsProvider{stats: map[string]interface{}{"departments": 3}})
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return mux
}

func do(mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestServerRegister(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		deps := &mockDeps{}
		mux := newMux(deps)

		Convey("Then the health endpoint should be accessible", func() {
			w := do(mux, "GET", "/healthz", "")
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("And the stats endpoint should be accessible", func() {
			w := do(mux, "GET", "/stats", "")
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("And unknown paths should 404", func() {
			w := do(mux, "GET", "/unknown", "")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("And responses should carry a request id", func() {
			w := do(mux, "GET", "/stats", "")
			So(w.Header().Get("X-Request-Id"), ShouldNotBeEmpty)
		})
	})
}

func TestLedgerEndpoints(t *testing.T) {
	Convey("Given a server with ledger entries", t, func() {
		deps := &mockDeps{entries: []model.ScoreEntry{
			{ID: "id-0001", Name: "CSE", Score: 42},
			{ID: "id-0002", Name: "ECE", Score: 10},
		}}
		mux := newMux(deps)

		Convey("When listing the competition leaderboard", func() {
			w := do(mux, "GET", "/api/leaderboard", "")

			Convey("Then it returns the success envelope with entries", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				body := decode(t, w)
				So(body["status"], ShouldEqual, true)
				So(len(body["payload"].([]interface{})), ShouldEqual, 2)
				So(deps.lastLedger, ShouldEqual, model.LedgerCompetition)
			})
		})

		Convey("When listing the enthusiasm ledger", func() {
			w := do(mux, "GET", "/api/enthusiasm", "")

			Convey("Then the request targets the other ledger", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.lastLedger, ShouldEqual, model.LedgerEnthusiasm)
			})
		})

		Convey("When updating a score", func() {
			w := do(mux, "POST", "/api/leaderboard/update-score", `{"name":"CSE","score":42}`)

			Convey("Then the envelope confirms the overwrite", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				body := decode(t, w)
				So(body["status"], ShouldEqual, true)
				So(body["message"], ShouldEqual, "Score updated")
				payload := body["payload"].(map[string]interface{})
				So(payload["name"], ShouldEqual, "CSE")
				So(payload["score"], ShouldEqual, float64(42))
			})
		})

		Convey("When the score field is missing", func() {
			w := do(mux, "POST", "/api/leaderboard/update-score", `{"name":"CSE"}`)

			Convey("Then it fails with a 400 error envelope", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				body := decode(t, w)
				So(body["status"], ShouldEqual, false)
				So(body["error"], ShouldNotBeEmpty)
			})
		})

		Convey("When the name is unknown", func() {
			deps.err = service.ErrNotFound
			w := do(mux, "POST", "/api/leaderboard/update-score", `{"name":"ROBOTICS","score":7}`)

			Convey("Then it maps to 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When the store is unavailable", func() {
			deps.err = service.ErrUnavailable
			w := do(mux, "GET", "/api/leaderboard", "")

			Convey("Then it maps to 503", func() {
				So(w.Code, ShouldEqual, http.StatusServiceUnavailable)
			})
		})
	})
}

func TestPhotoEndpoints(t *testing.T) {
	Convey("Given a server with photo submissions", t, func() {
		deps := &mockDeps{subs: []model.Submission{{ID: "id-0002", Date: "2025-03-01"}}}
		mux := newMux(deps)

		Convey("When submitting a photo", func() {
			w := do(mux, "POST", "/api/photos", `{"imageRef":"campus/p1","category":"rangoli","date":"2025-03-01"}`)

			Convey("Then it is created with the envelope payload", func() {
				So(w.Code, ShouldEqual, http.StatusCreated)
				body := decode(t, w)
				payload := body["payload"].(map[string]interface{})
				So(payload["imageRef"], ShouldEqual, "campus/p1")
				So(payload["likeCount"], ShouldEqual, float64(0))
			})
		})

		Convey("When listing photos", func() {
			w := do(mux, "GET", "/api/photos?date=2025-03-01", "")
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("When liking a photo", func() {
			w := do(mux, "POST", "/api/photos/id-0002/like", "")

			Convey("Then a +1 delta reaches the service", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.lastDelta, ShouldEqual, 1)
			})
		})

		Convey("When disliking a photo", func() {
			w := do(mux, "POST", "/api/photos/id-0002/dislike", "")

			Convey("Then a -1 delta reaches the service", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.lastDelta, ShouldEqual, -1)
			})
		})

		Convey("When deleting a photo", func() {
			w := do(mux, "DELETE", "/api/photos/id-0002", "")

			Convey("Then the delete reaches the service", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.deleted, ShouldResemble, []string{"id-0002"})
			})
		})

		Convey("When the photo does not exist", func() {
			deps.err = service.ErrNotFound
			w := do(mux, "POST", "/api/photos/id-9999/like", "")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestScheduleEndpoints(t *testing.T) {
	Convey("Given a server with schedule entries", t, func() {
		deps := &mockDeps{games: []model.Game{{ID: "id-0003", TeamA: "CSE", TeamB: "ECE", Date: "2025-03-01"}}}
		mux := newMux(deps)

		Convey("When creating a game", func() {
			w := do(mux, "POST", "/api/schedule", `{"teamA":"CSE","teamB":"ECE","venue":"main ground","gameName":"cricket","date":"2025-03-01","time":"16:00"}`)

			Convey("Then it is created", func() {
				So(w.Code, ShouldEqual, http.StatusCreated)
				body := decode(t, w)
				payload := body["payload"].(map[string]interface{})
				So(payload["teamA"], ShouldEqual, "CSE")
			})
		})

		Convey("When finding games with a team filter", func() {
			w := do(mux, "GET", "/api/schedule?date=2025-03-01&team=cse", "")

			Convey("Then the team parameter is forwarded", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.lastTeam, ShouldEqual, "cse")
			})
		})

		Convey("When the date is missing", func() {
			w := do(mux, "GET", "/api/schedule", "")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When deleting a game", func() {
			w := do(mux, "DELETE", "/api/schedule/id-0003", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(deps.deleted, ShouldResemble, []string{"id-0003"})
		})
	})
}

func TestArticleEndpoints(t *testing.T) {
	Convey("Given a server with articles", t, func() {
		deps := &mockDeps{posts: []model.Article{{ID: "id-0004", Department: "CSE"}}}
		mux := newMux(deps)

		Convey("When creating an article", func() {
			w := do(mux, "POST", "/api/articles", `{"department":"CSE","body":"fest recap","recordDate":"2025-03-01"}`)

			Convey("Then it is created with the parsed record date", func() {
				So(w.Code, ShouldEqual, http.StatusCreated)
				body := decode(t, w)
				payload := body["payload"].(map[string]interface{})
				So(payload["department"], ShouldEqual, "CSE")
			})
		})

		Convey("When querying by day", func() {
			w := do(mux, "GET", "/api/articles?date=2025-03-01", "")

			Convey("Then the parsed day reaches the service", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.lastDay.Year(), ShouldEqual, 2025)
				So(int(deps.lastDay.Month()), ShouldEqual, 3)
				So(deps.lastDay.Day(), ShouldEqual, 1)
			})
		})

		Convey("When the date parameter is missing", func() {
			w := do(mux, "GET", "/api/articles", "")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the date parameter is malformed", func() {
			w := do(mux, "GET", "/api/articles?date=tomorrow", "")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When deleting an article", func() {
			w := do(mux, "DELETE", "/api/articles/id-0004", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(deps.deleted, ShouldResemble, []string{"id-0004"})
		})
	})
}
