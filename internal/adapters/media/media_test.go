package media

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pranayjha5666/harsha4/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestClientDisabled(t *testing.T) {
	Convey("Given a client without credentials", t, func() {
		c := NewClient()

		Convey("Then it should report disabled", func() {
			So(c.Enabled(), ShouldBeFalse)
		})

		Convey("When releasing a reference", func() {
			err := c.Release(context.Background(), "campus/photo-1")

			Convey("Then it should no-op without error", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When releasing an empty reference", func() {
			err := c.Release(context.Background(), "  ")

			Convey("Then it should fail with ErrEmptyReference", func() {
				So(errors.Is(err, ErrEmptyReference), ShouldBeTrue)
			})
		})
	})
}

func TestClientRelease(t *testing.T) {
	Convey("Given a client against a fake provider", t, func() {
		var gotPath string
		var gotForm map[string]string

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_ = r.ParseForm()
			gotForm = map[string]string{
				"public_id": r.PostFormValue("public_id"),
				"timestamp": r.PostFormValue("timestamp"),
				"api_key":   r.PostFormValue("api_key"),
				"signature": r.PostFormValue("signature"),
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"result":"ok"}`))
		}))
		defer srv.Close()

		fixed := time.Unix(1_740_000_000, 0)
		c := NewClient(
			WithCredentials("campus-cloud", "key-123", "secret-456"),
			WithBaseURL(srv.URL),
			WithClock(func() time.Time { return fixed }),
		)

		Convey("When releasing a reference", func() {
			err := c.Release(context.Background(), "campus/photo-1")

			Convey("Then the destroy endpoint should receive a signed request", func() {
				So(err, ShouldBeNil)
				So(gotPath, ShouldEqual, "/campus-cloud/image/destroy")
				So(gotForm["public_id"], ShouldEqual, "campus/photo-1")
				So(gotForm["timestamp"], ShouldEqual, "1740000000")
				So(gotForm["api_key"], ShouldEqual, "key-123")
				So(gotForm["signature"], ShouldEqual, c.sign("campus/photo-1", "1740000000"))
			})
		})
	})

	Convey("Given a provider that rejects the release", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		c := NewClient(
			WithCredentials("campus-cloud", "key-123", "secret-456"),
			WithBaseURL(srv.URL),
		)

		Convey("When releasing a reference", func() {
			err := c.Release(context.Background(), "campus/photo-1")

			Convey("Then it should fail with ErrReleaseFailed", func() {
				So(errors.Is(err, ErrReleaseFailed), ShouldBeTrue)
			})
		})
	})

	Convey("Given a provider that reports a missing object", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"result":"not found"}`))
		}))
		defer srv.Close()

		c := NewClient(
			WithCredentials("campus-cloud", "key-123", "secret-456"),
			WithBaseURL(srv.URL),
		)

		Convey("When releasing a reference", func() {
			err := c.Release(context.Background(), "campus/photo-1")

			Convey("Then the release should count as done", func() {
				So(err, ShouldBeNil)
			})
		})
	})
}
