package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"library-backend/internal/domain/user"
)

func newIdempServer(t *testing.T, calls *int) (*echo.Echo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	e := echo.New()
	withActor := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			SetActor(c, Actor{ID: strings.Repeat("a", 32), Role: user.RoleBorrower})
			return next(c)
		}
	}
	e.POST("/loans", func(c echo.Context) error {
		*calls++
		return c.JSON(http.StatusCreated, map[string]any{"n": *calls})
	}, withActor, Idempotency(rdb, 5*time.Minute))
	return e, mr
}

func doPost(e *echo.Echo, reqID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/loans", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if reqID != "" {
		req.Header.Set("X-Request-Id", reqID)
	}
	req.Header.Set("X-Request-At", strconv.FormatInt(time.Now().Unix(), 10))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestIdempotencyReplaysRecordedResponse(t *testing.T) {
	calls := 0
	e, _ := newIdempServer(t, &calls)
	reqID := strings.Repeat("1", 32)

	first := doPost(e, reqID, `{"book_id":"x"}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("first call code = %d", first.Code)
	}
	second := doPost(e, reqID, `{"book_id":"x"}`)
	if second.Code != http.StatusCreated {
		t.Fatalf("replay code = %d", second.Code)
	}
	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("replay body %q differs from original %q", second.Body.String(), first.Body.String())
	}
}

func TestIdempotencyRejectsReusedIDWithDifferentBody(t *testing.T) {
	calls := 0
	e, _ := newIdempServer(t, &calls)
	reqID := strings.Repeat("2", 32)

	if rec := doPost(e, reqID, `{"book_id":"x"}`); rec.Code != http.StatusCreated {
		t.Fatalf("first call code = %d", rec.Code)
	}
	rec := doPost(e, reqID, `{"book_id":"y"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("mismatched body code = %d, want 409", rec.Code)
	}
	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
}

func TestIdempotencyRequiresHeaders(t *testing.T) {
	calls := 0
	e, _ := newIdempServer(t, &calls)

	if rec := doPost(e, "", "{}"); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing X-Request-Id code = %d, want 400", rec.Code)
	}
	if rec := doPost(e, "not-a-valid-id", "{}"); rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed X-Request-Id code = %d, want 400", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/loans", strings.NewReader("{}"))
	req.Header.Set("X-Request-Id", strings.Repeat("3", 32))
	// no X-Request-At
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing X-Request-At code = %d, want 400", rec.Code)
	}
	if calls != 0 {
		t.Fatal("handler must not run on malformed requests")
	}
}

func TestIdempotencyRejectsSkewedTimestamp(t *testing.T) {
	calls := 0
	e, _ := newIdempServer(t, &calls)

	req := httptest.NewRequest(http.MethodPost, "/loans", strings.NewReader("{}"))
	req.Header.Set("X-Request-Id", strings.Repeat("4", 32))
	req.Header.Set("X-Request-At", strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("stale timestamp code = %d, want 400", rec.Code)
	}
}

func TestParseRequestAt(t *testing.T) {
	cases := []struct {
		raw    string
		wantOK bool
	}{
		{"1736123456", true},
		{"1736123456789", true},
		{"2025-09-05T10:00:00+07:00", true},
		{"2025-09-05T10:00:00Z", true},
		{"2025-09-05T10:00:00", false}, // naive, no zone
		{"yesterday", false},
		{"", false},
	}
	for _, tc := range cases {
		_, err := parseRequestAt(tc.raw)
		if (err == nil) != tc.wantOK {
			t.Errorf("parseRequestAt(%q) err = %v, wantOK %v", tc.raw, err, tc.wantOK)
		}
	}
}
