package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"davenews/feed"
	"davenews/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSource struct {
	mu       sync.Mutex
	searches []string
	heads    []string
	articles []types.Article
	err      error
}

func (s *stubSource) TopHeadlines(_ context.Context, category string) ([]types.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heads = append(s.heads, category)
	return s.articles, s.err
}

func (s *stubSource) Search(_ context.Context, query string) ([]types.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searches = append(s.searches, query)
	return s.articles, s.err
}

func (s *stubSource) searched() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.searches...)
}

func testArticles() []types.Article {
	return []types.Article{
		{
			ID:          "0-2024-01-01T00:00:00Z",
			Title:       "Example",
			Description: "D",
			Author:      "Jane Roe",
			URL:         "https://example.com/a",
			URLToImage:  "https://example.com/a.jpg",
			PublishedAt: "2024-01-01T00:00:00Z",
			Source:      types.Source{Name: "Ex"},
		},
		{
			ID:          "1-2024-01-02T00:00:00Z",
			Title:       "Clip",
			URL:         "https://www.youtube.com/watch?v=1",
			PublishedAt: "2024-01-02T00:00:00Z",
			Source:      types.Source{Name: "Tube"},
		},
	}
}

func newTestRouter(src feed.Source) (*gin.Engine, *feed.View) {
	view := feed.NewView(src, zap.NewNop())
	return NewRouter(view, zap.NewNop()), view
}

func do(r http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// waitSettled polls until the view leaves the loading phase
func waitSettled(t *testing.T, view *feed.View) feed.Snapshot {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if snap := view.Snapshot(); snap.Phase != feed.PhaseLoading {
			return snap
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("view still loading after deadline")
	return feed.Snapshot{}
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(&stubSource{})
	w := do(r, http.MethodGet, "/api/health", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Fatalf("body = %v", body)
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	r, _ := newTestRouter(&stubSource{})
	w := do(r, http.MethodGet, "/api/categories", "", "")
	var body struct {
		Categories []string `json:"categories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Categories) != 7 || body.Categories[0] != "general" {
		t.Fatalf("categories = %v", body.Categories)
	}
}

func TestPageSearchRedirectsAndSearches(t *testing.T) {
	src := &stubSource{articles: testArticles()}
	r, view := newTestRouter(src)

	form := url.Values{"search": {"go"}}.Encode()
	w := do(r, http.MethodPost, "/search", "application/x-www-form-urlencoded", form)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("Location = %q", loc)
	}

	w = do(r, http.MethodGet, "/api/feed", "", "")
	var snap struct {
		Mode  string `json:"mode"`
		Query string `json:"query"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatal(err)
	}
	if snap.Mode != "search" || snap.Query != "go" {
		t.Fatalf("snapshot = %+v", snap)
	}

	waitSettled(t, view)
	if got := src.searched(); len(got) != 1 || got[0] != "go" {
		t.Fatalf("searches = %v", got)
	}
}

func TestPageUnknownCategory(t *testing.T) {
	r, _ := newTestRouter(&stubSource{})
	w := do(r, http.MethodPost, "/category/weather", "", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestPageCategoryRedirects(t *testing.T) {
	r, view := newTestRouter(&stubSource{})
	w := do(r, http.MethodPost, "/category/sports", "", "")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", w.Code)
	}
	if snap := waitSettled(t, view); snap.Category != "sports" {
		t.Fatalf("category = %q", snap.Category)
	}
}

func TestPageRendersStates(t *testing.T) {
	t.Run("loading", func(t *testing.T) {
		r, _ := newTestRouter(&stubSource{})
		w := do(r, http.MethodGet, "/", "", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, `http-equiv="refresh"`) || !strings.Contains(body, "Loading...") {
			t.Fatalf("loading page missing refresh or indicator")
		}
	})

	t.Run("ready", func(t *testing.T) {
		r, view := newTestRouter(&stubSource{articles: testArticles()})
		view.Run(context.Background(), view.Mount())
		body := do(r, http.MethodGet, "/", "", "").Body.String()
		for _, want := range []string{"Example", "Read more", "Watch", "Jan 1, 2024", `action="/category/technology"`, "By Jane Roe", `alt="Example"`} {
			if !strings.Contains(body, want) {
				t.Fatalf("page missing %q", want)
			}
		}
		if strings.Contains(body, `http-equiv="refresh"`) {
			t.Fatalf("ready page should not auto-refresh")
		}
	})

	t.Run("error", func(t *testing.T) {
		r, view := newTestRouter(&stubSource{err: errors.New("upstream 500")})
		view.Run(context.Background(), view.Mount())
		body := do(r, http.MethodGet, "/", "", "").Body.String()
		if !strings.Contains(body, feed.FailureMessage) {
			t.Fatalf("page missing failure message")
		}
		if strings.Contains(body, "upstream 500") {
			t.Fatalf("page leaked the underlying error")
		}
	})
}

func TestFeedSnapshotCards(t *testing.T) {
	r, view := newTestRouter(&stubSource{articles: testArticles()})
	view.Run(context.Background(), view.Mount())

	w := do(r, http.MethodGet, "/api/feed", "", "")
	var snap struct {
		Phase string `json:"phase"`
		Cards []struct {
			Article types.Article `json:"article"`
			Media   string        `json:"media"`
			Style   struct {
				CTA string `json:"cta"`
			} `json:"style"`
		} `json:"cards"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatal(err)
	}
	if snap.Phase != "ready" || len(snap.Cards) != 2 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap.Cards[0].Article.PublishedAt != "2024-01-01T00:00:00Z" {
		t.Fatalf("publishedAt = %q", snap.Cards[0].Article.PublishedAt)
	}
	if snap.Cards[1].Media != "video" || snap.Cards[1].Style.CTA != "Watch" {
		t.Fatalf("card 1 = %+v", snap.Cards[1])
	}
}

func TestFeedJSONTriggers(t *testing.T) {
	cases := []struct {
		name   string
		path   string
		body   string
		status int
		mode   string
	}{
		{"category", "/api/feed/category", `{"category":"health"}`, http.StatusAccepted, "headlines"},
		{"unknown category", "/api/feed/category", `{"category":"weather"}`, http.StatusBadRequest, ""},
		{"missing category", "/api/feed/category", `{}`, http.StatusBadRequest, ""},
		{"bad json", "/api/feed/category", `{`, http.StatusBadRequest, ""},
		{"search", "/api/feed/search", `{"query":"rust"}`, http.StatusAccepted, "search"},
		{"empty search", "/api/feed/search", `{"query":""}`, http.StatusAccepted, "headlines"},
		{"whitespace search", "/api/feed/search", `{"query":"  "}`, http.StatusAccepted, "search"},
		{"refresh", "/api/feed/refresh", ``, http.StatusAccepted, "headlines"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, view := newTestRouter(&stubSource{})
			w := do(r, http.MethodPost, c.path, "application/json", c.body)
			if w.Code != c.status {
				t.Fatalf("status = %d; want %d (%s)", w.Code, c.status, w.Body.String())
			}
			if c.status != http.StatusAccepted {
				return
			}

			var body struct {
				Seq  uint64 `json:"seq"`
				Mode string `json:"mode"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body.Seq != 1 || body.Mode != c.mode {
				t.Fatalf("body = %+v", body)
			}
			waitSettled(t, view)
		})
	}
}

func TestRequestLoggerLogsStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	view := feed.NewView(&stubSource{}, zap.NewNop())
	r := NewRouter(view, zap.New(core))

	do(r, http.MethodGet, "/api/health", "", "")
	do(r, http.MethodPost, "/category/weather", "", "")

	entries := logs.FilterMessage("http request").All()
	if len(entries) != 2 {
		t.Fatalf("logged %d requests; want 2", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || entries[0].ContextMap()["status"] != int64(200) {
		t.Fatalf("first entry = %+v", entries[0])
	}
	if entries[1].Level != zapcore.WarnLevel || entries[1].ContextMap()["path"] != "/category/weather" {
		t.Fatalf("second entry = %+v", entries[1])
	}
}

func TestServerStartCron(t *testing.T) {
	view := feed.NewView(&stubSource{}, zap.NewNop())
	s := NewServer(view, "127.0.0.1:0", zap.NewNop())

	if err := s.StartCron(""); err != nil {
		t.Fatalf("empty schedule: %v", err)
	}
	if err := s.StartCron("not a schedule"); err == nil {
		t.Fatalf("expected error for invalid schedule")
	}
	if err := s.StartCron("@every 1h"); err != nil {
		t.Fatalf("valid schedule: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestScheduledRefresh(t *testing.T) {
	src := &stubSource{articles: testArticles()}
	view := feed.NewView(src, zap.NewNop())
	s := NewServer(view, "127.0.0.1:0", zap.NewNop())

	s.scheduledRefresh()
	if view.Snapshot().Seq != 0 {
		t.Fatalf("refresh should be skipped while loading")
	}

	view.Run(context.Background(), view.Mount())
	s.scheduledRefresh()
	snap := view.Snapshot()
	if snap.Seq != 2 || snap.Phase != feed.PhaseReady {
		t.Fatalf("snapshot = %+v", snap)
	}
}
