// Package feed holds the news feed view state: the selected category, the
// active search query and the Loading/Ready/Failed state of the article list.
package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"davenews/logger"
	"davenews/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Source is the news backend the view fetches from
type Source interface {
	TopHeadlines(ctx context.Context, category string) ([]types.Article, error)
	Search(ctx context.Context, query string) ([]types.Article, error)
}

// View is the feed state machine. It is safe for concurrent use.
//
// Every trigger (mount, category, search, refresh) moves the view to Loading
// and hands out a Request with the next sequence number. Only the result of
// the latest request is applied; older results are dropped on arrival.
type View struct {
	mu sync.RWMutex

	state     State
	category  string
	query     string
	seq       uint64
	updatedAt time.Time

	source Source
	log    *zap.Logger
	now    func() time.Time
}

// NewView creates a view in the Loading state with the default category
func NewView(source Source, log *zap.Logger) *View {
	log = logger.OrNop(log)
	return &View{
		state:    Loading{},
		category: DefaultCategory,
		source:   source,
		log:      log,
		now:      time.Now,
	}
}

// Mount resets the selection to the default category with no search and
// issues the initial fetch.
func (v *View) Mount() Request {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.category = DefaultCategory
	v.query = ""
	return v.trigger("mount")
}

// SelectCategory switches the category. An active search query is kept and
// still decides the request mode.
func (v *View) SelectCategory(category string) (Request, error) {
	if !IsCategory(category) {
		return Request{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.category = category
	return v.trigger("category"), nil
}

// SubmitSearch sets the search query as submitted. An empty query turns search
// off and falls back to the selected category.
func (v *View) SubmitSearch(query string) Request {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.query = query
	return v.trigger("search")
}

// Refresh re-issues the fetch for the current selection
func (v *View) Refresh() Request {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.trigger("refresh")
}

// trigger enters Loading and builds the next request (must hold lock)
func (v *View) trigger(reason string) Request {
	v.seq++
	v.state = Loading{}
	v.updatedAt = v.now()

	req := Request{
		Seq:      v.seq,
		ID:       uuid.NewString(),
		Category: v.category,
		Query:    v.query,
	}
	v.log.Debug("feed fetch triggered",
		zap.String("reason", reason),
		zap.Uint64("seq", req.Seq),
		zap.String("request_id", req.ID),
		zap.String("mode", string(req.Mode())),
		zap.String("category", req.Category),
		zap.String("query", req.Query),
	)
	return req
}

// Fetch runs req against the source without touching view state
func (v *View) Fetch(ctx context.Context, req Request) Result {
	var (
		articles []types.Article
		err      error
	)

	switch req.Mode() {
	case ModeSearch:
		articles, err = v.source.Search(ctx, req.Query)
	default:
		articles, err = v.source.TopHeadlines(ctx, req.Category)
	}

	return Result{Request: req, Articles: articles, Err: err}
}

// Resolve applies res if it belongs to the latest request and reports whether
// it did. Any error collapses to FailureMessage; the cause is only logged.
func (v *View) Resolve(res Result) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	fields := []zap.Field{
		zap.Uint64("seq", res.Request.Seq),
		zap.String("request_id", res.Request.ID),
		zap.String("mode", string(res.Request.Mode())),
	}

	if res.Request.Seq != v.seq {
		v.log.Info("dropping stale feed result", append(fields, zap.Uint64("latest_seq", v.seq))...)
		return false
	}

	v.updatedAt = v.now()
	if res.Err != nil {
		v.log.Error("feed fetch failed", append(fields, zap.Error(res.Err))...)
		v.state = Failed{Message: FailureMessage}
		return true
	}

	v.log.Info("feed updated", append(fields, zap.Int("articles", len(res.Articles)))...)
	v.state = Ready{Articles: res.Articles}
	return true
}

// Run fetches req and resolves the result
func (v *View) Run(ctx context.Context, req Request) bool {
	return v.Resolve(v.Fetch(ctx, req))
}

// State returns the current state
func (v *View) State() State {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// Snapshot is a point-in-time copy of the view for rendering
type Snapshot struct {
	Phase     Phase           `json:"phase"`
	Category  string          `json:"category"`
	Query     string          `json:"query"`
	Mode      Mode            `json:"mode"`
	Seq       uint64          `json:"seq"`
	Articles  []types.Article `json:"-"`
	Cards     []Card          `json:"cards"`
	Message   string          `json:"message,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Snapshot returns a copy of the current view state with freshly classified cards
func (v *View) Snapshot() Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()

	snap := Snapshot{
		Phase:     v.state.Phase(),
		Category:  v.category,
		Query:     v.query,
		Mode:      Request{Query: v.query}.Mode(),
		Seq:       v.seq,
		UpdatedAt: v.updatedAt,
	}

	switch s := v.state.(type) {
	case Ready:
		snap.Articles = append([]types.Article{}, s.Articles...)
	case Failed:
		snap.Message = s.Message
	}
	snap.Cards = Cards(snap.Articles)
	return snap
}
