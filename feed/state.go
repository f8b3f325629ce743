package feed

import "davenews/types"

// FailureMessage is the only error text users see, whatever went wrong
const FailureMessage = "Failed to fetch news articles"

// Phase names the view state
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseError   Phase = "error"
)

// State is one of Loading, Ready or Failed
type State interface {
	Phase() Phase
	isState()
}

// Loading means a fetch is outstanding
type Loading struct{}

// Ready holds the articles of the latest successful fetch
type Ready struct {
	Articles []types.Article
}

// Failed holds the user-facing failure message
type Failed struct {
	Message string
}

func (Loading) Phase() Phase { return PhaseLoading }
func (Ready) Phase() Phase   { return PhaseReady }
func (Failed) Phase() Phase  { return PhaseError }

func (Loading) isState() {}
func (Ready) isState()   {}
func (Failed) isState()  {}

// Mode says which client operation a request runs
type Mode string

const (
	ModeHeadlines Mode = "headlines"
	ModeSearch    Mode = "search"
)

// Request is one fetch issued by the view
type Request struct {
	Seq      uint64 `json:"seq"`
	ID       string `json:"request_id"`
	Category string `json:"category"`
	Query    string `json:"query,omitempty"`
}

// Mode returns ModeSearch when the request carries a non-empty query. A query
// always wins over the category.
func (r Request) Mode() Mode {
	if queryActive(r.Query) {
		return ModeSearch
	}
	return ModeHeadlines
}

// Result is the outcome of running a Request against the news source
type Result struct {
	Request  Request
	Articles []types.Article
	Err      error
}

func queryActive(q string) bool {
	return q != ""
}
