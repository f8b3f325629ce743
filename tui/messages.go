package tui

import "davenews/feed"

// FetchResultMsg carries a finished fetch back to the update loop
type FetchResultMsg struct {
	Result feed.Result
}
