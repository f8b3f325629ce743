package tui

// UI Text Constants
const (
	TextTitle             = "📰 Dave News"
	TextSearchPlaceholder = "Search news..."
	TextLoading           = "Loading news..."
	TextEmpty             = "No articles found"
)
