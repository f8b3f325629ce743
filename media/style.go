package media

// Style is how a media type is presented on a card
type Style struct {
	// Accent is the foreground colour role for the source label, icon and call to action
	Accent string `json:"accent"`
	// Background tints the icon badge
	Background string `json:"background"`
	// Border outlines the card
	Border string `json:"border"`
	Icon   string `json:"icon"`
	CTA    string `json:"cta"`
}

var styles = map[Type]Style{
	Video: {
		Accent:     "#2563EB",
		Background: "#EFF6FF",
		Border:     "#BFDBFE",
		Icon:       "🎬",
		CTA:        "Watch",
	},
	Audio: {
		Accent:     "#16A34A",
		Background: "#F0FDF4",
		Border:     "#BBF7D0",
		Icon:       "🎧",
		CTA:        "Listen",
	},
	Podcast: {
		Accent:     "#4B5563",
		Background: "#F9FAFB",
		Border:     "#E5E7EB",
		Icon:       "🎙",
		CTA:        "Listen to Podcast",
	},
	Article: {
		Accent:     "#4B5563",
		Background: "#F9FAFB",
		Border:     "#E5E7EB",
		Icon:       "📰",
		CTA:        "Read more",
	},
}

// StyleFor returns the presentation for t. Unknown types get the article style.
func StyleFor(t Type) Style {
	if s, ok := styles[t]; ok {
		return s
	}
	return styles[Article]
}
