package landing

// Icon identifies the symbol shown on a feature card.
type Icon int

// Icons available to feature cards.
const (
	IconHome Icon = iota
	IconBookOpen
	IconAward
	IconMessageCircle
)

var iconNames = [...]string{
	IconHome:          "home",
	IconBookOpen:      "book-open",
	IconAward:         "award",
	IconMessageCircle: "message-circle",
}

// String returns the symbolic icon name, matching the lucide icon set.
func (i Icon) String() string {
	if i < 0 || int(i) >= len(iconNames) {
		return "unknown"
	}
	return iconNames[i]
}

// Feature describes one card in the feature grid.
type Feature struct {
	Icon        Icon
	Title       string
	Description string
}

// features is declared once and never written to.
var features = [...]Feature{
	{
		Icon:        IconHome,
		Title:       "Personalized Guidance",
		Description: "AI-powered career recommendations tailored to your profile.",
	},
	{
		Icon:        IconBookOpen,
		Title:       "Learning Resources",
		Description: "Access curated educational materials and courses.",
	},
	{
		Icon:        IconAward,
		Title:       "Secure Credentials",
		Description: "Blockchain-powered document verification system.",
	},
	{
		Icon:        IconMessageCircle,
		Title:       "AI Chat Support",
		Description: "24/7 intelligent career guidance assistance.",
	},
}

// FeatureCount is the number of cards in the feature grid.
const FeatureCount = len(features)

// Features returns the feature cards in render order.
// The returned slice is a copy; changing it has no effect on later calls.
func Features() []Feature {
	out := make([]Feature, len(features))
	copy(out, features[:])
	return out
}
