package landing

// Hero is the copy shown above the feature grid.
type Hero struct {
	Headline    string
	Tagline     string
	Subtitle    string
	ButtonLabel string
}

// DefaultHero returns the hero copy of the landing page.
func DefaultHero() Hero {
	return Hero{
		Headline:    "Launching Dreams,",
		Tagline:     "Shaping Futures",
		Subtitle:    "Navigate your career journey with AI-powered guidance and secure credential management.",
		ButtonLabel: "Start Your Journey",
	}
}
