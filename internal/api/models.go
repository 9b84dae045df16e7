package api

import "github.com/phrazzld/launchpad/internal/landing"

// FeatureResponse is the JSON form of a feature card.
type FeatureResponse struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FeaturesResponse lists the feature cards in render order.
type FeaturesResponse struct {
	Features []FeatureResponse `json:"features"`
}

// CallToActionResponse tells a client-side router where the call-to-action
// leads for the current session.
type CallToActionResponse struct {
	Route         string `json:"route"`
	Authenticated bool   `json:"authenticated"`
}

func newFeaturesResponse(features []landing.Feature) FeaturesResponse {
	out := make([]FeatureResponse, 0, len(features))
	for _, f := range features {
		out = append(out, FeatureResponse{
			Icon:        f.Icon.String(),
			Title:       f.Title,
			Description: f.Description,
		})
	}
	return FeaturesResponse{Features: out}
}
