package domain

// Recommendation is a single AI-suggested destination returned by the
// recommendation collaborator.
type Recommendation struct {
	Name         string   `json:"name"`
	Region       string   `json:"region,omitempty"`
	WhyItFits    string   `json:"whyItFits"`
	UniqueAppeal string   `json:"uniqueAppeal"`
	Activities   []string `json:"activities"`
}
