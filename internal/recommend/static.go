package recommend

import (
	"context"
	"fmt"
	"strings"

	"voyago/travel-planner/internal/domain"
)

// staticGenerator produces deterministic recommendations locally. It stands
// in for the inference service in development and when no endpoint is
// configured.
type staticGenerator struct{}

// NewStaticGenerator creates a Client that needs no network.
func NewStaticGenerator() Client {
	return staticGenerator{}
}

func (staticGenerator) Recommend(_ context.Context, interests []string, location string) ([]domain.Recommendation, error) {
	top := interests
	if len(top) > 3 {
		top = top[:3]
	}
	pair := interests
	if len(pair) > 2 {
		pair = pair[:2]
	}

	return []domain.Recommendation{
		{
			Name:         fmt.Sprintf("Top Destination in %s", location),
			Region:       "Popular Region",
			WhyItFits:    fmt.Sprintf("This location perfectly combines %s with stunning scenery.", strings.Join(top, ", ")),
			UniqueAppeal: "Known for its unspoiled natural beauty and authentic cultural experiences.",
			Activities: []string{
				"Explore hidden trails with local guides",
				"Experience traditional cuisine with a modern twist",
				"Participate in seasonal festivals and traditions",
			},
		},
		{
			Name:         fmt.Sprintf("Hidden Gem in %s", location),
			Region:       "Off-the-beaten-path",
			WhyItFits:    fmt.Sprintf("An undiscovered paradise for %s enthusiasts.", strings.Join(pair, " and ")),
			UniqueAppeal: "Few tourists visit this area, allowing for more authentic experiences.",
			Activities: []string{
				"Discover secluded viewpoints perfect for photography",
				"Engage with local communities and learn traditional crafts",
				"Sample regional delicacies not found elsewhere",
			},
		},
		{
			Name:         fmt.Sprintf("%s's Best Kept Secret", location),
			WhyItFits:    fmt.Sprintf("Combines the best of %s.", strings.Join(interests, ", ")),
			UniqueAppeal: "A perfect mix of adventure and relaxation that most travelers overlook.",
			Activities: []string{
				"Participate in unique local activities available only in this region",
				"Visit historical sites with fascinating stories",
				"Enjoy breathtaking views while engaging in your favorite activities",
			},
		},
	}, nil
}
