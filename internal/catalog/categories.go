// Package catalog holds the static reference data the demo runs on: the
// fixed set of content categories users browse, their display metadata, and
// the ad inventory grouped by interest category. Nothing here is created or
// mutated at runtime.
package catalog

// ContentCategory is one browsable content bucket.
type ContentCategory struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Icon          string   `json:"icon"`
	Color         string   `json:"color"`
	SampleContent []string `json:"sampleContent"`
}

// ContentCategories is the fixed set of 8 categories driving the browsing
// simulation. Order matters: views render them in this order.
var ContentCategories = []ContentCategory{
	{
		ID:          "sports_news",
		Name:        "Sports News",
		Description: "Latest sports updates and analysis",
		Icon:        "🏈",
		Color:       "red",
		SampleContent: []string{
			"Championship Finals: Team A vs Team B",
			"Player Transfer Rumors Heat Up",
			"Olympic Games Preparation Update",
			"Fantasy League Tips and Strategies",
		},
	},
	{
		ID:          "tech_news",
		Name:        "Technology News",
		Description: "Latest tech innovations and trends",
		Icon:        "💻",
		Color:       "blue",
		SampleContent: []string{
			"New AI Breakthrough in Machine Learning",
			"Latest Smartphone Release Comparison",
			"Cybersecurity Threats and Solutions",
			"Programming Language Trends 2024",
		},
	},
	{
		ID:          "fashion_trends",
		Name:        "Fashion Trends",
		Description: "Latest fashion and style updates",
		Icon:        "👗",
		Color:       "pink",
		SampleContent: []string{
			"Spring Fashion Collection Preview",
			"Celebrity Style Inspiration",
			"Sustainable Fashion Movement",
			"Accessories Trends for 2024",
		},
	},
	{
		ID:          "movie_reviews",
		Name:        "Movie Reviews",
		Description: "Latest movie reviews and recommendations",
		Icon:        "🎬",
		Color:       "purple",
		SampleContent: []string{
			"Blockbuster Movie Review: Action Packed",
			"Indie Film Spotlight: Hidden Gems",
			"Oscar Nominees Analysis",
			"Streaming Service Recommendations",
		},
	},
	{
		ID:          "business_insights",
		Name:        "Business Insights",
		Description: "Business news and market analysis",
		Icon:        "📈",
		Color:       "green",
		SampleContent: []string{
			"Market Trends and Investment Tips",
			"Startup Success Stories",
			"Economic Outlook for 2024",
			"Entrepreneurship Guide",
		},
	},
	{
		ID:          "health_tips",
		Name:        "Health Tips",
		Description: "Health and wellness advice",
		Icon:        "🏥",
		Color:       "emerald",
		SampleContent: []string{
			"Nutrition Tips for Better Health",
			"Workout Routines for Beginners",
			"Mental Health Awareness",
			"Sleep Optimization Strategies",
		},
	},
	{
		ID:          "travel_guides",
		Name:        "Travel Guides",
		Description: "Travel tips and destination guides",
		Icon:        "✈️",
		Color:       "yellow",
		SampleContent: []string{
			"Top Travel Destinations 2024",
			"Budget Travel Tips and Tricks",
			"Cultural Experience Guides",
			"Travel Photography Tips",
		},
	},
	{
		ID:          "food_recipes",
		Name:        "Food Recipes",
		Description: "Delicious recipes and cooking tips",
		Icon:        "🍳",
		Color:       "orange",
		SampleContent: []string{
			"Quick 30-Minute Dinner Recipes",
			"Healthy Breakfast Ideas",
			"International Cuisine Guide",
			"Baking Tips and Techniques",
		},
	},
}

// fallbackCategory is the neutral style applied to unknown category ids.
var fallbackCategory = ContentCategory{
	ID:          "unknown",
	Name:        "Unknown",
	Description: "Uncategorized content",
	Icon:        "📄",
	Color:       "gray",
}

// CategoryByID returns the display metadata for a category id. Unknown ids
// resolve to the neutral fallback entry, never an error.
func CategoryByID(id string) ContentCategory {
	for _, c := range ContentCategories {
		if c.ID == id {
			return c
		}
	}
	return fallbackCategory
}
