package catalog

import "github.com/adpulse/adpulse/internal/domain"

// InterestCategories are the classifier's output labels.
var InterestCategories = []string{
	"sports", "technology", "fashion", "entertainment",
	"business", "health", "travel", "food",
}

// categoryToInterest maps browsed content categories to the interest label
// the classifier and ad inventory use. Unknown categories pass through.
var categoryToInterest = map[string]string{
	"sports_news":       "sports",
	"tech_news":         "technology",
	"fashion_trends":    "fashion",
	"movie_reviews":     "entertainment",
	"business_insights": "business",
	"health_tips":       "health",
	"travel_guides":     "travel",
	"food_recipes":      "food",
}

func InterestForCategory(contentCategory string) string {
	if interest, ok := categoryToInterest[contentCategory]; ok {
		return interest
	}
	return contentCategory
}

// AdInventory is the demo ad stock per interest category.
var AdInventory = map[string][]domain.Ad{
	"sports": {
		{
			ID:          "sports_1",
			Title:       "Nike Running Shoes",
			Description: "Get 20% off on latest running shoes",
			ImageURL:    "https://via.placeholder.com/300x200/FF6B6B/FFFFFF?text=Nike+Running",
			CTA:         "Shop Now",
			URL:         "#",
		},
		{
			ID:          "sports_2",
			Title:       "Gym Membership",
			Description: "Join our premium gym network",
			ImageURL:    "https://via.placeholder.com/300x200/4ECDC4/FFFFFF?text=Gym+Membership",
			CTA:         "Join Now",
			URL:         "#",
		},
	},
	"technology": {
		{
			ID:          "tech_1",
			Title:       "Latest Smartphone",
			Description: "Upgrade to the newest smartphone",
			ImageURL:    "https://via.placeholder.com/300x200/45B7D1/FFFFFF?text=Smartphone",
			CTA:         "Learn More",
			URL:         "#",
		},
		{
			ID:          "tech_2",
			Title:       "Programming Course",
			Description: "Learn Python, JavaScript, and more",
			ImageURL:    "https://via.placeholder.com/300x200/96CEB4/FFFFFF?text=Coding+Course",
			CTA:         "Start Learning",
			URL:         "#",
		},
	},
	"fashion": {
		{
			ID:          "fashion_1",
			Title:       "Summer Collection",
			Description: "New arrivals for the summer season",
			ImageURL:    "https://via.placeholder.com/300x200/FFEAA7/000000?text=Summer+Fashion",
			CTA:         "Shop Collection",
			URL:         "#",
		},
		{
			ID:          "fashion_2",
			Title:       "Designer Handbags",
			Description: "Luxury handbags at great prices",
			ImageURL:    "https://via.placeholder.com/300x200/DDA0DD/FFFFFF?text=Designer+Bags",
			CTA:         "View Collection",
			URL:         "#",
		},
	},
	"entertainment": {
		{
			ID:          "entertainment_1",
			Title:       "Streaming Service",
			Description: "Watch unlimited movies and shows",
			ImageURL:    "https://via.placeholder.com/300x200/FF9999/FFFFFF?text=Streaming",
			CTA:         "Start Free Trial",
			URL:         "#",
		},
		{
			ID:          "entertainment_2",
			Title:       "Concert Tickets",
			Description: "Get tickets for upcoming concerts",
			ImageURL:    "https://via.placeholder.com/300x200/87CEEB/000000?text=Concert+Tickets",
			CTA:         "Buy Tickets",
			URL:         "#",
		},
	},
	"business": {
		{
			ID:          "business_1",
			Title:       "Business Software",
			Description: "Boost your productivity with our tools",
			ImageURL:    "https://via.placeholder.com/300x200/98D8C8/000000?text=Business+Tools",
			CTA:         "Try Free",
			URL:         "#",
		},
		{
			ID:          "business_2",
			Title:       "Investment Platform",
			Description: "Start investing with just $10",
			ImageURL:    "https://via.placeholder.com/300x200/F7DC6F/000000?text=Invest+Now",
			CTA:         "Start Investing",
			URL:         "#",
		},
	},
}

// AdCategories lists the interests that actually have inventory, in a
// stable order.
func AdCategories() []string {
	out := make([]string, 0, len(AdInventory))
	for _, interest := range InterestCategories {
		if _, ok := AdInventory[interest]; ok {
			out = append(out, interest)
		}
	}
	return out
}

// AdsForInterest returns a copy of the inventory for one interest so callers
// can stamp recommendation metadata without mutating the stock.
func AdsForInterest(interest string) []domain.Ad {
	stock := AdInventory[interest]
	out := make([]domain.Ad, len(stock))
	copy(out, stock)
	return out
}

// AllAds returns a copy of the whole inventory in stable interest order.
func AllAds() []domain.Ad {
	var out []domain.Ad
	for _, interest := range AdCategories() {
		out = append(out, AdsForInterest(interest)...)
	}
	return out
}
