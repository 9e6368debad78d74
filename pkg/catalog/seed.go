package catalog

import "github.com/moodshop/moodshop/pkg/domain"

// seedItems returns the sample catalog used when no catalog file exists.
// Tags cover every emotion in the default vocabulary so a fresh install
// produces sensible recommendations for any detected mood.
func seedItems() []domain.Item {
	return []domain.Item{
		{
			ID: 1, Name: "Wireless Bluetooth Headphones", Price: 99.99,
			ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=300",
			MoodTags: []string{"entertainment", "music", "joy", "fun"},
		},
		{
			ID: 2, Name: "Aromatherapy Essential Oil Set", Price: 45.50,
			ImageURL: "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=300",
			MoodTags: []string{"comfort", "relaxation", "healing", "calming"},
		},
		{
			ID: 3, Name: "Weighted Blanket", Price: 79.00,
			ImageURL: "https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?w=300",
			MoodTags: []string{"cozy", "comfort", "soft", "warm", "self-care"},
		},
		{
			ID: 4, Name: "Boxing Gloves and Punching Bag", Price: 129.95,
			ImageURL: "https://images.unsplash.com/photo-1549719386-74dfcbf7dbed?w=300",
			MoodTags: []string{"stress-relief", "physical", "intense", "powerful"},
		},
		{
			ID: 5, Name: "Board Game Night Collection", Price: 59.99,
			ImageURL: "https://images.unsplash.com/photo-1610890716171-6b1bb98ffd09?w=300",
			MoodTags: []string{"social", "fun", "entertainment", "celebration"},
		},
		{
			ID: 6, Name: "Smart Home Security Camera", Price: 149.00,
			ImageURL: "https://images.unsplash.com/photo-1558002038-1055907df827?w=300",
			MoodTags: []string{"safety", "security", "protective", "reassuring"},
		},
		{
			ID: 7, Name: "Levitating Plant Pot", Price: 89.90,
			ImageURL: "https://images.unsplash.com/photo-1485955900006-10f4d324d411?w=300",
			MoodTags: []string{"unique", "innovative", "novel", "creative"},
		},
		{
			ID: 8, Name: "Natural Detox Tea Sampler", Price: 24.99,
			ImageURL: "https://images.unsplash.com/photo-1564890369478-c89ca6d9cde9?w=300",
			MoodTags: []string{"cleansing", "fresh", "pure", "detox"},
		},
		{
			ID: 9, Name: "Minimalist Desk Organizer", Price: 34.50,
			ImageURL: "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=300",
			MoodTags: []string{"practical", "everyday", "functional", "minimal"},
		},
		{
			ID: 10, Name: "Colorful Party Lights", Price: 39.99,
			ImageURL: "https://images.unsplash.com/photo-1514525253161-7a46d19cd819?w=300",
			MoodTags: []string{"colorful", "celebration", "joy", "fun"},
		},
	}
}
