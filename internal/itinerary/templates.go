package itinerary

import "github.com/CHAITANYA-2002/city-trail/internal/domain"

// MinDays and MaxDays bound the supported trip durations.
const (
	MinDays = 1
	MaxDays = 4
)

// Template returns the expert-authored day plan for a trip of the given
// duration, or nil when no template exists for that duration.
func Template(days int) []domain.PlannedDay {
	return jaipurTemplates[days]
}

// HasTemplate reports whether a schedule template exists for the duration.
func HasTemplate(days int) bool {
	return len(jaipurTemplates[days]) > 0
}

// jaipurTemplates holds one curated multi-day schedule per supported trip
// duration. Stop order within a day is the authored visiting order and is
// authoritative for routing.
var jaipurTemplates = map[int][]domain.PlannedDay{
	1: {
		{
			Day:   1,
			Title: "Jaipur in One Day",
			Stops: []domain.Stop{
				{Time: "7:30 AM", Title: "Amber Fort", Description: "Explore Amber Fort early (2 hrs).", Type: "Fort", Area: "Amer", DurationMinutes: 120},
				{Time: "9:30 AM", Title: "Panna Meena Ka Kund", Description: "Stepwell visit (30 mins).", Type: "Stepwell", Area: "Amer", DurationMinutes: 30},
				{Time: "10:30 AM", Title: "Jal Mahal", Description: "Quick photo stop (15 mins).", Type: "Palace", Area: "Man Sagar", DurationMinutes: 15},
				{Time: "11:00 AM", Title: "City Palace & Jantar Mantar", Description: "Royal palace & observatory (2 hrs).", Type: "Palace", Area: "Old City", DurationMinutes: 120},
				{Time: "1:00 PM", Title: "Lunch – LMB", Description: "Rajasthani thali.", Type: "Food", Area: "Johari Bazaar"},
				{Time: "2:30 PM", Title: "Hawa Mahal", Description: "Palace of Winds (30 mins).", Type: "Palace", Area: "Old City", DurationMinutes: 30},
				{Time: "3:30 PM", Title: "Johari & Bapu Bazaar", Description: "Shopping time (1 hr).", Type: "Market", Area: "Old City", DurationMinutes: 60},
				{Time: "5:00 PM", Title: "Nahargarh Fort", Description: "Sunset views.", Type: "Fort", Area: "Aravalli Hills", DurationMinutes: 90},
				{Time: "7:00 PM", Title: "Dinner – Peacock / Handi", Description: "Rooftop dining.", Type: "Food", Area: "MI Road"},
			},
		},
	},
	2: {
		{
			Day:   1,
			Title: "Historic Jaipur",
			Stops: []domain.Stop{
				{Time: "7:30 AM", Title: "Amber Fort", Description: "Morning fort visit.", Type: "Fort", Area: "Amer", DurationMinutes: 120},
				{Time: "9:30 AM", Title: "Panna Meena Ka Kund", Description: "Historic stepwell.", Type: "Stepwell", Area: "Amer", DurationMinutes: 30},
				{Time: "10:30 AM", Title: "Jal Mahal", Description: "Photography stop.", Type: "Palace", Area: "Man Sagar", DurationMinutes: 15},
				{Time: "11:00 AM", Title: "City Palace & Jantar Mantar", Description: "Heritage exploration.", Type: "Palace", Area: "Old City", DurationMinutes: 120},
				{Time: "1:00 PM", Title: "Lunch – LMB", Description: "Local cuisine.", Type: "Food", Area: "Johari Bazaar"},
				{Time: "2:30 PM", Title: "Hawa Mahal", Description: "Iconic landmark.", Type: "Palace", Area: "Old City", DurationMinutes: 30},
				{Time: "5:00 PM", Title: "Nahargarh Fort", Description: "Sunset viewpoint.", Type: "Fort", Area: "Aravalli Hills", DurationMinutes: 90},
			},
		},
		{
			Day:   2,
			Title: "Culture & Spirituality",
			Stops: []domain.Stop{
				{Time: "8:00 AM", Title: "Jaigarh Fort", Description: "Military fort & views.", Type: "Fort", Area: "Amer", DurationMinutes: 120},
				{Time: "10:00 AM", Title: "Sisodia Rani Ka Bagh", Description: "Garden palace.", Type: "Garden", Area: "Agra Road", DurationMinutes: 60},
				{Time: "12:30 PM", Title: "Lunch – Govindam Retreat", Description: "Satvik food.", Type: "Food", Area: "Old City"},
				{Time: "2:00 PM", Title: "Galta Ji (Monkey Temple)", Description: "Spiritual site.", Type: "Temple", Area: "Galta Gate", DurationMinutes: 90},
				{Time: "4:00 PM", Title: "Tapri Central", Description: "Tea & leisure.", Type: "Food", Area: "C-Scheme"},
				{Time: "7:00 PM", Title: "Chokhi Dhani", Description: "Cultural dinner.", Type: "Experience", Area: "Tonk Road", DurationMinutes: 180},
			},
		},
	},
	3: {
		{
			Day:   1,
			Title: "Forts & Views",
			Stops: []domain.Stop{
				{Time: "8:00 AM", Title: "Amber Fort", Description: "Fort exploration.", Type: "Fort", Area: "Amer", DurationMinutes: 150},
				{Time: "10:30 AM", Title: "Panna Meena Ka Kund", Description: "Stepwell visit.", Type: "Stepwell", Area: "Amer", DurationMinutes: 30},
				{Time: "12:00 PM", Title: "Jaigarh Fort", Description: "Cannon & views.", Type: "Fort", Area: "Amer", DurationMinutes: 120},
				{Time: "4:30 PM", Title: "Nahargarh Fort", Description: "Sunset café.", Type: "Fort", Area: "Aravalli Hills", DurationMinutes: 90},
			},
		},
		{
			Day:   2,
			Title: "City Heritage",
			Stops: []domain.Stop{
				{Time: "9:00 AM", Title: "Hawa Mahal", Description: "Morning visit.", Type: "Palace", Area: "Old City", DurationMinutes: 30},
				{Time: "10:00 AM", Title: "City Palace", Description: "Museum & palace.", Type: "Palace", Area: "Old City", DurationMinutes: 120},
				{Time: "12:00 PM", Title: "Jantar Mantar", Description: "Astronomy site.", Type: "Observatory", Area: "Old City", DurationMinutes: 60},
				{Time: "4:00 PM", Title: "Albert Hall Museum", Description: "Historic museum.", Type: "Museum", Area: "Ram Niwas Garden", DurationMinutes: 90},
				{Time: "6:30 PM", Title: "Patrika Gate", Description: "Photo spot.", Type: "Landmark", Area: "Jawahar Circle", DurationMinutes: 30},
			},
		},
		{
			Day:   3,
			Title: "Leisure & Culture",
			Stops: []domain.Stop{
				{Time: "9:00 AM", Title: "Jawahar Circle", Description: "Morning walk.", Type: "Park", Area: "Malviya Nagar", DurationMinutes: 60},
				{Time: "11:00 AM", Title: "Sisodia Rani Ka Bagh", Description: "Garden palace.", Type: "Garden", Area: "Agra Road", DurationMinutes: 60},
				{Time: "2:00 PM", Title: "Galta Ji", Description: "Temple complex.", Type: "Temple", Area: "Galta Gate", DurationMinutes: 90},
				{Time: "7:00 PM", Title: "Chokhi Dhani", Description: "Cultural night.", Type: "Experience", Area: "Tonk Road", DurationMinutes: 180},
			},
		},
	},
	4: {
		{
			Day:   1,
			Title: "City Palace Circuit",
			Stops: []domain.Stop{
				{Time: "9:00 AM", Title: "City Palace", Description: "Royal complex.", Type: "Palace", Area: "Old City", DurationMinutes: 120},
				{Time: "11:00 AM", Title: "Jantar Mantar", Description: "Astronomical marvel.", Type: "Observatory", Area: "Old City", DurationMinutes: 60},
				{Time: "4:00 PM", Title: "Albert Hall Museum", Description: "Evening visit.", Type: "Museum", Area: "Ram Niwas Garden", DurationMinutes: 90},
			},
		},
		{
			Day:   2,
			Title: "Forts of Jaipur",
			Stops: []domain.Stop{
				{Time: "8:00 AM", Title: "Amber Fort", Description: "Major fort.", Type: "Fort", Area: "Amer", DurationMinutes: 150},
				{Time: "11:00 AM", Title: "Jaigarh Fort", Description: "Historic cannons.", Type: "Fort", Area: "Amer", DurationMinutes: 120},
				{Time: "4:30 PM", Title: "Nahargarh Fort", Description: "Sunset views.", Type: "Fort", Area: "Aravalli Hills", DurationMinutes: 90},
			},
		},
		{
			Day:   3,
			Title: "Gardens & Temples",
			Stops: []domain.Stop{
				{Time: "9:00 AM", Title: "Sisodia Rani Ka Bagh", Description: "Garden palace.", Type: "Garden", Area: "Agra Road", DurationMinutes: 60},
				{Time: "12:00 PM", Title: "Galta Ji", Description: "Monkey Temple.", Type: "Temple", Area: "Galta Gate", DurationMinutes: 90},
				{Time: "6:00 PM", Title: "Masala Chowk", Description: "Street food.", Type: "Food", Area: "Ram Niwas Garden", DurationMinutes: 60},
			},
		},
		{
			Day:   4,
			Title: "Day Trip & Shopping",
			Stops: []domain.Stop{
				{Time: "9:00 AM", Title: "Bapu Bazaar", Description: "Textiles, handicrafts & local souvenirs.", Type: "Market", Area: "Old City", DurationMinutes: 90},
				{Time: "11:00 AM", Title: "World Trade Park", Description: "Modern mall with shopping and cafes.", Type: "Mall", Area: "Malviya Nagar", DurationMinutes: 90},
				{Time: "1:00 PM", Title: "Gaurav Tower", Description: "Browse local stores and lunch options.", Type: "Mall", Area: "Malviya Nagar", DurationMinutes: 90},
				{Time: "3:00 PM", Title: "Jawahar Circle", Description: "Relax in the park and enjoy nearby cafes.", Type: "Park", Area: "Malviya Nagar", DurationMinutes: 60},
				{Time: "7:30 PM", Title: "Chokhi Dhani", Description: "Traditional Rajasthani dinner and cultural performances.", Type: "Experience", Area: "Tonk Road", DurationMinutes: 180},
			},
		},
	},
}

// AllStops returns every stop across every duration template, flattened and
// de-duplicated by title in first-seen order. This is the pool presented by
// the day-plan wizard.
func AllStops() []domain.Stop {
	seen := make(map[string]bool)
	var stops []domain.Stop
	for days := MinDays; days <= MaxDays; days++ {
		for _, day := range jaipurTemplates[days] {
			for _, s := range day.Stops {
				if seen[s.Title] {
					continue
				}
				seen[s.Title] = true
				stops = append(stops, s)
			}
		}
	}
	return stops
}
