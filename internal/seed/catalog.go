package seed

import "yourtour/internal/models/db_models"

// Badge names must match the achievement rule set exactly; the evaluator
// resolves grants by name.
var badgeCatalog = []db_models.Badge{
	{Name: "Tourist I", Description: "Visit 10 unique cities", StaticImageURL: "bronze_tourist_badge.png"},
	{Name: "Tourist II", Description: "Visit 20 unique cities", StaticImageURL: "silver_tourist_badge.png"},
	{Name: "Tourist III", Description: "Visit 50 unique cities", StaticImageURL: "gold_tourist_badge.png"},
	{Name: "Tourist IV", Description: "Visit 100 unique cities", StaticImageURL: "diamond_tourist_badge.png"},
	{Name: "Tourist V", Description: "Visit 500 unique cities", StaticImageURL: "emerald_tourist_badge.png"},

	{Name: "Gem Hunter I", Description: "Find 1 gem", StaticImageURL: "bronze_gem_badge.png"},
	{Name: "Gem Hunter II", Description: "Find 5 gems", StaticImageURL: "silver_gem_badge.png"},
	{Name: "Gem Hunter III", Description: "Find 20 gems", StaticImageURL: "gold_gem_badge.png"},
	{Name: "Gem Hunter IV", Description: "Find 50 gems", StaticImageURL: "diamond_gem_badge.png"},
	{Name: "Gem Hunter V", Description: "Find 100 gems", StaticImageURL: "emerald_gem_badge.png"},

	{Name: "Explorer I", Description: "Visit 3 unique states", StaticImageURL: "bronze_explorer_badge.png"},
	{Name: "Explorer II", Description: "Visit 5 unique states", StaticImageURL: "silver_explorer_badge.png"},
	{Name: "Explorer III", Description: "Visit 10 unique states", StaticImageURL: "gold_explorer_badge.png"},
	{Name: "Explorer IV", Description: "Visit 20 unique states", StaticImageURL: "diamond_explorer_badge.png"},
	{Name: "Explorer V", Description: "Visit 50 unique states", StaticImageURL: "emerald_explorer_badge.png"},

	{Name: "In The Wild", Description: "Visit a city that has no facts", StaticImageURL: "wild_badge.png"},
}

var gemCatalog = []db_models.Gem{
	{City: "Yachats", State: "Oregon", Description: "Coastal gem with Thor's Well and tide pools"},
	{City: "Wellsboro", State: "Pennsylvania", Description: "Gateway to PA Grand Canyon with gas-lit streets"},
	{City: "New Shoreham", State: "Rhode Island", Description: "Block Island town with Southeast Lighthouse"},
	{City: "McClellanville", State: "South Carolina", Description: "Shrimping village with Lowcountry charm"},
	{City: "Lead", State: "South Dakota", Description: "Historic gold mining town with Sanford Lab"},
	{City: "Rugby", State: "Tennessee", Description: "Historic district at the geographic center of old South"},
	{City: "Port Isabel", State: "Texas", Description: "Coastal town with lighthouse and pirate museum"},
	{City: "Helper", State: "Utah", Description: "Mining town turned art community with vintage gas stations"},
	{City: "Chester", State: "Vermont", Description: "Stone Village and stone house architecture"},
	{City: "Tangier", State: "Virginia", Description: "Chesapeake Bay island with unique dialect"},
	{City: "Dayton", State: "Washington", Description: "Oldest train depot in the state with historic Main Street"},
	{City: "Thomas", State: "West Virginia", Description: "Former coal town turned art community with music venues"},
	{City: "New Glarus", State: "Wisconsin", Description: "Little Switzerland with brewery and folk museum"},
	{City: "Thermopolis", State: "Wyoming", Description: "World's largest mineral hot springs with bison viewing"},
	{City: "Ocracoke", State: "North Carolina", Description: "Remote island with Blackbeard history and wild ponies"},
	{City: "Garrison", State: "North Dakota", Description: "Lake Sakakawea town with Fort Stevenson"},
	{City: "Granville", State: "Ohio", Description: "New England-style village with Denison University"},
	{City: "Medicine Park", State: "Oklahoma", Description: "Cobblestone resort town in the Wichita Mountains"},
	{City: "Aurora", State: "New York", Description: "Wells College town with MacKenzie-Childs pottery"},
}

var interestCatalog = []string{
	"history",
	"geography",
	"culture",
	"food",
	"sports",
	"kayaking",
	"fishing",
	"movies",
	"tech",
	"music",
	"solo travel",
	"animals",
	"cross country",
	"live events",
	"hiking",
	"working out",
	"community culture",
}
