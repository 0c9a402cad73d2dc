package repository

import "github.com/adyen/storefront-ui/internal/models"

// Storefront categories
var (
	HandTools    = models.Category{Slug: "hand-tools", Name: "Hand Tools"}
	PowerTools   = models.Category{Slug: "power-tools", Name: "Power Tools"}
	Other        = models.Category{Slug: "other", Name: "Other"}
	SpecialTools = models.Category{Slug: "special-tools", Name: "Special Tools"}
)

// SeedProducts returns the catalog served by the fixture storefront
func SeedProducts() []models.Product {
	products := []models.Product{
		{ID: "combination-pliers", Name: "Combination Pliers", Price: 1415, Brand: "ForgeFlex Tools", Category: HandTools, Stock: 25,
			Description: "Sturdy combination pliers with insulated grips for gripping, bending and cutting wire."},
		{ID: "pliers", Name: "Pliers", Price: 1201, Brand: "ForgeFlex Tools", Category: HandTools, Stock: 12,
			Description: "General purpose slip-joint pliers."},
		{ID: "bolt-cutters", Name: "Bolt Cutters", Price: 4841, Brand: "MightyCraft Hardware", Category: HandTools, Stock: 3,
			Description: "Heavy duty bolt cutters with a compound hinge for extra leverage."},
		{ID: "long-nose-pliers", Name: "Long Nose Pliers", Price: 1424, Brand: "MightyCraft Hardware", Category: HandTools, Stock: 0,
			Description: "Slim jaws for reaching into tight spaces."},
		{ID: "claw-hammer", Name: "Claw Hammer", Price: 1250, Brand: "ForgeFlex Tools", Category: HandTools, Stock: 40,
			Description: "Steel claw hammer with a shock absorbing fibreglass handle."},
		{ID: "thor-hammer", Name: "Thor Hammer", Price: 1105, Brand: "MightyCraft Hardware", Category: HandTools, Stock: 1,
			Description: "A hammer only the worthy can lift."},
		{ID: "sledgehammer", Name: "Sledgehammer", Price: 1741, Brand: "ForgeFlex Tools", Category: HandTools, Stock: 9,
			Description: "Four pound sledgehammer for demolition work."},
		{ID: "cordless-drill", Name: "Cordless Drill 20V", Price: 12500, Brand: "ForgeFlex Tools", Category: PowerTools, Stock: 7,
			Description: "Compact 20V drill driver with two batteries."},
		{ID: "circular-saw", Name: "Circular Saw", Price: 8099, Brand: "MightyCraft Hardware", Category: PowerTools, Stock: 5,
			Description: "1400W circular saw with laser guide."},
		{ID: "random-orbit-sander", Name: "Random Orbit Sander", Price: 10026, Brand: "ForgeFlex Tools", Category: PowerTools, Stock: 0,
			Description: "Variable speed sander with dust collection."},
		{ID: "safety-goggles", Name: "Safety Goggles", Price: 2420, Brand: "MightyCraft Hardware", Category: Other, Stock: 30,
			Description: "Anti-fog goggles that fit over prescription glasses."},
		{ID: "work-gloves", Name: "Leather Work Gloves", Price: 1890, Brand: "ForgeFlex Tools", Category: Other, Stock: 18,
			Description: "Reinforced leather gloves for heavy work."},
		{ID: "tape-measure", Name: "Tape Measure 7.5m", Price: 725, Brand: "MightyCraft Hardware", Category: SpecialTools, Stock: 22,
			Description: "Self-locking tape measure with magnetic hook."},
		{ID: "spirit-level", Name: "Spirit Level", Price: 1950, Brand: "ForgeFlex Tools", Category: SpecialTools, Stock: 14,
			Description: "60cm aluminium spirit level with three vials."},
	}

	for i := range products {
		id := products[i].ID
		products[i].Images = []string{
			"/static/images/" + id + "-1.svg",
			"/static/images/" + id + "-2.svg",
			"/static/images/" + id + "-3.svg",
		}
	}
	return products
}
