package archive

// PopularCollections is a curated list of magazine collections worth
// passing to --collection.
var PopularCollections = []string{
	"magazine_rack",
	"computers_and_techmagazines",
	"magazine_rack_additional",
	"pulpmagazinearchive",
	"vintage_computer_magazines",
	"national_geographic_magazine",
	"lifemagazine",
	"time_magazine_archives",
	"popular_mechanics",
	"newstatesman",
	"scientific_american",
	"magazine_collection",
	"popsci",
	"vogue",
	"new_yorker",
	"harpers",
	"wired",
	"theleadingmagazine",
}
