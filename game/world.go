package game

// WorldMap builds the standard world geography: 42 territories grouped
// into 6 bonus regions. Handles are assigned in the order of
// worldTerritoryNames, so the layout is stable across games.
func WorldMap() *Map {
	m := NewMap()

	ids := make(map[string]int, len(worldTerritoryNames))
	for _, name := range worldTerritoryNames {
		ids[name] = m.AddTerritory(name)
	}

	// Walk the borders in territory order, not map order: adjacency
	// lists must come out identical on every build so that seeded games
	// replay the same way.
	for _, name := range worldTerritoryNames {
		for _, neighbor := range worldBorders[name] {
			m.AddBorder(ids[name], ids[neighbor])
		}
	}

	for _, region := range worldRegions {
		members := make([]int, len(region.members))
		for i, name := range region.members {
			members[i] = ids[name]
		}
		m.AddRegion(region.name, region.bonus, members...)
	}

	return m
}

// GLOBAL DATA. Standard world map: territory names, borders and regions.

var worldTerritoryNames = []string{
	"Alaska", "Northwest Territory", "Greenland", "Alberta", "Ontario",
	"Quebec", "Western United States", "Eastern United States",
	"Central America",
	"Venezuela", "Peru", "Brazil", "Argentina",
	"Iceland", "Great Britain", "Scandinavia", "Northern Europe",
	"Western Europe", "Southern Europe", "Ukraine",
	"North Africa", "Egypt", "East Africa", "Congo", "South Africa",
	"Madagascar",
	"Ural", "Siberia", "Yakutsk", "Kamchatka", "Irkutsk", "Mongolia",
	"Japan", "Afghanistan", "China", "India", "Siam", "Middle East",
	"Indonesia", "New Guinea", "Western Australia", "Eastern Australia",
}

// Borders are listed from both sides; AddBorder deduplicates.
var worldBorders = map[string][]string{
	"Alaska":                {"Northwest Territory", "Alberta", "Kamchatka"},
	"Northwest Territory":   {"Alaska", "Alberta", "Ontario", "Greenland"},
	"Greenland":             {"Northwest Territory", "Ontario", "Quebec", "Iceland"},
	"Alberta":               {"Alaska", "Northwest Territory", "Ontario", "Western United States"},
	"Ontario":               {"Northwest Territory", "Alberta", "Greenland", "Quebec", "Western United States", "Eastern United States"},
	"Quebec":                {"Greenland", "Ontario", "Eastern United States"},
	"Western United States": {"Alberta", "Ontario", "Eastern United States", "Central America"},
	"Eastern United States": {"Ontario", "Quebec", "Western United States", "Central America"},
	"Central America":       {"Western United States", "Eastern United States", "Venezuela"},
	"Venezuela":             {"Central America", "Brazil", "Peru"},
	"Peru":                  {"Venezuela", "Brazil", "Argentina"},
	"Brazil":                {"Venezuela", "Peru", "Argentina", "North Africa"},
	"Argentina":             {"Peru", "Brazil"},
	"Iceland":               {"Greenland", "Great Britain", "Scandinavia"},
	"Great Britain":         {"Iceland", "Scandinavia", "Northern Europe", "Western Europe"},
	"Scandinavia":           {"Iceland", "Great Britain", "Northern Europe", "Ukraine"},
	"Northern Europe":       {"Great Britain", "Scandinavia", "Ukraine", "Southern Europe", "Western Europe"},
	"Western Europe":        {"Great Britain", "Northern Europe", "Southern Europe", "North Africa"},
	"Southern Europe":       {"Western Europe", "Northern Europe", "Ukraine", "Middle East", "Egypt", "North Africa"},
	"Ukraine":               {"Scandinavia", "Northern Europe", "Southern Europe", "Ural", "Afghanistan", "Middle East"},
	"North Africa":          {"Brazil", "Western Europe", "Southern Europe", "Egypt", "East Africa", "Congo"},
	"Egypt":                 {"Southern Europe", "North Africa", "East Africa", "Middle East"},
	"East Africa":           {"Egypt", "North Africa", "Congo", "South Africa", "Madagascar", "Middle East"},
	"Congo":                 {"North Africa", "East Africa", "South Africa"},
	"South Africa":          {"Congo", "East Africa", "Madagascar"},
	"Madagascar":            {"East Africa", "South Africa"},
	"Ural":                  {"Ukraine", "Siberia", "China", "Afghanistan"},
	"Siberia":               {"Ural", "Yakutsk", "Irkutsk", "Mongolia", "China"},
	"Yakutsk":               {"Siberia", "Kamchatka", "Irkutsk"},
	"Kamchatka":             {"Yakutsk", "Irkutsk", "Mongolia", "Japan", "Alaska"},
	"Irkutsk":               {"Siberia", "Yakutsk", "Kamchatka", "Mongolia"},
	"Mongolia":              {"Siberia", "Irkutsk", "Kamchatka", "Japan", "China"},
	"Japan":                 {"Kamchatka", "Mongolia"},
	"Afghanistan":           {"Ukraine", "Ural", "China", "India", "Middle East"},
	"China":                 {"Ural", "Siberia", "Mongolia", "Afghanistan", "India", "Siam"},
	"India":                 {"Middle East", "Afghanistan", "China", "Siam"},
	"Siam":                  {"India", "China", "Indonesia"},
	"Middle East":           {"Ukraine", "Southern Europe", "Egypt", "East Africa", "Afghanistan", "India"},
	"Indonesia":             {"Siam", "New Guinea", "Western Australia"},
	"New Guinea":            {"Indonesia", "Western Australia", "Eastern Australia"},
	"Western Australia":     {"Indonesia", "New Guinea", "Eastern Australia"},
	"Eastern Australia":     {"New Guinea", "Western Australia"},
}

var worldRegions = []struct {
	name    string
	bonus   int
	members []string
}{
	{"North America", 5, []string{
		"Alaska", "Northwest Territory", "Greenland", "Alberta", "Ontario",
		"Quebec", "Western United States", "Eastern United States",
		"Central America",
	}},
	{"South America", 2, []string{
		"Venezuela", "Peru", "Brazil", "Argentina",
	}},
	{"Europe", 5, []string{
		"Iceland", "Great Britain", "Scandinavia", "Northern Europe",
		"Western Europe", "Southern Europe", "Ukraine",
	}},
	{"Africa", 3, []string{
		"North Africa", "Egypt", "East Africa", "Congo", "South Africa",
		"Madagascar",
	}},
	{"Asia", 7, []string{
		"Ural", "Siberia", "Yakutsk", "Kamchatka", "Irkutsk", "Mongolia",
		"Japan", "Afghanistan", "China", "India", "Siam", "Middle East",
	}},
	{"Australia", 2, []string{
		"Indonesia", "New Guinea", "Western Australia", "Eastern Australia",
	}},
}
