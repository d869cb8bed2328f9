package game

// Territory is one ownable spot on the map. The ID doubles as the handle
// the engine uses everywhere: territories are created in order, 0-based.
type Territory struct {
	ID          int
	Name        string
	AdjacentIDs []int
}

// Region is a fixed group of territories granting a bonus to a player
// who owns every territory in it.
type Region struct {
	Name         string
	TerritoryIDs []int
	Bonus        int
}

// Map is the static geography: territories, their borders and regions.
// It is supplied to the engine at construction and never mutated by it.
type Map struct {
	Territories []*Territory
	Regions     []*Region
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{}
}

// AddTerritory appends a territory and returns its handle.
func (m *Map) AddTerritory(name string) int {
	id := len(m.Territories)
	m.Territories = append(m.Territories, &Territory{ID: id, Name: name})
	return id
}

// AddBorder adds a bidirectional border between two territories.
func (m *Map) AddBorder(id1, id2 int) {
	if !contains(m.Territories[id1].AdjacentIDs, id2) {
		m.Territories[id1].AdjacentIDs = append(m.Territories[id1].AdjacentIDs, id2)
	}
	if !contains(m.Territories[id2].AdjacentIDs, id1) {
		m.Territories[id2].AdjacentIDs = append(m.Territories[id2].AdjacentIDs, id1)
	}
}

// AddRegion registers a bonus region over the given territories.
func (m *Map) AddRegion(name string, bonus int, territoryIDs ...int) {
	m.Regions = append(m.Regions, &Region{
		Name:         name,
		TerritoryIDs: territoryIDs,
		Bonus:        bonus,
	})
}

// AreAdjacent checks if two territories share a border.
func (m *Map) AreAdjacent(id1, id2 int) bool {
	return contains(m.Territories[id1].AdjacentIDs, id2)
}

// contains checks if a slice contains a specific item. (avoid duplicate borders etc..)
func contains(slice []int, item int) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
