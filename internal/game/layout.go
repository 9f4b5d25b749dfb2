package game

type Direction string

const (
	DirectionNorth Direction = "north"
	DirectionSouth Direction = "south"
	DirectionEast  Direction = "east"
	DirectionWest  Direction = "west"
)

// Door is a directed edge out of a room. A matching reverse door is a layout
// authoring convention, not something the engine enforces.
type Door struct {
	ToRoom    string    `json:"to_room"`
	Direction Direction `json:"direction"`
	// Position is the fraction along the wall, 0.5 being centered. Only a
	// renderer cares about it.
	Position float64 `json:"position"`
}

type Room struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Grid footprint, top-left corner plus size. Engine-side logic never
	// reads these; they ride along for whatever front end draws the map.
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Doors  []Door `json:"doors"`
}

type HouseLayout struct {
	Name         string `json:"name"`
	Rooms        []Room `json:"rooms"`
	StartingRoom string `json:"starting_room"`
}

// BlackwoodManor is the reference mansion layout: twelve rooms on a 12x8
// grid, every door authored with a symmetric partner so the house is fully
// traversable from the hall.
func BlackwoodManor() HouseLayout {
	return HouseLayout{
		Name:         "Blackwood Manor",
		StartingRoom: "hall",
		Rooms: []Room{
			{
				ID: "parlor", Name: "Parlor", X: 0, Y: 0, Width: 3, Height: 2,
				Doors: []Door{
					{ToRoom: "library", Direction: DirectionEast, Position: 0.5},
					{ToRoom: "dining", Direction: DirectionSouth, Position: 0.5},
				},
			},
			{
				ID: "library", Name: "Library", X: 3, Y: 0, Width: 3, Height: 3,
				Doors: []Door{
					{ToRoom: "parlor", Direction: DirectionWest, Position: 0.3},
					{ToRoom: "hall", Direction: DirectionSouth, Position: 0.5},
					{ToRoom: "study", Direction: DirectionEast, Position: 0.5},
				},
			},
			{
				ID: "study", Name: "Study", X: 6, Y: 0, Width: 3, Height: 2,
				Doors: []Door{
					{ToRoom: "library", Direction: DirectionWest, Position: 0.5},
					{ToRoom: "gallery", Direction: DirectionEast, Position: 0.5},
					{ToRoom: "conservatory", Direction: DirectionSouth, Position: 0.5},
				},
			},
			{
				ID: "gallery", Name: "Gallery", X: 9, Y: 0, Width: 3, Height: 3,
				Doors: []Door{
					{ToRoom: "study", Direction: DirectionWest, Position: 0.3},
					{ToRoom: "master", Direction: DirectionSouth, Position: 0.5},
				},
			},
			{
				ID: "dining", Name: "Dining Room", X: 0, Y: 2, Width: 3, Height: 3,
				Doors: []Door{
					{ToRoom: "parlor", Direction: DirectionNorth, Position: 0.5},
					{ToRoom: "hall", Direction: DirectionEast, Position: 0.6},
					{ToRoom: "kitchen", Direction: DirectionSouth, Position: 0.5},
				},
			},
			{
				ID: "hall", Name: "Hall", X: 3, Y: 3, Width: 3, Height: 2,
				Doors: []Door{
					{ToRoom: "library", Direction: DirectionNorth, Position: 0.5},
					{ToRoom: "dining", Direction: DirectionWest, Position: 0.5},
					{ToRoom: "conservatory", Direction: DirectionEast, Position: 0.5},
					{ToRoom: "billiard", Direction: DirectionSouth, Position: 0.5},
				},
			},
			{
				ID: "conservatory", Name: "Conservatory", X: 6, Y: 2, Width: 3, Height: 3,
				Doors: []Door{
					{ToRoom: "study", Direction: DirectionNorth, Position: 0.5},
					{ToRoom: "hall", Direction: DirectionWest, Position: 0.6},
					{ToRoom: "master", Direction: DirectionEast, Position: 0.7},
					{ToRoom: "guest", Direction: DirectionSouth, Position: 0.5},
				},
			},
			{
				ID: "master", Name: "Master Bedroom", X: 9, Y: 3, Width: 3, Height: 3,
				Doors: []Door{
					{ToRoom: "gallery", Direction: DirectionNorth, Position: 0.5},
					{ToRoom: "conservatory", Direction: DirectionWest, Position: 0.5},
					{ToRoom: "servants", Direction: DirectionSouth, Position: 0.5},
				},
			},
			{
				ID: "kitchen", Name: "Kitchen", X: 0, Y: 5, Width: 3, Height: 3,
				Doors: []Door{
					{ToRoom: "dining", Direction: DirectionNorth, Position: 0.5},
					{ToRoom: "billiard", Direction: DirectionEast, Position: 0.3},
				},
			},
			{
				ID: "billiard", Name: "Billiard Room", X: 3, Y: 5, Width: 3, Height: 3,
				Doors: []Door{
					{ToRoom: "hall", Direction: DirectionNorth, Position: 0.5},
					{ToRoom: "kitchen", Direction: DirectionWest, Position: 0.5},
					{ToRoom: "guest", Direction: DirectionEast, Position: 0.5},
				},
			},
			{
				ID: "guest", Name: "Guest Room", X: 6, Y: 5, Width: 3, Height: 3,
				Doors: []Door{
					{ToRoom: "conservatory", Direction: DirectionNorth, Position: 0.5},
					{ToRoom: "billiard", Direction: DirectionWest, Position: 0.5},
					{ToRoom: "servants", Direction: DirectionEast, Position: 0.5},
				},
			},
			{
				ID: "servants", Name: "Servants' Quarters", X: 9, Y: 6, Width: 3, Height: 2,
				Doors: []Door{
					{ToRoom: "master", Direction: DirectionNorth, Position: 0.5},
					{ToRoom: "guest", Direction: DirectionWest, Position: 0.75},
				},
			},
		},
	}
}
