package game

import (
	"fmt"
)

const DefaultNPCCount = 7

// Config carries everything the generator consumes. Content packs swap the
// layout and pools without touching generator code.
type Config struct {
	// NPCCount is how many candidates to draw from the character pool: one
	// victim plus NPCCount-1 live suspects. Minimum 2.
	NPCCount int
	// Seed drives the shared generation stream. Zero means "pick one from
	// the wall clock" at NewGame time.
	Seed int64

	Layout     HouseLayout
	Characters []Character
	Weapons    []Weapon
}

// DefaultConfig returns the reference mystery setup: Blackwood Manor with
// the built-in cast and weapon rack.
func DefaultConfig() Config {
	return Config{
		NPCCount:   DefaultNPCCount,
		Layout:     BlackwoodManor(),
		Characters: DefaultCharacters(),
		Weapons:    DefaultWeapons(),
	}
}

// Validate checks the documented generator preconditions. Generation itself
// assumes a valid config and never re-checks.
func (c Config) Validate() error {
	if c.NPCCount < 2 {
		return fmt.Errorf("npc count must be at least 2 (one victim, one suspect), got %d", c.NPCCount)
	}
	if len(c.Layout.Rooms) < 1 {
		return fmt.Errorf("layout needs at least one room")
	}
	if _, ok := roomByID(c.Layout.Rooms, c.Layout.StartingRoom); !ok {
		return fmt.Errorf("starting room not in layout: %s", c.Layout.StartingRoom)
	}
	if len(c.Characters) < c.NPCCount {
		return fmt.Errorf("character pool has %d entries, need at least %d", len(c.Characters), c.NPCCount)
	}
	if len(c.Weapons) < 1 {
		return fmt.Errorf("weapon pool is empty")
	}
	seen := make(map[string]string, len(c.Characters))
	for _, character := range c.Characters {
		id := npcID(character.Name)
		if other, dup := seen[id]; dup {
			return fmt.Errorf("character names %q and %q collide on id %q", other, character.Name, id)
		}
		seen[id] = character.Name
	}
	return nil
}

func roomByID(rooms []Room, id string) (Room, bool) {
	for _, room := range rooms {
		if room.ID == id {
			return room, true
		}
	}
	return Room{}, false
}
