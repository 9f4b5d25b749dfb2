package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// NewGame validates the config and plants a fresh mystery. The returned
// state is always solvable: the murderer is the only suspect without an
// alibi, at least one innocent accuses them, and the murder room and weapon
// are each hinted at by somebody in the house.
func NewGame(config Config) (GameState, error) {
	resolved := config

	if err := resolved.Validate(); err != nil {
		return GameState{}, err
	}

	if resolved.Seed == 0 {
		resolved.Seed = time.Now().UnixNano()
	}

	rng := seededRNG(resolved.Seed)
	return generate(resolved, rng), nil
}

func generate(config Config, rng *rand.Rand) GameState {
	rooms := config.Layout.Rooms

	// One candidate becomes the victim, one the murderer; everyone else
	// sampled is an innocent suspect.
	candidates := pickN(rng, config.Characters, config.NPCCount)
	victim := candidates[0]
	murderer := candidates[1]
	suspects := candidates[1:]

	// Murder details are drawn independently of where anyone stands.
	murderRoom := pickOne(rng, rooms)
	murderWeapon := pickOne(rng, config.Weapons)

	npcs := createNPCs(rng, suspects, murderer.Name, rooms)
	items := createItems(rng, config.Weapons, murderWeapon, murderRoom, rooms)
	groups := assignAlibis(rng, npcs, rooms)
	assignClues(rng, npcs, victim, murderer, murderRoom, murderWeapon.Name)

	state := GameState{
		CaseID:       uuid.NewString(),
		CurrentRoom:  config.Layout.StartingRoom,
		Inventory:    []string{},
		Rooms:        rooms,
		NPCs:         npcs,
		Items:        items,
		AlibiGroups:  groups,
		MurderWeapon: murderWeaponItemID,
		MurderRoom:   murderRoom.ID,
		Murderer:     npcID(murderer.Name),
		Victim:       victim.Name,
		Messages: []string{
			fmt.Sprintf("Welcome to %s, Inspector.", config.Layout.Name),
			fmt.Sprintf("%s has been found murdered!", victim.Name),
			"Question the suspects, examine the evidence, and solve the case.",
			"When ready, pick up the murder weapon, go to the murder room, ASSEMBLE the suspects, and ACCUSE the guilty party.",
		},
		Phase:  PhasePlaying,
		config: config,
		rng:    rng,
	}
	return state
}

// createNPCs builds suspect records and spreads them over a shuffled room
// order, cycling so occupancy stays even.
func createNPCs(rng *rand.Rand, suspects []Character, murdererName string, rooms []Room) []NPC {
	shuffledRooms := shuffled(rng, rooms)

	npcs := make([]NPC, 0, len(suspects))
	for i, suspect := range suspects {
		npcs = append(npcs, NPC{
			ID:          npcID(suspect.Name),
			Name:        suspect.Name,
			Gender:      suspect.Gender,
			CurrentRoom: shuffledRooms[i%len(shuffledRooms)].ID,
			Clues:       []string{},
			IsMurderer:  suspect.Name == murdererName,
		})
	}
	return npcs
}

const (
	murderWeaponItemID = "weapon-murder"
	maxDecoyWeapons    = 3
)

// createItems places the murder weapon in the murder room and scatters decoy
// weapons across other rooms. The decoy count clamps against both the
// non-murder room count and the remaining weapon pool.
func createItems(rng *rand.Rand, pool []Weapon, murderWeapon Weapon, murderRoom Room, rooms []Room) []Item {
	items := []Item{{
		ID:             murderWeaponItemID,
		Name:           murderWeapon.Name,
		Room:           murderRoom.ID,
		IsMurderWeapon: true,
		CanTake:        true,
		Description:    murderWeapon.Description,
	}}

	otherWeapons := make([]Weapon, 0, len(pool))
	for _, weapon := range pool {
		if weapon.Name != murderWeapon.Name {
			otherWeapons = append(otherWeapons, weapon)
		}
	}
	otherRooms := make([]Room, 0, len(rooms))
	for _, room := range rooms {
		if room.ID != murderRoom.ID {
			otherRooms = append(otherRooms, room)
		}
	}

	decoyCount := min(maxDecoyWeapons, min(len(otherRooms), len(otherWeapons)))
	for i, weapon := range pickN(rng, otherWeapons, decoyCount) {
		items = append(items, Item{
			ID:          fmt.Sprintf("weapon-decoy-%d", i),
			Name:        weapon.Name,
			Room:        otherRooms[i].ID,
			CanTake:     true,
			Description: weapon.Description,
		})
	}
	return items
}

// assignAlibis pairs innocents into 2-person cliques sharing a claimed room,
// folding an odd innocent into the first clique as a third member. The
// murderer is left as the unique suspect with no group at all.
func assignAlibis(rng *rand.Rand, npcs []NPC, rooms []Room) []AlibiGroup {
	innocents := make([]*NPC, 0, len(npcs))
	for i := range npcs {
		if !npcs[i].IsMurderer {
			innocents = append(innocents, &npcs[i])
		}
	}
	rng.Shuffle(len(innocents), func(i, j int) {
		innocents[i], innocents[j] = innocents[j], innocents[i]
	})
	alibiRooms := shuffled(rng, rooms)

	groups := make([]AlibiGroup, 0, (len(innocents)+1)/2)
	for i := 0; i < len(innocents); i += 2 {
		if i+1 < len(innocents) {
			first := innocents[i]
			second := innocents[i+1]
			group := AlibiGroup{
				ID:      fmt.Sprintf("alibi-%d", len(groups)),
				Room:    alibiRooms[(i/2)%len(alibiRooms)].ID,
				Members: []string{first.ID, second.ID},
			}
			first.AlibiGroup = group.ID
			first.Partner = second.ID
			second.AlibiGroup = group.ID
			second.Partner = first.ID
			groups = append(groups, group)
			continue
		}

		lone := innocents[i]
		if len(groups) > 0 {
			// Fold the odd innocent into the first clique. They name its
			// first member as their partner; that member does not name
			// them back.
			groups[0].Members = append(groups[0].Members, lone.ID)
			lone.AlibiGroup = groups[0].ID
			lone.Partner = innocents[0].ID
			continue
		}

		// Single innocent: nobody left to vouch for them. They still get a
		// group (so the murderer stays the unique group-less suspect), but
		// with no partner their spoken alibi falls back to the no-alibi
		// phrasing.
		group := AlibiGroup{
			ID:      "alibi-0",
			Room:    alibiRooms[0].ID,
			Members: []string{lone.ID},
		}
		lone.AlibiGroup = group.ID
		groups = append(groups, group)
	}
	return groups
}

type clueRoles struct {
	accuseMurderer bool
	hintRoom       bool
	hintWeapon     bool
}

// assignClues distributes clue roles so the puzzle stays solvable: two
// corroborating accusations when enough innocents exist, plus one room hint
// and one weapon hint, doubling roles up as the cast shrinks.
func assignClues(rng *rand.Rand, npcs []NPC, victim, murderer Character, murderRoom Room, weaponName string) {
	innocents := make([]*NPC, 0, len(npcs))
	for i := range npcs {
		if !npcs[i].IsMurderer {
			innocents = append(innocents, &npcs[i])
		}
	}
	rng.Shuffle(len(innocents), func(i, j int) {
		innocents[i], innocents[j] = innocents[j], innocents[i]
	})

	roles := make(map[string]*clueRoles, len(npcs))
	for i := range npcs {
		roles[npcs[i].ID] = &clueRoles{}
	}

	if len(innocents) >= 1 {
		roles[innocents[0].ID].accuseMurderer = true
	}
	if len(innocents) >= 2 {
		roles[innocents[1].ID].accuseMurderer = true
	}

	switch {
	case len(innocents) >= 3:
		roles[innocents[2].ID].hintRoom = true
	case len(innocents) >= 1:
		roles[innocents[0].ID].hintRoom = true
	}

	switch {
	case len(innocents) >= 4:
		roles[innocents[3].ID].hintWeapon = true
	case len(innocents) >= 2:
		roles[innocents[1].ID].hintWeapon = true
	case len(innocents) >= 1:
		roles[innocents[0].ID].hintWeapon = true
	}

	for i := range npcs {
		npc := &npcs[i]
		role := roles[npc.ID]
		npc.Clues = synthesizeClues(rng, clueParams{
			npc:            npc,
			allNPCs:        npcs,
			victim:         victim,
			murderer:       murderer,
			murderRoom:     murderRoom,
			weaponName:     weaponName,
			accuseMurderer: role.accuseMurderer,
			hintRoom:       role.hintRoom,
			hintWeapon:     role.hintWeapon,
		})
	}
}

// Reset regenerates the session wholesale using the original config. Drawing
// the next seed from the current stream keeps a whole session reproducible
// from one root seed.
func (s *GameState) Reset() error {
	config := s.config
	config.Seed = int64(s.rng.Uint64() >> 1)
	next, err := NewGame(config)
	if err != nil {
		return err
	}
	*s = next
	return nil
}
