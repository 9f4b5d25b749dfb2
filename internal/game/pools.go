package game

// Character is a candidate entry in the suspect pool. One becomes the
// victim, one the murderer, the rest fill out the house.
type Character struct {
	Name   string `json:"name"`
	Gender Gender `json:"gender"`
}

// Weapon is a candidate entry in the weapon pool.
type Weapon struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DefaultCharacters returns the built-in cast. Names must stay unique after
// id derivation (lowercase, spaces to hyphens) or suspect ids collide.
func DefaultCharacters() []Character {
	return []Character{
		{Name: "Victoria", Gender: GenderFemale},
		{Name: "Esther", Gender: GenderFemale},
		{Name: "Earl", Gender: GenderMale},
		{Name: "Gerald", Gender: GenderMale},
		{Name: "Margaret", Gender: GenderFemale},
		{Name: "Howard", Gender: GenderMale},
		{Name: "Beatrice", Gender: GenderFemale},
		{Name: "Arthur", Gender: GenderMale},
		{Name: "Clarence", Gender: GenderMale},
		{Name: "Dorothy", Gender: GenderFemale},
		{Name: "Edmund", Gender: GenderMale},
		{Name: "Florence", Gender: GenderFemale},
	}
}

func DefaultWeapons() []Weapon {
	return []Weapon{
		{Name: "Candlestick", Description: "A heavy brass candlestick, tarnished with age."},
		{Name: "Knife", Description: "A sharp carving knife from the kitchen."},
		{Name: "Rope", Description: "A length of sturdy hemp rope."},
		{Name: "Lead Pipe", Description: "A section of lead plumbing pipe."},
		{Name: "Wrench", Description: "A heavy iron wrench."},
		{Name: "Revolver", Description: "A small caliber revolver, recently fired."},
		{Name: "Poison Vial", Description: "A small glass vial, traces of liquid inside."},
		{Name: "Fire Poker", Description: "A cast iron fire poker from the hearth."},
		{Name: "Dagger", Description: "An antique dagger with a jeweled hilt."},
	}
}
