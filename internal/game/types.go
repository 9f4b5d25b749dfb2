package game

import (
	"math/rand/v2"
	"strings"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Pronouns used when filling dialogue templates.
type Pronouns struct {
	Subject    string
	Object     string
	Possessive string
	Reflexive  string
}

func PronounsFor(gender Gender) Pronouns {
	if gender == GenderMale {
		return Pronouns{Subject: "he", Object: "him", Possessive: "his", Reflexive: "himself"}
	}
	return Pronouns{Subject: "she", Object: "her", Possessive: "her", Reflexive: "herself"}
}

// NPC is a live suspect. The victim never becomes an NPC; they exist only as
// a name on the solution.
type NPC struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Gender      Gender `json:"gender"`
	CurrentRoom string `json:"current_room"`
	// AlibiGroup is empty for the murderer; everyone else belongs to a
	// 2- or 3-person group that vouches for each other.
	AlibiGroup string `json:"alibi_group,omitempty"`
	// Partner is the group member this NPC names when asked for an alibi.
	// Pair members name each other; a folded-in third member names the
	// group's first member, who does not name them back.
	Partner    string   `json:"partner,omitempty"`
	Clues      []string `json:"clues"`
	IsMurderer bool     `json:"is_murderer"`
}

// AlibiGroup records one clique of innocents claiming to have spent the
// evening together in a room.
type AlibiGroup struct {
	ID      string   `json:"id"`
	Room    string   `json:"room"`
	Members []string `json:"members"`
}

type Item struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Room           string `json:"room"`
	IsMurderWeapon bool   `json:"is_murder_weapon"`
	CanTake        bool   `json:"can_take"`
	Description    string `json:"description"`
}

type GamePhase string

const (
	PhasePlaying   GamePhase = "playing"
	PhaseAssembled GamePhase = "assembled"
	PhaseWon       GamePhase = "won"
	PhaseLost      GamePhase = "lost"
)

type SelectionKind string

const (
	SelectionNPC  SelectionKind = "npc"
	SelectionItem SelectionKind = "item"
)

// Selection is the single active entity the next action applies to.
type Selection struct {
	Kind SelectionKind `json:"kind"`
	ID   string        `json:"id"`
}

const messageLogCap = 20

type GameState struct {
	CaseID string `json:"case_id"`

	CurrentRoom string   `json:"current_room"`
	Inventory   []string `json:"inventory"`

	Rooms       []Room       `json:"rooms"`
	NPCs        []NPC        `json:"npcs"`
	Items       []Item       `json:"items"`
	AlibiGroups []AlibiGroup `json:"alibi_groups"`

	// Planted solution.
	MurderWeapon string `json:"murder_weapon"`
	MurderRoom   string `json:"murder_room"`
	Murderer     string `json:"murderer"`
	Victim       string `json:"victim"`

	Messages  []string   `json:"messages"`
	Selection *Selection `json:"selection,omitempty"`
	Phase     GamePhase  `json:"phase"`

	config Config
	rng    *rand.Rand
}

// appendMessage keeps the narrative log bounded to the most recent entries.
func (s *GameState) appendMessage(message string) {
	if len(s.Messages) > messageLogCap {
		s.Messages = append([]string{}, s.Messages[len(s.Messages)-messageLogCap:]...)
	}
	s.Messages = append(s.Messages, message)
}

// npcID derives a stable id from a display name. Names in the active pool
// must be unique after this transform.
func npcID(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
