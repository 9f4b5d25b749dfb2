package game

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Dialogue is produced by literal placeholder substitution over fixed
// template pools. Template text must avoid stray braces.

var voiceModifiers = []string{
	"in a nervous voice",
	"with a haughty sniff",
	"in an annoyed voice",
	"rather defensively",
	"in a hushed whisper",
	"with obvious disdain",
	"thoughtfully",
	"after a long pause",
	"with a knowing look",
	"in a trembling voice",
	"dismissively",
	"with barely concealed anger",
}

// Accusation templates: the speaker claims another suspect wanted the victim dead.
var accusationTemplates = []string{
	`{speaker} answers {voice}, "Far be it from me to meddle in your affairs, inspector, but I really think you should question {accused}. Why just the other day {accusedSubject} told me that {victim} would be better off dead."`,
	`{speaker} says {voice}, "I don't want to point fingers, but {accused} and {victim} had a terrible row last week. {accused} said some very... unfortunate things."`,
	`{speaker} replies {voice}, "You might want to look into {accused}. I overheard {accusedObject} saying {victim} was 'in the way' of {accusedPossessive} plans."`,
	`{speaker} confides {voice}, "Between you and me, inspector, {accused} had motive. {victim} knew something about {accused} that {accusedSubject} didn't want getting out."`,
	`{speaker} answers {voice}, "Have you spoken to {accused} yet? {accusedSubject} had quite the grudge against {victim}. Something about an inheritance, I believe."`,
}

// Room observation templates: the speaker saw a suspect near the murder room.
var roomObservationTemplates = []string{
	`{speaker} mentions {voice}, "I did see {suspect} near the {room} earlier this evening. Seemed rather suspicious at the time."`,
	`{speaker} recalls {voice}, "Now that you mention it, I spotted {suspect} coming out of the {room} looking quite flustered."`,
	`{speaker} says {voice}, "I'm fairly certain I saw {suspect} heading toward the {room} around the time it must have happened."`,
	`{speaker} adds {voice}, "You know, I noticed {suspect} near the {room}. {suspectSubject} seemed to be in quite a hurry."`,
}

// Weapon observation templates: the speaker noticed the murder weapon.
var weaponClueTemplates = []string{
	`{speaker} recalls {voice}, "I saw the {weapon} in the {room} earlier. It struck me as odd at the time."`,
	`{speaker} mentions {voice}, "You might check the {room} for the {weapon}. I believe I saw it there."`,
	`{speaker} says {voice}, "The {weapon}? I think I last saw it in the {room}, if that helps."`,
}

var flavorTemplates = []string{
	`{speaker} sighs {voice}, "This is all so dreadful. Poor {victim}."`,
	`{speaker} says {voice}, "I've told you everything I know, inspector."`,
	`{speaker} responds {voice}, "I was minding my own business, as I always do."`,
	`{speaker} replies {voice}, "This household has always had its... complications."`,
}

var alibiTemplates = []string{
	`{speaker} answers {voice}, "{partner} and I spent the entire evening together in the {room}."`,
	`{speaker} states {voice}, "I was with {partner} in the {room} all evening. {partnerSubject} can vouch for me."`,
	`{speaker} replies {voice}, "Ask {partner}. We were in the {room} together when it happened."`,
}

var noAlibiTemplates = []string{
	`{speaker} hesitates {voice}, "I... I was alone. In my quarters. Reading."`,
	`{speaker} stammers {voice}, "I don't have anyone who can account for my whereabouts."`,
	`{speaker} says {voice}, "I prefer my own company. I was alone that evening."`,
	`{speaker} replies {voice}, "I stepped outside for some air. No one saw me, I suppose."`,
}

type clueParams struct {
	npc        *NPC
	allNPCs    []NPC
	victim     Character
	murderer   Character
	murderRoom Room
	weaponName string

	accuseMurderer bool
	hintRoom       bool
	hintWeapon     bool
}

// synthesizeClues builds the pre-baked clue list one suspect hands out when
// questioned. The murderer always gets exactly one clue: a misdirecting
// accusation of a random innocent. Innocents get the clues their roles call
// for, or a single flavor line when they carry none.
func synthesizeClues(rng *rand.Rand, params clueParams) []string {
	clues := []string{}
	voice := pickOne(rng, voiceModifiers)
	murdererPronouns := PronounsFor(params.murderer.Gender)

	if params.npc.IsMurderer {
		innocents := make([]NPC, 0, len(params.allNPCs))
		for _, other := range params.allNPCs {
			if !other.IsMurderer && other.ID != params.npc.ID {
				innocents = append(innocents, other)
			}
		}
		if len(innocents) > 0 {
			scapegoat := pickOne(rng, innocents)
			scapegoatPronouns := PronounsFor(scapegoat.Gender)
			clues = append(clues, fillTemplate(pickOne(rng, accusationTemplates), map[string]string{
				"speaker":           params.npc.Name,
				"voice":             voice,
				"accused":           scapegoat.Name,
				"accusedSubject":    scapegoatPronouns.Subject,
				"accusedObject":     scapegoatPronouns.Object,
				"accusedPossessive": scapegoatPronouns.Possessive,
				"victim":            params.victim.Name,
			}))
		}
		return clues
	}

	if params.accuseMurderer {
		clues = append(clues, fillTemplate(pickOne(rng, accusationTemplates), map[string]string{
			"speaker":           params.npc.Name,
			"voice":             voice,
			"accused":           params.murderer.Name,
			"accusedSubject":    murdererPronouns.Subject,
			"accusedObject":     murdererPronouns.Object,
			"accusedPossessive": murdererPronouns.Possessive,
			"victim":            params.victim.Name,
		}))
	}

	if params.hintRoom {
		clues = append(clues, fillTemplate(pickOne(rng, roomObservationTemplates), map[string]string{
			"speaker":        params.npc.Name,
			"voice":          voice,
			"suspect":        params.murderer.Name,
			"suspectSubject": capitalizeFirst(murdererPronouns.Subject),
			"room":           params.murderRoom.Name,
		}))
	}

	if params.hintWeapon {
		clues = append(clues, fillTemplate(pickOne(rng, weaponClueTemplates), map[string]string{
			"speaker": params.npc.Name,
			"voice":   voice,
			"weapon":  params.weaponName,
			"room":    params.murderRoom.Name,
		}))
	}

	if len(clues) == 0 {
		clues = append(clues, fillTemplate(pickOne(rng, flavorTemplates), map[string]string{
			"speaker": params.npc.Name,
			"voice":   voice,
			"victim":  params.victim.Name,
		}))
	}
	return clues
}

// AlibiResponse phrases an NPC's alibi. A missing partner or room reference
// silently falls through to the no-alibi phrasing; callers never see a
// resolution failure.
func (s *GameState) AlibiResponse(npc NPC) string {
	voice := pickOne(s.rng, voiceModifiers)

	if npc.AlibiGroup != "" {
		partner, partnerOK := s.FindNPC(npc.Partner)
		var room Room
		roomOK := false
		if group, ok := s.findAlibiGroup(npc.AlibiGroup); ok {
			room, roomOK = s.FindRoom(group.Room)
		}
		if partnerOK && roomOK {
			partnerPronouns := PronounsFor(partner.Gender)
			return fillTemplate(pickOne(s.rng, alibiTemplates), map[string]string{
				"speaker":        npc.Name,
				"voice":          voice,
				"partner":        partner.Name,
				"partnerSubject": capitalizeFirst(partnerPronouns.Subject),
				"room":           room.Name,
			})
		}
	}

	return fillTemplate(pickOne(s.rng, noAlibiTemplates), map[string]string{
		"speaker": npc.Name,
		"voice":   voice,
	})
}

// QuestionResponse returns one of the NPC's clues, chosen at random on every
// call. Nothing tracks which clues were already revealed; repeats are part
// of the game.
func (s *GameState) QuestionResponse(npc NPC) string {
	if len(npc.Clues) == 0 {
		return fmt.Sprintf("%s shrugs and says nothing useful.", npc.Name)
	}
	return pickOne(s.rng, npc.Clues)
}

func examineMessage(item Item) string {
	return fmt.Sprintf("You examine the %s. %s", item.Name, item.Description)
}

func takeMessage(item Item) string {
	return fmt.Sprintf("You pick up the %s and add it to your inventory.", item.Name)
}

func moveMessage(room Room) string {
	return fmt.Sprintf("You enter the %s.", room.Name)
}

func assembleMessage() string {
	return "You call all the suspects to gather in this room. They look at you expectantly, waiting for your accusation."
}

func winMessage(murdererName, victimName, weaponName, roomName string) string {
	return fmt.Sprintf("Congratulations, Inspector! You've solved the case!\n\n%s murdered %s with the %s in the %s.\n\nJustice has been served.",
		murdererName, victimName, weaponName, roomName)
}

func loseMessage(accusedName string) string {
	return fmt.Sprintf("You accuse %s, but your deduction is incorrect!\n\nThe real murderer escapes justice. Your reputation as a detective is ruined.", accusedName)
}

// fillTemplate substitutes {key} placeholders by literal text replacement.
func fillTemplate(template string, values map[string]string) string {
	out := template
	for key, value := range values {
		out = strings.ReplaceAll(out, "{"+key+"}", value)
	}
	return out
}

func capitalizeFirst(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
