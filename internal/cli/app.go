package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/appengine-ltd/gumshoe/internal/game"
	"github.com/appengine-ltd/gumshoe/internal/parser"
)

type AppConfig struct {
	Seed     int64
	Suspects int
	Debug    bool
	In       io.Reader
	Out      io.Writer
}

// App drives one interactive investigation over stdin/stdout.
type App struct {
	config AppConfig
	state  game.GameState
	parser *parser.Parser
	out    io.Writer
}

func NewApp(config AppConfig) (*App, error) {
	gameConfig := game.DefaultConfig()
	gameConfig.Seed = config.Seed
	if config.Suspects > 0 {
		gameConfig.NPCCount = config.Suspects
	}

	state, err := game.NewGame(gameConfig)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	return &App{
		config: config,
		state:  state,
		parser: parser.New(),
		out:    config.Out,
	}, nil
}

func (a *App) Run() error {
	for _, message := range a.state.Messages {
		a.println(message)
	}
	a.println("")
	a.describeRoom()

	scanner := bufio.NewScanner(a.config.In)
	for {
		a.print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		intent := a.parser.Parse(a.parseContext(), line)
		if intent.Clarify != nil {
			a.println(intent.Clarify.Prompt)
			for _, option := range intent.Clarify.Options {
				a.println("  - " + option.Verb + " " + strings.Join(option.Args, " "))
			}
			continue
		}

		if intent.Verb == "quit" {
			a.println("Very well, Inspector. The case remains open.")
			return nil
		}
		a.dispatch(intent)

		if a.state.Phase == game.PhaseWon || a.state.Phase == game.PhaseLost {
			a.println("")
			a.println("Type 'new' to open another case, or 'quit' to leave.")
		}
	}
}

func (a *App) dispatch(intent parser.Intent) {
	arg := strings.Join(intent.Args, " ")

	switch intent.Verb {
	case "help":
		a.println("Commands: look, move <room>, examine <item>, take <item>, question <suspect>, alibi <suspect>, select <entity>, assemble, accuse <suspect>, inventory, new, quit.")
	case "look":
		a.describeRoom()
	case "inventory":
		a.describeInventory()
	case "move":
		a.handleMove(arg)
	case "examine":
		a.withItemSelection(arg, func() { a.report(a.state.Examine()) })
	case "take":
		a.withItemSelection(arg, func() { a.report(a.state.Take()) })
	case "question":
		a.withNPCSelection(arg, func() { a.report(a.state.Question()) })
	case "alibi":
		a.withNPCSelection(arg, func() { a.report(a.state.Alibi()) })
	case "select":
		a.handleSelect(arg)
	case "assemble":
		a.report(a.state.Assemble())
	case "accuse":
		a.withNPCSelection(arg, func() { a.report(a.state.Accuse()) })
	case "new":
		if err := a.state.Reset(); err != nil {
			a.println("Could not open a new case: " + err.Error())
			return
		}
		for _, message := range a.state.Messages {
			a.println(message)
		}
		a.describeRoom()
	case "debug":
		if !a.config.Debug {
			a.println("Nothing happens.")
			return
		}
		for _, line := range a.state.DebugSummary() {
			a.println(line)
		}
	default:
		a.println("I couldn't map that to a command. Try 'help'.")
	}
}

func (a *App) handleMove(arg string) {
	if arg == "" {
		a.println("Move where? Exits: " + strings.Join(a.adjacentRoomNames(), ", "))
		return
	}
	roomID, ok := a.roomIDByName(arg)
	if !ok {
		a.println("No such room within reach.")
		return
	}
	result := a.state.MoveTo(roomID)
	if !result.Applied {
		a.println("There's no door leading there from here.")
		return
	}
	a.println(result.Message)
	a.describeRoom()
}

func (a *App) handleSelect(arg string) {
	if id, ok := a.npcIDByName(arg); ok {
		a.state.Select(game.SelectionNPC, id)
		if npc, found := a.state.FindNPC(id); found {
			a.println("You turn your attention to " + npc.Name + ".")
		}
		return
	}
	if id, ok := a.itemIDByName(arg); ok {
		a.state.Select(game.SelectionItem, id)
		if item, found := a.state.FindItem(id); found {
			a.println("You turn your attention to the " + item.Name + ".")
		}
		return
	}
	a.println("You see nothing of that name here.")
}

// withNPCSelection selects the named suspect first when a name was given,
// then runs the action against the active selection.
func (a *App) withNPCSelection(arg string, action func()) {
	if arg != "" {
		id, ok := a.npcIDByName(arg)
		if !ok {
			a.println("There's no one here by that name.")
			return
		}
		a.state.Select(game.SelectionNPC, id)
	}
	action()
}

func (a *App) withItemSelection(arg string, action func()) {
	if arg != "" {
		id, ok := a.itemIDByName(arg)
		if !ok {
			a.println("You see no such item here.")
			return
		}
		a.state.Select(game.SelectionItem, id)
	}
	action()
}

func (a *App) report(result game.ActionResult) {
	if result.Applied {
		if result.Message != "" {
			a.println(result.Message)
		}
		return
	}
	switch result.Declined {
	case game.DeclinedNoSelection, game.DeclinedSelectionNotItem, game.DeclinedSelectionNotNPC:
		a.println("Select something first, Inspector.")
	case game.DeclinedNotTakable:
		a.println("That cannot be carried off.")
	case game.DeclinedAlreadyHeld:
		a.println("You're already carrying that.")
	case game.DeclinedEmptyInventory:
		a.println("You should be holding evidence before you gather everyone.")
	case game.DeclinedWrongPhase:
		a.println("Assemble the suspects before making an accusation.")
	case game.DeclinedNotAdjacent:
		a.println("There's no door leading there from here.")
	default:
		a.println("Nothing happens.")
	}
}

func (a *App) describeRoom() {
	room, ok := a.state.FindRoom(a.state.CurrentRoom)
	if !ok {
		return
	}
	a.println("You are in the " + room.Name + ".")

	if exits := a.adjacentRoomNames(); len(exits) > 0 {
		a.println("Exits: " + strings.Join(exits, ", "))
	}
	if people := a.state.NPCsInRoom(room.ID); len(people) > 0 {
		names := make([]string, 0, len(people))
		for _, npc := range people {
			names = append(names, npc.Name)
		}
		a.println("Present: " + strings.Join(names, ", "))
	}
	if items := a.state.ItemsInRoom(room.ID); len(items) > 0 {
		names := make([]string, 0, len(items))
		for _, item := range items {
			names = append(names, item.Name)
		}
		a.println("You notice: " + strings.Join(names, ", "))
	}
}

func (a *App) describeInventory() {
	if len(a.state.Inventory) == 0 {
		a.println("You are carrying nothing.")
		return
	}
	names := make([]string, 0, len(a.state.Inventory))
	for _, id := range a.state.Inventory {
		if item, ok := a.state.FindItem(id); ok {
			names = append(names, item.Name)
		}
	}
	a.println("You are carrying: " + strings.Join(names, ", "))
}

func (a *App) parseContext() parser.ParseContext {
	people := a.state.NPCsInRoom(a.state.CurrentRoom)
	peopleNames := make([]string, 0, len(people))
	for _, npc := range people {
		peopleNames = append(peopleNames, npc.Name)
	}
	items := a.state.ItemsInRoom(a.state.CurrentRoom)
	itemNames := make([]string, 0, len(items))
	for _, item := range items {
		itemNames = append(itemNames, item.Name)
	}
	held := make([]string, 0, len(a.state.Inventory))
	for _, id := range a.state.Inventory {
		if item, ok := a.state.FindItem(id); ok {
			held = append(held, item.Name)
		}
	}
	lastEntity := ""
	if a.state.Selection != nil {
		switch a.state.Selection.Kind {
		case game.SelectionNPC:
			if npc, ok := a.state.FindNPC(a.state.Selection.ID); ok {
				lastEntity = npc.Name
			}
		case game.SelectionItem:
			if item, ok := a.state.FindItem(a.state.Selection.ID); ok {
				lastEntity = item.Name
			}
		}
	}
	return parser.ParseContext{
		AdjacentRooms: a.adjacentRoomNames(),
		People:        peopleNames,
		Items:         itemNames,
		Inventory:     held,
		LastEntity:    lastEntity,
	}
}

func (a *App) adjacentRoomNames() []string {
	room, ok := a.state.FindRoom(a.state.CurrentRoom)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(room.Doors))
	for _, door := range room.Doors {
		if target, ok := a.state.FindRoom(door.ToRoom); ok {
			names = append(names, target.Name)
		}
	}
	return names
}

func (a *App) roomIDByName(name string) (string, bool) {
	room, ok := a.state.FindRoom(a.state.CurrentRoom)
	if !ok {
		return "", false
	}
	for _, door := range room.Doors {
		target, ok := a.state.FindRoom(door.ToRoom)
		if !ok {
			continue
		}
		if namesMatch(target.Name, name) {
			return target.ID, true
		}
	}
	return "", false
}

func (a *App) npcIDByName(name string) (string, bool) {
	for _, npc := range a.state.NPCsInRoom(a.state.CurrentRoom) {
		if namesMatch(npc.Name, name) {
			return npc.ID, true
		}
	}
	return "", false
}

func (a *App) itemIDByName(name string) (string, bool) {
	for _, item := range a.state.ItemsInRoom(a.state.CurrentRoom) {
		if namesMatch(item.Name, name) {
			return item.ID, true
		}
	}
	for _, id := range a.state.Inventory {
		if item, ok := a.state.FindItem(id); ok && namesMatch(item.Name, name) {
			return item.ID, true
		}
	}
	return "", false
}

// namesMatch compares a display name against user input on the parser's
// canonical form, so punctuation in names ("Servants' Quarters") never
// blocks a match.
func namesMatch(a, b string) bool {
	return parser.Normalise(a) == parser.Normalise(b)
}

func (a *App) println(line string) {
	fmt.Fprintln(a.out, line)
}

func (a *App) print(s string) {
	fmt.Fprint(a.out, s)
}
