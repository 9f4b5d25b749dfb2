package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/appengine-ltd/gumshoe/internal/parser"
)

func runScript(t *testing.T, config AppConfig, script string) string {
	t.Helper()

	var out bytes.Buffer
	config.In = strings.NewReader(script)
	config.Out = &out

	app, err := NewApp(config)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if err := app.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func TestRunGreetsAndQuits(t *testing.T) {
	out := runScript(t, AppConfig{Seed: 5}, "quit\n")

	if !strings.Contains(out, "Welcome to Blackwood Manor, Inspector.") {
		t.Fatalf("missing greeting in output:\n%s", out)
	}
	if !strings.Contains(out, "You are in the Hall.") {
		t.Fatalf("missing opening room description:\n%s", out)
	}
	if !strings.Contains(out, "The case remains open.") {
		t.Fatalf("missing farewell:\n%s", out)
	}
}

func TestRunStopsCleanlyAtEOF(t *testing.T) {
	out := runScript(t, AppConfig{Seed: 5}, "")
	if !strings.Contains(out, "Welcome to Blackwood Manor") {
		t.Fatalf("missing greeting before EOF:\n%s", out)
	}
}

func TestRunHelpListsCommands(t *testing.T) {
	out := runScript(t, AppConfig{Seed: 5}, "help\nquit\n")
	if !strings.Contains(out, "Commands: look, move <room>") {
		t.Fatalf("missing help text:\n%s", out)
	}
}

func TestRunLookDescribesRoomAndExits(t *testing.T) {
	out := runScript(t, AppConfig{Seed: 5}, "look\nquit\n")
	if !strings.Contains(out, "Exits: ") {
		t.Fatalf("look should list exits:\n%s", out)
	}
}

func TestRunMoveThroughDoor(t *testing.T) {
	out := runScript(t, AppConfig{Seed: 5}, "go library\nquit\n")
	if !strings.Contains(out, "You enter the Library.") {
		t.Fatalf("missing move message:\n%s", out)
	}
	if !strings.Contains(out, "You are in the Library.") {
		t.Fatalf("move should re-describe the room:\n%s", out)
	}
}

func TestRunAssembleNeedsEvidence(t *testing.T) {
	out := runScript(t, AppConfig{Seed: 5}, "assemble\nquit\n")
	if !strings.Contains(out, "You should be holding evidence") {
		t.Fatalf("assemble without evidence should push back:\n%s", out)
	}
}

func TestRunEmptyInventory(t *testing.T) {
	out := runScript(t, AppConfig{Seed: 5}, "inventory\nquit\n")
	if !strings.Contains(out, "You are carrying nothing.") {
		t.Fatalf("missing empty inventory line:\n%s", out)
	}
}

func TestRunDebugIsGated(t *testing.T) {
	out := runScript(t, AppConfig{Seed: 5}, "debug\nquit\n")
	if strings.Contains(out, "DEBUG INFO") {
		t.Fatalf("debug output leaked without the flag:\n%s", out)
	}
	if !strings.Contains(out, "Nothing happens.") {
		t.Fatalf("gated debug should shrug:\n%s", out)
	}

	out = runScript(t, AppConfig{Seed: 5, Debug: true}, "debug\nquit\n")
	if !strings.Contains(out, "=== DEBUG INFO ===") {
		t.Fatalf("debug flag should reveal the solution summary:\n%s", out)
	}
	if !strings.Contains(out, "Victim: ") || !strings.Contains(out, "Murder Weapon: ") {
		t.Fatalf("debug summary incomplete:\n%s", out)
	}
}

func TestRunNewOpensAFreshCase(t *testing.T) {
	out := runScript(t, AppConfig{Seed: 5}, "new\nquit\n")
	if strings.Count(out, "has been found murdered!") != 2 {
		t.Fatalf("new should print a second case intro:\n%s", out)
	}
}

func TestRunUnknownInputAsksForClarification(t *testing.T) {
	out := runScript(t, AppConfig{Seed: 5}, "zxqv flurble\nquit\n")
	if !strings.Contains(out, "I couldn't map that to a command.") {
		t.Fatalf("gibberish should prompt for clarification:\n%s", out)
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	var out bytes.Buffer
	app, err := NewApp(AppConfig{Seed: 5, In: strings.NewReader(""), Out: &out})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return app
}

func TestRunReachesServantsQuarters(t *testing.T) {
	// The room name carries an apostrophe; both the stripped and the raw
	// spelling must walk through the door.
	scripts := []string{
		"move conservatory\nmove master bedroom\nmove servants quarters\nquit\n",
		"move conservatory\nmove master bedroom\nmove servants' quarters\nquit\n",
	}
	for _, script := range scripts {
		out := runScript(t, AppConfig{Seed: 5}, script)
		if !strings.Contains(out, "You are in the Servants' Quarters.") {
			t.Fatalf("could not walk into the Servants' Quarters with script %q:\n%s", script, out)
		}
		if strings.Contains(out, "No such room within reach.") {
			t.Fatalf("an advertised exit was rejected with script %q:\n%s", script, out)
		}
	}
}

func TestEveryAdvertisedExitResolves(t *testing.T) {
	// Every name printed on the Exits line must resolve back to a door,
	// including after parser normalisation strips its punctuation.
	app := newTestApp(t)
	for _, room := range app.state.Rooms {
		app.state.CurrentRoom = room.ID
		for _, name := range app.adjacentRoomNames() {
			id, ok := app.roomIDByName(parser.Normalise(name))
			if !ok {
				t.Fatalf("exit %q from %s does not resolve", name, room.ID)
			}
			if result := app.state.MoveTo(id); !result.Applied {
				t.Fatalf("exit %q from %s resolved to %s but the move declined: %s", name, room.ID, id, result.Declined)
			}
			app.state.CurrentRoom = room.ID
		}
	}
}

func TestSelectEchoesDisplayName(t *testing.T) {
	app := newTestApp(t)
	app.state.NPCs[0].CurrentRoom = app.state.CurrentRoom
	name := app.state.NPCs[0].Name

	var out bytes.Buffer
	app.config.In = strings.NewReader("select " + strings.ToLower(name) + "\nquit\n")
	app.config.Out = &out
	app.out = &out
	if err := app.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "You turn your attention to "+name+".") {
		t.Fatalf("selection should echo the display name %q:\n%s", name, out.String())
	}
}

func TestNewAppRejectsBadSuspectCount(t *testing.T) {
	var out bytes.Buffer
	_, err := NewApp(AppConfig{Seed: 5, Suspects: 1, In: strings.NewReader(""), Out: &out})
	if err == nil {
		t.Fatalf("expected a config error for one suspect")
	}
}
