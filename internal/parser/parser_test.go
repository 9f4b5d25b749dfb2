package parser

import "testing"

func testContext() ParseContext {
	return ParseContext{
		AdjacentRooms: []string{"Library", "Dining Room", "Conservatory", "Billiard Room"},
		People:        []string{"Margaret", "Howard", "Beatrice"},
		Items:         []string{"Candlestick", "Rope"},
		Inventory:     []string{},
	}
}

func TestNormaliseInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  LOOK  ", want: "look"},
		{in: "pick-up", want: "pick up"},
		{in: "Knife!", want: "knife"},
		{in: "Servants' Quarters", want: "servants quarters"},
		{in: "go   to\tthe   hall", want: "go to the hall"},
		{in: "", want: ""},
		{in: "!!!", want: ""},
	}
	for _, tc := range tests {
		if got := normaliseInput(tc.in); got != tc.want {
			t.Fatalf("normaliseInput(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormaliseIsSharedWithCallers(t *testing.T) {
	// Display names with punctuation must land on the same form the parser
	// hands back in resolved args.
	if got := Normalise("Servants' Quarters"); got != "servants quarters" {
		t.Fatalf("Normalise(Servants' Quarters) = %q", got)
	}
	if got := Normalise("  Master  Bedroom "); got != normaliseInput("master bedroom") {
		t.Fatalf("exported and internal normalisation diverged: %q", got)
	}
}

func TestParseEmptyInputAsksForACommand(t *testing.T) {
	p := New()
	intent := p.Parse(testContext(), "   ")
	if intent.Kind != Unknown {
		t.Fatalf("expected unknown kind, got %v", intent.Kind)
	}
	if intent.Clarify == nil {
		t.Fatalf("empty input should ask for a command")
	}
}

func TestParseCanonicalCommands(t *testing.T) {
	p := New()
	tests := []struct {
		in       string
		wantVerb string
		wantKind IntentKind
	}{
		{in: "help", wantVerb: "help", wantKind: Help},
		{in: "look", wantVerb: "look", wantKind: Query},
		{in: "inventory", wantVerb: "inventory", wantKind: Query},
		{in: "assemble", wantVerb: "assemble", wantKind: Command},
		{in: "quit", wantVerb: "quit", wantKind: Command},
	}
	for _, tc := range tests {
		intent := p.Parse(testContext(), tc.in)
		if intent.Verb != tc.wantVerb {
			t.Fatalf("Parse(%q) verb = %q, want %q", tc.in, intent.Verb, tc.wantVerb)
		}
		if intent.Kind != tc.wantKind {
			t.Fatalf("Parse(%q) kind = %v, want %v", tc.in, intent.Kind, tc.wantKind)
		}
		if intent.Clarify != nil {
			t.Fatalf("Parse(%q) should not need clarification: %+v", tc.in, intent.Clarify)
		}
	}
}

func TestParseAliasesMapToCanonicalVerb(t *testing.T) {
	p := New()
	tests := []struct {
		in       string
		wantVerb string
	}{
		{in: "go library", wantVerb: "move"},
		{in: "grab candlestick", wantVerb: "take"},
		{in: "interrogate margaret", wantVerb: "question"},
		{in: "whereabouts howard", wantVerb: "alibi"},
		{in: "arrest beatrice", wantVerb: "accuse"},
		{in: "gather", wantVerb: "assemble"},
		{in: "where am i", wantVerb: "look"},
	}
	for _, tc := range tests {
		intent := p.Parse(testContext(), tc.in)
		if intent.Verb != tc.wantVerb {
			t.Fatalf("Parse(%q) verb = %q, want %q", tc.in, intent.Verb, tc.wantVerb)
		}
	}
}

func TestParseResolvesEntityByPrefix(t *testing.T) {
	p := New()
	intent := p.Parse(testContext(), "take cand")
	if intent.Verb != "take" {
		t.Fatalf("expected take, got %q", intent.Verb)
	}
	if intent.Clarify != nil {
		t.Fatalf("unexpected clarification: %+v", intent.Clarify)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "candlestick" {
		t.Fatalf("expected [candlestick], got %v", intent.Args)
	}
}

func TestParseResolvesMultiWordEntity(t *testing.T) {
	p := New()
	intent := p.Parse(testContext(), "go dining room")
	if intent.Verb != "move" {
		t.Fatalf("expected move, got %q", intent.Verb)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "dining room" {
		t.Fatalf("expected [dining room], got %v", intent.Args)
	}
}

func TestParseCorrectsCommandTypo(t *testing.T) {
	p := New()
	intent := p.Parse(testContext(), "questoin margaret")
	if intent.Verb != "question" {
		t.Fatalf("expected question, got %q", intent.Verb)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "margaret" {
		t.Fatalf("expected [margaret], got %v", intent.Args)
	}
	if intent.Clarify != nil {
		t.Fatalf("a one-transposition typo should parse cleanly: %+v", intent.Clarify)
	}
}

func TestParseAmbiguousEntityAsksToClarify(t *testing.T) {
	p := New()
	ctx := testContext()
	ctx.Items = []string{"Candlestick", "Candelabra"}

	intent := p.Parse(ctx, "take cand")
	if intent.Clarify == nil {
		t.Fatalf("two equally good entity matches should clarify")
	}
	if len(intent.Clarify.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(intent.Clarify.Options))
	}
	for _, opt := range intent.Clarify.Options {
		if opt.Verb != "take" {
			t.Fatalf("clarify option kept verb %q", opt.Verb)
		}
	}
	if len(intent.Args) != 0 {
		t.Fatalf("clarifying parse must not commit to args: %v", intent.Args)
	}
}

func TestParseBareMoveListsAdjacentRooms(t *testing.T) {
	p := New()
	ctx := testContext()

	intent := p.Parse(ctx, "move")
	if intent.Clarify == nil {
		t.Fatalf("bare move should ask where to go")
	}
	if len(intent.Clarify.Options) != len(ctx.AdjacentRooms) {
		t.Fatalf("expected %d options, got %d", len(ctx.AdjacentRooms), len(intent.Clarify.Options))
	}
	for _, opt := range intent.Clarify.Options {
		if opt.Verb != "move" || len(opt.Args) != 1 {
			t.Fatalf("malformed move option: %+v", opt)
		}
	}
}

func TestParsePronounUsesLastEntity(t *testing.T) {
	p := New()
	ctx := testContext()
	ctx.LastEntity = "Candlestick"

	intent := p.Parse(ctx, "examine it")
	if intent.Verb != "examine" {
		t.Fatalf("expected examine, got %q", intent.Verb)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "candlestick" {
		t.Fatalf("pronoun should resolve to the last entity, got %v", intent.Args)
	}
}

func TestParsePronounWithoutAntecedentClarifies(t *testing.T) {
	p := New()
	intent := p.Parse(testContext(), "examine it")
	if intent.Clarify == nil {
		t.Fatalf("a pronoun with no antecedent should clarify")
	}
}

func TestParseFreeTextSpeakWith(t *testing.T) {
	p := New()
	intent := p.Parse(testContext(), "speak with margret")
	if intent.Verb != "question" {
		t.Fatalf("expected question, got %q", intent.Verb)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "margaret" {
		t.Fatalf("expected [margaret], got %v", intent.Args)
	}
}

func TestParseGibberishClarifies(t *testing.T) {
	p := New()
	intent := p.Parse(testContext(), "zxqv flurble")
	if intent.Kind != Unknown {
		t.Fatalf("expected unknown kind, got %v", intent.Kind)
	}
	if intent.Clarify == nil {
		t.Fatalf("unmatchable input should clarify")
	}
}

func TestRegisterCommandCustomVerb(t *testing.T) {
	p := New()
	p.RegisterCommand(CommandDef{Canonical: "wait", Aliases: []string{"linger"}, MinArgs: 0, MaxArgs: 0})

	for _, in := range []string{"wait", "linger"} {
		intent := p.Parse(testContext(), in)
		if intent.Verb != "wait" {
			t.Fatalf("Parse(%q) verb = %q, want wait", in, intent.Verb)
		}
	}
}
