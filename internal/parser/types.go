package parser

type IntentKind int

const (
	Command IntentKind = iota
	Query
	Help
	Unknown
)

type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext is the investigator's surroundings, used to resolve fuzzy
// entity references. All entries are display names.
type ParseContext struct {
	AdjacentRooms []string
	People        []string
	Items         []string
	Inventory     []string
	LastEntity    string
}

type CommandDef struct {
	Canonical string
	Aliases   []string
	MinArgs   int
	MaxArgs   int
}
