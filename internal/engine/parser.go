package engine

import "strings"

// Verb is the closed set of actions a command can name.
type Verb int

const (
	VerbUnknown Verb = iota
	VerbHelp
	VerbCommands
	VerbTravel
	VerbDestinations
	VerbExamine
	VerbInventory
	VerbStatus
	VerbMarket
	VerbBuy
	VerbSell
	VerbBusiness
	VerbFactory
)

var verbNames = map[Verb]string{
	VerbUnknown:      "unknown",
	VerbHelp:         "help",
	VerbCommands:     "commands",
	VerbTravel:       "travel",
	VerbDestinations: "destinations",
	VerbExamine:      "examine",
	VerbInventory:    "inventory",
	VerbStatus:       "status",
	VerbMarket:       "market",
	VerbBuy:          "buy",
	VerbSell:         "sell",
	VerbBusiness:     "business",
	VerbFactory:      "factory",
}

func (v Verb) String() string {
	if name, ok := verbNames[v]; ok {
		return name
	}
	return "unknown"
}

// verbOrder is the classification order; the first family containing the
// token wins.
var verbOrder = []Verb{
	VerbHelp,
	VerbCommands,
	VerbTravel,
	VerbDestinations,
	VerbExamine,
	VerbInventory,
	VerbStatus,
	VerbMarket,
	VerbBuy,
	VerbSell,
	VerbBusiness,
	VerbFactory,
}

var synonyms = map[Verb][]string{
	VerbHelp:         {"help", "?"},
	VerbCommands:     {"commands"},
	VerbTravel:       {"travel", "go", "move", "journey", "fly", "depart", "leave"},
	VerbDestinations: {"destinations", "exits", "routes"},
	VerbExamine:      {"look", "examine", "describe", "check", "inspect", "l"},
	VerbInventory:    {"inventory", "i", "cargo", "goods", "items"},
	VerbStatus:       {"status", "stats", "info", "credits", "money"},
	VerbMarket:       {"market", "prices", "trading", "commerce"},
	VerbBuy:          {"buy", "purchase", "acquire", "get"},
	VerbSell:         {"sell", "trade", "unload"},
	VerbBusiness:     {"business", "incorporate", "register", "license", "loan", "contract", "reputation"},
	VerbFactory:      {"factory", "factories", "build", "construct", "facility", "automate"},
}

var verbByToken = func() map[string]Verb {
	m := make(map[string]Verb)
	for _, v := range verbOrder {
		for _, s := range synonyms[v] {
			if _, taken := m[s]; !taken {
				m[s] = v
			}
		}
	}
	return m
}()

// Command is a tokenized player command.
type Command struct {
	Raw    string
	Verb   Verb
	Token  string   // the verb as typed, lower-cased
	Args   []string // remaining tokens
	Phrase string   // Args joined with single spaces
}

// Parse lower-cases and tokenizes a raw line. It never fails: an empty line
// or an unrecognized first word yields VerbUnknown.
func Parse(raw string) Command {
	words := strings.Fields(strings.ToLower(raw))
	cmd := Command{Raw: raw}
	if len(words) == 0 {
		return cmd
	}
	cmd.Token = words[0]
	cmd.Args = words[1:]
	cmd.Phrase = strings.Join(cmd.Args, " ")
	cmd.Verb = verbByToken[cmd.Token]
	return cmd
}
