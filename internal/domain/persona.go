package domain

type PersonaID string

const (
	PersonaPerfectionist PersonaID = "PERFECTIONIST"
	PersonaNatural       PersonaID = "NATURAL"
	PersonaGrinder       PersonaID = "GRINDER"
)

// Persona is an immutable catalog entry: a rival identity with its own
// pool of fallback taunts.
type Persona struct {
	ID     PersonaID
	Name   string
	Taunts []string
}

var personaCatalog = []Persona{
	{
		ID:   PersonaPerfectionist,
		Name: "The Perfectionist",
		Taunts: []string{
			"I finished that task 10 minutes ago. It wasn't hard.",
			"Is that really the best you can do? Cute.",
			"I don't need breaks. Why do you?",
		},
	},
	{
		ID:   PersonaNatural,
		Name: "The Natural",
		Taunts: []string{
			"I didn't even study for this. It just comes naturally.",
			"You're trying so hard. It's almost inspiring.",
			"Oh, you're still working on that? I'm already done.",
		},
	},
	{
		ID:   PersonaGrinder,
		Name: "The Grinder",
		Taunts: []string{
			"While you were sleeping, I was working.",
			"Sleep is for the weak. Results are for the strong.",
			"I've done more before breakfast than you do all week.",
		},
	},
}

var globalTaunts = []string{
	"Your Nemesis is getting further ahead.",
	"Every second you waste, the gap widens.",
}

// Personas returns the catalog in display order.
func Personas() []Persona {
	out := make([]Persona, len(personaCatalog))
	copy(out, personaCatalog)
	return out
}

func PersonaByID(id PersonaID) (Persona, bool) {
	for _, persona := range personaCatalog {
		if persona.ID == id {
			return persona, true
		}
	}

	return Persona{}, false
}

func GlobalTaunts() []string {
	out := make([]string, len(globalTaunts))
	copy(out, globalTaunts)
	return out
}

// FallbackTaunts builds the local taunt pool for a persona: its own taunts
// followed by the global ones. An unknown or empty id yields the global
// pool alone.
func FallbackTaunts(id PersonaID) []string {
	persona, ok := PersonaByID(id)
	if !ok {
		return GlobalTaunts()
	}

	pool := make([]string, 0, len(persona.Taunts)+len(globalTaunts))
	pool = append(pool, persona.Taunts...)
	pool = append(pool, globalTaunts...)
	return pool
}

// DisplayName resolves the nemesis display name for a persona id, with a
// generic fallback when no persona is selected.
func DisplayName(id PersonaID) string {
	if persona, ok := PersonaByID(id); ok {
		return persona.Name
	}
	return "NEMESIS"
}
