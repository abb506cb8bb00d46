package gen

import (
	"karabiner-layout-generator/internal/karabiner"
	"karabiner-layout-generator/internal/keycode"
)

// ModifierAny is the optional modifier that lets a from-event match under any
// additional modifiers.
const ModifierAny = "any"

// Pair is one from -> to mapping as written by the user.
type Pair struct {
	From string
	To   string
}

// Config holds the generation settings of one rule.
type Config struct {
	// Description of the generated rule.
	Description string
	// Title of the generated document. Empty omits it.
	Title string
	// FromOptionalAny adds "any" to every from-event's optional modifiers.
	FromOptionalAny bool
	// InputSource gates every manipulator on an input source when it carries an ID.
	InputSource *karabiner.InputSource
	// KnownKeyCodes overrides the key codes that are never typed letter by letter.
	// Nil means keycode.DefaultKeyCodes.
	KnownKeyCodes *keycode.KeyCodeSet
}

// DefaultDescription is used when no description is configured.
const DefaultDescription = "JIS配列から自作配列への変換"

// DefaultConfig returns the default generation configuration.
func DefaultConfig() Config {
	return Config{Description: DefaultDescription}
}

// Generator builds rule documents from mapping pairs.
// It holds no mutable state and may be used concurrently.
type Generator struct {
	config     Config
	known      keycode.KeyCodeSet
	conditions []karabiner.Condition
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	known := keycode.DefaultKeyCodes()
	if config.KnownKeyCodes != nil {
		known = *config.KnownKeyCodes
	}

	g := &Generator{config: config, known: known}
	if config.InputSource != nil && config.InputSource.InputSourceID != "" {
		g.conditions = []karabiner.Condition{
			karabiner.InputSourceIf{InputSources: []karabiner.InputSource{*config.InputSource}},
		}
	}

	return g
}

// Generate assembles one rule from pairs, in input order. For every pair the
// base manipulator comes first, followed by its shifted variant when eligible.
// The conditions, if any, are attached to every manipulator.
func (g *Generator) Generate(pairs []Pair) *karabiner.Document {
	manipulators := make([]karabiner.Manipulator, 0, 2*len(pairs))

	for _, p := range pairs {
		base := g.baseManipulator(p)
		manipulators = append(manipulators, base)

		if ShiftEligible(p.From, base.From) {
			manipulators = append(manipulators, DeriveShifted(base, p.To, g.known))
		}
	}

	return &karabiner.Document{
		Title: g.config.Title,
		Rules: []karabiner.Rule{{
			Description:  g.config.Description,
			Manipulators: manipulators,
		}},
	}
}

func (g *Generator) baseManipulator(p Pair) karabiner.Manipulator {
	from := ParseFrom(p.From)
	if g.config.FromOptionalAny {
		var mandatory []string
		if from.Modifiers != nil {
			mandatory = from.Modifiers.Mandatory
		}

		from.Modifiers = karabiner.NewModifiers(mandatory, []string{ModifierAny})
	}

	return karabiner.Manipulator{
		From:       from,
		To:         ExpandTo(p.To, g.known),
		Type:       karabiner.ManipulatorTypeBasic,
		Conditions: karabiner.CloneConditions(g.conditions),
	}
}

// Assemble builds the document for pairs with the default key code set.
// inputSource may be nil.
func Assemble(description string, pairs []Pair, fromOptionalAny bool, inputSource *karabiner.InputSource) *karabiner.Document {
	return NewGenerator(Config{
		Description:     description,
		FromOptionalAny: fromOptionalAny,
		InputSource:     inputSource,
	}).Generate(pairs)
}
