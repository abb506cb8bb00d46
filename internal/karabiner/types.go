package karabiner

import (
	"encoding/json"
	"fmt"
	"slices"

	"karabiner-layout-generator/internal/common"
)

// ManipulatorTypeBasic is the only manipulator type the generator emits.
const ManipulatorTypeBasic = "basic"

// Document is the top-level rule file.
type Document struct {
	// Title is shown by the consumer's rule importer. Optional.
	Title string `json:"title,omitempty"`
	Rules []Rule `json:"rules"`
}

// Rule is a described group of manipulators.
type Rule struct {
	Description  string        `json:"description"`
	Manipulators []Manipulator `json:"manipulators"`
	Conditions   []Condition   `json:"conditions,omitempty"`
}

// Manipulator remaps one from-event to a sequence of to-events.
type Manipulator struct {
	From       FromEvent   `json:"from"`
	To         []ToEvent   `json:"to"`
	Type       string      `json:"type"`
	Conditions []Condition `json:"conditions,omitempty"`
}

// Clone returns a deep copy of m.
func (m Manipulator) Clone() Manipulator {
	to := make([]ToEvent, len(m.To))
	for i, ev := range m.To {
		to[i] = ev.Clone()
	}

	return Manipulator{
		From:       m.From.Clone(),
		To:         to,
		Type:       m.Type,
		Conditions: CloneConditions(m.Conditions),
	}
}

// FromEvent is the matched side of a manipulator: a key shape plus modifiers.
type FromEvent struct {
	Key       FromKey
	Modifiers *Modifiers
}

// FromKey is either SingleKey or Simultaneous.
type FromKey interface {
	isFromKey()
}

// SingleKey matches one physical key.
type SingleKey struct {
	KeyCode string
}

// Simultaneous matches several keys pressed together.
type Simultaneous struct {
	Keys []string
}

func (SingleKey) isFromKey()    {}
func (Simultaneous) isFromKey() {}

// Clone returns a deep copy of e.
func (e FromEvent) Clone() FromEvent {
	out := FromEvent{Modifiers: e.Modifiers.Clone()}

	switch k := e.Key.(type) {
	case Simultaneous:
		out.Key = Simultaneous{Keys: slices.Clone(k.Keys)}
	default:
		out.Key = k
	}

	return out
}

type keyCodeRef struct {
	KeyCode string `json:"key_code"`
}

// MarshalJSON writes the key shape first, then the modifiers.
func (e FromEvent) MarshalJSON() ([]byte, error) {
	switch k := e.Key.(type) {
	case SingleKey:
		return json.Marshal(struct {
			KeyCode   string     `json:"key_code"`
			Modifiers *Modifiers `json:"modifiers,omitempty"`
		}{k.KeyCode, e.Modifiers.orNil()})
	case Simultaneous:
		refs := make([]keyCodeRef, len(k.Keys))
		for i, kc := range k.Keys {
			refs[i] = keyCodeRef{KeyCode: kc}
		}

		return json.Marshal(struct {
			Simultaneous []keyCodeRef `json:"simultaneous"`
			Modifiers    *Modifiers   `json:"modifiers,omitempty"`
		}{refs, e.Modifiers.orNil()})
	default:
		return nil, fmt.Errorf("unsupported from key %T", e.Key)
	}
}

// Modifiers holds the from-side modifier sets. A nil *Modifiers means none.
type Modifiers struct {
	Mandatory []string `json:"mandatory,omitempty"`
	Optional  []string `json:"optional,omitempty"`
}

// NewModifiers returns nil when both sets are empty.
func NewModifiers(mandatory, optional []string) *Modifiers {
	m := &Modifiers{
		Mandatory: common.CloneOrNil(common.AppendUnique[[]string](nil, mandatory...)),
		Optional:  common.CloneOrNil(common.AppendUnique[[]string](nil, optional...)),
	}

	return m.orNil()
}

// IsEmpty reports whether m has no modifiers. It is nil-safe.
func (m *Modifiers) IsEmpty() bool {
	return m == nil || (common.IsEmpty(m.Mandatory) && common.IsEmpty(m.Optional))
}

// WithMandatory returns a new value with mods added to the mandatory set.
// Present modifiers are kept in place and never duplicated.
func (m *Modifiers) WithMandatory(mods ...string) *Modifiers {
	var mandatory, optional []string
	if m != nil {
		mandatory, optional = m.Mandatory, m.Optional
	}

	return NewModifiers(common.AppendUnique(mandatory, mods...), optional)
}

// Clone returns a deep copy of m. It is nil-safe.
func (m *Modifiers) Clone() *Modifiers {
	if m == nil {
		return nil
	}

	return &Modifiers{
		Mandatory: common.CloneOrNil(m.Mandatory),
		Optional:  common.CloneOrNil(m.Optional),
	}
}

func (m *Modifiers) orNil() *Modifiers {
	if m.IsEmpty() {
		return nil
	}

	return m
}

// ToEvent is one emitted keystroke.
type ToEvent struct {
	KeyCode   string   `json:"key_code"`
	Modifiers []string `json:"modifiers,omitempty"`
}

// Clone returns a deep copy of ev.
func (ev ToEvent) Clone() ToEvent {
	return ToEvent{KeyCode: ev.KeyCode, Modifiers: common.CloneOrNil(ev.Modifiers)}
}

// Condition gates when a manipulator applies.
type Condition interface {
	ConditionType() string
	// Clone returns a copy that shares no memory with the receiver.
	Clone() Condition
}

// CloneConditions deep-copies cs. Empty input yields nil.
func CloneConditions(cs []Condition) []Condition {
	if len(cs) == 0 {
		return nil
	}

	out := make([]Condition, len(cs))
	for i, c := range cs {
		if c != nil {
			out[i] = c.Clone()
		}
	}

	return out
}

// ConditionTypeInputSourceIf is the type tag of InputSourceIf.
const ConditionTypeInputSourceIf = "input_source_if"

// InputSourceIf applies while one of the input sources is selected.
type InputSourceIf struct {
	InputSources []InputSource
}

// InputSource identifies an input method. Empty fields are omitted.
type InputSource struct {
	InputSourceID string `json:"input_source_id,omitempty"`
}

// ConditionType implements Condition.
func (InputSourceIf) ConditionType() string {
	return ConditionTypeInputSourceIf
}

// Clone implements Condition.
func (c InputSourceIf) Clone() Condition {
	return InputSourceIf{InputSources: common.CloneOrNil(c.InputSources)}
}

// MarshalJSON writes the type tag before the input sources.
func (c InputSourceIf) MarshalJSON() ([]byte, error) {
	sources := c.InputSources
	if sources == nil {
		sources = []InputSource{}
	}

	return json.Marshal(struct {
		Type         string        `json:"type"`
		InputSources []InputSource `json:"input_sources"`
	}{c.ConditionType(), sources})
}
