package karabiner

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalOrderAndOmission(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Rules: []Rule{{
			Description: "test",
			Manipulators: []Manipulator{{
				From: FromEvent{Key: SingleKey{KeyCode: "a"}},
				To:   []ToEvent{{KeyCode: "b"}},
				Type: ManipulatorTypeBasic,
			}},
		}},
	}

	data, err := Marshal(doc)
	require.NoError(t, err)

	expected := `{
  "rules": [
    {
      "description": "test",
      "manipulators": [
        {
          "from": {
            "key_code": "a"
          },
          "to": [
            {
              "key_code": "b"
            }
          ],
          "type": "basic"
        }
      ]
    }
  ]
}
`
	assert.Equal(t, expected, string(data))
}

func TestMarshalFullManipulator(t *testing.T) {
	t.Parallel()

	cond := InputSourceIf{InputSources: []InputSource{{InputSourceID: "com.apple.foo"}}}
	doc := &Document{
		Title: "レイアウト",
		Rules: []Rule{{
			Description: "JIS <-> custom",
			Manipulators: []Manipulator{
				{
					From: FromEvent{
						Key:       SingleKey{KeyCode: "hyphen"},
						Modifiers: NewModifiers([]string{"left_shift"}, []string{"any"}),
					},
					To:         []ToEvent{{KeyCode: "k", Modifiers: []string{"left_shift"}}, {KeyCode: "a", Modifiers: []string{"left_shift"}}},
					Type:       ManipulatorTypeBasic,
					Conditions: []Condition{cond},
				},
				{
					From: FromEvent{
						Key:       Simultaneous{Keys: []string{"j", "k"}},
						Modifiers: NewModifiers(nil, []string{"any"}),
					},
					To:   []ToEvent{{KeyCode: "escape"}},
					Type: ManipulatorTypeBasic,
				},
			},
		}},
	}

	data, err := Marshal(doc)
	require.NoError(t, err)

	expected := `{
		"title": "レイアウト",
		"rules": [{
			"description": "JIS <-> custom",
			"manipulators": [
				{
					"from": {"key_code": "hyphen", "modifiers": {"mandatory": ["left_shift"], "optional": ["any"]}},
					"to": [
						{"key_code": "k", "modifiers": ["left_shift"]},
						{"key_code": "a", "modifiers": ["left_shift"]}
					],
					"type": "basic",
					"conditions": [{"type": "input_source_if", "input_sources": [{"input_source_id": "com.apple.foo"}]}]
				},
				{
					"from": {"simultaneous": [{"key_code": "j"}, {"key_code": "k"}], "modifiers": {"optional": ["any"]}},
					"to": [{"key_code": "escape"}],
					"type": "basic"
				}
			]
		}]
	}`
	assert.JSONEq(t, expected, string(data))
	assert.Contains(t, string(data), "<->", "HTML characters must not be escaped")
	assert.Contains(t, string(data), "レイアウト")
}

func TestMarshalEmptyModifiersOmitted(t *testing.T) {
	t.Parallel()

	doc := &Document{Rules: []Rule{{
		Description: "x",
		Manipulators: []Manipulator{{
			From: FromEvent{Key: SingleKey{KeyCode: "a"}, Modifiers: &Modifiers{}},
			To:   []ToEvent{{KeyCode: "b", Modifiers: []string{}}},
			Type: ManipulatorTypeBasic,
		}},
	}}}

	data, err := Marshal(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "modifiers")
	assert.NotContains(t, string(data), "conditions")
	assert.NotContains(t, string(data), "title")
}

type unknownKey struct{}

func (unknownKey) isFromKey() {}

func TestMarshalUnknownFromKey(t *testing.T) {
	t.Parallel()

	doc := &Document{Rules: []Rule{{Manipulators: []Manipulator{{From: FromEvent{Key: unknownKey{}}}}}}}

	_, err := Marshal(doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnwritable))
}

func TestModifiers(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NewModifiers(nil, nil))
	assert.Nil(t, NewModifiers([]string{}, []string{}))
	assert.True(t, (*Modifiers)(nil).IsEmpty())

	m := NewModifiers([]string{"fn", "fn"}, nil)
	assert.Equal(t, &Modifiers{Mandatory: []string{"fn"}}, m)

	shifted := m.WithMandatory("left_shift")
	assert.Equal(t, &Modifiers{Mandatory: []string{"fn", "left_shift"}}, shifted)
	assert.Equal(t, &Modifiers{Mandatory: []string{"fn"}}, m, "receiver must be unchanged")

	again := shifted.WithMandatory("left_shift")
	assert.Equal(t, shifted, again)

	fromNil := (*Modifiers)(nil).WithMandatory("left_shift")
	assert.Equal(t, &Modifiers{Mandatory: []string{"left_shift"}}, fromNil)

	withOptional := NewModifiers(nil, []string{"any"}).WithMandatory("left_shift")
	assert.Equal(t, &Modifiers{Mandatory: []string{"left_shift"}, Optional: []string{"any"}}, withOptional)
}

func TestManipulatorClone(t *testing.T) {
	t.Parallel()

	m := Manipulator{
		From: FromEvent{Key: Simultaneous{Keys: []string{"a", "b"}}, Modifiers: NewModifiers([]string{"fn"}, nil)},
		To:   []ToEvent{{KeyCode: "c", Modifiers: []string{"fn"}}},
		Type: ManipulatorTypeBasic,
	}
	m.Conditions = []Condition{InputSourceIf{InputSources: []InputSource{{InputSourceID: "com.apple.foo"}}}}

	c := m.Clone()
	c.From.Key.(Simultaneous).Keys[0] = "z"
	c.From.Modifiers.Mandatory[0] = "left_shift"
	c.To[0].Modifiers[0] = "left_shift"
	c.To[0].KeyCode = "d"
	c.Conditions[0].(InputSourceIf).InputSources[0].InputSourceID = "changed"

	assert.Equal(t, []string{"a", "b"}, m.From.Key.(Simultaneous).Keys)
	assert.Equal(t, []string{"fn"}, m.From.Modifiers.Mandatory)
	assert.Equal(t, ToEvent{KeyCode: "c", Modifiers: []string{"fn"}}, m.To[0])
	assert.Equal(t, "com.apple.foo", m.Conditions[0].(InputSourceIf).InputSources[0].InputSourceID)
}

func TestCloneConditions(t *testing.T) {
	t.Parallel()

	assert.Nil(t, CloneConditions(nil))
	assert.Nil(t, CloneConditions([]Condition{}))

	src := []Condition{InputSourceIf{InputSources: []InputSource{{InputSourceID: "a"}, {InputSourceID: "b"}}}}
	dst := CloneConditions(src)
	assert.Equal(t, src, dst)

	dst[0].(InputSourceIf).InputSources[1].InputSourceID = "z"
	assert.Equal(t, "b", src[0].(InputSourceIf).InputSources[1].InputSourceID)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	doc := &Document{Rules: []Rule{{Description: "d", Manipulators: []Manipulator{}}}}

	path := filepath.Join(t.TempDir(), "layout.json")
	require.NoError(t, WriteFile(doc, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc))
	assert.Equal(t, buf.String(), string(data))

	err = WriteFile(doc, filepath.Join(t.TempDir(), "missing", "layout.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnwritable)
}
