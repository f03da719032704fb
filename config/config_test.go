package config

import (
	"errors"
	"io/fs"
	"reflect"
	"strings"
	"testing"

	"github.com/dshills/shortcuts"
	"github.com/dshills/shortcuts/key"
)

// wantBindings is the decoded form of every well-formed fixture below.
var wantBindings = Bindings{
	"move_left": shortcuts.Repeating(key.KeyA, key.ArrowLeft),
	"save":      shortcuts.SinglePress(key.KeyS).WithControl(),
}

const jsonFixture = `{
	"move_left": {"repeats": true, "shortcuts": [{"key": "KeyA"}, {"key": "ArrowLeft"}]},
	"save": {"repeats": false, "shortcuts": [{"key": "KeyS", "modifiers": {"control": "RequirePressed"}}]}
}`

const tomlFixture = `
[move_left]
repeats = true

[[move_left.shortcuts]]
key = "KeyA"

[[move_left.shortcuts]]
key = "ArrowLeft"

[save]
repeats = false

[[save.shortcuts]]
key = "KeyS"

[save.shortcuts.modifiers]
control = "RequirePressed"
`

const yamlFixture = `
move_left:
  repeats: true
  shortcuts:
    - key: KeyA
    - key: ArrowLeft
save:
  repeats: false
  shortcuts:
    - key: KeyS
      modifiers:
        control: RequirePressed
`

func TestLoadFromReader(t *testing.T) {
	fromJSON, err := NewJSONLoader("").LoadFromReader(strings.NewReader(jsonFixture))
	if err != nil {
		t.Fatalf("JSON LoadFromReader error: %v", err)
	}
	if !reflect.DeepEqual(fromJSON, wantBindings) {
		t.Errorf("JSON = %+v, want %+v", fromJSON, wantBindings)
	}

	fromTOML, err := NewTOMLLoader("").LoadFromReader(strings.NewReader(tomlFixture))
	if err != nil {
		t.Fatalf("TOML LoadFromReader error: %v", err)
	}
	if !reflect.DeepEqual(fromTOML, wantBindings) {
		t.Errorf("TOML = %+v, want %+v", fromTOML, wantBindings)
	}

	fromYAML, err := NewYAMLLoader("").LoadFromReader(strings.NewReader(yamlFixture))
	if err != nil {
		t.Fatalf("YAML LoadFromReader error: %v", err)
	}
	if !reflect.DeepEqual(fromYAML, wantBindings) {
		t.Errorf("YAML = %+v, want %+v", fromYAML, wantBindings)
	}
}

func TestDecodeErrorKinds(t *testing.T) {
	unknownKey := func(doc string, load func(string) (Bindings, error)) {
		t.Helper()
		_, err := load(doc)
		if err == nil {
			t.Error("decode should fail for an unknown key name")
			return
		}
		var kerr *key.UnknownKeyError
		if !errors.As(err, &kerr) {
			t.Errorf("error = %v, want *key.UnknownKeyError in chain", err)
		}
	}
	badTag := func(doc string, load func(string) (Bindings, error)) {
		t.Helper()
		_, err := load(doc)
		if err == nil {
			t.Error("decode should fail for an invalid modifier tag")
			return
		}
		var merr *shortcuts.InvalidModifierError
		if !errors.As(err, &merr) {
			t.Errorf("error = %v, want *shortcuts.InvalidModifierError in chain", err)
		}
	}

	loadJSON := func(doc string) (Bindings, error) {
		return NewJSONLoader("").LoadFromReader(strings.NewReader(doc))
	}
	loadYAML := func(doc string) (Bindings, error) {
		return NewYAMLLoader("").LoadFromReader(strings.NewReader(doc))
	}
	loadTOML := func(doc string) (Bindings, error) {
		return NewTOMLLoader("").LoadFromReader(strings.NewReader(doc))
	}

	unknownKey(`{"a":{"repeats":false,"shortcuts":[{"key":"KeyQQ"}]}}`, loadJSON)
	badTag(`{"a":{"repeats":false,"shortcuts":[{"key":"KeyS","modifiers":{"control":"Held"}}]}}`, loadJSON)

	unknownKey("a:\n  shortcuts:\n    - key: KeyQQ\n", loadYAML)
	badTag("a:\n  shortcuts:\n    - key: KeyS\n      modifiers:\n        control: Held\n", loadYAML)

	unknownKey("[a]\nrepeats = false\n[[a.shortcuts]]\nkey = \"KeyQQ\"\n", loadTOML)
	badTag("[a]\n[[a.shortcuts]]\nkey = \"KeyS\"\n[a.shortcuts.modifiers]\ncontrol = \"Held\"\n", loadTOML)
}

func TestDecodeMissingKey(t *testing.T) {
	docs := map[string]func() (Bindings, error){
		"json": func() (Bindings, error) {
			return NewJSONLoader("").LoadFromReader(strings.NewReader(
				`{"a":{"repeats":false,"shortcuts":[{}]}}`))
		},
		"yaml": func() (Bindings, error) {
			return NewYAMLLoader("").LoadFromReader(strings.NewReader(
				"a:\n  shortcuts:\n    - repeats: false\n"))
		},
		"toml": func() (Bindings, error) {
			return NewTOMLLoader("").LoadFromReader(strings.NewReader(
				"[a]\n[[a.shortcuts]]\n"))
		},
	}

	for name, load := range docs {
		if _, err := load(); err == nil {
			t.Errorf("%s: decode should fail for a shortcut without a key", name)
		}
	}
}

func TestUnknownModifierNameYAML(t *testing.T) {
	doc := "a:\n  shortcuts:\n    - key: KeyS\n      modifiers:\n        meta: RequirePressed\n"
	if _, err := NewYAMLLoader("").LoadFromReader(strings.NewReader(doc)); err == nil {
		t.Error("decode should fail for an unknown modifier name")
	}
}

func TestEncodeRoundTrips(t *testing.T) {
	jsonData, err := EncodeJSON(wantBindings)
	if err != nil {
		t.Fatalf("EncodeJSON error: %v", err)
	}
	got, err := NewJSONLoader("").LoadFromReader(strings.NewReader(string(jsonData)))
	if err != nil {
		t.Fatalf("decode of encoded JSON error: %v", err)
	}
	if !reflect.DeepEqual(got, wantBindings) {
		t.Errorf("JSON round trip = %+v, want %+v", got, wantBindings)
	}

	tomlData, err := EncodeTOML(wantBindings)
	if err != nil {
		t.Fatalf("EncodeTOML error: %v", err)
	}
	got, err = NewTOMLLoader("").LoadFromReader(strings.NewReader(string(tomlData)))
	if err != nil {
		t.Fatalf("decode of encoded TOML error: %v", err)
	}
	if !reflect.DeepEqual(got, wantBindings) {
		t.Errorf("TOML round trip = %+v, want %+v", got, wantBindings)
	}

	yamlData, err := EncodeYAML(wantBindings)
	if err != nil {
		t.Fatalf("EncodeYAML error: %v", err)
	}
	got, err = NewYAMLLoader("").LoadFromReader(strings.NewReader(string(yamlData)))
	if err != nil {
		t.Fatalf("decode of encoded YAML error: %v", err)
	}
	if !reflect.DeepEqual(got, wantBindings) {
		t.Errorf("YAML round trip = %+v, want %+v", got, wantBindings)
	}
}

func TestExtractAndEmbed(t *testing.T) {
	doc := []byte(`{"app":{"name":"demo","input":{}}}`)

	updated, err := Embed(doc, "app.input.bindings", wantBindings)
	if err != nil {
		t.Fatalf("Embed error: %v", err)
	}

	got, err := Extract(updated, "app.input.bindings")
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if !reflect.DeepEqual(got, wantBindings) {
		t.Errorf("Extract = %+v, want %+v", got, wantBindings)
	}

	if _, err := Extract(doc, "app.missing"); err == nil {
		t.Error("Extract should fail for an absent path")
	}
}

// mapFS is an in-memory FileSystem for loader tests.
type mapFS map[string][]byte

func (m mapFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func TestLoadFromFileSystem(t *testing.T) {
	fsys := mapFS{"bindings.json": []byte(jsonFixture)}

	got, err := NewJSONLoaderWithFS(fsys, "bindings.json").Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !reflect.DeepEqual(got, wantBindings) {
		t.Errorf("Load = %+v, want %+v", got, wantBindings)
	}

	// Missing file is not an error.
	got, err = NewJSONLoaderWithFS(fsys, "absent.json").Load()
	if err != nil {
		t.Errorf("Load of missing file error: %v", err)
	}
	if got != nil {
		t.Errorf("Load of missing file = %+v, want nil", got)
	}
}
