// Package lua converts shortcut groups to and from gopher-lua values,
// so hosts with Lua plugin systems can accept bindings from scripts.
//
// The table shape mirrors the configuration schema:
//
//	{
//	  repeats = true,
//	  shortcuts = {
//	    { key = "KeyA" },
//	    { key = "KeyS", modifiers = { control = "RequirePressed" } },
//	  },
//	}
package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/shortcuts"
	"github.com/dshills/shortcuts/key"
)

// FromTable converts a Lua table into a shortcut group. Unknown key
// names and malformed modifier tags surface the same error kinds as
// the config package.
func FromTable(lv lua.LValue) (shortcuts.Group, error) {
	t, ok := lv.(*lua.LTable)
	if !ok {
		return shortcuts.Group{}, fmt.Errorf("expected table, got %s", lv.Type())
	}

	g := shortcuts.Group{
		Repeats: lua.LVAsBool(t.RawGetString("repeats")),
	}

	list := t.RawGetString("shortcuts")
	if list == lua.LNil {
		return g, nil
	}
	lt, ok := list.(*lua.LTable)
	if !ok {
		return shortcuts.Group{}, fmt.Errorf("shortcuts: expected table, got %s", list.Type())
	}

	for i := 1; i <= lt.Len(); i++ {
		s, err := shortcutFromTable(lt.RawGetInt(i))
		if err != nil {
			return shortcuts.Group{}, fmt.Errorf("shortcut %d: %w", i, err)
		}
		g.Shortcuts = append(g.Shortcuts, s)
	}
	return g, nil
}

func shortcutFromTable(lv lua.LValue) (shortcuts.Shortcut, error) {
	var s shortcuts.Shortcut

	t, ok := lv.(*lua.LTable)
	if !ok {
		return s, fmt.Errorf("expected table, got %s", lv.Type())
	}

	name, ok := t.RawGetString("key").(lua.LString)
	if !ok {
		return s, fmt.Errorf("missing key")
	}
	k, err := key.Parse(string(name))
	if err != nil {
		return s, err
	}
	s.Key = k

	mods := t.RawGetString("modifiers")
	if mods == lua.LNil {
		return s, nil
	}
	mt, ok := mods.(*lua.LTable)
	if !ok {
		return s, fmt.Errorf("modifiers: expected table, got %s", mods.Type())
	}

	var convErr error
	mt.ForEach(func(k, v lua.LValue) {
		if convErr != nil {
			return
		}
		slot := lua.LVAsString(k)
		state, err := shortcuts.ParseModifierState(lua.LVAsString(v))
		if err != nil {
			convErr = fmt.Errorf("modifier %q: %w", slot, err)
			return
		}
		switch slot {
		case "control":
			s.Modifiers.Control = state
		case "alt":
			s.Modifiers.Alt = state
		case "shift":
			s.Modifiers.Shift = state
		case "super":
			s.Modifiers.Super = state
		default:
			convErr = fmt.Errorf("unknown modifier %q", slot)
		}
	})
	return s, convErr
}

// ToTable converts a shortcut group into a Lua table in the same
// shape FromTable reads. Ignore-state modifier slots are omitted.
func ToTable(L *lua.LState, g shortcuts.Group) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("repeats", lua.LBool(g.Repeats))

	list := L.NewTable()
	for _, s := range g.Shortcuts {
		list.Append(shortcutToTable(L, s))
	}
	t.RawSetString("shortcuts", list)
	return t
}

func shortcutToTable(L *lua.LState, s shortcuts.Shortcut) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("key", lua.LString(s.Key.String()))

	if s.Modifiers.IsZero() {
		return t
	}
	mt := L.NewTable()
	setSlot := func(name string, state shortcuts.ModifierState) {
		if state != shortcuts.Ignore {
			mt.RawSetString(name, lua.LString(state.String()))
		}
	}
	setSlot("control", s.Modifiers.Control)
	setSlot("alt", s.Modifiers.Alt)
	setSlot("shift", s.Modifiers.Shift)
	setSlot("super", s.Modifiers.Super)
	t.RawSetString("modifiers", mt)
	return t
}
