package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/thenoetrevino/swimlane/internal/config"
	"github.com/thenoetrevino/swimlane/internal/dnd"
)

// keyMap holds every binding of the board screen
type keyMap struct {
	addCard       key.Binding
	deleteCard    key.Binding
	moveCardLeft  key.Binding
	moveCardRight key.Binding
	pickUp        key.Binding
	drop          key.Binding
	cancelDrag    key.Binding
	createColumn  key.Binding
	deleteColumn  key.Binding
	prevColumn    key.Binding
	nextColumn    key.Binding
	prevCard      key.Binding
	nextCard      key.Binding
	focusNext     key.Binding
	toggleDetails key.Binding
	showHelp      key.Binding
	quit          key.Binding
}

// newKeyMap builds the bindings from the configured key mappings.
// Navigation keys also answer to the arrow keys.
func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		addCard:       binding("new card", km.AddCard),
		deleteCard:    binding("delete card", km.DeleteCard),
		moveCardLeft:  binding("move card left", km.MoveCardLeft),
		moveCardRight: binding("move card right", km.MoveCardRight),
		pickUp:        binding("pick up", km.PickUp),
		drop:          binding("drop", km.Drop),
		cancelDrag:    binding("cancel drag", km.CancelDrag),
		createColumn:  binding("new column", km.CreateColumn),
		deleteColumn:  binding("delete column", km.DeleteColumn),
		prevColumn:    binding("column left", km.PrevColumn, dnd.KeyLeft),
		nextColumn:    binding("column right", km.NextColumn, dnd.KeyRight),
		prevCard:      binding("card up", km.PrevCard, dnd.KeyUp),
		nextCard:      binding("card down", km.NextCard, dnd.KeyDown),
		focusNext:     binding("focus card/open", km.FocusNext),
		toggleDetails: binding("details", km.ToggleDetails),
		showHelp:      binding("toggle help", km.ShowHelp),
		quit:          binding("quit", km.Quit, "ctrl+c"),
	}
}

// binding creates a key binding whose help shows every key joined by "/"
func binding(desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(strings.Join(keys, "/"), desc))
}

// activationKeys are the keys that pick up and drop a draggable
func (k keyMap) activationKeys() []string {
	return append(k.pickUp.Keys(), k.drop.Keys()...)
}

// direction maps a navigation key to the arrow the keyboard sensor expects
func (k keyMap) direction(msg string) (string, bool) {
	switch {
	case matchesKey(msg, k.prevCard):
		return dnd.KeyUp, true
	case matchesKey(msg, k.nextCard):
		return dnd.KeyDown, true
	case matchesKey(msg, k.prevColumn):
		return dnd.KeyLeft, true
	case matchesKey(msg, k.nextColumn):
		return dnd.KeyRight, true
	}
	return "", false
}

// matchesKey reports whether a key string is bound to b
func matchesKey(s string, b key.Binding) bool {
	for _, k := range b.Keys() {
		if k == s {
			return true
		}
	}
	return false
}

// ShortHelp returns the bindings shown in the footer
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.addCard, k.pickUp, k.drop, k.cancelDrag, k.createColumn, k.showHelp, k.quit,
	}
}

// FullHelp returns the bindings shown on the help screen
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.prevColumn, k.nextColumn, k.prevCard, k.nextCard, k.focusNext},
		{k.pickUp, k.drop, k.cancelDrag, k.moveCardLeft, k.moveCardRight},
		{k.addCard, k.deleteCard, k.createColumn, k.deleteColumn},
		{k.toggleDetails, k.showHelp, k.quit},
	}
}
