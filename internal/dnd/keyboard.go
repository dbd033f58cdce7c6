package dnd

import (
	"fmt"
	"strings"
)

// FocusableSelectors matches the nested controls that keep their own
// keyboard behavior instead of starting a drag.
const FocusableSelectors = "a, button, input, textarea, select, [tabindex]"

// Default keys that pick up or drop a draggable
var DefaultActivationKeys = []string{"space", "enter"}

// Element describes a focusable part of the rendered board
type Element struct {
	Tag   string
	Attrs map[string]string
}

// NewElement creates an element with the given tag and attribute pairs
func NewElement(tag string, attrs ...string) *Element {
	el := &Element{Tag: strings.ToLower(tag), Attrs: make(map[string]string, len(attrs)/2)}
	for i := 0; i+1 < len(attrs); i += 2 {
		el.Attrs[attrs[i]] = attrs[i+1]
	}
	return el
}

// HasAttr reports whether the element carries the named attribute
func (e *Element) HasAttr(name string) bool {
	if e == nil {
		return false
	}
	_, ok := e.Attrs[name]
	return ok
}

// KeyEvent is a keydown delivered to a draggable.
// Target is the element that has focus; CurrentTarget is the element owning
// the drag handle the event bubbled to.
type KeyEvent struct {
	Key           string
	Target        *Element
	CurrentTarget *Element
}

// simpleSelector matches a tag name or an attribute presence
type simpleSelector struct {
	tag  string
	attr string
}

func (s simpleSelector) matches(el *Element) bool {
	if s.attr != "" {
		return el.HasAttr(s.attr)
	}
	return el.Tag == s.tag
}

// Selector is a comma separated list of tag and [attribute] selectors
type Selector []simpleSelector

// ParseSelector parses a selector list such as "a, button, [tabindex]"
func ParseSelector(s string) (Selector, error) {
	var sel Selector
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "":
			return nil, fmt.Errorf("%w: empty selector in %q", ErrInvalidSelector, s)
		case strings.HasPrefix(part, "[") && strings.HasSuffix(part, "]"):
			attr := strings.TrimSpace(part[1 : len(part)-1])
			if attr == "" || strings.ContainsAny(attr, "[] ") {
				return nil, fmt.Errorf("%w: %q", ErrInvalidSelector, part)
			}
			sel = append(sel, simpleSelector{attr: attr})
		case strings.ContainsAny(part, "[]#. >:"):
			return nil, fmt.Errorf("%w: unsupported selector %q", ErrInvalidSelector, part)
		default:
			sel = append(sel, simpleSelector{tag: strings.ToLower(part)})
		}
	}
	return sel, nil
}

// MustParseSelector is ParseSelector for selectors known at compile time
func MustParseSelector(s string) Selector {
	sel, err := ParseSelector(s)
	if err != nil {
		panic(err)
	}
	return sel
}

// Matches reports whether any selector in the list matches el
func (s Selector) Matches(el *Element) bool {
	if el == nil {
		return false
	}
	for _, simple := range s {
		if simple.matches(el) {
			return true
		}
	}
	return false
}

// ActivationHandler starts a keyboard drag and reports whether it did
type ActivationHandler func(ev KeyEvent) bool

// KeyboardActivator guards keyboard drag activation so nested controls
// inside a draggable keep ordinary keyboard interaction.
type KeyboardActivator struct {
	Keys      []string
	Focusable Selector
	Handler   ActivationHandler
}

// NewKeyboardActivator wraps handler with the focusable-control filter
func NewKeyboardActivator(handler ActivationHandler) KeyboardActivator {
	return KeyboardActivator{
		Keys:      DefaultActivationKeys,
		Focusable: MustParseSelector(FocusableSelectors),
		Handler:   handler,
	}
}

// IsActivationKey reports whether key picks up or drops a draggable
func (a KeyboardActivator) IsActivationKey(key string) bool {
	for _, k := range a.Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Suppressed reports whether ev targets a nested focusable control rather
// than the drag handle itself.
func (a KeyboardActivator) Suppressed(ev KeyEvent) bool {
	return ev.Target != nil && a.Focusable.Matches(ev.Target) && ev.Target != ev.CurrentTarget
}

// Activate runs the wrapped handler unless the event is not an activation
// key or is suppressed by the filter.
func (a KeyboardActivator) Activate(ev KeyEvent) bool {
	if !a.IsActivationKey(ev.Key) || a.Suppressed(ev) {
		return false
	}
	if a.Handler == nil {
		return true
	}
	return a.Handler(ev)
}
