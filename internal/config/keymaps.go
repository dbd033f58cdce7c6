package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Cards
	AddCard       string `yaml:"add_card"`
	DeleteCard    string `yaml:"delete_card"`
	MoveCardLeft  string `yaml:"move_card_left"`
	MoveCardRight string `yaml:"move_card_right"`

	// Dragging
	PickUp     string `yaml:"pick_up"`
	Drop       string `yaml:"drop"`
	CancelDrag string `yaml:"cancel_drag"`

	// Columns
	CreateColumn string `yaml:"create_column"`
	DeleteColumn string `yaml:"delete_column"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`
	FocusNext  string `yaml:"focus_next"`

	// Other
	ToggleDetails string `yaml:"toggle_details"`
	ShowHelp      string `yaml:"show_help"`
	Quit          string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Cards
		AddCard:       "a",
		DeleteCard:    "d",
		MoveCardLeft:  "H",
		MoveCardRight: "L",

		// Dragging
		PickUp:     "space",
		Drop:       "enter",
		CancelDrag: "esc",

		// Columns
		CreateColumn: "C",
		DeleteColumn: "X",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",
		FocusNext:  "tab",

		// Other
		ToggleDetails: "v",
		ShowHelp:      "?",
		Quit:          "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	for _, pair := range []struct {
		dst *string
		src string
	}{
		{&k.AddCard, defaults.AddCard},
		{&k.DeleteCard, defaults.DeleteCard},
		{&k.MoveCardLeft, defaults.MoveCardLeft},
		{&k.MoveCardRight, defaults.MoveCardRight},
		{&k.PickUp, defaults.PickUp},
		{&k.Drop, defaults.Drop},
		{&k.CancelDrag, defaults.CancelDrag},
		{&k.CreateColumn, defaults.CreateColumn},
		{&k.DeleteColumn, defaults.DeleteColumn},
		{&k.PrevColumn, defaults.PrevColumn},
		{&k.NextColumn, defaults.NextColumn},
		{&k.PrevCard, defaults.PrevCard},
		{&k.NextCard, defaults.NextCard},
		{&k.FocusNext, defaults.FocusNext},
		{&k.ToggleDetails, defaults.ToggleDetails},
		{&k.ShowHelp, defaults.ShowHelp},
		{&k.Quit, defaults.Quit},
	} {
		if *pair.dst == "" {
			*pair.dst = pair.src
		}
	}
}
