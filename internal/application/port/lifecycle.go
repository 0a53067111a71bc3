package port

import "context"

// Lifecycle is implemented by extensions loaded by the host.
type Lifecycle interface {
	OnLoad(ctx context.Context) error
	OnUnload(ctx context.Context)
}

// DropdownOption is one entry of a settings dropdown.
type DropdownOption struct {
	Value string
	Label string
}

// SettingsUI is the host's primitive settings widget toolkit.
type SettingsUI interface {
	Heading(text string)
	Toggle(name, desc string, value bool, onChange func(bool) error)
	Dropdown(name, desc string, options []DropdownOption, value string, onChange func(string) error)
	Text(name, desc, placeholder, value string, onChange func(string) error)
}

// SettingsPage is a settings tab contributed by an extension.
type SettingsPage interface {
	ID() string
	Title() string
	// Display renders the page with the given widget toolkit.
	Display(ui SettingsUI)
}
