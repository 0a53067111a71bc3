package host

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/linkpeek/internal/application/port"
)

// WidgetKind identifies a recorded settings widget.
type WidgetKind string

const (
	WidgetHeading  WidgetKind = "heading"
	WidgetToggle   WidgetKind = "toggle"
	WidgetDropdown WidgetKind = "dropdown"
	WidgetText     WidgetKind = "text"
)

// Widget is one control rendered by a settings page.
type Widget struct {
	Kind        WidgetKind
	Name        string
	Desc        string
	Placeholder string
	Value       string
	Options     []port.DropdownOption

	onToggle func(bool) error
	onString func(string) error
}

// SettingsRecorder is a SettingsUI that records widgets so they can be
// listed and changed programmatically.
type SettingsRecorder struct {
	widgets []*Widget
}

var _ port.SettingsUI = (*SettingsRecorder)(nil)

// NewSettingsRecorder creates an empty recorder.
func NewSettingsRecorder() *SettingsRecorder {
	return &SettingsRecorder{}
}

// Render clears the recorded widgets and displays page again.
func (r *SettingsRecorder) Render(page port.SettingsPage) {
	r.widgets = nil
	page.Display(r)
}

func (r *SettingsRecorder) Heading(text string) {
	r.widgets = append(r.widgets, &Widget{Kind: WidgetHeading, Name: text})
}

func (r *SettingsRecorder) Toggle(name, desc string, value bool, onChange func(bool) error) {
	r.widgets = append(r.widgets, &Widget{
		Kind:     WidgetToggle,
		Name:     name,
		Desc:     desc,
		Value:    strconv.FormatBool(value),
		onToggle: onChange,
	})
}

func (r *SettingsRecorder) Dropdown(name, desc string, options []port.DropdownOption, value string, onChange func(string) error) {
	r.widgets = append(r.widgets, &Widget{
		Kind:     WidgetDropdown,
		Name:     name,
		Desc:     desc,
		Value:    value,
		Options:  options,
		onString: onChange,
	})
}

func (r *SettingsRecorder) Text(name, desc, placeholder, value string, onChange func(string) error) {
	r.widgets = append(r.widgets, &Widget{
		Kind:        WidgetText,
		Name:        name,
		Desc:        desc,
		Placeholder: placeholder,
		Value:       value,
		onString:    onChange,
	})
}

// Widgets returns the recorded widgets in render order.
func (r *SettingsRecorder) Widgets() []Widget {
	out := make([]Widget, 0, len(r.widgets))
	for _, w := range r.widgets {
		out = append(out, *w)
	}
	return out
}

// Widget finds a control by name, case-insensitively.
func (r *SettingsRecorder) Widget(name string) (*Widget, bool) {
	for _, w := range r.widgets {
		if w.Kind != WidgetHeading && strings.EqualFold(w.Name, name) {
			return w, true
		}
	}
	return nil, false
}

// Set changes the named control as a user would and runs its handler.
// The recorded value is updated only when the handler accepts it.
func (r *SettingsRecorder) Set(name, value string) error {
	w, ok := r.Widget(name)
	if !ok {
		return fmt.Errorf("no setting named %q", name)
	}
	switch w.Kind {
	case WidgetToggle:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false: %w", w.Name, err)
		}
		if w.onToggle != nil {
			if err := w.onToggle(b); err != nil {
				return err
			}
		}
		w.Value = strconv.FormatBool(b)
	case WidgetDropdown:
		valid := false
		for _, o := range w.Options {
			if o.Value == value {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("%s does not offer %q", w.Name, value)
		}
		fallthrough
	case WidgetText:
		if w.onString != nil {
			if err := w.onString(value); err != nil {
				return err
			}
		}
		w.Value = value
	}
	return nil
}
