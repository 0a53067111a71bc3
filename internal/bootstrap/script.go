package bootstrap

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/bnema/linkpeek/internal/application/port"
)

// Step actions understood by a Session.
const (
	ActionMove       = "move"
	ActionOver       = "over"
	ActionKeyDown    = "key_down"
	ActionKeyUp      = "key_up"
	ActionWait       = "wait"
	ActionOpenWindow = "open_window"
	ActionEdit       = "edit"
)

// Script is a recorded sequence of host input, replayed against a session.
//
//	[[step]]
//	action = "over"
//	selector = "a.external-link"
//
//	[[step]]
//	action = "wait"
//	duration = "600ms"
type Script struct {
	Steps []Step `toml:"step"`
}

// Step is one scripted input. Which fields apply depends on Action.
type Step struct {
	Action string `toml:"action"`
	// Window targets a window id. Empty means the main window.
	Window string `toml:"window,omitempty"`
	// Selector picks the element whose center the pointer moves to.
	Selector string `toml:"selector,omitempty"`
	// X and Y are viewport coordinates, used when Selector is empty.
	X float64 `toml:"x,omitempty"`
	Y float64 `toml:"y,omitempty"`
	// Key is a KeyboardEvent.key value or a modifier name.
	Key string `toml:"key,omitempty"`
	// Modifiers held during the input: ctrl, meta, alt, shift.
	Modifiers []string `toml:"modifiers,omitempty"`
	// Duration is a Go duration string for wait steps.
	Duration string `toml:"duration,omitempty"`
	// Text is the new markdown for edit and open_window steps.
	Text string `toml:"text,omitempty"`
}

// LoadScript reads and validates a TOML script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes and validates a TOML script. Unknown keys are rejected.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("parse script: %s", strict.String())
		}
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every step and reports all problems at once.
func (s *Script) Validate() error {
	var problems []string
	for i := range s.Steps {
		if err := s.Steps[i].validate(); err != nil {
			problems = append(problems, fmt.Sprintf("step %d: %v", i+1, err))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("script validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

func (st *Step) validate() error {
	if _, err := parseModifiers(st.Modifiers); err != nil {
		return err
	}
	switch st.Action {
	case ActionMove, ActionOver:
		return nil
	case ActionKeyDown, ActionKeyUp:
		if st.Key == "" {
			return errors.New("key is required")
		}
	case ActionWait:
		if _, err := st.WaitDuration(); err != nil {
			return err
		}
	case ActionOpenWindow:
		if st.Window == "" {
			return errors.New("window is required")
		}
	case ActionEdit:
	case "":
		return errors.New("action is required")
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// WaitDuration parses Duration.
func (st *Step) WaitDuration() (time.Duration, error) {
	d, err := time.ParseDuration(st.Duration)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", st.Duration, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("duration %q is negative", st.Duration)
	}
	return d, nil
}

// Describe renders the step for traces.
func (st *Step) Describe() string {
	target := ""
	switch {
	case st.Selector != "":
		target = st.Selector
	case st.Action == ActionMove || st.Action == ActionOver:
		target = fmt.Sprintf("(%g,%g)", st.X, st.Y)
	}

	var parts []string
	switch st.Action {
	case ActionWait:
		parts = append(parts, st.Duration)
	case ActionKeyDown, ActionKeyUp:
		parts = append(parts, st.Key)
	case ActionEdit:
		parts = append(parts, fmt.Sprintf("%d bytes", len(st.Text)))
	}
	if target != "" {
		parts = append(parts, target)
	}
	if len(st.Modifiers) > 0 {
		parts = append(parts, "+"+strings.Join(st.Modifiers, "+"))
	}
	if st.Window != "" {
		parts = append(parts, "@"+st.Window)
	}
	return strings.Join(parts, " ")
}

func parseModifiers(names []string) (port.Modifiers, error) {
	var m port.Modifiers
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "ctrl", "control":
			m.Ctrl = true
		case "meta", "cmd", "super":
			m.Meta = true
		case "alt", "option":
			m.Alt = true
		case "shift":
			m.Shift = true
		default:
			return port.Modifiers{}, fmt.Errorf("unknown modifier %q", name)
		}
	}
	return m, nil
}

// domKey maps modifier names to KeyboardEvent.key values and passes other
// keys through unchanged.
func domKey(key string) string {
	switch strings.ToLower(key) {
	case "ctrl", "control":
		return "Control"
	case "meta", "cmd", "super":
		return "Meta"
	case "alt", "option":
		return "Alt"
	case "shift":
		return "Shift"
	case "esc", "escape":
		return "Escape"
	}
	return key
}
