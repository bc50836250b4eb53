// Package renderer defines the pluggable display backends for the simulator.
package renderer

import (
	"robotmaze/pkg/engine/input"
	"robotmaze/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleCell
	StyleRobot
	StyleFood
	StyleTeleport
	StyleGoal
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSubtle
)

// Renderer defines the interface for rendering backends.
// The TUI implementation blocks in GetInput; graphical backends run their
// own loop instead (see the ebitengine package).
type Renderer interface {
	// Init initializes the renderer (colors, fonts, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete frame: map, status bar, messages,
	// input prompt
	RenderFrame(s *state.Session)

	// GetInput blocks for user input and returns a high-level Intent
	GetInput() input.Intent

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete frame
func RenderFrame(s *state.Session) {
	if Current != nil {
		Current.RenderFrame(s)
	}
}

// GetInput gets user input from the current renderer
func GetInput() input.Intent {
	if Current != nil {
		return Current.GetInput()
	}
	return input.Intent{Action: input.ActionNone}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return msg
}

// ShowMessage displays a message
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
