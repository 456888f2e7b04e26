// Package components holds the small tview widgets shared by the
// holoterm surface.
package components

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// StatusBar displays hints and short-lived status messages under the
// prompt.
type StatusBar struct {
	*tview.TextView
	hints         []string
	message       string
	messageExpiry time.Time
	flashColor    tcell.Color
	mu            sync.RWMutex
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	s := &StatusBar{
		TextView:   tview.NewTextView(),
		flashColor: tcell.ColorDefault,
	}

	s.TextView.
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)

	return s
}

// SetHints sets the keyboard hints shown when no message is active.
func (s *StatusBar) SetHints(hints []string) {
	if len(hints) == 0 {
		return
	}
	s.mu.Lock()
	s.hints = hints
	s.mu.Unlock()
	s.updateDisplay()
}

// Flash displays a temporary colored message.
func (s *StatusBar) Flash(message string, color tcell.Color, duration time.Duration) {
	s.mu.Lock()
	s.message = message
	s.flashColor = color
	s.messageExpiry = time.Now().Add(duration)
	s.mu.Unlock()
	s.updateDisplay()

	go func() {
		time.Sleep(duration)
		s.mu.Lock()
		expired := time.Now().After(s.messageExpiry)
		if expired {
			s.message = ""
			s.flashColor = tcell.ColorDefault
		}
		s.mu.Unlock()
		if expired {
			s.updateDisplay()
		}
	}()
}

// Success displays a success message
func (s *StatusBar) Success(message string) {
	s.Flash("✓ "+message, tcell.ColorGreen, 3*time.Second)
}

// Error displays an error message
func (s *StatusBar) Error(message string) {
	s.Flash("✗ "+message, tcell.ColorRed, 5*time.Second)
}

// Info displays an info message
func (s *StatusBar) Info(message string) {
	s.Flash("ℹ "+message, tcell.ColorTeal, 3*time.Second)
}

func (s *StatusBar) updateDisplay() {
	s.mu.RLock()
	message := s.message
	expiry := s.messageExpiry
	color := s.flashColor
	hints := strings.Join(s.hints, "  ")
	s.mu.RUnlock()

	var text string
	switch {
	case message != "" && time.Now().Before(expiry):
		text = fmt.Sprintf("[%s]%s[-]", colorName(color), message)
	default:
		text = hints
	}

	if s.GetText(false) != text {
		s.SetText(text)
	}
}

func colorName(color tcell.Color) string {
	switch color {
	case tcell.ColorRed:
		return "red"
	case tcell.ColorGreen:
		return "green"
	case tcell.ColorYellow:
		return "yellow"
	case tcell.ColorTeal:
		return "teal"
	default:
		return "white"
	}
}
