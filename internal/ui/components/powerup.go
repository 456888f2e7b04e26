package components

import (
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

// powerUpIcons maps power-up types to their banner glyphs.
var powerUpIcons = map[string]string{
	"star":     "★",
	"mushroom": "🍄",
}

// dismissAfter is how long a banner stays up before auto-dismissing.
const dismissAfter = 3 * time.Second

// PowerUpBanner is the celebratory notification strip shown across the
// top of the terminal. It auto-dismisses; the command layer only
// requests it.
type PowerUpBanner struct {
	*tview.TextView
	mu      sync.Mutex
	shownAt time.Time
	redraw  func()
}

// NewPowerUpBanner creates the banner. redraw is invoked (on the
// banner's own goroutine) whenever visibility changes so the host can
// schedule a frame.
func NewPowerUpBanner(redraw func()) *PowerUpBanner {
	b := &PowerUpBanner{
		TextView: tview.NewTextView(),
		redraw:   redraw,
	}
	b.TextView.
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	return b
}

// Show displays the banner for the power-up and schedules its
// dismissal.
func (b *PowerUpBanner) Show(typ, message string, width int) {
	icon, ok := powerUpIcons[typ]
	if !ok {
		icon = "✦"
	}

	line := icon + " " + message + " " + icon
	b.mu.Lock()
	b.shownAt = time.Now()
	b.SetText("[yellow::b]" + pad(line, width) + "[-::-]")
	b.mu.Unlock()

	if b.redraw != nil {
		b.redraw()
	}

	go func() {
		time.Sleep(dismissAfter)
		b.mu.Lock()
		expired := time.Since(b.shownAt) >= dismissAfter
		if expired {
			b.SetText("")
		}
		b.mu.Unlock()
		if expired && b.redraw != nil {
			b.redraw()
		}
	}()
}

// Visible reports whether a banner is currently displayed.
func (b *PowerUpBanner) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.GetText(false) != ""
}

// pad centers line in width cells, runewidth-aware so emoji icons do
// not skew the centering.
func pad(line string, width int) string {
	lw := runewidth.StringWidth(line)
	if width <= lw {
		return line
	}
	left := (width - lw) / 2
	return strings.Repeat(" ", left) + line
}
