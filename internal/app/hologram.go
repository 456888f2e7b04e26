package app

import (
	"strings"
	"time"

	"github.com/rivo/tview"

	"github.com/holoterm/holoterm/internal/holo"
)

// ShowHologram switches the session into 3D mode. It is called from
// the command worker while `hologram` executes, so the renderer swap
// is immediate and only the page flip rides the event loop.
func (a *App) ShowHologram(spec holo.Spec) {
	a.mu.Lock()
	a.renderer = holo.NewRenderer(spec)
	a.holoStart = time.Now()
	a.mu.Unlock()

	a.logger.Info().Str("type", spec.Type).Msg("Entering hologram mode")

	a.app.QueueUpdateDraw(func() {
		a.pages.SwitchToPage(holoPage)
	})
}

// hideHologram returns to the terminal page. Must run on the tview
// event loop.
func (a *App) hideHologram() {
	a.mu.Lock()
	a.renderer = nil
	a.mu.Unlock()

	a.pages.SwitchToPage(mainPage)
	a.app.SetFocus(a.input)
}

// animate drives the hologram frames off the ticker until the session
// context ends.
func (a *App) animate() {
	for {
		select {
		case <-a.frameTicker.C:
			a.mu.Lock()
			renderer := a.renderer
			start := a.holoStart
			a.mu.Unlock()
			if renderer == nil {
				continue
			}

			t := time.Since(start).Seconds()
			a.app.QueueUpdateDraw(func() {
				if !a.inHologram() {
					return
				}
				_, _, w, h := a.holoView.GetInnerRect()
				if w <= 0 || h <= 0 {
					return
				}
				frame := renderer.Frame(t, w, h)
				a.holoView.SetText("[aqua]" + tview.Escape(strings.Join(frame, "\n")) + "[-]")
			})

		case <-a.ctx.Done():
			return
		}
	}
}
