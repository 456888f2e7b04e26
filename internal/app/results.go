package app

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/holoterm/holoterm/internal/command"
)

// kindTag maps a result kind to its tview color tag.
func kindTag(kind command.Kind) string {
	switch kind {
	case command.KindSuccess:
		return "green"
	case command.KindError:
		return "red"
	case command.KindWarning:
		return "yellow"
	case command.KindAscii:
		return "aqua"
	case command.KindMath:
		return "fuchsia"
	default:
		return "white"
	}
}

// applyResult writes the result to the scrollback and applies its side
// effects. Must run on the tview event loop.
func (a *App) applyResult(res command.Result) {
	if res.ClearScreen {
		a.output.Clear()
	}

	a.writeLines(res.Kind, res.Output)

	if res.ExitHologram {
		a.hideHologram()
	}

	a.mu.Lock()
	powerUps := a.cfg.UI.PowerUps
	sound := a.cfg.UI.Sound
	a.mu.Unlock()

	if res.PowerUp != nil && powerUps {
		_, _, width, _ := a.output.GetInnerRect()
		a.banner.Show(res.PowerUp.Type, res.PowerUp.Message, width)
		if sound && a.screen != nil {
			a.screen.Beep()
		}
	}

	if res.Upload != command.UploadNone {
		// The terminal build has no OS file picker; the converter is
		// fed by dragging a file path onto the prompt instead.
		a.statusBar.Info(fmt.Sprintf("Drop an %s file path onto the prompt to convert it", res.Upload))
	}
}

// echo mirrors the submitted line into the scrollback, prompt
// included, the way a shell does.
func (a *App) echo(line string) {
	a.mu.Lock()
	prompt := a.cfg.UI.Prompt
	a.mu.Unlock()

	fmt.Fprintf(a.output, "[gray]%s[-]%s\n", tview.Escape(prompt), tview.Escape(line))
	a.output.ScrollToEnd()
}

// writeLines appends output lines in the kind's color. Lines are
// escaped so ASCII art brackets cannot leak in as color tags.
func (a *App) writeLines(kind command.Kind, lines []string) {
	if len(lines) == 0 {
		return
	}
	tag := kindTag(kind)
	for _, line := range lines {
		fmt.Fprintf(a.output, "[%s]%s[-]\n", tag, tview.Escape(line))
	}
	a.output.ScrollToEnd()
}
