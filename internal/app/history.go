package app

import "strings"

// pushHistory records a submitted line. Blank lines and immediate
// repeats are skipped, and the ring is capped at the configured size.
func (a *App) pushHistory(line string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	trimmed := strings.TrimSpace(line)
	if trimmed != "" && (len(a.history) == 0 || a.history[len(a.history)-1] != line) {
		a.history = append(a.history, line)
		if limit := a.cfg.History.Size; limit > 0 && len(a.history) > limit {
			a.history = a.history[len(a.history)-limit:]
		}
	}

	a.histIdx = len(a.history)
	a.draft = ""
}

// historyPrev recalls the previous line into the prompt. Returns false
// when there is nothing earlier, letting the key pass through.
func (a *App) historyPrev() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.histIdx == 0 || len(a.history) == 0 {
		return false
	}
	if a.histIdx == len(a.history) {
		a.draft = a.input.GetText()
	}
	a.histIdx--
	a.input.SetText(a.history[a.histIdx])
	return true
}

// historyNext walks back toward the in-progress draft.
func (a *App) historyNext() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.histIdx >= len(a.history) {
		return false
	}
	a.histIdx++
	if a.histIdx == len(a.history) {
		a.input.SetText(a.draft)
	} else {
		a.input.SetText(a.history[a.histIdx])
	}
	return true
}
