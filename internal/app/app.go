// Package app hosts the holoterm terminal surface: the scrollback,
// the prompt, the status bar, the power-up banner, and the hologram
// page, wired to the command pipeline.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/holoterm/holoterm/internal/command"
	"github.com/holoterm/holoterm/internal/config"
	"github.com/holoterm/holoterm/internal/errors"
	"github.com/holoterm/holoterm/internal/holo"
	"github.com/holoterm/holoterm/internal/logging"
	"github.com/holoterm/holoterm/internal/ui/components"
	"github.com/holoterm/holoterm/internal/version"
)

const (
	mainPage = "main"
	holoPage = "holo"
)

// App is the running holoterm session.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc
	logger *logging.Logger

	dispatcher *command.Dispatcher
	queue      *command.Queue

	// UI components
	app       *tview.Application
	pages     *tview.Pages
	banner    *components.PowerUpBanner
	output    *tview.TextView
	input     *tview.InputField
	statusBar *components.StatusBar
	holoView  *tview.TextView

	// screen is captured on the first draw so power-ups can beep.
	screen tcell.Screen

	mu        sync.Mutex
	cfg       *config.Config
	renderer  *holo.Renderer
	holoStart time.Time
	history   []string
	histIdx   int
	draft     string

	frameTicker *time.Ticker
	isRunning   bool
}

// New creates a holoterm session. Either collaborator may be nil; the
// affected commands degrade as the dispatcher documents.
func New(ctx context.Context, cfg *config.Config, comp command.Computation, search command.Searcher) (*App, error) {
	return NewWithScreen(ctx, cfg, comp, search, nil)
}

// NewWithScreen creates a session with an explicit screen, used by
// tests with a tcell simulation screen.
func NewWithScreen(ctx context.Context, cfg *config.Config, comp command.Computation, search command.Searcher, screen tcell.Screen) (*App, error) {
	if cfg == nil {
		return nil, errors.Config("config is required")
	}

	appCtx, cancel := context.WithCancel(ctx)

	tapp := tview.NewApplication()
	if screen != nil {
		tapp.SetScreen(screen)
	}

	a := &App{
		ctx:        appCtx,
		cancel:     cancel,
		logger:     logging.WithField("component", "app"),
		cfg:        cfg,
		dispatcher: command.NewDispatcher(comp, search),
		app:        tapp,
		pages:      tview.NewPages(),
	}

	a.queue = command.NewQueue(appCtx, a.dispatcher, a, a.onResult)

	a.initUI()
	a.setupKeyboard()

	return a, nil
}

func (a *App) initUI() {
	a.banner = components.NewPowerUpBanner(func() { a.app.Draw() })

	a.output = tview.NewTextView()
	a.output.
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)

	a.statusBar = components.NewStatusBar()
	a.statusBar.SetHints([]string{
		"[yellow]Enter[-] run",
		"[yellow]↑/↓[-] history",
		"[yellow]Esc[-] leave hologram",
		"[yellow]Ctrl-L[-] clear",
		"[yellow]Ctrl-C[-] quit",
	})

	a.input = tview.NewInputField()
	a.input.
		SetLabel(a.cfg.UI.Prompt).
		SetFieldBackgroundColor(tcell.ColorDefault).
		SetDoneFunc(a.onInputDone)

	mainLayout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.banner, 1, 0, false).
		AddItem(a.output, 0, 1, false).
		AddItem(a.input, 1, 0, true).
		AddItem(a.statusBar, 1, 0, false)

	a.holoView = tview.NewTextView()
	a.holoView.SetDynamicColors(true)

	a.pages.AddPage(mainPage, mainLayout, true, true)
	a.pages.AddPage(holoPage, a.holoView, true, false)

	a.writeLines(command.KindInfo, []string{
		"holoterm " + version.Get().String(),
		"Type 'help' for available commands.",
		"",
	})
}

func (a *App) setupKeyboard() {
	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			if a.inHologram() {
				a.hideHologram()
				return nil
			}
		case tcell.KeyCtrlL:
			a.output.Clear()
			return nil
		case tcell.KeyUp:
			if a.historyPrev() {
				return nil
			}
		case tcell.KeyDown:
			if a.historyNext() {
				return nil
			}
		case tcell.KeyPgUp, tcell.KeyPgDn:
			// Let the scrollback handle paging even while the prompt
			// holds focus.
			a.output.InputHandler()(event, nil)
			return nil
		}
		return event
	})

	// The screen is not exposed by tview; capture it for Beep.
	a.app.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		a.screen = screen
		return false
	})
}

// Run blocks until Stop is called or the user quits.
func (a *App) Run() error {
	a.mu.Lock()
	a.isRunning = true
	interval := a.cfg.FrameInterval()
	mouse := a.cfg.UI.Mouse
	a.mu.Unlock()

	a.frameTicker = time.NewTicker(interval)
	go a.animate()

	a.app.EnableMouse(mouse)
	a.app.SetRoot(a.pages, true)

	return a.app.Run()
}

// Stop ends the session and waits for the in-flight command.
func (a *App) Stop() {
	a.mu.Lock()
	running := a.isRunning
	a.isRunning = false
	a.mu.Unlock()
	if !running {
		return
	}

	if a.frameTicker != nil {
		a.frameTicker.Stop()
	}
	a.cancel()
	a.queue.Close()
	a.app.Stop()
}

// ApplyConfig swaps in a freshly loaded configuration. Called from the
// config watcher goroutine.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.mu.Lock()
	a.cfg = cfg
	if a.frameTicker != nil {
		a.frameTicker.Reset(cfg.FrameInterval())
	}
	a.mu.Unlock()

	a.app.QueueUpdateDraw(func() {
		a.input.SetLabel(cfg.UI.Prompt)
		a.app.EnableMouse(cfg.UI.Mouse)
		a.statusBar.Info("Configuration reloaded")
	})

	a.logger.Info().Msg("Applied configuration reload")
}

func (a *App) onInputDone(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}

	line := a.input.GetText()
	a.input.SetText("")
	a.pushHistory(line)
	a.echo(line)

	if !a.queue.Submit(line) {
		a.statusBar.Error("Too many queued commands, slow down")
	}
}

// onResult is the queue sink; it runs on the worker goroutine, so the
// UI mutation is queued onto the tview loop.
func (a *App) onResult(parsed command.Parsed, res command.Result) {
	if !res.Success {
		a.logger.Debug().Str("command", parsed.Name).Msg("Command returned error result")
	}
	a.app.QueueUpdateDraw(func() {
		a.applyResult(res)
	})
}

func (a *App) inHologram() bool {
	front, _ := a.pages.GetFrontPage()
	return front == holoPage
}
