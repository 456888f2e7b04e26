package command

import (
	"context"

	"github.com/holoterm/holoterm/internal/logging"
)

// Handler is the per-command function producing a Result from parsed
// arguments. Handlers never raise for expected bad input; they return
// an error-kind Result instead.
type Handler func(ctx context.Context, req Request) Result

// Request carries everything a handler may consume.
type Request struct {
	Args    []string
	Flags   Flags
	Session Session
}

// Def defines a command with metadata for help output.
type Def struct {
	Name        string
	Usage       string
	Description string
	Handler     Handler
}

// Dispatcher validates parsed commands against the fixed registry and
// routes them to handlers.
type Dispatcher struct {
	registry map[string]Def
	order    []string
	comp     Computation
	search   Searcher
	logger   *logging.Logger
}

// NewDispatcher builds the dispatcher with its closed command set.
// Either collaborator may be nil; the corresponding commands then fall
// back (solve) or report the service as unavailable (search).
func NewDispatcher(comp Computation, search Searcher) *Dispatcher {
	d := &Dispatcher{
		registry: map[string]Def{},
		comp:     comp,
		search:   search,
		logger:   logging.WithField("component", "dispatcher"),
	}

	d.register(Def{"help", "help [command]", "Show command summary or per-command help", d.cmdHelp})
	d.register(Def{"draw", "draw <name> [--list|-l]", "Render ASCII art by name", d.cmdDraw})
	d.register(Def{"upload", "upload <image|video>", "Open a file picker for media-to-art conversion", d.cmdUpload})
	d.register(Def{"hologram", "hologram <type> [text...]", "Enter 3D mode with the given shape and caption", d.cmdHologram})
	d.register(Def{"solve", "solve <expression...>", "Evaluate a math expression", d.cmdSolve})
	d.register(Def{"physics", "physics [formula] [args...]", "Compute a physics formula, or list them", d.cmdPhysics})
	d.register(Def{"chemistry", "chemistry <element|molar> <value>", "Periodic table lookup or molar mass", d.cmdChemistry})
	d.register(Def{"search", "search <query...>", "Ask the search service", d.cmdSearch})
	d.register(Def{"clear", "clear", "Clear the terminal", d.cmdClear})
	d.register(Def{"exit", "exit", "Leave hologram mode", d.cmdExit})
	d.register(Def{"about", "about", "About this terminal", d.cmdAbout})
	d.register(Def{"version", "version", "Show version information", d.cmdVersion})

	return d
}

func (d *Dispatcher) register(def Def) {
	d.registry[def.Name] = def
	d.order = append(d.order, def.Name)
}

// Commands returns the registered definitions in registration order.
func (d *Dispatcher) Commands() []Def {
	defs := make([]Def, 0, len(d.order))
	for _, name := range d.order {
		defs = append(defs, d.registry[name])
	}
	return defs
}

// Execute routes one parsed command to its handler and returns the
// uniform Result. Blank input is a neutral no-op; an unknown name is a
// normal error result, not a fault. The dispatcher itself never panics
// past this boundary.
func (d *Dispatcher) Execute(ctx context.Context, parsed Parsed, session Session) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error().Interface("panic", r).Str("command", parsed.Name).
				Msg("Handler panicked")
			res = Errorf("internal error running %q", parsed.Name)
		}
	}()

	if parsed.Name == "" {
		return Result{Success: true, Kind: KindInfo}
	}

	def, ok := d.registry[parsed.Name]
	if !ok {
		d.logger.Debug().Str("command", parsed.Name).Msg("Unknown command")
		return Errorf("Unknown command: %s. Type 'help' for available commands.", parsed.Name)
	}

	d.logger.Debug().Str("command", parsed.Name).Str("raw", parsed.Raw).Msg("Executing command")

	return def.Handler(ctx, Request{
		Args:    parsed.Args,
		Flags:   parsed.Flags,
		Session: session,
	})
}
