package command

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/holoterm/holoterm/internal/art"
	"github.com/holoterm/holoterm/internal/chemistry"
	"github.com/holoterm/holoterm/internal/errors"
	"github.com/holoterm/holoterm/internal/holo"
	"github.com/holoterm/holoterm/internal/mathexpr"
	"github.com/holoterm/holoterm/internal/physics"
	"github.com/holoterm/holoterm/internal/version"
)

var titleCaser = cases.Title(language.English)

func (d *Dispatcher) cmdHelp(_ context.Context, req Request) Result {
	if len(req.Args) > 0 {
		topic := strings.ToLower(req.Args[0])
		def, ok := d.registry[topic]
		if !ok {
			return Infof("No help available for %q.", topic)
		}
		return Info(
			titleCaser.String(def.Name),
			"  "+def.Description,
			"  Usage: "+def.Usage,
		)
	}

	lines := []string{"Available commands:"}
	for _, def := range d.Commands() {
		lines = append(lines, fmt.Sprintf("  %-10s %s", def.Name, def.Description))
	}
	lines = append(lines, "", "Type 'help <command>' for details.")
	return Info(lines...)
}

func (d *Dispatcher) cmdDraw(_ context.Context, req Request) Result {
	if req.Flags.Has("list") || req.Flags.Has("l") {
		return Info("Available art: " + strings.Join(art.Names(), ", "))
	}

	if len(req.Args) == 0 {
		return FromError(errors.Usage("draw <name> [--list|-l]"))
	}

	name := req.Args[0]
	body, ok := art.Lookup(name)
	if !ok {
		return Errorf("Unknown art %q. Try one of: %s", name, sample(art.Names(), 8))
	}

	res := Ascii(body)
	res.PowerUp = &PowerUp{Type: "star", Message: "Art unlocked: " + strings.ToLower(name)}
	return res
}

func (d *Dispatcher) cmdUpload(_ context.Context, req Request) Result {
	if len(req.Args) == 0 {
		return FromError(errors.Usage("upload <image|video>"))
	}

	switch strings.ToLower(req.Args[0]) {
	case "image":
		res := OK("Opening image picker...")
		res.Upload = UploadImage
		return res
	case "video":
		res := OK("Opening video picker...")
		res.Upload = UploadVideo
		return res
	default:
		return FromError(errors.Usagef("upload <image|video> (got %q)", req.Args[0]))
	}
}

func (d *Dispatcher) cmdHologram(_ context.Context, req Request) Result {
	if len(req.Args) == 0 {
		return FromError(errors.Usage("hologram <type> [text...]"))
	}

	shape := strings.ToLower(req.Args[0])
	if !holo.Known(shape) {
		return Errorf("Unknown hologram type %q. Valid types: %s",
			shape, strings.Join(holo.Types(), ", "))
	}

	text := strings.Join(req.Args[1:], " ")
	if req.Session != nil {
		// Sync state flip: the host must already be in 3D mode when the
		// next frame renders.
		req.Session.ShowHologram(holo.Spec{Type: shape, Text: text})
	}

	res := OK("Entering hologram mode: " + shape)
	res.PowerUp = &PowerUp{Type: "mushroom", Message: "Hologram projected!"}
	return res
}

func (d *Dispatcher) cmdSolve(ctx context.Context, req Request) Result {
	expr := strings.Join(req.Args, " ")
	if strings.TrimSpace(expr) == "" {
		return FromError(errors.Usage("solve <expression>"))
	}

	if d.comp != nil {
		answer, err := d.comp.Evaluate(ctx, expr)
		if err == nil {
			return Math(answer)
		}
		d.logger.Debug().Err(err).Msg("Computation engine failed, using local evaluator")
	}

	v, err := mathexpr.Eval(expr)
	if err != nil {
		return FromError(err)
	}
	return Math(mathexpr.Format(v))
}

func (d *Dispatcher) cmdPhysics(_ context.Context, req Request) Result {
	if len(req.Args) == 0 {
		return Info(physics.Directory()...)
	}

	lines, err := physics.Compute(strings.ToLower(req.Args[0]), req.Args[1:])
	if err != nil {
		return FromError(err)
	}
	return Result{Success: true, Kind: KindMath, Output: lines}
}

func (d *Dispatcher) cmdChemistry(_ context.Context, req Request) Result {
	if len(req.Args) < 2 {
		return FromError(errors.Usage("chemistry <element|molar> <value>"))
	}

	switch strings.ToLower(req.Args[0]) {
	case "element":
		e, ok := chemistry.Lookup(req.Args[1])
		if !ok {
			return Errorf("Unknown element symbol %q.", req.Args[1])
		}
		return Info(
			fmt.Sprintf("%s (%s)", e.Name, e.Symbol),
			fmt.Sprintf("  Atomic number: %d", e.AtomicNumber),
			fmt.Sprintf("  Atomic mass:   %.3f u", e.AtomicMass),
			fmt.Sprintf("  Category:      %s", titleCaser.String(e.Category)),
		)

	case "molar":
		mass, err := chemistry.MolarMass(req.Args[1])
		if err != nil {
			return FromError(err)
		}
		return Math(fmt.Sprintf("Molar mass of %s: %.3f g/mol", req.Args[1], mass))

	default:
		return FromError(errors.Usagef("chemistry <element|molar> <value> (got %q)", req.Args[0]))
	}
}

func (d *Dispatcher) cmdSearch(ctx context.Context, req Request) Result {
	query := strings.TrimSpace(strings.Join(req.Args, " "))
	if query == "" {
		return FromError(errors.Usage("search <query>"))
	}

	if d.search == nil {
		return FromError(errors.Collaboratorf("search", "search service is not configured"))
	}

	resp, err := d.search.Search(ctx, query)
	if err != nil {
		d.logger.Warn().Err(err).Str("query", query).Msg("Search failed")
		return FromError(errors.Collaborator("search", err))
	}

	var lines []string
	lines = append(lines, resp.Answer...)
	if len(resp.Art) > 0 {
		lines = append(lines, "")
		lines = append(lines, resp.Art...)
	}
	if len(resp.Sources) > 0 {
		lines = append(lines, "", "Sources: "+strings.Join(resp.Sources, ", "))
	}
	if len(lines) == 0 {
		lines = []string{"No results."}
	}
	return Info(lines...)
}

func (d *Dispatcher) cmdClear(_ context.Context, _ Request) Result {
	return Result{Success: true, Kind: KindInfo, ClearScreen: true}
}

func (d *Dispatcher) cmdExit(_ context.Context, _ Request) Result {
	return Result{
		Success:      true,
		Kind:         KindInfo,
		Output:       []string{"Returning to terminal."},
		ExitHologram: true,
	}
}

func (d *Dispatcher) cmdAbout(_ context.Context, _ Request) Result {
	return Info(
		"holoterm - a novelty terminal",
		"ASCII art, holographic shapes, and questionable physics.",
		"Type 'help' to see what it can do.",
	)
}

func (d *Dispatcher) cmdVersion(_ context.Context, _ Request) Result {
	info := version.Get()
	return Infof("holoterm %s", info.String())
}

// sample joins up to n entries for "did you mean" style listings.
func sample(names []string, n int) string {
	if len(names) > n {
		names = names[:n]
	}
	return strings.Join(names, ", ")
}
