package track

import (
	"context"
	"log/slog"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"subtag/internal/logging"
	"subtag/internal/override"
)

// Options configures CompileAll.
type Options struct {
	// Workers bounds concurrent cue compilation; <= 0 uses GOMAXPROCS.
	Workers int
	// DefaultStyle names the style used when a cue's style is unknown.
	DefaultStyle string
	// OutlineThickness is applied to styles that do not set one.
	OutlineThickness float64
	// PlayResX and PlayResY replace a missing script resolution.
	PlayResX int
	PlayResY int
	Logger   *slog.Logger
}

// Summary describes a finished compilation.
type Summary struct {
	Cues          int
	Animated      int
	Positioned    int
	UnknownStyles []string
}

// CompileAll compiles every cue of doc and returns a new document; doc is not
// modified. Cue order is preserved.
func CompileAll(ctx context.Context, doc *Document, compiler *override.Compiler, opts Options) (*Document, Summary, error) {
	logger := logging.NewComponentLogger(logging.WithContext(ctx, opts.Logger), "track")

	info := doc.ScriptInfo
	if info.PlayResX <= 0 {
		info.PlayResX = opts.PlayResX
	}
	if info.PlayResY <= 0 {
		info.PlayResY = opts.PlayResY
	}
	styles := NewStyles(doc.Styles, opts.DefaultStyle, opts.OutlineThickness)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := &Document{
		ScriptInfo: info,
		Styles:     slices.Clone(doc.Styles),
		Cues:       make([]override.Cue, len(doc.Cues)),
	}
	unknown := make([]string, len(doc.Cues))

	if len(doc.Cues) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(min(workers, len(doc.Cues)))
		for i, cue := range doc.Cues {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				style, found := styles.Lookup(cue.Style)
				if !found && cue.Style != "" {
					unknown[i] = cue.Style
				}
				// Each goroutine owns index i.
				out.Cues[i] = compiler.Compile(cue, style, info)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, Summary{}, err
		}
	}

	summary := Summary{Cues: len(out.Cues)}
	for _, cue := range out.Cues {
		if cue.HasAnimation {
			summary.Animated++
		}
		if cue.Position != nil {
			summary.Positioned++
		}
	}
	for _, name := range unknown {
		if name != "" && !slices.Contains(summary.UnknownStyles, name) {
			summary.UnknownStyles = append(summary.UnknownStyles, name)
		}
	}
	if len(summary.UnknownStyles) > 0 {
		logging.WarnWithContext(logger, "cues reference unknown styles", "unknown_style",
			logging.Any("styles", summary.UnknownStyles),
			logging.String("fallback", styles.Fallback().Name),
			logging.String(logging.FieldImpact, "cues rendered with the fallback style"),
			logging.String(logging.FieldErrorHint, "add the styles to the track or fix the cue style names"),
		)
	}
	logger.Info("track compiled",
		logging.Int("cues", summary.Cues),
		logging.Int("animated", summary.Animated),
		logging.Int("workers", workers),
	)
	return out, summary, nil
}
