package override

import (
	"log/slog"
	"strings"

	"subtag/internal/logging"
	"subtag/internal/stylesheet"
	"subtag/internal/tags"
)

// DefaultSurfaceHeight is the rendering surface height assumed when none is
// configured.
const DefaultSurfaceHeight = 1080

// RuleRegistry receives generated style rules. Register must be idempotent:
// registering a known class is a no-op.
type RuleRegistry interface {
	Register(class, rule string) bool
}

// Compiler turns override markup into rendering directives.
type Compiler struct {
	registry      RuleRegistry
	surfaceHeight float64
	logger        *slog.Logger
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithSurfaceHeight sets the pixel height of the rendering surface used to
// size outline glows.
func WithSurfaceHeight(height float64) Option {
	return func(c *Compiler) {
		if height > 0 {
			c.surfaceHeight = height
		}
	}
}

// WithLogger sets the compiler's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a compiler that registers generated rules in registry. A nil
// registry gets a private in-memory one.
func New(registry RuleRegistry, opts ...Option) *Compiler {
	if registry == nil {
		registry = stylesheet.NewRegistry()
	}
	c := &Compiler{
		registry:      registry,
		surfaceHeight: DefaultSurfaceHeight,
		logger:        logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.NewComponentLogger(c.logger, "override")
	return c
}

var textReplacer = strings.NewReplacer(`\h`, "&nbsp;", `\N`, "<br>", `\n`, " ")

// NormalizeText replaces hard spaces and line breaks with their markup.
func NormalizeText(text string) string {
	return textReplacer.Replace(text)
}

// Compile returns cue with its override blocks compiled. Attributes no tag
// sets keep the cue's values; a fade shortens End by its fade-out duration.
// Compile never fails: anything it cannot interpret is ignored.
func (c *Compiler) Compile(cue Cue, style Style, info ScriptInfo) Cue {
	out, _ := c.compile(cue, style, info)
	return out
}

// BlockReport explains how one override block was handled.
type BlockReport struct {
	Raw      string
	Cleaned  string
	Offset   int
	Stripped []string
	Handlers []string
}

// Diagnose compiles cue like Compile and also reports per-block details.
func (c *Compiler) Diagnose(cue Cue, style Style, info ScriptInfo) (Cue, []BlockReport) {
	return c.compile(cue, style, info)
}

func (c *Compiler) compile(cue Cue, style Style, info ScriptInfo) (Cue, []BlockReport) {
	info = info.normalized()
	text := NormalizeText(cue.Text)
	blocks, cleared := ExtractBlocks(text)

	out := cue
	out.Text = cleared
	if len(blocks) == 0 {
		return out, nil
	}

	var (
		edits   editList
		nest    nesting
		fade    *Fade
		reports = make([]BlockReport, 0, len(blocks))
	)
	for i, block := range blocks {
		cleaned, stripped := tags.StripReport(block.Raw)
		in := blockInput{text: cleaned, style: style, info: info}

		var d directive
		for _, h := range handlers {
			if h.apply(c, in, &d) {
				d.fired = append(d.fired, h.name)
			}
		}

		for _, markup := range d.markup {
			nest.push(markup)
		}
		next := len(cleared)
		if i+1 < len(blocks) {
			next = blocks[i+1].Offset
		}
		if next > block.Offset {
			edits.insert(block.Offset, nest.settle())
		}
		out.Attributes.Merge(d.attrs)
		if d.fade != nil {
			fade = d.fade
		}

		c.logger.Debug("override block compiled",
			slog.String("block", block.Raw),
			slog.Int("offset", block.Offset),
			slog.Any("stripped", stripped),
			slog.Any("handlers", d.fired),
		)
		reports = append(reports, BlockReport{
			Raw:      block.Raw,
			Cleaned:  cleaned,
			Offset:   block.Offset,
			Stripped: stripped,
			Handlers: d.fired,
		})
	}

	edits.insert(len(cleared), nest.finish())

	if fade != nil {
		out.Animation = fade
		out.HasAnimation = true
		out.Show = false
		out.End = cue.End - fade.OutMS/1000
	}

	compiled, err := edits.apply(cleared)
	if err != nil {
		logging.ErrorWithContext(c.logger, "override markup dropped", "override_edit_failed",
			logging.Error(err),
			logging.Int("edits", edits.len()),
			logging.String(logging.FieldErrorHint, "report the cue text; offsets went out of range"),
		)
		return out, reports
	}
	out.Text = compiled
	return out, reports
}
