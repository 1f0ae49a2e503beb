package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"subtag/internal/config"
	"subtag/internal/logging"
	"subtag/internal/override"
	"subtag/internal/stylesheet"
	"subtag/internal/track"
)

type compileFlags struct {
	output    string
	css       string
	workers   int
	explain   bool
	noPersist bool
}

func newCompileCommand(ctx *commandContext) *cobra.Command {
	var flags compileFlags

	cmd := &cobra.Command{
		Use:   "compile <track.json|track.yaml>",
		Short: "Compile override tags in a subtitle track",
		Long: "Compile reads a track document, converts each cue's override blocks into\n" +
			"markup and rendering attributes, and writes the compiled document. Generated\n" +
			"style rules are stored for later runs and merged into the stylesheet file.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runCompile(cmd, ctx, cfg, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write the compiled track here (.json, .yaml or .msgpack); stdout when empty")
	cmd.Flags().StringVar(&flags.css, "css", "", "Merge generated style rules into this stylesheet (overrides stylesheet.output_path)")
	cmd.Flags().IntVarP(&flags.workers, "workers", "w", 0, "Concurrent cue workers (overrides compile.workers)")
	cmd.Flags().BoolVar(&flags.explain, "explain", false, "Print how each override block was handled")
	cmd.Flags().BoolVar(&flags.noPersist, "no-persist", false, "Do not read or update the rule store")
	return cmd
}

func runCompile(cmd *cobra.Command, cmdCtx *commandContext, cfg *config.Config, input string, flags compileFlags) error {
	runCtx := logging.WithRunID(cmd.Context())
	baseLogger, err := cmdCtx.logger()
	if err != nil {
		return err
	}
	logger := logging.WithContext(runCtx, baseLogger).With(logging.String(logging.FieldTrack, input))

	doc, err := track.ReadFile(input)
	if err != nil {
		return err
	}

	registry := stylesheet.NewRegistry()
	var store *stylesheet.Store
	if cfg.Stylesheet.Persist && !flags.noPersist && cfg.Stylesheet.StorePath != "" {
		store, err = stylesheet.OpenStore(runCtx, cfg.Stylesheet.StorePath)
		if err != nil {
			return err
		}
		defer store.Close()
		existing, err := store.Load(runCtx)
		if err != nil {
			return err
		}
		registry.Seed(existing)
	}
	usage := stylesheet.NewUsage(registry)

	compiler := override.New(usage,
		override.WithSurfaceHeight(cfg.Render.SurfaceHeight),
		override.WithLogger(logger),
	)

	workers := cfg.Compile.Workers
	if flags.workers > 0 {
		workers = flags.workers
	}
	compiled, summary, err := track.CompileAll(runCtx, doc, compiler, track.Options{
		Workers:          workers,
		DefaultStyle:     cfg.Compile.DefaultStyle,
		OutlineThickness: cfg.Render.OutlineThickness,
		PlayResX:         cfg.Compile.PlayResX,
		PlayResY:         cfg.Compile.PlayResY,
		Logger:           baseLogger,
	})
	if err != nil {
		return fmt.Errorf("compile track: %w", err)
	}
	compiled.Stylesheet = usage.Rules()

	stored := 0
	if store != nil {
		stored, err = store.Save(runCtx, registry.Rules())
		if err != nil {
			return err
		}
	}

	cssPath := cfg.Stylesheet.OutputPath
	if flags.css != "" {
		if cssPath, err = config.ExpandPath(flags.css); err != nil {
			return fmt.Errorf("resolve stylesheet path: %w", err)
		}
	}
	merged := 0
	if cssPath != "" {
		merged, err = stylesheet.MergeFile(runCtx, cssPath, compiled.Stylesheet)
		if err != nil {
			return err
		}
	}

	if flags.output == "" {
		if err := track.Encode(cmd.OutOrStdout(), compiled, track.FormatJSON); err != nil {
			return err
		}
	} else if err := track.WriteFile(flags.output, compiled); err != nil {
		return err
	}

	status := cmd.ErrOrStderr()
	if flags.explain {
		writeExplain(status, cfg, compiler, doc, compiled)
	}
	colorize := shouldColorize(status)
	fmt.Fprintln(status, renderStatusLine("Cues", statusOK, fmt.Sprintf("%d compiled, %d animated, %d positioned", summary.Cues, summary.Animated, summary.Positioned), colorize))
	fmt.Fprintln(status, renderStatusLine("Style rules", statusInfo, fmt.Sprintf("%d used, %d newly stored", len(compiled.Stylesheet), stored), colorize))
	if cssPath != "" {
		fmt.Fprintln(status, renderStatusLine("Stylesheet", statusInfo, fmt.Sprintf("%s (+%d)", cssPath, merged), colorize))
	}
	if len(summary.UnknownStyles) > 0 {
		fmt.Fprintln(status, renderStatusLine("Styles", statusWarn, "unknown: "+strings.Join(summary.UnknownStyles, ", "), colorize))
	}
	return nil
}

func writeExplain(w io.Writer, cfg *config.Config, compiler *override.Compiler, doc, compiled *track.Document) {
	styles := track.NewStyles(compiled.Styles, cfg.Compile.DefaultStyle, cfg.Render.OutlineThickness)
	var rows [][]string
	for i, cue := range doc.Cues {
		style, _ := styles.Lookup(cue.Style)
		_, reports := compiler.Diagnose(cue, style, compiled.ScriptInfo)
		for _, report := range reports {
			rows = append(rows, []string{
				strconv.Itoa(i),
				strconv.Itoa(report.Offset),
				report.Raw,
				strings.Join(report.Handlers, ","),
				strings.Join(report.Stripped, ","),
			})
		}
	}
	if len(rows) == 0 {
		fmt.Fprintln(w, "No override blocks found")
		return
	}
	fmt.Fprintln(w, renderTable(
		[]string{"Cue", "Offset", "Block", "Handlers", "Stripped"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignLeft},
	))
}
