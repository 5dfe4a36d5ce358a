// Command texteffects animates piped text in the terminal.
//
//	ls -la | texteffects -effect sweep -sort-order row_top_to_bottom
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/texteffects/config"
	"github.com/lixenwraith/texteffects/content"
	"github.com/lixenwraith/texteffects/effect"
	"github.com/lixenwraith/texteffects/engine"
	"github.com/lixenwraith/texteffects/parameter"
	"github.com/lixenwraith/texteffects/render"
	"github.com/lixenwraith/texteffects/terminal"
	"github.com/lixenwraith/texteffects/vmath"
)

func main() {
	// Panic Recovery: restore cursor and colors before the stack is printed
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\n\x1b[31mTEXTEFFECTS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flags := config.NewFlags(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: <command> | %s [flags]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if logFile := setupLogging(flags.Debug()); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "texteffects: %v\n", err)
		os.Exit(2)
	}

	if terminal.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println("NO INPUT.")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink, err := newSink(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "texteffects: %v\n", err)
		os.Exit(1)
	}

	if err := run(ctx, cfg, os.Stdin, sink); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "texteffects: %v\n", err)
		os.Exit(1)
	}
}

// run reads input from r and plays the configured effect on sink to completion
func run(ctx context.Context, cfg config.Config, r io.Reader, sink terminal.Sink) error {
	text, err := content.ReadInput(r, parameter.MaxInputBytes)
	if err != nil {
		return err
	}

	width, height, ok := terminal.StdoutSize()
	if !ok {
		log.Printf("main: terminal size unavailable, using %dx%d", width, height)
	}
	grid := content.Decompose(text, content.Options{
		TabWidth: cfg.TabWidth,
		MaxWidth: width,
		NoWrap:   cfg.NoWrap,
	})

	settings, err := cfg.EffectSettings()
	if err != nil {
		return err
	}
	eff, err := effect.New(cfg.Effect, settings)
	if err != nil {
		return err
	}

	vmath.SeedDefault(cfg.Seed)

	comp := render.NewCompositor(grid, render.Options{
		FrameDuration:  cfg.FrameDuration.Duration,
		TerminalHeight: height,
		NoColor:        cfg.NoColor,
		ColorMode:      cfg.ColorMode(),
		Sink:           sink,
		Clock:          engine.NewTimeProvider(),
		Rand:           vmath.DefaultRand(),
	})
	log.Printf("main: effect %s, %d characters, area %dx%d",
		cfg.Effect, len(comp.InputCharacters()), comp.Area().Right, comp.Area().Top)

	if err := eff.Build(comp); err != nil {
		return err
	}
	return engine.Run(ctx, comp, eff,
		engine.WithParallelism(cfg.Parallelism),
		engine.WithMaxFrames(cfg.MaxFrames),
	)
}

func newSink(cfg config.Config) (terminal.Sink, error) {
	switch cfg.Output {
	case config.OutputScreen:
		return terminal.NewTTYScreenSink(cfg.NoColor)
	default:
		return terminal.NewANSIWriter(os.Stdout, cfg.ColorMode(), cfg.NoColor), nil
	}
}
