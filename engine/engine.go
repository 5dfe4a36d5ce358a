// Package engine drives the frame loop: effect step, character ticks, frame emission.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/texteffects/character"
	"github.com/lixenwraith/texteffects/render"
)

// Stepper is the effect side of the loop
// Step activates pending characters and reports whether work remains
type Stepper interface {
	Step() bool
}

// Option configures Run
type Option func(*runner)

// WithParallelism ticks characters on up to n goroutines; n <= 1 ticks inline
func WithParallelism(n int) Option {
	return func(r *runner) { r.parallelism = n }
}

// WithMaxFrames stops the loop after n frames; 0 means no limit
func WithMaxFrames(n int) Option {
	return func(r *runner) { r.maxFrames = n }
}

type runner struct {
	comp        *render.Compositor
	parallelism int
	maxFrames   int
}

// Run prepares the output area and emits frames until the effect completes
// Cancellation returns ctx.Err() after the output area is released
func Run(ctx context.Context, comp *render.Compositor, eff Stepper, opts ...Option) (err error) {
	r := &runner{comp: comp, parallelism: 1}
	for _, opt := range opts {
		opt(r)
	}

	if err := comp.Prepare(); err != nil {
		return err
	}
	defer func() {
		if ferr := comp.Finish(); ferr != nil {
			err = errors.Join(err, ferr)
		}
	}()

	frames := 0
	for {
		if err := ctx.Err(); err != nil {
			log.Printf("engine: cancelled after %d frames", frames)
			return err
		}

		more := eff.Step()
		if err := r.tick(ctx, comp.ActiveCharacters()); err != nil {
			return err
		}
		if err := comp.Print(); err != nil {
			return err
		}
		frames++

		if !more {
			break
		}
		if r.maxFrames > 0 && frames >= r.maxFrames {
			log.Printf("engine: frame limit %d reached", r.maxFrames)
			break
		}
	}

	log.Printf("engine: finished after %d frames", frames)
	return nil
}

// tick advances every character once; all ticks finish before returning
func (r *runner) tick(ctx context.Context, chars []*character.Character) error {
	if r.parallelism <= 1 || len(chars) < 2 {
		for _, ch := range chars {
			ch.Tick()
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)

	chunk := (len(chars) + r.parallelism - 1) / r.parallelism
	for start := 0; start < len(chars); start += chunk {
		batch := chars[start:min(start+chunk, len(chars))]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, ch := range batch {
				ch.Tick()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("tick: %w", err)
	}
	return nil
}
