package commands

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/observable"
)

// view is the sample widget from the demo: a frame whose dimensions are
// observable properties. Engine code never sees this type.
type view struct {
	width  *observable.Property[float64]
	height *observable.Property[float64]
}

func newView(initialWidth float64) *view {
	v := &view{
		width:  observable.NewProperty(initialWidth),
		height: observable.NewProperty(0.0),
	}
	v.width.AddObserver(func(old, current float64) {
		fmt.Printf("old width: %v\n", old)
		fmt.Printf("current width: %v\n", current)
	})
	v.height.AddObserver(func(old, current float64) {
		fmt.Printf("old height: %v\n", old)
		fmt.Printf("current height: %v\n", current)
	})
	return v
}

// drive polls the clock at the configured rate and advances anim until it
// reports finished. This loop is the caller-owned pacing the engine expects.
func drive[T any](anim *animation.Animation[T], rateHz int, onTick func()) {
	anim.Prepare()
	step := time.Second / time.Duration(rateHz)
	for now := animation.Now(); !anim.IsFinished(now); now = animation.Now() {
		if err := anim.Advance(now); err != nil {
			var merr *errors.MotionError
			if stderrors.As(err, &merr) {
				errors.Report(merr)
			}
			return
		}
		onTick()
		time.Sleep(step)
	}
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Animate a view's width whenever it is assigned",
		Long: `Builds a view whose width property carries two observers: one logs
assignments, the other eases the width to its new value by running an
animation that writes interpolated values straight into the property's
backing store. Only the triggering assignment notifies; the per-tick
writes stay silent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer errors.Recover("motion.demo")

			fmt.Printf("%s: animating width over %dms at %dHz\n", cfg.Title, cfg.DurationMS, cfg.RateHz)

			v := newView(cfg.From)
			v.width.AddObserver(func(old, current float64) {
				anim := animation.AnimateFloat64(v.width, old, current, time.Duration(cfg.DurationMS)*time.Millisecond)
				fmt.Printf("start: %v | end: %v\n", anim.Begin, anim.End)
				drive(anim, cfg.RateHz, func() {
					fmt.Printf("Current value: %v\n", v.width.Value())
				})
			})

			v.width.Set(cfg.To)
			return nil
		},
	}
}
