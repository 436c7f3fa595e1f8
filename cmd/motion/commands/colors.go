package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/image/colornames"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/graphics"
	"github.com/go-drift/motion/pkg/observable"
)

func namedColor(name string) (graphics.Color, error) {
	c, ok := colornames.Map[name]
	if !ok {
		return 0, &errors.MotionError{
			Op:   "motion.colors",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("unknown color name %q", name),
		}
	}
	return graphics.FromRGBA(c), nil
}

func colorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "Sweep a color property between two named colors",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer errors.Recover("motion.colors")

			from, err := namedColor(cfg.ColorFrom)
			if err != nil {
				return err
			}
			to, err := namedColor(cfg.ColorTo)
			if err != nil {
				return err
			}

			fmt.Printf("%s: sweeping %s -> %s over %dms\n", cfg.Title, cfg.ColorFrom, cfg.ColorTo, cfg.DurationMS)

			tint := observable.NewProperty(from)
			unsubscribe := tint.AddObserver(func(old, current graphics.Color) {
				fmt.Printf("tint committed: #%06x\n", uint32(current)&0xFFFFFF)
			})
			defer unsubscribe()

			anim := animation.AnimateColor(tint, from, to, time.Duration(cfg.DurationMS)*time.Millisecond)
			drive(anim, cfg.RateHz, func() {
				c := tint.Value()
				fmt.Printf("r=%3d g=%3d b=%3d\n", c.R(), c.G(), c.B())
			})

			// The sweep wrote silently; commit the final color so observers
			// see the user-level assignment.
			tint.Set(to)
			return nil
		},
	}
}
