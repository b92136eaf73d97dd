// Command rectinfo reports the rotation kernels available on this machine
// and rotates rectangles from the command line or a YAML file.
//
// Usage:
//
//	rectinfo info
//	rectinfo kernels
//	rectinfo rotate [flags] [RECT ...]
//
// A RECT is written x0,x1,x2,x3:y0,y1,y2,y3 with corners in top-left,
// top-right, bottom-left, bottom-right order.
//
// Examples:
//
//	rectinfo rotate --angle 90 0,1,0,1:0,0,1,1
//	rectinfo rotate --angle 45 --verify --file rects.yaml
//	rectinfo --generic rotate --angle 30 --format yaml 0,2,0,2:0,0,2,2
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-rect/cpu"
)

type rootOptions struct {
	generic bool
}

// features returns the capability snapshot the subcommands dispatch on.
func (o *rootOptions) features() cpu.Features {
	f := cpu.DetectFeatures()
	if o.generic {
		f.ForceGeneric = true
	}
	return f
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "rectinfo",
		Short:        "Inspect and run the rectangle rotation kernels",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVar(&opts.generic, "generic", false, "force the scalar kernel regardless of CPU features")

	rootCmd.AddCommand(newInfoCmd(opts))
	rootCmd.AddCommand(newKernelsCmd())
	rootCmd.AddCommand(newRotateCmd(opts))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
