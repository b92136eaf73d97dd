package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-rect/rect"
)

type rotateOptions struct {
	angle  float32
	file   string
	format string
	verify bool
}

func newRotateCmd(root *rootOptions) *cobra.Command {
	opts := &rotateOptions{}

	cmd := &cobra.Command{
		Use:   "rotate [RECT ...]",
		Short: "Rotate rectangles about their center",
		Long: `Rotate rectangles about their center by --angle degrees.

Rectangles come from positional arguments (x0,x1,x2,x3:y0,y1,y2,y3) and/or
a YAML file given with --file. All of them are rotated in one bulk call, so
they share a single kernel.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRotate(cmd.OutOrStdout(), root, opts, args)
		},
	}

	cmd.Flags().Float32Var(&opts.angle, "angle", 0, "rotation angle in degrees (counter-clockwise, y-up)")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "YAML file with a sequence of {x: [...], y: [...]} rects")
	cmd.Flags().StringVar(&opts.format, "format", "table", "output format: table or yaml")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "report the corner distance error of each rotation (table format)")

	return cmd
}

func runRotate(w io.Writer, root *rootOptions, opts *rotateOptions, args []string) error {
	if opts.format != "table" && opts.format != "yaml" {
		return fmt.Errorf("unknown format %q (want table or yaml)", opts.format)
	}

	var rs rect.Rects
	if opts.file != "" {
		fromFile, err := readRectsFile(opts.file)
		if err != nil {
			return err
		}
		rs = append(rs, fromFile...)
	}
	for _, a := range args {
		r, err := parseRectArg(a)
		if err != nil {
			return err
		}
		rs = append(rs, r)
	}
	if len(rs) == 0 {
		return errors.New("no rectangles given")
	}

	before := append(rect.Rects(nil), rs...)

	f := root.features()
	rot := rect.SelectRotator(f)
	rect.RotateAll(rs, opts.angle, &f)

	if opts.format == "yaml" {
		return encodeRects(w, rs)
	}
	return printRects(w, rot.Name(), before, rs, opts.verify)
}

func printRects(w io.Writer, kernel string, before, after rect.Rects, verify bool) error {
	if _, err := fmt.Fprintf(w, "kernel: %s\n", kernel); err != nil {
		return fmt.Errorf("write kernel: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := "Rect\tCorner\tX\tY"
	if verify {
		header += "\tRigidity err"
	}
	if _, err := fmt.Fprintln(tw, header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range after {
		errCol := ""
		if verify {
			errCol = fmt.Sprintf("\t%.3g", rect.RigidityError(before[i], r))
		}
		for c := 0; c < 4; c++ {
			x, y := r.Corner(c)
			if _, err := fmt.Fprintf(tw, "%d\t%d\t%.6f\t%.6f%s\n", i, c, x, y, errCol); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
