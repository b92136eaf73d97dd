package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-rect/cpu"
	archregistry "github.com/cwbudde/algo-rect/internal/arch/registry"
	"github.com/cwbudde/algo-rect/internal/arch/vec4"
	"github.com/cwbudde/algo-rect/rect"
)

func newInfoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print detected CPU capabilities and the selected kernel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := opts.features()
			accel, vekFeatures := vec4.Accelerated()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			rows := [][2]string{
				{"Architecture", f.Architecture},
				{"Vec4", yesNo(cpu.SupportsVec4(f))},
				{"SSE2", yesNo(f.HasSSE2)},
				{"AVX2", yesNo(f.HasAVX2)},
				{"FMA", yesNo(f.HasFMA)},
				{"NEON", yesNo(f.HasNEON)},
				{"Force generic", yesNo(f.ForceGeneric)},
				{"Kernel", rect.SelectRotator(f).Name()},
				{"vek32 acceleration", yesNo(accel)},
				{"vek32 features", strings.Join(vekFeatures, " ")},
			}
			for _, row := range rows {
				if _, err := fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1]); err != nil {
					return fmt.Errorf("write info: %w", err)
				}
			}
			if err := tw.Flush(); err != nil {
				return fmt.Errorf("flush info: %w", err)
			}
			return nil
		},
	}
}

func newKernelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kernels",
		Short: "List registered rotation kernels by priority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := archregistry.Global.ListEntries()
			sort.SliceStable(entries, func(i, j int) bool {
				return entries[i].Priority > entries[j].Priority
			})

			f := cpu.DetectFeatures()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			if _, err := fmt.Fprintf(tw, "Name\tLevel\tPriority\tSupported\n"); err != nil {
				return fmt.Errorf("write header: %w", err)
			}
			for _, e := range entries {
				if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
					e.Name, e.SIMDLevel, e.Priority, yesNo(cpu.Supports(f, e.SIMDLevel))); err != nil {
					return fmt.Errorf("write kernel row: %w", err)
				}
			}
			if err := tw.Flush(); err != nil {
				return fmt.Errorf("flush kernels: %w", err)
			}
			return nil
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
