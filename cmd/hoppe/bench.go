package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hoppe/internal/logging"
	"github.com/katalvlaran/hoppe/internal/meshio"
	"github.com/katalvlaran/hoppe/internal/recon"
	"github.com/katalvlaran/hoppe/internal/reconconfig"
)

// newBenchCmd times a reconstruction run against an input cloud without
// writing mesh output, for quick performance sanity checks against a
// dataset (useful when tuning k / max-volume before a full run).
func newBenchCmd() *cobra.Command {
	var (
		k         int
		maxVolume uint64
	)

	cmd := &cobra.Command{
		Use:   "bench <input.xyz>",
		Short: "Time a reconstruction run without writing output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.Noop()

			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening input: %w", err)
			}
			defer in.Close()

			cloud, err := meshio.ReadXYZ(in)
			if err != nil {
				return fmt.Errorf("reading point cloud: %w", err)
			}

			params, err := reconconfig.NewParameters(
				reconconfig.WithK(k),
				reconconfig.WithMaxVolume(maxVolume),
			)
			if err != nil {
				return fmt.Errorf("invalid parameters: %w", err)
			}

			start := time.Now()
			result, err := recon.Run(cloud, params, log, nil)
			elapsed := time.Since(start)
			if err != nil {
				return fmt.Errorf("reconstructing: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "points=%d planes=%d triangles=%d elapsed=%s\n",
				len(cloud), len(result.Planes), len(result.Mesh), elapsed)
			return nil
		},
	}

	cmd.Flags().IntVarP(&k, "k", "k", 8, "neighborhood size")
	cmd.Flags().Uint64Var(&maxVolume, "max-volume", 8_000_000, "hard cap on voxel count")

	return cmd
}
