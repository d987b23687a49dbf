package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hoppe/internal/meshio"
	"github.com/katalvlaran/hoppe/internal/orient"
	"github.com/katalvlaran/hoppe/internal/recon"
	"github.com/katalvlaran/hoppe/internal/reconconfig"
)

func newReconstructCmd() *cobra.Command {
	var (
		outPath     string
		debugPLYOut string
		k           int
		density     float64
		noise       float64
		isolevel    float64
		maxVolume   uint64
		dfsOrder    bool
	)

	cmd := &cobra.Command{
		Use:   "reconstruct <input.xyz>",
		Short: "Reconstruct a mesh from an XYZ point cloud and write it as OBJ",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening input: %w", err)
			}
			defer in.Close()

			cloud, err := meshio.ReadXYZ(in)
			if err != nil {
				return fmt.Errorf("reading point cloud: %w", err)
			}

			mode := orient.ModeParent
			if dfsOrder {
				mode = orient.ModeDFSOrder
			}
			params, err := reconconfig.NewParameters(
				reconconfig.WithK(k),
				reconconfig.WithDensity(density),
				reconconfig.WithNoise(noise),
				reconconfig.WithIsolevel(isolevel),
				reconconfig.WithMaxVolume(maxVolume),
				reconconfig.WithOrientMode(mode),
			)
			if err != nil {
				return fmt.Errorf("invalid parameters: %w", err)
			}

			var debugOut io.Writer
			if debugPLYOut != "" {
				f, err := os.Create(debugPLYOut)
				if err != nil {
					return fmt.Errorf("creating debug ply output: %w", err)
				}
				defer f.Close()
				debugOut = f
			}

			result, err := recon.Run(cloud, params, log, debugOut)
			if err != nil {
				return fmt.Errorf("reconstructing: %w", err)
			}

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating output: %w", err)
			}
			defer out.Close()

			if err := meshio.WriteOBJ(out, result.Mesh); err != nil {
				return fmt.Errorf("writing mesh: %w", err)
			}

			log.Infof("wrote %d triangles to %s", len(result.Mesh), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "mesh.obj", "output OBJ path")
	cmd.Flags().StringVar(&debugPLYOut, "debug-planes", "", "optional path to dump the oriented plane cloud as PLY")
	cmd.Flags().IntVarP(&k, "k", "k", 8, "neighborhood size")
	cmd.Flags().Float64Var(&density, "density", 0, "voxel resolution (0 = auto-estimate)")
	cmd.Flags().Float64Var(&noise, "noise", 0, "SDF support-radius slack")
	cmd.Flags().Float64Var(&isolevel, "isolevel", 0, "reserved isosurface level")
	cmd.Flags().Uint64Var(&maxVolume, "max-volume", 8_000_000, "hard cap on voxel count")
	cmd.Flags().BoolVar(&dfsOrder, "dfs-order", false, "use the original DFS-predecessor orientation propagation instead of MST-parent propagation")

	return cmd
}
