// Command hoppe reconstructs a triangle mesh from a point cloud using the
// tangent-plane / Riemannian-graph / marching-cubes pipeline in
// internal/recon.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hoppe/internal/logging"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hoppe",
		Short: "Surface reconstruction from point clouds",
		Long: "hoppe reconstructs a triangulated surface from an unorganized 3D point cloud,\n" +
			"via tangent-plane estimation, normal-orientation propagation, and marching cubes.",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	root.AddCommand(newReconstructCmd())
	root.AddCommand(newBenchCmd())
	return root
}

func newLogger() *logging.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return logging.New(os.Stderr, level)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
