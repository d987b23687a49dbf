package reconconfig_test

import (
	"fmt"

	"github.com/katalvlaran/hoppe/internal/orient"
	"github.com/katalvlaran/hoppe/internal/reconconfig"
)

// ExampleNewParameters builds a default configuration and overrides a
// couple of fields via functional options, the same pattern
// prim_kruskal.MSTOptions uses.
func ExampleNewParameters() {
	params, err := reconconfig.NewParameters(
		reconconfig.WithK(12),
		reconconfig.WithMaxVolume(1_000_000),
		reconconfig.WithOrientMode(orient.ModeDFSOrder),
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(params.K, params.MaxVolume)
	// Output:
	// 12 1000000
}

// ExampleNewParameters_invalid shows a validation failure: k must be > 1.
func ExampleNewParameters_invalid() {
	_, err := reconconfig.NewParameters(reconconfig.WithK(1))
	fmt.Println(err)
	// Output:
	// reconconfig: k must be > 1: got 1
}
