package sweep_test

import (
	"fmt"

	"github.com/gocompgeom/voronoi/site"
	"github.com/gocompgeom/voronoi/sweep"
)

func ExampleRun() {
	sites := []site.Site[float64]{
		site.New(0, 0.0, 0.0),
		site.New(1, 1.0, 0.0),
	}

	builder := sweep.Run(sites, 1e-9)

	fmt.Println(len(builder.Vertices()), len(builder.Edges()))

	// Output:
	// 0 1
}
