// Package builder generates synthetic matrix.WeightedAdjacency graphs for
// tests, benchmarks and the CLI's synthetic mode.
//
// A graph is assembled by Build from a vertex count, functional options and
// an ordered list of Constructors:
//
//	g, err := builder.Build(50,
//	    []builder.Option{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 10))},
//	    builder.Cycle(),
//	    builder.RandomSparse(0.1),
//	)
//
// Constructors run in order on the same matrix, so later ones overwrite
// earlier weights for the same ordered pair (last write wins). For a fixed
// seed, options and constructor order the output is identical across runs.
package builder
