package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/roadapsp/apsp"
	"github.com/katalvlaran/roadapsp/builder"
	"github.com/katalvlaran/roadapsp/internal/config"
	"github.com/katalvlaran/roadapsp/internal/logging"
	"github.com/katalvlaran/roadapsp/matrix"
	"github.com/katalvlaran/roadapsp/query"
	"github.com/katalvlaran/roadapsp/store"
	"github.com/katalvlaran/roadapsp/tmg"
)

// run executes one pipeline: load graph, solve, answer queries, persist.
func run(ctx context.Context, cfg *config.Config, out io.Writer) (err error) {
	ctx = logging.WithRunID(ctx, strconv.FormatInt(time.Now().UnixNano(), 36))
	defer logging.Time(ctx, "run")(&err)

	g, err := loadGraph(ctx, cfg)
	if err != nil {
		return err
	}
	log.Infof("action: load_graph | result: success | vertices: %d | edges: %d", g.Size(), g.EdgeCount())

	res, err := solve(ctx, g)
	if err != nil {
		return err
	}
	if bad := res.NegativeCycleVertices(); len(bad) > 0 {
		log.Warnf("action: floyd_warshall | result: negative_cycle | vertices: %v", bad)
	}

	if cfg.PrintMatrix {
		if err = printMatrices(out, res); err != nil {
			return err
		}
	}

	if len(cfg.Queries) > 0 {
		pairs, err := query.ParsePairs(cfg.Queries)
		if err != nil {
			return err
		}
		answers, err := query.Resolve(ctx, res, pairs, cfg.Workers)
		if err != nil {
			return err
		}
		if err = query.WriteAnswers(out, answers); err != nil {
			return fmt.Errorf("write answers: %w", err)
		}
		log.Infof("action: queries | result: success | count: %d", len(answers))
	}

	if cfg.DatabaseURL != "" {
		if err = persist(ctx, cfg, res); err != nil {
			return err
		}
	}

	return nil
}

func loadGraph(ctx context.Context, cfg *config.Config) (_ *matrix.WeightedAdjacency, err error) {
	defer logging.Time(ctx, "load_graph")(&err)

	if cfg.GraphFile != "" {
		tg, err := tmg.ParseFile(cfg.GraphFile)
		if err != nil {
			return nil, err
		}
		return tg.Matrix, nil
	}

	return buildSynthetic(cfg.Synthetic)
}

// buildSynthetic generates the graph described by s.Kind.
func buildSynthetic(s config.Synthetic) (*matrix.WeightedAdjacency, error) {
	opts := []builder.Option{
		builder.WithSeed(s.Seed),
		builder.WithWeightFn(builder.UniformWeightFn(s.MinWeight, s.MaxWeight)),
	}

	switch s.Kind {
	case config.KindComplete:
		return builder.Build(s.Vertices, opts, builder.Complete())
	case config.KindCycle:
		return builder.Build(s.Vertices, opts, builder.Cycle())
	case config.KindGeometric:
		rng := rand.New(rand.NewSource(s.Seed))
		coords := builder.RandomCoords(rng, s.Vertices, s.MinLat, s.MaxLat, s.MinLng, s.MaxLng)
		return builder.Build(s.Vertices, opts, builder.Geometric(coords, s.MaxMeters))
	case config.KindRandom, "":
		return builder.Build(s.Vertices, opts, builder.RandomSparse(s.Probability))
	default:
		return nil, fmt.Errorf("synthetic graph: %w: %q", config.ErrUnknownKind, s.Kind)
	}
}

func solve(ctx context.Context, g *matrix.WeightedAdjacency) (_ *apsp.Result, err error) {
	defer logging.Time(ctx, "floyd_warshall")(&err)

	return apsp.FloydWarshall(g)
}

func printMatrices(out io.Writer, res *apsp.Result) error {
	if err := query.WriteMatrix(out, res.Dist); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}

	return query.WriteMatrix(out, res.Pred)
}

func persist(ctx context.Context, cfg *config.Config, res *apsp.Result) error {
	db, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	s := store.New(db)
	if err = s.InitSchema(ctx); err != nil {
		return err
	}
	if err = s.Save(ctx, cfg.GraphName, res); err != nil {
		return err
	}
	log.Infof("action: save_result | result: success | graph: %s", cfg.GraphName)

	return nil
}
