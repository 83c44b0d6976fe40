package main

import (
	"flag"
	"math/rand"

	"go.uber.org/zap"

	"evoga/ga"
	"evoga/internal/config"
	"evoga/internal/report"
	"evoga/problems/knapsack"
	"evoga/problems/numeric"
	"evoga/problems/onemax"
)

func main() {
	configPath := flag.String("config", "configs/knapsack.yaml", "path to config file")
	generations := flag.Int("generations", 0, "override configured generation count")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("loading config", zap.String("path", *configPath), zap.Error(err))
	}
	if *generations > 0 {
		cfg.Generations = *generations
	}

	logger.Info("starting run",
		zap.String("problem", cfg.Problem),
		zap.Int64("seed", cfg.Seed),
		zap.Int("population", cfg.GA.Population),
		zap.Int("elites", cfg.GA.Elites),
		zap.Int("generations", cfg.Generations),
	)

	rng := rand.New(rand.NewSource(cfg.Seed))

	switch cfg.Problem {
	case "knapsack":
		problem := knapsack.Random(
			cfg.Knapsack.Items,
			cfg.Knapsack.CapacityFrac,
			cfg.Knapsack.MutationRate,
			cfg.Knapsack.RecombinationRate,
			rng,
		)
		initial := knapsack.RandomPopulation(cfg.GA.Population, cfg.Knapsack.Items, cfg.Knapsack.InitOnRate, rng)
		err = run[[]bool, ga.Lex](cfg, logger, problem, initial, rng, func(f ga.Lex) float64 {
			if len(f) == 0 {
				return 0
			}
			return f[0]
		})
	case "numeric":
		problem := &numeric.Problem{
			MutationRate: cfg.Numeric.MutationRate,
			SwapRate:     cfg.Numeric.SwapRate,
		}
		initial := numeric.RandomPopulation(cfg.GA.Population, rng)
		err = run[float64, ga.F64](cfg, logger, problem, initial, rng, func(f ga.F64) float64 {
			return float64(f)
		})
	case "onemax":
		problem := onemax.New(cfg.OneMax.MutationRate, cfg.OneMax.SharingPenalty)
		problem.Workers = cfg.OneMax.Workers
		initial := onemax.RandomPopulation(cfg.GA.Population, cfg.OneMax.Bits, cfg.OneMax.InitOnRate, rng)
		err = run[[]bool, ga.F64](cfg, logger, problem, initial, rng, func(f ga.F64) float64 {
			return float64(f)
		})
	}
	if err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}
}

// run drives the engine for the configured number of generations, writing
// a summary per generation and the final champion.
func run[I any, F ga.Ordered[F]](cfg *config.Config, logger *zap.Logger, problem ga.Problem[I, F], initial []I, rng *rand.Rand, score func(F) float64) error {
	engine, err := ga.New[I, F](problem, initial, cfg.GA.Elites, rng)
	if err != nil {
		return err
	}

	writer, err := report.NewWriter(cfg.Report.CSVPath, cfg.Report.JSONPath)
	if err != nil {
		return err
	}
	defer writer.Close()

	for gen := 1; gen <= cfg.Generations; gen++ {
		if err := engine.Iterate(); err != nil {
			return err
		}

		summary := report.Summarize[I, F](gen, engine.Population(), score)
		if err := writer.Write(summary); err != nil {
			return err
		}

		if cfg.Report.Every > 0 && gen%cfg.Report.Every == 0 {
			logger.Info("generation complete",
				zap.Int("generation", gen),
				zap.Float64("best", summary.Best),
				zap.Float64("mean", summary.Mean),
			)
		}
	}

	champion := engine.Population()[0]
	if err := report.SaveChampion(cfg.Report.ChampionPath, report.Champion{
		Generation: cfg.Generations,
		Fitness:    champion.Fitness,
		Individual: champion.Individual,
	}); err != nil {
		return err
	}

	logger.Info("run complete",
		zap.Int("generations", cfg.Generations),
		zap.Float64("best", score(champion.Fitness)),
		zap.String("champion", cfg.Report.ChampionPath),
	)
	return nil
}
