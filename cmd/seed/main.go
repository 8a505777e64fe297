package main

import (
	"context"
	_ "embed"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"yelpcamp/internal/config"
	"yelpcamp/internal/database"
	"yelpcamp/internal/logger"
	"yelpcamp/internal/repository"
	"yelpcamp/internal/service"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

//go:embed campgrounds.yaml
var defaultSeedData []byte

var (
	seedFile        string
	seedCount       int
	seedReset       bool
	seedConcurrency int
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load campgrounds into the configured store",
	Long: `Loads the campgrounds listed in the seed file, then generates --count
random campgrounds from its descriptor, place and city lists.`,
	SilenceUsage: true,
	RunE:         runSeed,
}

func init() {
	rootCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML seed file (defaults to the built-in data)")
	rootCmd.Flags().IntVarP(&seedCount, "count", "n", 50, "number of random campgrounds to generate")
	rootCmd.Flags().BoolVar(&seedReset, "reset", false, "delete every campground and review first")
	rootCmd.Flags().IntVar(&seedConcurrency, "concurrency", 8, "maximum concurrent inserts")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logger.Setup(cfg.LogLevel)

	data, err := LoadSeedFile(seedFile)
	if err != nil {
		return err
	}
	generated, err := data.Generate(seedCount, rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := database.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(context.Background()) }()

	if err := store.Ping(ctx); err != nil {
		return fmt.Errorf("ping %s: %w", store.Driver(), err)
	}

	repos, err := repository.New(store, cfg.StoreTimeout)
	if err != nil {
		return err
	}
	validator, err := service.NewValidator()
	if err != nil {
		return err
	}

	seeder := NewSeeder(
		service.NewCampgroundService(repos.Campgrounds, repos.Reviews, validator),
		repos.Campgrounds,
		repos.Reviews,
		seedConcurrency,
	)

	if seedReset {
		if err := seeder.Reset(ctx); err != nil {
			return err
		}
	}

	ids, err := seeder.Insert(ctx, append(data.Campgrounds, generated...))
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"driver":      store.Driver(),
		"campgrounds": len(ids),
	}).Info("Seeding complete")
	return nil
}
