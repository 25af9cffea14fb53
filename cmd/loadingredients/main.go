// Команда loadingredients загружает справочник ингредиентов из CSV.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"foodgram/internal/foodgram/adapters/cache"
	"foodgram/internal/foodgram/adapters/postgres"
	"foodgram/internal/foodgram/app"
	"foodgram/internal/foodgram/config"
	"foodgram/internal/foodgram/db"
	"foodgram/pkg/db/redis"
	"foodgram/pkg/logger"
)

const (
	EnvConfigPath = "FOODGRAM_CONFIG_PATH"

	defaultFile = "data/ingredients.csv"

	ErrOpenFile   = "failed to open ingredients file"
	ErrImport     = "failed to import ingredients"
	LogImportDone = "ingredients loaded"
)

var (
	file  string
	clean bool
)

var rootCmd = &cobra.Command{
	Use:   "loadingredients",
	Short: "Load the ingredient catalog from a CSV file",
	Long: `Reads name,measurement_unit rows (a header line is optional) and inserts
them in one transaction. Database and Redis settings come from FOODGRAM_* env
variables or the file in FOODGRAM_CONFIG_PATH.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context(), file, clean)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&file, "file", "f", defaultFile, "path to CSV file with name,measurement_unit rows")
	rootCmd.Flags().BoolVar(&clean, "clean", false, "delete existing ingredients before import")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(parent context.Context, path string, clean bool) error {
	ctx := logger.NewRequestIDContext(parent, "")

	cfg, err := config.Load(ctx, os.Getenv(EnvConfigPath))
	if err != nil {
		return err
	}

	log, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetGlobalLogger(log)
	defer func() { _ = log.Sync() }()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	database, err := db.New(ctx, &cfg.Postgres)
	if err != nil {
		return err
	}
	defer database.Close(ctx)

	redisClient, err := redis.NewClient(ctx, cfg.Redis.ClientConfig())
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()

	repos := postgres.NewRepositoryFactory(database.Pool())
	importer := app.NewIngredientImportUseCase(
		repos.IngredientRepository(),
		cache.NewRedisCache(redisClient.RawClient(), cfg.Redis.DefaultTTL),
	)

	n, err := importer.Import(ctx, f, clean)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrImport, err)
	}

	log.Info(ctx, LogImportDone, zap.Int("count", n), zap.String("file", path), zap.Bool("clean", clean))
	return nil
}
