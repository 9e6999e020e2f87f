// Package main is the entry point for the builds CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/remnantforge/builds-api/internal/builder"
	"github.com/remnantforge/builds-api/internal/catalog"
	"github.com/remnantforge/builds-api/internal/config"
	buildorch "github.com/remnantforge/builds-api/internal/orchestrators/build"
	"github.com/remnantforge/builds-api/internal/pkg/clock"
	"github.com/remnantforge/builds-api/internal/pkg/idgen"
	"github.com/remnantforge/builds-api/internal/redis"
	buildrepo "github.com/remnantforge/builds-api/internal/repositories/build"
	loadoutrepo "github.com/remnantforge/builds-api/internal/repositories/loadout"
	buildservice "github.com/remnantforge/builds-api/internal/services/build"
)

var (
	configPath string
	userID     string
)

var rootCmd = &cobra.Command{
	Use:   "builds",
	Short: "Loadout build store and editor",
	Long:  `builds manages stored equipment loadouts: encode and decode share links, edit slots, search the item catalog, and pin favorites.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to TOML config file")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "", "acting user id")

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(voteCmd)
	rootCmd.AddCommand(loadoutCmd)
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

// newService wires the full stack: config, logger, redis, repositories,
// engine, orchestrator. The cleanup closes the redis connection.
func newService() (buildservice.Service, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	slog.SetDefault(cfg.Log.NewLogger())

	client, err := redis.NewClient(cfg.Redis.Address, cfg.Redis.RedisOptions())
	if err != nil {
		return nil, nil, err
	}

	svc, err := buildorch.New(&buildorch.Config{
		BuildRepo:   buildrepo.NewRedisRepository(client),
		LoadoutRepo: loadoutrepo.NewRedisRepository(client),
		Engine:      builder.New(catalog.Default()),
		IDGenerator: idgen.NewUUID("build"),
		Clock:       clock.New(),
		CacheSize:   cfg.Cache.Size,
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() { _ = client.Close() }
	return svc, cleanup, nil
}

func requireUser() error {
	if userID == "" {
		return fmt.Errorf("--user is required")
	}
	return nil
}
