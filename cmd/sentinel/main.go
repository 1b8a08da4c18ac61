// Command sentinel queries, follows and publishes nostr location events.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"sentinel/config"
	"sentinel/internal/domain/entity"
	"sentinel/internal/errors"
	logs "sentinel/internal/infra/log"
	"sentinel/internal/infra/nostr/identity"
	"sentinel/internal/infra/nostr/relay"

	"github.com/spf13/cobra"
)

const defaultTimeout = 10 * time.Second

// searchPaths are tried in order when --config is not given.
//
//nolint:gochecknoglobals
var searchPaths = []string{
	"config.yaml",
	filepath.Join("config", "config.yaml"),
	filepath.Join("..", "config", "config.yaml"),
}

type rootFlags struct {
	configPath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "sentinel",
		Short: "Share and watch locations over nostr relays",
		Long: `'sentinel' publishes geohash locations as nostr events of kind 30472
(public) or 30473 (NIP-44 encrypted), reads them back, and follows an
identity to alert when it stops publishing.`,
		Args: cobra.NoArgs,
		// Errors are printed once in main.
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "",
		"Path to the configuration file (default: config.yaml in ., config/, ../config)")

	cmd.AddCommand(
		newQuery(flags),
		newFollow(flags),
		newWhoami(flags),
		newPublish(flags),
		newToken(flags),
		newKeygen(),
	)

	return cmd
}

// loadConfig reads the file named by --config, or the first file found in
// searchPaths. Without any file only defaults and the environment apply.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	if flags.configPath != "" {
		return config.Load(flags.configPath)
	}
	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return config.Load(path)
		}
	}

	return config.Load("")
}

// setup loads the configuration and builds a logger on the command's stderr.
func setup(cmd *cobra.Command, flags *rootFlags) (*config.Config, *slog.Logger, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logs.NewWithWriter(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

// connect dials relays, falling back to the configured tracking relays.
func connect(ctx context.Context, relays []string, cfg *config.Config, logger *slog.Logger) (*relay.Client, error) {
	if len(relays) == 0 {
		relays = cfg.Tracking.Relays
	}
	if len(relays) == 0 {
		relays = []string{entity.DefaultRelay}
	}

	client := relay.NewClient(logger)
	if err := client.Connect(ctx, relays); err != nil {
		return nil, err
	}

	return client, nil
}

// localKeys returns the key given on the command line, the configured
// identity, or nil when there is neither.
func localKeys(flagValue string, cfg *config.Config) (*identity.Keys, error) {
	secret := flagValue
	if secret == "" {
		secret = cfg.Identity.SecretKey
	}
	if secret == "" {
		return nil, nil //nolint:nilnil
	}

	keys, err := identity.ParseSecretKey(secret)
	if err != nil {
		return nil, errors.Wrap(err, "parse secret key")
	}

	return keys, nil
}
