package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sentinel/internal/domain/constants"
	"sentinel/internal/domain/entity"
	domainerrors "sentinel/internal/domain/errors"
	"sentinel/internal/infra/nostr/identity"
	"sentinel/internal/usecase/impl"

	"github.com/spf13/cobra"
)

type publishFlags struct {
	lat       float64
	lon       float64
	accuracy  float64
	precision int
	dTag      string
	relays    []string
	timeout   time.Duration
}

func newPublish(root *rootFlags) *cobra.Command {
	var flags publishFlags
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish one location",
		Long: `'publish' publishes a single location with the configured identity and
tracking settings. Encrypted tracking publishes one event per recipient.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup(cmd, root)
			if err != nil {
				return err
			}
			keys, err := localKeys("", cfg)
			if err != nil {
				return err
			}
			if keys == nil {
				return domainerrors.ErrMalformedIdentity.WithDetails("no identity configured")
			}

			recipients, err := identity.ParsePublicKeys(cfg.Tracking.Recipients)
			if err != nil {
				return err
			}
			opts := cfg.TrackingOptions(recipients)
			if cmd.Flags().Changed("precision") {
				opts.Precision = flags.precision
			}
			if flags.dTag != "" {
				opts.DTag = flags.dTag
			}
			if len(flags.relays) != 0 {
				opts.Relays = flags.relays
			}
			tracking, err := entity.NewTrackingConfig(opts)
			if err != nil {
				return err
			}

			pos := &entity.Position{
				Lat:        flags.lat,
				Lon:        flags.lon,
				ObservedAt: time.Now(),
				Source:     constants.PositionSourceCLI,
			}
			if cmd.Flags().Changed("accuracy") {
				pos.Accuracy = &flags.accuracy
			}
			cmd.SilenceUsage = true

			ctx, cancel := context.WithTimeout(cmd.Context(), flags.timeout)
			defer cancel()

			client, err := connect(ctx, tracking.Relays(), cfg, logger)
			if err != nil {
				return err
			}
			defer client.Close() //nolint:errcheck

			result, err := impl.NewTrackingService(tracking, keys, keys, client, nil, logger).ReportPosition(ctx, pos)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Published %s as kind %d: %s\n",
				result.Geohash, result.Kind, strings.Join(result.EventIDs, ", "))

			return nil
		},
	}

	cmd.Flags().Float64Var(&flags.lat, "lat", 0, "Latitude in degrees")
	cmd.Flags().Float64Var(&flags.lon, "lon", 0, "Longitude in degrees")
	cmd.Flags().Float64Var(&flags.accuracy, "accuracy", 0, "Accuracy in meters")
	cmd.Flags().IntVar(&flags.precision, "precision", entity.DefaultPrecision, "Geohash length, 1 to 12")
	cmd.Flags().StringVar(&flags.dTag, "d-tag", "", "Device identifier (default: tracking.dTag)")
	cmd.Flags().StringSliceVar(&flags.relays, "relays", nil, "Relay URLs (default: configured relays)")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", defaultTimeout, "Timeout for connecting and publishing")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}
