package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"sentinel/internal/domain/entity"
	"sentinel/internal/infra/nostr/identity"
	"sentinel/internal/location"
	"sentinel/internal/usecase"
	"sentinel/internal/usecase/impl"

	"github.com/spf13/cobra"
)

type queryFlags struct {
	pubkey      string
	relays      []string
	dTag        string
	decryptWith string
	limit       int
	timeout     time.Duration
	json        bool
}

func newQuery(root *rootFlags) *cobra.Command {
	var flags queryFlags
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Fetch the stored locations of an identity",
		Long: `'query' fetches the latest location events of an identity from the relays
and prints the decoded positions, newest first.

Encrypted events are decrypted with --decrypt-with, or with the configured
identity. Events that cannot be parsed or decrypted are logged and skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			author, err := identity.ParsePublicKey(flags.pubkey)
			if err != nil {
				return err
			}
			cfg, logger, err := setup(cmd, root)
			if err != nil {
				return err
			}
			keys, err := localKeys(flags.decryptWith, cfg)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			ctx, cancel := context.WithTimeout(cmd.Context(), flags.timeout)
			defer cancel()

			client, err := connect(ctx, flags.relays, cfg, logger)
			if err != nil {
				return err
			}
			defer client.Close() //nolint:errcheck

			var uc usecase.QueryUsecase
			if keys != nil {
				uc = impl.NewQueryService(client, keys, keys.PublicKey(), nil, logger)
			} else {
				uc = impl.NewQueryService(client, nil, "", nil, logger)
			}

			result, err := uc.Query(ctx, &usecase.QueryInput{
				Author: author,
				DTag:   flags.dTag,
				Limit:  flags.limit,
			})
			if err != nil {
				return err
			}

			if flags.json {
				return printJSON(cmd.OutOrStdout(), result)
			}
			printRecords(cmd.OutOrStdout(), result)

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.pubkey, "pubkey", "", "Identity to query (npub or hex)")
	cmd.Flags().StringSliceVar(&flags.relays, "relays", nil, "Relay URLs (default: configured relays)")
	cmd.Flags().StringVar(&flags.dTag, "d-tag", "", "Only locations of this device")
	cmd.Flags().StringVar(&flags.decryptWith, "decrypt-with", "",
		"Secret key (nsec or hex) for encrypted locations (default: configured identity)")
	cmd.Flags().IntVar(&flags.limit, "limit", usecase.DefaultQueryLimit, "Maximum number of events to fetch")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", defaultTimeout, "Timeout for the whole query")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Print records as JSON")
	_ = cmd.MarkFlagRequired("pubkey")

	return cmd
}

func printJSON(w io.Writer, result *usecase.QueryResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(struct {
		Records []*entity.LocationRecord `json:"records"`
		Skipped int                      `json:"skipped"`
	}{result.Records, result.Skipped})
}

func printRecords(w io.Writer, result *usecase.QueryResult) {
	if len(result.Records) == 0 {
		fmt.Fprintln(w, "No locations found")
	}
	for _, record := range result.Records {
		fmt.Fprintln(w, formatRecord(record))
	}
	if result.Skipped > 0 {
		fmt.Fprintf(w, "%d event(s) skipped\n", result.Skipped)
	}
}

func formatRecord(record *entity.LocationRecord) string {
	line := fmt.Sprintf("%s  %-9s %s  %.6f,%.6f",
		record.Timestamp.UTC().Format(time.RFC3339),
		record.Visibility,
		record.Geohash,
		record.Lat,
		record.Lon,
	)
	if width, height, err := location.CellSize(record.Geohash); err == nil {
		line += fmt.Sprintf("  cell %.0fx%.0fm", width, height)
	}
	if record.Accuracy != nil {
		line += fmt.Sprintf("  ±%.0fm", *record.Accuracy)
	}
	if record.DTag != "" {
		line += "  d=" + record.DTag
	}

	return line
}
