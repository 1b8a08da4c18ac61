package main

import (
	"fmt"
	"time"

	"sentinel/internal/infra/auth"

	"github.com/spf13/cobra"
)

const defaultTokenTTL = 365 * 24 * time.Hour

type tokenFlags struct {
	device string
	ttl    time.Duration
}

func newToken(root *rootFlags) *cobra.Command {
	var flags tokenFlags
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a device token for the agent",
		Long: `'token' issues the bearer token a device sends with POST /v1/locations.
It is signed with secretKey.device, which must match the agent's.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := setup(cmd, root)
			if err != nil {
				return err
			}
			tokens, err := auth.NewJWTService(cfg)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			token, err := tokens.GenerateDeviceToken(flags.device, flags.ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.device, "device", "", "Name of the device")
	cmd.Flags().DurationVar(&flags.ttl, "ttl", defaultTokenTTL, "Validity of the token")
	_ = cmd.MarkFlagRequired("device")

	return cmd
}
