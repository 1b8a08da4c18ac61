package main

import (
	"fmt"
	"os"

	"sentinel/internal/errors"
	"sentinel/internal/infra/nostr/identity"
	"sentinel/internal/infra/qrcode"

	"github.com/spf13/cobra"
)

const (
	qrSize  = 256
	qrLevel = "M"
)

type whoamiFlags struct {
	qrPath   string
	terminal bool
}

func newWhoami(root *rootFlags) *cobra.Command {
	var flags whoamiFlags
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the configured identity",
		Long: `'whoami' prints the public key of the configured identity. With --qr it
also writes a QR code of "nostr:<npub>" so that another device can follow it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := setup(cmd, root)
			if err != nil {
				return err
			}
			keys, err := localKeys("", cfg)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			out := cmd.OutOrStdout()
			if keys == nil {
				fmt.Fprintln(out, "No identity configured")

				return nil
			}
			fmt.Fprintf(out, "npub: %s\nhex:  %s\n", keys.NPub(), keys.PublicKey())

			qr := qrcode.NewQRCodeService(qrSize, qrLevel)
			if cfg.QRCode != nil {
				qr = qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
			}
			if flags.qrPath != "" {
				png, err := qr.GenerateIdentityQR(keys.NPub())
				if err != nil {
					return err
				}
				if err := os.WriteFile(flags.qrPath, png, 0o600); err != nil {
					return errors.Wrap(err, "write QR code")
				}
				fmt.Fprintf(out, "QR code written to %s\n", flags.qrPath)
			}
			if flags.terminal {
				art, err := qr.RenderIdentityQR(keys.NPub())
				if err != nil {
					return err
				}
				fmt.Fprint(out, art)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.qrPath, "qr", "", "Write a PNG QR code of the identity to this file")
	cmd.Flags().BoolVar(&flags.terminal, "terminal", false, "Draw the QR code in the terminal")

	return cmd
}

func newKeygen() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new identity",
		Long: `'keygen' prints a new secret key. Store it in identity.secretKey or the
IDENTITY_SECRETKEY environment variable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			keys := identity.Generate()
			nsec, err := keys.NSec()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "nsec: %s\nnpub: %s\n", nsec, keys.NPub())

			return nil
		},
	}
}
