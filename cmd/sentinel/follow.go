package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"sync"
	"syscall"
	"time"

	"sentinel/config"
	"sentinel/internal/domain/constants"
	"sentinel/internal/domain/entity"
	"sentinel/internal/domain/repository"
	"sentinel/internal/domain/service"
	"sentinel/internal/infra/alert"
	"sentinel/internal/infra/metrics"
	infraMQTT "sentinel/internal/infra/mqtt"
	"sentinel/internal/infra/nostr/identity"
	"sentinel/internal/infra/persistence/postgres"
	"sentinel/internal/infra/pubsub"
	"sentinel/internal/location"
	"sentinel/internal/usecase"
	"sentinel/internal/usecase/impl"
	"sentinel/internal/util"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"
)

const mqttDisconnectQuiesce = 250

type followFlags struct {
	pubkey        string
	alertAfter    string
	webhook       string
	relays        []string
	dTag          string
	checkInterval time.Duration
	record        bool
}

func newFollow(root *rootFlags) *cobra.Command {
	var flags followFlags
	cmd := &cobra.Command{
		Use:   "follow",
		Short: "Follow an identity and alert when it goes silent",
		Long: `'follow' subscribes to the location events an identity publishes from now
on and prints every update. When no event arrives for --alert-after, one alert
is printed and sent to the configured alert providers; the next update re-arms
the alert.

--alert-after takes a number with an optional unit s, m or h. A bare number is
read as seconds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, err := identity.ParsePublicKey(flags.pubkey)
			if err != nil {
				return err
			}
			alertAfter, err := util.ParseDuration(flags.alertAfter)
			if err != nil {
				return err
			}
			cfg, logger, err := setup(cmd, root)
			if err != nil {
				return err
			}
			if flags.checkInterval == 0 {
				flags.checkInterval = cfg.Follow.CheckInterval
			}
			if flags.webhook != "" {
				cfg.Alert.Webhook = &config.WebhookConfig{URL: flags.webhook, Timeout: cfg.Alert.DispatchTimeout}
				if !slices.Contains(cfg.Alert.Providers, constants.AlertProviderWebhook) {
					cfg.Alert.Providers = append(cfg.Alert.Providers, constants.AlertProviderWebhook)
				}
			}
			keys, err := localKeys("", cfg)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := &syncWriter{w: cmd.OutOrStdout()}
			notifier, closeSinks, err := openNotifier(ctx, cfg, out, logger)
			if err != nil {
				return err
			}
			defer closeSinks()

			var repo repository.LocationRepository
			if flags.record {
				db, err := postgres.Open(cfg, logger)
				if err != nil {
					return err
				}
				defer postgres.Close(db) //nolint:errcheck
				if err := postgres.Migrate(ctx, db); err != nil {
					return err
				}
				repo = postgres.NewLocationRepository(db)
			}

			connectCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
			client, err := connect(connectCtx, flags.relays, cfg, logger)
			cancel()
			if err != nil {
				return err
			}
			defer client.Close() //nolint:errcheck

			m := metrics.New()
			deps := impl.FollowDeps{
				Relay:           client,
				Repo:            repo,
				Notifier:        notifier,
				MonitorRecorder: m,
				Recorder:        m,
				DispatchTimeout: cfg.Alert.DispatchTimeout,
				Logger:          logger,
			}
			if keys != nil {
				deps.Cipher = keys
				deps.Self = keys.PublicKey()
			}

			display := identity.NPub(target)
			fmt.Fprintf(out, "Following %s, alert after %s of silence\n",
				display, util.FormatDuration(alertAfter))

			printer := &updatePrinter{w: out}

			return impl.NewFollowService(deps).Follow(ctx, &usecase.FollowInput{
				Target:        target,
				Display:       display,
				DTag:          flags.dTag,
				AlertAfter:    alertAfter,
				CheckInterval: flags.checkInterval,
				Record:        flags.record,
			}, printer.print)
		},
	}

	cmd.Flags().StringVar(&flags.pubkey, "pubkey", "", "Identity to follow (npub or hex)")
	cmd.Flags().StringVar(&flags.alertAfter, "alert-after", "5m", "Silence that raises an alert, e.g. 30s, 5m, 1h")
	cmd.Flags().StringVar(&flags.webhook, "webhook", "", "Also POST alerts to this URL")
	cmd.Flags().StringSliceVar(&flags.relays, "relays", nil, "Relay URLs (default: configured relays)")
	cmd.Flags().StringVar(&flags.dTag, "d-tag", "", "Only locations of this device")
	cmd.Flags().DurationVar(&flags.checkInterval, "check-interval", 0,
		"How often silence is checked (default: follow.checkInterval)")
	cmd.Flags().BoolVar(&flags.record, "record", false, "Store received locations in Postgres")
	_ = cmd.MarkFlagRequired("pubkey")

	return cmd
}

// openNotifier prints alerts to w and delivers them to every configured
// provider. The returned func releases the provider clients.
func openNotifier(
	ctx context.Context,
	cfg *config.Config,
	w io.Writer,
	logger *slog.Logger,
) (service.AlertNotifier, func(), error) {
	var (
		sinks   alert.Sinks
		closers []func()
	)
	closeAll := func() {
		for _, c := range slices.Backward(closers) {
			c()
		}
	}

	if slices.Contains(cfg.Alert.Providers, constants.AlertProviderMQTT) && cfg.MQTT != nil {
		client, err := infraMQTT.Connect(cfg.MQTT, logger)
		if err != nil {
			return nil, nil, err
		}
		sinks.MQTT = client
		closers = append(closers, func() { disconnect(client) })
	}
	if slices.Contains(cfg.Alert.Providers, constants.AlertProviderPubSub) && cfg.Alert.PubSub != nil {
		publisher, err := pubsub.Open(ctx, cfg.Alert.PubSub, logger)
		if err != nil {
			closeAll()

			return nil, nil, err
		}
		sinks.Publisher = publisher
		closers = append(closers, func() { _ = publisher.Close() })
	}
	push, err := alert.NewPushService(ctx, cfg)
	if err != nil {
		closeAll()

		return nil, nil, err
	}
	sinks.Push = push

	configured, err := alert.New(cfg, sinks, logger)
	if err != nil {
		closeAll()

		return nil, nil, err
	}

	printer := alert.NewWriterNotifier(w)
	if configured.Len() == 0 {
		logger.Info("No alert providers configured, alerts are only printed")

		return printer, closeAll, nil
	}

	return alert.NewMultiNotifier(printer, configured), closeAll, nil
}

func disconnect(client pahomqtt.Client) {
	client.Disconnect(mqttDisconnectQuiesce)
}

// syncWriter serialises writes to the terminal. Updates are printed by the
// follow loop and alerts by the monitor's delivery goroutines.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.w.Write(p)
}

// updatePrinter prints each received location with the distance moved
// since the previous one.
type updatePrinter struct {
	w    io.Writer
	last *entity.LocationRecord
}

func (p *updatePrinter) print(record *entity.LocationRecord) {
	line := formatRecord(record)
	if p.last != nil {
		line += fmt.Sprintf("  moved %.0fm", location.Distance(p.last, record))
	}
	p.last = record
	fmt.Fprintln(p.w, line)
}
