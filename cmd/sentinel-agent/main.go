package main

import (
	"context"
	"log/slog"
	"os"

	"sentinel/config"
	"sentinel/internal/delivery"
	"sentinel/internal/delivery/http"
	"sentinel/internal/delivery/http/middleware"
	"sentinel/internal/delivery/http/router/handler"
	"sentinel/internal/delivery/mqtt"
	"sentinel/internal/delivery/tracker"
	"sentinel/internal/delivery/watch"
	"sentinel/internal/domain/entity"
	"sentinel/internal/domain/lifecycle"
	"sentinel/internal/domain/repository"
	"sentinel/internal/domain/service"
	"sentinel/internal/errors"
	"sentinel/internal/infra/alert"
	"sentinel/internal/infra/auth"
	logs "sentinel/internal/infra/log"
	"sentinel/internal/infra/metrics"
	infraMQTT "sentinel/internal/infra/mqtt"
	"sentinel/internal/infra/nostr/identity"
	"sentinel/internal/infra/nostr/relay"
	"sentinel/internal/infra/persistence/postgres"
	"sentinel/internal/infra/pubsub"
	"sentinel/internal/infra/qrcode"
	"sentinel/internal/monitor"
	"sentinel/internal/usecase"
	"sentinel/internal/usecase/impl"
	"sentinel/internal/util"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		metrics.Module,
		infraMQTT.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		postgres.NewLocationRepository,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newIdentity,
			func(keys *identity.Keys) service.Signer { return keys },
			func(keys *identity.Keys) service.Cipher { return keys },
			newTrackingConfig,
			newRelayClient,
			newQRCodeService,
			newEventRecorder,
			newMonitorRecorder,
			auth.NewJWTService,
		),
		alert.Module,
	)
}

// newIdentity loads the agent's key. The agent cannot run without one.
func newIdentity(cfg *config.Config) (*identity.Keys, error) {
	if cfg.Identity.SecretKey == "" {
		return nil, errors.New("identity.secretKey is required for the agent")
	}

	return identity.ParseSecretKey(cfg.Identity.SecretKey)
}

// newTrackingConfig validates the tracking section once at startup.
func newTrackingConfig(cfg *config.Config) (entity.TrackingConfig, error) {
	recipients, err := identity.ParsePublicKeys(cfg.Tracking.Recipients)
	if err != nil {
		return entity.TrackingConfig{}, err
	}

	return entity.NewTrackingConfig(cfg.TrackingOptions(recipients))
}

// newRelayClient connects to the tracking relays on start.
func newRelayClient(lc fx.Lifecycle, tracking entity.TrackingConfig, logger *slog.Logger) service.RelayClient {
	client := relay.NewClient(logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			connectCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return client.Connect(connectCtx, tracking.Relays())
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client
}

func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newEventRecorder(m *metrics.Metrics) impl.EventRecorder {
	return m
}

func newMonitorRecorder(m *metrics.Metrics) monitor.Recorder {
	return m
}

// newFollowInput returns nil when the agent has no follow target.
func newFollowInput(cfg *config.Config) (*usecase.FollowInput, error) {
	if cfg.Follow.Target == "" {
		return nil, nil //nolint:nilnil
	}

	target, err := identity.ParsePublicKey(cfg.Follow.Target)
	if err != nil {
		return nil, err
	}
	alertAfter, err := util.ParseDuration(cfg.Follow.AlertAfter)
	if err != nil {
		return nil, err
	}

	return &usecase.FollowInput{
		Target:        target,
		Display:       identity.NPub(target),
		DTag:          cfg.Follow.DTag,
		AlertAfter:    alertAfter,
		CheckInterval: cfg.Follow.CheckInterval,
		Record:        cfg.Follow.Record,
	}, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTrackingService,
			impl.NewHistoryService,
			newFollowService,
			newFollowInput,
		),
	)
}

type followServiceParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	Relay           service.RelayClient
	Keys            *identity.Keys
	Notifier        service.AlertNotifier
	MonitorRecorder monitor.Recorder
	Recorder        impl.EventRecorder
	Repo            repository.LocationRepository
}

func newFollowService(params followServiceParams) usecase.FollowUsecase {
	return impl.NewFollowService(impl.FollowDeps{
		Relay:           params.Relay,
		Cipher:          params.Keys,
		Self:            params.Keys.PublicKey(),
		Repo:            params.Repo,
		Notifier:        params.Notifier,
		MonitorRecorder: params.MonitorRecorder,
		Recorder:        params.Recorder,
		DispatchTimeout: params.Config.Alert.DispatchTimeout,
		Logger:          params.Logger,
	})
}

func injectHandler() fx.Option {
	return fx.Provide(
		middleware.NewAuthMiddleware,
		handler.NewHealthHandler,
		handler.NewLocationHandler,
		handler.NewIdentityHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			http.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
		fx.Annotate(
			mqtt.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
		fx.Annotate(
			tracker.NewTracker,
			fx.ResultTags(`group:"deliveries"`),
		),
		fx.Annotate(
			watch.NewWatcher,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
