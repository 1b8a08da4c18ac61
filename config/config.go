package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"sentinel/internal/domain/entity"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath            = "."
	defaultHTTPPort        = 8080
	defaultCheckInterval   = 10 * time.Second
	defaultDispatchTimeout = 15 * time.Second
	defaultWebhookTimeout  = 10 * time.Second
	defaultBodyLimit       = "64K"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
		// MaxRequestBodySize uses echo's BodyLimit format, e.g. "64K"
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Identity holds the key events are signed and decrypted with
	Identity IdentityConfig `json:"identity" yaml:"identity"`

	// Tracking configuration for publishing locations
	Tracking TrackingConfig `json:"tracking" yaml:"tracking"`

	// Follow configuration for the liveness monitor
	Follow FollowConfig `json:"follow" yaml:"follow"`

	// Alert configuration for alert sinks
	Alert AlertConfig `json:"alert" yaml:"alert"`

	// MQTT broker used for position ingestion and MQTT alerts
	MQTT *MQTTConfig `json:"mqtt" yaml:"mqtt"`

	// Postgres stores the location history; optional
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Device string `json:"device" yaml:"device"`
	} `json:"secretKey" yaml:"secretKey"`

	// QRCode configuration for identity QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// IdentityConfig defines the local nostr identity
type IdentityConfig struct {
	// SecretKey as nsec or hex; prefer the IDENTITY_SECRETKEY env var
	SecretKey string `json:"secretKey" yaml:"secretKey"`
}

// TrackingConfig defines how locations are published
type TrackingConfig struct {
	Interval     time.Duration `json:"interval" yaml:"interval"`
	Precision    int           `json:"precision" yaml:"precision"`
	Encrypted    bool          `json:"encrypted" yaml:"encrypted"`
	Recipients   []string      `json:"recipients" yaml:"recipients"`
	Relays       []string      `json:"relays" yaml:"relays"`
	DTag         string        `json:"dTag" yaml:"dTag"`
	Expiration   time.Duration `json:"expiration" yaml:"expiration"`
	NoExpiration bool          `json:"noExpiration" yaml:"noExpiration"`
}

// FollowConfig defines the liveness monitor
type FollowConfig struct {
	// Target is watched by the agent when set (npub or hex)
	Target string `json:"target" yaml:"target"`
	DTag   string `json:"dTag" yaml:"dTag"`
	// AlertAfter uses the <number>[s|m|h] form, e.g. "5m"
	AlertAfter    string        `json:"alertAfter" yaml:"alertAfter"`
	CheckInterval time.Duration `json:"checkInterval" yaml:"checkInterval"`
	// Record stores received locations when Postgres is configured
	Record bool `json:"record" yaml:"record"`
}

// AlertConfig selects and configures alert sinks
type AlertConfig struct {
	// Providers: "webhook", "firebase", "pubsub", "mqtt"
	Providers       []string        `json:"providers" yaml:"providers"`
	DispatchTimeout time.Duration   `json:"dispatchTimeout" yaml:"dispatchTimeout"`
	Webhook         *WebhookConfig  `json:"webhook" yaml:"webhook"`
	Firebase        *FirebaseConfig `json:"firebase" yaml:"firebase"`
	PubSub          *PubSubConfig   `json:"pubsub" yaml:"pubsub"`
	MQTTTopic       string          `json:"mqttTopic" yaml:"mqttTopic"`
}

// WebhookConfig defines the webhook alert sink
type WebhookConfig struct {
	URL     string        `json:"url" yaml:"url"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string   `json:"projectId" yaml:"projectId"`
	CredentialsPath string   `json:"credentialsPath" yaml:"credentialsPath"`
	DeviceTokens    []string `json:"deviceTokens" yaml:"deviceTokens"`
}

// PubSubConfig defines Google Pub/Sub configuration for alert events
type PubSubConfig struct {
	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`
	// LocalEndpoint replaces Google Pub/Sub with push-style HTTP POSTs for development
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// MQTTConfig defines the MQTT broker connection
type MQTTConfig struct {
	Broker   string `json:"broker" yaml:"broker"`
	ClientID string `json:"clientId" yaml:"clientId"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	// PositionTopic is subscribed for OwnTracks-style positions; empty disables ingestion
	PositionTopic string `json:"positionTopic" yaml:"positionTopic"`
	QoS           byte   `json:"qos" yaml:"qos"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	return loadFile[T](koanfInstance, configFile)
}

// LoadFile loads a single yaml file; an empty path loads environment
// variables only.
func LoadFile[T any](configFile string) (*T, error) {
	return loadFile[T](koanf.New("."), configFile)
}

func loadFile[T any](koanfInstance *koanf.Koanf, configFile string) (*T, error) {
	cfg := new(T)

	// Load YAML config file
	if configFile != "" {
		if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", configFile)
		}
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: TRACKING_DTAG -> tracking.dTag (not tracking.dtag)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", configFile)
	}

	return cfg, nil
}

// New loads config.yaml for the agent.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

// Load loads the CLI configuration. path may be empty, in which case only
// defaults and environment variables apply.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile[Config](path)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Env.ServiceName == "" {
		c.Env.ServiceName = "sentinel"
	}
	if c.Env.Log.Level == "" {
		c.Env.Log.Level = "info"
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = defaultHTTPPort
	}
	if c.HTTP.MaxRequestBodySize == "" {
		c.HTTP.MaxRequestBodySize = defaultBodyLimit
	}
	if c.Tracking.Interval == 0 {
		c.Tracking.Interval = entity.DefaultInterval
	}
	if c.Tracking.Precision == 0 {
		c.Tracking.Precision = entity.DefaultPrecision
	}
	if c.Tracking.DTag == "" {
		c.Tracking.DTag = entity.DefaultDTag
	}
	if len(c.Tracking.Relays) == 0 {
		c.Tracking.Relays = []string{entity.DefaultRelay}
	}
	if c.Follow.CheckInterval == 0 {
		c.Follow.CheckInterval = defaultCheckInterval
	}
	if c.Alert.DispatchTimeout == 0 {
		c.Alert.DispatchTimeout = defaultDispatchTimeout
	}
	if c.Alert.Webhook != nil && c.Alert.Webhook.Timeout == 0 {
		c.Alert.Webhook.Timeout = defaultWebhookTimeout
	}
	if c.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		c.Postgres.Replicas = buildReplicasFromEnv()
	}
}

// TrackingOptions converts the raw tracking section. Recipients must already
// be hex public keys.
func (c *Config) TrackingOptions(recipients []string) entity.TrackingOptions {
	return entity.TrackingOptions{
		Interval:     c.Tracking.Interval,
		Precision:    c.Tracking.Precision,
		Encrypted:    c.Tracking.Encrypted,
		Recipients:   recipients,
		Relays:       c.Tracking.Relays,
		DTag:         c.Tracking.DTag,
		Expiration:   c.Tracking.Expiration,
		NoExpiration: c.Tracking.NoExpiration,
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
