// Package constants holds configuration values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Alert notifier providers
const (
	AlertProviderWebhook  = "webhook"
	AlertProviderFirebase = "firebase"
	AlertProviderPubSub   = "pubsub"
	AlertProviderMQTT     = "mqtt"
)

// Position sources of the agent
const (
	PositionSourceHTTP = "http"
	PositionSourceMQTT = "mqtt"
	PositionSourceCLI  = "cli"
)
