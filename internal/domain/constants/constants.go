// Package constants holds shared configuration constants.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"

	// PubSubProviderLocal publishes events to a local HTTP endpoint.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
