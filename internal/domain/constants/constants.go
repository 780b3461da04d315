// Package constants contains values shared across layers.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types published to the message bus
const (
	EventTypeOrderPaid              = "order_paid"
	EventTypePasswordResetRequested = "password_reset_requested"
)

// DefaultGenre groups favorites whose product has no genre.
const DefaultGenre = "Outros"

// DefaultLanguage is used when a product is created without idioma.
const DefaultLanguage = "Português"

// LoginPath is where the storefront sends anonymous users hitting a restricted action.
const LoginPath = "/form-login"

// AvatarPrefix is the object key prefix for uploaded avatars.
const AvatarPrefix = "avatars/"
