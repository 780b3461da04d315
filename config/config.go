package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "2MB"
	defaultMinPasswordLength  = 6
	defaultFeaturedLimit      = 4
	defaultMaxAvatarBytes     = 1 << 20
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// PublicBaseURL is the storefront origin used to build links sent to users (password reset).
		PublicBaseURL    string   `json:"publicBaseUrl" yaml:"publicBaseUrl"`
		CORSAllowOrigins []string `json:"corsAllowOrigins" yaml:"corsAllowOrigins"`
		Timeouts         struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// RateLimit throttles the credential endpoints per client IP
	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	// Checkout configures the simulated payment step
	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	// QRCode configuration for the PIX placeholder image
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Storage configuration for avatar uploads
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Session configuration for the session event stream
	Session *SessionConfig `json:"session" yaml:"session"`
}

// SecretKeyConfig holds the HMAC secrets for each token type
type SecretKeyConfig struct {
	Access  string `json:"access" yaml:"access"`
	Refresh string `json:"refresh" yaml:"refresh"`
	Reset   string `json:"reset" yaml:"reset"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	MinPasswordLength int           `json:"minPasswordLength" yaml:"minPasswordLength"`
	AccessTokenTTL    time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
	RefreshTokenTTL   time.Duration `json:"refreshTokenTtl" yaml:"refreshTokenTtl"`
	ResetTokenTTL     time.Duration `json:"resetTokenTtl" yaml:"resetTokenTtl"`
	// AdminEmails receive the admin role on sign-in and may publish products
	AdminEmails []string `json:"adminEmails" yaml:"adminEmails"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RateLimitConfig defines a token bucket per client key
type RateLimitConfig struct {
	RequestsPerMinute int `json:"requestsPerMinute" yaml:"requestsPerMinute"`
	Burst             int `json:"burst" yaml:"burst"`
}

// CatalogConfig defines catalog listing behaviour
type CatalogConfig struct {
	FeaturedLimit int `json:"featuredLimit" yaml:"featuredLimit"`
}

// CheckoutConfig defines the payload encoded into the PIX placeholder
type CheckoutConfig struct {
	PixKey       string `json:"pixKey" yaml:"pixKey"`
	MerchantName string `json:"merchantName" yaml:"merchantName"`
	MerchantCity string `json:"merchantCity" yaml:"merchantCity"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// StorageConfig defines the blob bucket used for user uploads
type StorageConfig struct {
	// BucketURL is a gocloud.dev URL such as file:///var/pluma/uploads, mem://, s3://bucket or gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicBaseURL is prepended to object keys to build the URL stored on the profile
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	MaxAvatarBytes int64 `json:"maxAvatarBytes" yaml:"maxAvatarBytes"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// SessionConfig defines the session event broker
type SessionConfig struct {
	SubscriberBuffer  int           `json:"subscriberBuffer" yaml:"subscriberBuffer"`
	HeartbeatInterval time.Duration `json:"heartbeatInterval" yaml:"heartbeatInterval"`
	// PurgeInterval is how often expired refresh tokens and idle rate limit buckets are dropped
	PurgeInterval time.Duration `json:"purgeInterval" yaml:"purgeInterval"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
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
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never see a nil section.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.MinPasswordLength <= 0 {
		cfg.Auth.MinPasswordLength = defaultMinPasswordLength
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = 15 * time.Minute
	}
	if cfg.Auth.RefreshTokenTTL <= 0 {
		cfg.Auth.RefreshTokenTTL = 7 * 24 * time.Hour
	}
	if cfg.Auth.ResetTokenTTL <= 0 {
		cfg.Auth.ResetTokenTTL = 30 * time.Minute
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{RequestsPerMinute: 10, Burst: 5}
	}

	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}
	if cfg.Catalog.FeaturedLimit <= 0 {
		cfg.Catalog.FeaturedLimit = defaultFeaturedLimit
	}

	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{MerchantName: "PLUMA LIVRARIA", MerchantCity: "SAO PAULO"}
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{BucketURL: "mem://"}
	}
	if cfg.Storage.MaxAvatarBytes <= 0 {
		cfg.Storage.MaxAvatarBytes = defaultMaxAvatarBytes
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.SubscriberBuffer <= 0 {
		cfg.Session.SubscriberBuffer = 8
	}
	if cfg.Session.HeartbeatInterval <= 0 {
		cfg.Session.HeartbeatInterval = 25 * time.Second
	}
	if cfg.Session.PurgeInterval <= 0 {
		cfg.Session.PurgeInterval = time.Hour
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
