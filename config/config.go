package config

import (
	"encoding/json"
	"time"

	"github.com/kelseyhightower/envconfig"

	mongodriver "github.com/ONSdigital/dp-mongodb/v3/mongodb"
)

// MongoConfig holds the mongo driver configuration and the service URLs written into links
type MongoConfig struct {
	mongodriver.MongoDriverConfig

	InternshipAPIURL string `envconfig:"INTERNSHIP_API_URL"`
}

// Configuration structure which hold information for configuring the internship API
type Configuration struct {
	BindAddr                       string        `envconfig:"BIND_ADDR"`
	KafkaAddr                      []string      `envconfig:"KAFKA_ADDR"                       json:"-"`
	KafkaProducerMinBrokersHealthy int           `envconfig:"KAFKA_PRODUCER_MIN_BROKERS_HEALTHY"`
	KafkaVersion                   string        `envconfig:"KAFKA_VERSION"`
	KafkaSecProtocol               string        `envconfig:"KAFKA_SEC_PROTO"`
	KafkaSecCACerts                string        `envconfig:"KAFKA_SEC_CA_CERTS"`
	KafkaSecClientCert             string        `envconfig:"KAFKA_SEC_CLIENT_CERT"`
	KafkaSecClientKey              string        `envconfig:"KAFKA_SEC_CLIENT_KEY"             json:"-"`
	KafkaSecSkipVerify             bool          `envconfig:"KAFKA_SEC_SKIP_VERIFY"`
	StatusChangedTopic             string        `envconfig:"STATUS_CHANGED_TOPIC"`
	InternshipAPIURL               string        `envconfig:"INTERNSHIP_API_URL"`
	WebsiteURL                     string        `envconfig:"WEBSITE_URL"`
	ZebedeeURL                     string        `envconfig:"ZEBEDEE_URL"`
	ServiceAuthToken               string        `envconfig:"SERVICE_AUTH_TOKEN"               json:"-"`
	CertificateSigningKey          string        `envconfig:"CERTIFICATE_SIGNING_KEY"          json:"-"`
	CertificateTokenTTL            time.Duration `envconfig:"CERTIFICATE_TOKEN_TTL"`
	GracefulShutdownTimeout        time.Duration `envconfig:"GRACEFUL_SHUTDOWN_TIMEOUT"`
	HealthCheckInterval            time.Duration `envconfig:"HEALTHCHECK_INTERVAL"`
	HealthCheckCriticalTimeout     time.Duration `envconfig:"HEALTHCHECK_CRITICAL_TIMEOUT"`
	EnablePrivateEndpoints         bool          `envconfig:"ENABLE_PRIVATE_ENDPOINTS"`
	EnablePermissionsAuth          bool          `envconfig:"ENABLE_PERMISSIONS_AUTH"`
	DefaultMaxLimit                int           `envconfig:"DEFAULT_MAXIMUM_LIMIT"`
	DefaultLimit                   int           `envconfig:"DEFAULT_LIMIT"`
	DefaultOffset                  int           `envconfig:"DEFAULT_OFFSET"`
	OTExporterOTLPEndpoint         string        `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTServiceName                  string        `envconfig:"OTEL_SERVICE_NAME"`
	OTBatchTimeout                 time.Duration `envconfig:"OTEL_BATCH_TIMEOUT"`
	OtelEnabled                    bool          `envconfig:"OTEL_ENABLED"`
	MongoConfig
}

var cfg *Configuration

// Collection keys used to look up the actual collection names configured for this environment
const (
	InternshipsCollection      = "InternshipsCollection"
	ApplicationsCollection     = "ApplicationsCollection"
	ApplicationsLockCollection = "ApplicationsLockCollection"
	LogbookEntriesCollection   = "LogbookEntriesCollection"
	CertificatesCollection     = "CertificatesCollection"
	InternshipEventsCollection = "InternshipEventsCollection"
)

// Get the application config and returns the configuration structure, initialised with default values.
func Get() (*Configuration, error) {
	if cfg != nil {
		return cfg, nil
	}

	cfg = &Configuration{
		BindAddr:                       ":25700",
		KafkaAddr:                      []string{"localhost:9092", "localhost:9093", "localhost:9094"},
		KafkaProducerMinBrokersHealthy: 2,
		KafkaVersion:                   "1.0.2",
		StatusChangedTopic:             "application-status-changed",
		InternshipAPIURL:               "http://localhost:25700",
		WebsiteURL:                     "http://localhost:20000",
		ZebedeeURL:                     "http://localhost:8082",
		ServiceAuthToken:               "",
		CertificateSigningKey:          "",
		CertificateTokenTTL:            24 * 365 * time.Hour,
		GracefulShutdownTimeout:        5 * time.Second,
		HealthCheckInterval:            30 * time.Second,
		HealthCheckCriticalTimeout:     90 * time.Second,
		EnablePrivateEndpoints:         false,
		EnablePermissionsAuth:          false,
		DefaultMaxLimit:                1000,
		DefaultLimit:                   20,
		DefaultOffset:                  0,
		OTExporterOTLPEndpoint:         "localhost:4317",
		OTServiceName:                  "internship-api",
		OTBatchTimeout:                 5 * time.Second,
		OtelEnabled:                    false,
		MongoConfig: MongoConfig{
			MongoDriverConfig: mongodriver.MongoDriverConfig{
				ClusterEndpoint: "localhost:27017",
				Username:        "",
				Password:        "",
				Database:        "internships",
				Collections: map[string]string{
					InternshipsCollection:      "internships",
					ApplicationsCollection:     "applications",
					ApplicationsLockCollection: "applications_locks",
					LogbookEntriesCollection:   "logbook_entries",
					CertificatesCollection:     "certificates",
					InternshipEventsCollection: "internship_events",
				},
				ReplicaSet:                    "",
				IsStrongReadConcernEnabled:    false,
				IsWriteConcernMajorityEnabled: true,
				ConnectTimeout:                5 * time.Second,
				QueryTimeout:                  15 * time.Second,
				TLSConnectionConfig: mongodriver.TLSConnectionConfig{
					IsSSL: false,
				},
			},
			InternshipAPIURL: "http://localhost:25700",
		},
	}

	return cfg, envconfig.Process("", cfg)
}

// String is implemented to prevent sensitive fields being logged.
// The config is returned as JSON with sensitive fields omitted.
func (config Configuration) String() string {
	b, _ := json.Marshal(config)
	return string(b)
}
