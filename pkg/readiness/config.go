package readiness

import "time"

// RedisConfig holds env-driven settings for a Redis readiness probe.
type RedisConfig struct {
	ConnectionURL string `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"` // ConnectionURL is the URL of the server. It should be in the format "redis://:password@localhost:6379/0".
}

// PostgresConfig holds env-driven settings for a Postgres readiness probe.
type PostgresConfig struct {
	ConnectionURL string `env:"PG_CONN_URL,required"` // ConnectionURL is the connection string to the database.
}

// MongoConfig holds env-driven settings for a MongoDB readiness probe.
type MongoConfig struct {
	ConnectionURL  string        `env:"MONGODB_URL,required"`                     // ConnectionURL is the URL of the deployment.
	ConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"` // ConnectTimeout bounds the driver's connection attempts.
}

// OpenSearchConfig holds env-driven settings for an OpenSearch readiness probe.
type OpenSearchConfig struct {
	Addresses []string `env:"OPENSEARCH_URLS,required" envSeparator:","` // Addresses is the list of cluster node URLs.
}

// HTTPConfig holds env-driven settings for an HTTP readiness probe.
type HTTPConfig struct {
	URL          string        `env:"READINESS_HTTP_URL,required"`            // URL is probed with GET; any 2xx status means ready.
	ProbeTimeout time.Duration `env:"READINESS_HTTP_TIMEOUT" envDefault:"3s"` // ProbeTimeout bounds a single probe attempt.
}

// TCPConfig holds env-driven settings for a TCP readiness probe.
type TCPConfig struct {
	Address string `env:"READINESS_TCP_ADDR,required"` // Address is dialed in the form "host:port".
}

// FileConfig holds env-driven settings for a file readiness probe.
type FileConfig struct {
	Path string `env:"READINESS_FILE_PATH,required"` // Path is the file or directory whose existence means ready.
}
