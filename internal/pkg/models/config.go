package models

// Config holds the complete service configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	NATS        NATSConfig
	JWT         JWTConfig
	APIKey      APIKeyConfig
	Trips       TripsConfig
	UserService UserServiceConfig
	Logger      LoggerConfig
}

// AppConfig holds application level configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL string
}

// JWTConfig holds JWT validation configuration
type JWTConfig struct {
	Secret string
	Issuer string
}

// APIKeyConfig holds API keys for service-to-service calls
type APIKeyConfig struct {
	TripsService string
	AdminService string
}

// TripsConfig holds trip matching and booking configuration
type TripsConfig struct {
	SearchRadiusKm  float64
	TimeWindowHours int
	BookingRetries  int
	CacheTTLSeconds int
}

// UserServiceConfig holds the identity service client configuration
type UserServiceConfig struct {
	URL            string
	APIKey         string
	TimeoutSeconds int
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
