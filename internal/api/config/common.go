package config

// Config is the configuration root.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Upload    UploadConfig    `mapstructure:"upload"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
	Bootstrap BootstrapConfig `mapstructure:"bootstrap"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port    int    `mapstructure:"port"`
	AppName string `mapstructure:"app_name"`
	AppHost string `mapstructure:"app_host"`
}

// DBConfig holds the database connection settings.
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// JWTConfig holds the token signing settings. Algorithm must name an HMAC
// method (HS256/HS384/HS512).
type JWTConfig struct {
	Secret               string `mapstructure:"secret"`
	Algorithm            string `mapstructure:"algorithm"`
	AccessExpireMinutes  int    `mapstructure:"access_expire_minutes"`
	RefreshExpireMinutes int    `mapstructure:"refresh_expire_minutes"`
	ResetExpireHours     int    `mapstructure:"reset_expire_hours"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig holds the post image upload settings.
type UploadConfig struct {
	Dir             string `mapstructure:"dir"`
	ThumbnailWidth  int    `mapstructure:"thumbnail_width"`
	ThumbnailHeight int    `mapstructure:"thumbnail_height"`
}

// SMTPConfig holds the outbound mail settings.
type SMTPConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	FromName string `mapstructure:"from_name"`
	StartTLS bool   `mapstructure:"starttls"`
}

// BootstrapConfig holds the startup seed settings.
type BootstrapConfig struct {
	SuperuserEmail    string `mapstructure:"superuser_email"`
	SuperuserPassword string `mapstructure:"superuser_password"`
}
