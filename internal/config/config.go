package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Admin struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"` // raw; hashed at seed time
	} `yaml:"admin"`

	Session struct {
		Secret       string `yaml:"secret"`
		TTLHours     int    `yaml:"ttl_hours"`
		CookieName   string `yaml:"cookie_name"`
		CookieSecure bool   `yaml:"cookie_secure"`
		CookieDomain string `yaml:"cookie_domain"`
	} `yaml:"session"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	Storage struct {
		Type      string `yaml:"type"`       // local, b2
		BasePath  string `yaml:"base_path"`  // local only
		BaseURL   string `yaml:"base_url"`   // public URL base
		Bucket    string `yaml:"bucket"`     // b2 only
		KeyID     string `yaml:"key_id"`     // b2 only
		AppKey    string `yaml:"app_key"`    // b2 only
		Endpoint  string `yaml:"endpoint"`   // b2 S3-compatible endpoint
		Region    string `yaml:"region"`     // b2 only
	} `yaml:"storage"`

	Upload struct {
		MaxSize           int64    `yaml:"max_size"`
		AllowedExtensions []string `yaml:"allowed_extensions"`
		AllowedTypes      []string `yaml:"allowed_types"`
	} `yaml:"upload"`

	Mail struct {
		SMTPHost string `yaml:"smtp_host"`
		SMTPPort int    `yaml:"smtp_port"`
		SMTPUser string `yaml:"smtp_user"`
		SMTPPass string `yaml:"smtp_password"`
		From     string `yaml:"from"`
		To       string `yaml:"to"` // contact form destination
	} `yaml:"mail"`

	Site struct {
		PublicURL string `yaml:"public_url"`
	} `yaml:"site"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or environment variables when DATABASE_URL
// is set (the test path). A .env file is honored if present.
func LoadConfig() {
	_ = godotenv.Load()

	var cfg Config

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		loadFromEnv(&cfg, dbURL)
		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	if err != nil {
		log.Fatalf("Failed to open config file at %s: %v", configPath, err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
	}

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func loadFromEnv(cfg *Config, dbURL string) {
	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.Admin.Username = os.Getenv("ADMIN_USERNAME")
	cfg.Admin.Password = os.Getenv("ADMIN_PASSWORD")
	cfg.Session.Secret = os.Getenv("SESSION_SECRET")
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/api/v1/files"
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORS.AllowedOrigins = strings.Split(origins, ",")
	}
	cfg.Mail.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Mail.To = os.Getenv("CONTACT_EMAIL")
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Session.TTLHours == 0 {
		cfg.Session.TTLHours = 24
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "portfolio_session"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB per file
	}
	if len(cfg.Upload.AllowedExtensions) == 0 {
		cfg.Upload.AllowedExtensions = []string{
			".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg",
			".mp4", ".mov", ".webm",
			".pdf",
		}
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{
			"image/jpeg", "image/png", "image/gif", "image/webp", "image/svg+xml",
			"video/mp4", "video/quicktime", "video/webm",
			"application/pdf",
		}
	}
	if cfg.Admin.Username == "" {
		cfg.Admin.Username = "admin"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
