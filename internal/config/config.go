package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

type Config struct {
	// Record service
	RecordsBaseURL     string
	RecordsAPIKey      string
	AppIDInstructors   string
	AppIDParticipants  string
	AppIDRooms         string
	AppIDCourses       string
	AppIDRegistrations string
	RecordsTimeout     time.Duration
	RecordsMaxAttempts int

	// Dashboard
	Timezone string

	// HTTP
	HTTPAddr           string
	CORSAllowedOrigins []string

	// Logging
	LogLevel string
	LogDev   bool

	// SFTP
	SFTPHost                  string
	SFTPPort                  int
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPInsecureIgnoreHostKey bool
	SFTPKnownHosts            string
}

func Load() Config {
	return Config{
		RecordsBaseURL:     getenv("RECORDS_BASE_URL", "https://my.living-apps.de/rest"),
		RecordsAPIKey:      os.Getenv("RECORDS_API_KEY"),
		AppIDInstructors:   getenv("APP_ID_INSTRUCTORS", "6996e47c3e731e4d71f2cf5c"),
		AppIDParticipants:  getenv("APP_ID_PARTICIPANTS", "6996e47c8f074fc769467ec2"),
		AppIDRooms:         getenv("APP_ID_ROOMS", "6996e47ce6bae69b015e9a3e"),
		AppIDCourses:       getenv("APP_ID_COURSES", "6996e47d450b71a5c6daee7a"),
		AppIDRegistrations: getenv("APP_ID_REGISTRATIONS", "6996e47db1f7190844187749"),
		RecordsTimeout:     getenvDuration("RECORDS_TIMEOUT", 30*time.Second),
		RecordsMaxAttempts: getenvInt("RECORDS_MAX_ATTEMPTS", 1),

		Timezone: getenv("DASHBOARD_TIMEZONE", "Europe/Berlin"),

		HTTPAddr:           getenv("HTTP_ADDR", ":8080"),
		CORSAllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),

		LogLevel: getenv("LOG_LEVEL", "info"),
		LogDev:   getenvBool("LOG_DEV", false),

		SFTPHost:                  os.Getenv("SFTP_HOST"),
		SFTPPort:                  getenvInt("SFTP_PORT", 22),
		SFTPUser:                  os.Getenv("SFTP_USER"),
		SFTPPass:                  os.Getenv("SFTP_PASS"),
		SFTPDir:                   getenv("SFTP_DIR", "/inbound"),
		SFTPInsecureIgnoreHostKey: getenvBool("SFTP_INSECURE_IGNORE_HOSTKEY", true),
		SFTPKnownHosts:            getenv("SFTP_KNOWN_HOSTS", defaultKnownHosts()),
	}
}

// LoadDotenv reads .env (or the given files) into the environment.
// A missing default .env is not an error; existing variables win.
func LoadDotenv(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); os.IsNotExist(err) {
			return nil
		}
		files = []string{".env"}
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Wrap(err, "config: load dotenv")
	}
	return nil
}

// Validate checks the settings every entry point needs.
func (c Config) Validate() error {
	if strings.TrimSpace(c.RecordsBaseURL) == "" {
		return errors.New("config: RECORDS_BASE_URL is empty")
	}
	ids := map[string]string{
		"APP_ID_INSTRUCTORS":   c.AppIDInstructors,
		"APP_ID_PARTICIPANTS":  c.AppIDParticipants,
		"APP_ID_ROOMS":         c.AppIDRooms,
		"APP_ID_COURSES":       c.AppIDCourses,
		"APP_ID_REGISTRATIONS": c.AppIDRegistrations,
	}
	for _, name := range []string{"APP_ID_INSTRUCTORS", "APP_ID_PARTICIPANTS", "APP_ID_ROOMS", "APP_ID_COURSES", "APP_ID_REGISTRATIONS"} {
		if strings.TrimSpace(ids[name]) == "" {
			return errors.Newf("config: %s is empty", name)
		}
	}
	if c.RecordsTimeout <= 0 {
		return errors.New("config: RECORDS_TIMEOUT must be positive")
	}
	if c.RecordsMaxAttempts < 1 {
		return errors.New("config: RECORDS_MAX_ATTEMPTS must be at least 1")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves DASHBOARD_TIMEZONE.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "config: DASHBOARD_TIMEZONE %q", c.Timezone)
	}
	return loc, nil
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}

func getenvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return d
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultKnownHosts() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ssh", "known_hosts")
}
