package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	JobsFile    string
	SeekersCSV  string
	FrontendURL string
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production when
	// the file does not exist)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		JobsFile:    getEnv("JOBS_FILE", "jobs.json"),
		SeekersCSV:  getEnv("SEEKERS_CSV", "job_seekers_data.csv"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
