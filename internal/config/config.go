package config

import "os"

type Config struct {
	ServerPort    string
	DataDir       string
	RankTablePath string
	GinMode       string
}

func Load() *Config {
	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8000"),
		DataDir:       getEnv("DATA_DIR", "data/mock"),
		RankTablePath: getEnv("RANK_TABLE_PATH", ""),
		GinMode:       getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
