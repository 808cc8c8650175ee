package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	AWS       AWSConfig
	Gemini    GeminiConfig
	Extractor ExtractorConfig
	Matcher   MatcherConfig
	Storage   StorageConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type AWSConfig struct {
	Region    string
	AccessKey string
	SecretKey string
}

type GeminiConfig struct {
	APIKey string
}

type ExtractorConfig struct {
	Provider     string
	LanguageCode string
}

type MatcherConfig struct {
	MaxChunkChars     int
	MaxPhraseWords    int
	CoverageThreshold float64
	TopMatches        int
	MaxPhrases        int
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		AWS: AWSConfig{
			Region:    getEnv("AWS_REGION", "us-east-1"),
			AccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
		},
		Extractor: ExtractorConfig{
			Provider:     getEnv("EXTRACTOR_PROVIDER", "comprehend"),
			LanguageCode: getEnv("EXTRACTOR_LANGUAGE_CODE", "en"),
		},
		Matcher: MatcherConfig{
			MaxChunkChars:     getEnvAsInt("MATCHER_MAX_CHUNK_CHARS", 4500),
			MaxPhraseWords:    getEnvAsInt("MATCHER_MAX_PHRASE_WORDS", 6),
			CoverageThreshold: getEnvAsFloat("MATCHER_COVERAGE_THRESHOLD", 0.6),
			TopMatches:        getEnvAsInt("MATCHER_TOP_MATCHES", 10),
			MaxPhrases:        getEnvAsInt("MATCHER_MAX_PHRASES", 50),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
