package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port           string
	Env            string
	LogLevel       string
	RequestTimeout time.Duration

	// Upload handling
	UploadDir           string
	MaxUploadFiles      int
	MaxUploadSize       int64
	UploadSweepSchedule string
	UploadMaxAge        time.Duration

	// OCR
	OCRProvider        string
	OCRPreprocess      bool
	TesseractLanguage  string
	OCRSpaceAPIKey     string
	GoogleVisionAPIKey string

	// Translation
	TranslationProvider   string
	TranslationModel      string
	TranslationMaxRetries int
	GoogleTranslateAPIKey string
	OpenAIKey             string
	GroqKey               string
	DeepSeekKey           string
	GeminiKey             string
	ClaudeKey             string

	// Rendering
	FontPath string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:     os.Getenv("PORT"),
		Env:      os.Getenv("ENV"),
		LogLevel: os.Getenv("LOG_LEVEL"),

		RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", 5*time.Minute),

		UploadDir:           os.Getenv("UPLOAD_DIR"),
		MaxUploadFiles:      getEnvAsInt("MAX_UPLOAD_FILES", 50),
		MaxUploadSize:       getEnvAsInt64("MAX_UPLOAD_SIZE", 10*1024*1024),
		UploadSweepSchedule: os.Getenv("UPLOAD_SWEEP_SCHEDULE"),
		UploadMaxAge:        getEnvAsDuration("UPLOAD_MAX_AGE", time.Hour),

		OCRProvider:        os.Getenv("OCR_PROVIDER"),
		OCRPreprocess:      getEnvAsBool("OCR_PREPROCESS", true),
		TesseractLanguage:  os.Getenv("TESSERACT_LANGUAGE"),
		OCRSpaceAPIKey:     os.Getenv("OCR_SPACE_API_KEY"),
		GoogleVisionAPIKey: os.Getenv("GOOGLE_VISION_API_KEY"),

		TranslationProvider:   os.Getenv("TRANSLATION_PROVIDER"),
		TranslationModel:      os.Getenv("TRANSLATION_MODEL"),
		TranslationMaxRetries: getEnvAsInt("TRANSLATION_MAX_RETRIES", 3),
		GoogleTranslateAPIKey: os.Getenv("GOOGLE_TRANSLATE_API_KEY"),
		OpenAIKey:             os.Getenv("OPENAI_API_KEY"),
		GroqKey:               os.Getenv("GROQ_API_KEY"),
		DeepSeekKey:           os.Getenv("DEEPSEEK_API_KEY"),
		GeminiKey:             os.Getenv("GEMINI_API_KEY"),
		ClaudeKey:             os.Getenv("CLAUDE_API_KEY"),

		FontPath: os.Getenv("FONT_PATH"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.UploadSweepSchedule == "" {
		cfg.UploadSweepSchedule = "@every 15m"
	}
	if cfg.OCRProvider == "" {
		cfg.OCRProvider = "tesseract"
	}
	if cfg.TesseractLanguage == "" {
		cfg.TesseractLanguage = "eng"
	}
	if cfg.TranslationProvider == "" {
		cfg.TranslationProvider = "google"
	}
	if cfg.TranslationMaxRetries < 1 {
		cfg.TranslationMaxRetries = 3
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 5 * time.Minute
	}

	return cfg
}

func getEnvAsInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Warn().Str("key", key).Str("value", v).Msg("⚠️ invalid integer, using default")
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
		log.Warn().Str("key", key).Str("value", v).Msg("⚠️ invalid integer, using default")
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Warn().Str("key", key).Str("value", v).Msg("⚠️ invalid duration, using default")
	}
	return defaultValue
}
