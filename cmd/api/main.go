package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/archive"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/document"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/ocr"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/ocr/tesseract"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/pipeline"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/render"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/translate"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/core/upload"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/modules/translator/handlers"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/ocr-translate-be/internal/shared/utils"

	_ "github.com/MuhamadAgungGumelar/ocr-translate-be/cmd/api/docs"
)

// @title OCR Translate API
// @version 1.0
// @description Extract text from images and PDFs, translate it, and redraw translated text onto images
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env, cfg.LogLevel)
	utils.LogInfo("🚀 Starting ocr-translate api", map[string]interface{}{"port": cfg.Port, "env": cfg.Env})

	ctx := context.Background()

	// Init OCR service (multi-provider support)
	var ocrProvider ocr.Provider
	switch cfg.OCRProvider {
	case "ocrspace":
		ocrProvider = ocr.NewOCRSpaceProvider(cfg.OCRSpaceAPIKey, cfg.TesseractLanguage)
	case "google":
		vision, err := ocr.NewGoogleVisionProvider(ctx, cfg.GoogleVisionAPIKey)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Google Vision")
		}
		defer vision.Close()
		ocrProvider = vision
	default:
		// Default to local Tesseract
		ocrProvider = tesseract.NewProvider(cfg.TesseractLanguage)
	}
	ocrService := ocr.NewService(ocrProvider, ocr.WithPreprocessing(cfg.OCRPreprocess))
	if !ocrService.SupportsWords() {
		utils.LogWarn("⚠️ OCR provider has no word boxes, /translate_images will skip every image", map[string]interface{}{
			"provider": ocrService.GetProviderName(),
		})
	}

	// Init translation engine
	engine, err := translate.NewEngine(ctx, &translate.ProviderConfig{
		Type:        translate.ProviderType(cfg.TranslationProvider),
		Model:       cfg.TranslationModel,
		GoogleKey:   cfg.GoogleTranslateAPIKey,
		OpenAIKey:   cfg.OpenAIKey,
		GroqKey:     cfg.GroqKey,
		DeepSeekKey: cfg.DeepSeekKey,
		GeminiKey:   cfg.GeminiKey,
		ClaudeKey:   cfg.ClaudeKey,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize translation engine")
	}
	translator := translate.NewRetrier(engine, translate.WithMaxRetries(cfg.TranslationMaxRetries))
	defer translator.Close()

	// Init upload staging
	localStorage, err := upload.NewLocalProvider(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize upload directory")
	}
	uploadService := upload.NewService(localStorage, cfg.MaxUploadSize)

	sweeper, err := upload.NewSweeper(uploadService.Dir(), cfg.UploadSweepSchedule, cfg.UploadMaxAge)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule upload sweeper")
	}
	sweeper.Start()
	defer sweeper.Stop()

	fonts := render.LoadFonts(cfg.FontPath)

	// Log provider info
	log.Info().Msgf("🔍 Using OCR provider: %s", ocrService.GetProviderName())
	log.Info().Msgf("🌐 Using translation provider: %s (max %d attempts)", translator.GetProviderName(), translator.MaxRetries())
	log.Info().Msgf("🔤 Using font: %s", fonts.Name())
	log.Info().Msgf("📁 Staging uploads in: %s", uploadService.Dir())

	p := pipeline.New(pipeline.Deps{
		OCR:        ocrService,
		Translator: translator,
		Documents:  document.NewExtractor(),
		Staging:    uploadService,
		Annotator:  render.NewAnnotator(translator, fonts),
	})

	// Init handlers
	translateHandler := handlers.NewTranslateHandler(p, archive.NewService(), cfg.MaxUploadFiles, cfg.MaxUploadSize)
	languageHandler := handlers.NewLanguageHandler()
	healthHandler := handlers.NewHealthHandler(handlers.Providers{
		OCR:         ocrService.GetProviderName(),
		Translation: translator.GetProviderName(),
		Storage:     uploadService.GetProviderName(),
		Font:        fonts.Name(),
	})

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName:   "OCR Translate API",
		BodyLimit: bodyLimit(cfg.MaxUploadFiles, cfg.MaxUploadSize),
	})

	// Middleware
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health check
	app.Get("/health", healthHandler.GetHealth)
	app.Get("/languages", languageHandler.ListLanguages)

	// Translation routes
	translateHandler.Register(app, cfg.RequestTimeout)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info().Msg("🛑 Shutting down...")
		if err := app.Shutdown(); err != nil {
			utils.LogError("❌ Shutdown failed", err, nil)
		}
	}()

	log.Info().Msgf("✅ ocr-translate api running at :%s", cfg.Port)
	log.Info().Msgf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

// bodyLimit leaves room for every allowed file at full size plus form
// overhead.
func bodyLimit(maxFiles int, maxSize int64) int {
	const overhead = 1 << 20
	limit := int64(max(maxFiles, 1))*maxSize + overhead
	if limit <= 0 || limit > 1<<31-1 {
		return 1<<31 - 1
	}
	return int(limit)
}
