package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httpLayer "benefit-calculator/http"
	"benefit-calculator/pdf"
	"benefit-calculator/repository"
	"benefit-calculator/rules"
	"benefit-calculator/service"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	table, err := loadRuleTable(logger)
	if err != nil {
		logger.Fatal("failed to load rule table", zap.Error(err))
	}
	logger.Info("rule table loaded", zap.Int("combinations", table.Len()))

	quoteRepo := repository.NewQuoteRepositoryMemory()

	var cache repository.CacheRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = repository.NewRedisCache(addr)
		logger.Info("using redis quote cache", zap.String("addr", addr))
	} else {
		cache = repository.NewMockCache()
	}

	benefitService := service.NewBenefitService(table, quoteRepo, cache, logger)
	benefitHandler := httpLayer.NewBenefitHandler(benefitService, logger)

	advisorService := service.NewAdvisorService(logger)
	scenarioService := service.NewScenarioService(advisorService, logger)
	scenarioHandler := httpLayer.NewScenarioHandler(scenarioService, logger)

	proposalService := service.NewProposalService(scenarioService, pdf.NewChromiumRenderer(), logger)
	proposalHandler := httpLayer.NewProposalHandler(proposalService, logger)

	indexHandler := httpLayer.NewIndexHandler(logger)

	rateLimiter := httpLayer.NewRateLimiter(30, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.HandleFunc("/", indexHandler.ServeForm)
	mux.Handle(
		"/benefit/calculate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(benefitHandler.CalculateBenefit),
		),
	)
	mux.Handle(
		"/benefit/scenario",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(scenarioHandler.SimulatePlan),
		),
	)
	mux.Handle(
		"/benefit/proposal",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(proposalHandler.DownloadProposal),
		),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // proposal rendering can take a while
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("benefit calculator listening", zap.String("addr", "http://localhost:"+port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server failed to start", zap.Error(err))
		return
	case <-quit:
		logger.Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("error during shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

// loadRuleTable prefers an operator-supplied file, falling back to the table
// bundled into the binary.
func loadRuleTable(logger *zap.Logger) (*rules.Table, error) {
	if path := os.Getenv("RULES_PATH"); path != "" {
		logger.Info("loading rule table from file", zap.String("path", path))
		return rules.Load(path)
	}
	return rules.Default()
}
