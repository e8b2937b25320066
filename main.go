package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"Nirman/internal/auth"
	"Nirman/internal/calc/beam"
	"Nirman/internal/calc/boq"
	"Nirman/internal/calc/column"
	"Nirman/internal/calc/loads"
	"Nirman/internal/calc/premium/autodesign"
	"Nirman/internal/calc/premium/batch"
	"Nirman/internal/calc/premium/export"
	"Nirman/internal/calc/premium/importer"
	"Nirman/internal/calc/report"
	"Nirman/internal/calc/respond"
	"Nirman/internal/config"
	"Nirman/internal/logger"
)

var wg sync.WaitGroup

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respond.Error(w, http.StatusMethodNotAllowed, r.Method+" not allowed on "+r.URL.Path)
}

// HandleList registers every route on router.
func HandleList(router *mux.Router, cfg *config.Config, base *zap.Logger) {
	named := func(name string) *zap.Logger { return logger.Named(base, "handlers."+name) }
	gst := cfg.Estimate.GSTRate
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok", "version": version})
	}).Methods("GET")

	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	authEnv := &auth.Authenv{JWTkey: []byte(cfg.Auth.TokenKey), Log: named("auth")}

	api := router.PathPrefix("/api/tools").Subrouter()
	api.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	api.Use(limiter.LimitMiddleware)
	api.Use(authEnv.AuthMiddleware)

	beamH := &beam.Handler{Log: named("beam")}
	columnH := &column.Handler{Log: named("column")}
	boqH := &boq.Handler{Log: named("boq"), TaxRate: gst}
	loadsH := &loads.Handler{Log: named("loads")}
	autoH := &autodesign.Handler{Log: named("autodesign")}
	batchH := &batch.Handler{Log: named("batch")}
	importH := &importer.Handler{Log: named("importer")}
	exportH := &export.Handler{Log: named("export"), TaxRate: gst}
	reportH := &report.Handler{Log: named("report"), TaxRate: gst}

	api.HandleFunc("/beam/calc", beamH.Calc).Methods("POST")
	api.HandleFunc("/column/calc", columnH.Calc).Methods("POST")
	api.HandleFunc("/boq/calc", boqH.Calc).Methods("POST")
	api.HandleFunc("/boq/floors/calc", boqH.Floors).Methods("POST")
	api.HandleFunc("/loads/calc", loadsH.Calc).Methods("POST")

	api.HandleFunc("/beam/auto", autoH.Beam).Methods("POST")
	api.HandleFunc("/beam/batch", batchH.Beam).Methods("POST")
	api.HandleFunc("/column/batch", batchH.Column).Methods("POST")
	api.HandleFunc("/beam/import", importH.Beam).Methods("POST")
	api.HandleFunc("/boq/xlsx", exportH.BOQ).Methods("POST")

	api.HandleFunc("/beam/pdf", reportH.Beam).Methods("POST")
	api.HandleFunc("/column/pdf", reportH.Column).Methods("POST")
	api.HandleFunc("/boq/pdf", reportH.BOQ).Methods("POST")
}

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	envFile := flag.String("env", "", "path to a .env file")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		// logger level comes from config, so fall back to a default logger
		logger.Must(logger.New("")).Fatal("invalid configuration", zap.Error(err))
	}
	baseLogger := logger.Must(logger.New(cfg.LogLevel))
	defer baseLogger.Sync()
	log := logger.Named(baseLogger, "server")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	router := mux.NewRouter()
	HandleList(router, cfg, baseLogger)

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           CORS(router),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if cfg.Auth.TokenKey == "" {
		log.Warn("TOKEN_KEY not set; API is open")
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("server starting", zap.String("addr", cfg.Server.Addr), zap.Bool("tls", cfg.Server.TLS()))
		var err error
		if cfg.Server.TLS() {
			err = server.ListenAndServeTLS(cfg.Server.TLSCert, cfg.Server.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	wg.Wait()
	log.Info("server stopped")
}
