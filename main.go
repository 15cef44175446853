package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"remix-gallery-server/modules/common/config"
	redisClient "remix-gallery-server/modules/common/redis"
	"remix-gallery-server/modules/common/storage"
	"remix-gallery-server/modules/enhance"
	"remix-gallery-server/modules/gallery"
	"remix-gallery-server/modules/progress"
	"remix-gallery-server/modules/remix"
	"remix-gallery-server/modules/upload"
	"remix-gallery-server/modules/veo"
	"remix-gallery-server/modules/worker"
)

var startTime = time.Now()

// enableCORS - allow the gallery frontend to call the API from any origin
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// healthCheck - liveness endpoint
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "remix-gallery-server",
	})
}

// metricsHandler - uptime, gallery size and job counters
func metricsHandler(store *gallery.Store, registry *remix.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts := registry.Counts()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"server": map[string]interface{}{
				"uptime":    time.Since(startTime).String(),
				"startTime": startTime,
			},
			"gallery": map[string]interface{}{
				"videos": store.Len(),
			},
			"jobs": map[string]interface{}{
				"pending":    counts[remix.StatusPending],
				"processing": counts[remix.StatusProcessing],
				"completed":  counts[remix.StatusCompleted],
				"failed":     counts[remix.StatusFailed],
			},
		})
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	ctx := context.Background()

	// gallery starts from the seed set on every boot, nothing is persisted
	store := gallery.NewStore()
	gallery.Seed(store)

	// storage sink: Supabase when configured, otherwise inline data URIs
	var sink storage.Sink = storage.DataURISink{}
	if cfg.StorageEnabled() {
		supabaseSink, err := storage.NewSupabaseSink(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to create Supabase sink: %v", err)
		}
		sink = supabaseSink
		log.Println("✅ Supabase storage enabled")
	} else {
		log.Println("ℹ️  Supabase not configured, serving videos as data URIs")
	}

	veoClient, err := veo.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to create Veo client: %v", err)
	}
	downloader := veo.NewHTTPDownloader(cfg.GeminiAPIKey)

	registry := remix.NewRegistry()
	hub := progress.NewHub()
	service := remix.NewService(store, registry, veoClient, downloader, sink, hub,
		time.Duration(cfg.PollSeconds)*time.Second)

	// job queue: Redis-backed with a worker goroutine, or in-process when
	// Redis is unreachable (single instance mode)
	var queue remix.JobQueue
	if rdb := redisClient.Connect(cfg); rdb != nil {
		log.Println("✅ Redis connected successfully")
		queue = remix.NewRedisQueue(rdb)
		go worker.StartWorker(ctx, rdb, service)
	} else {
		log.Println("⚠️  Redis unavailable, running jobs in process")
		queue = remix.NewInProcessQueue(service)
	}

	r := mux.NewRouter()
	r.Use(enableCORS)

	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")
	r.HandleFunc("/metrics", metricsHandler(store, registry)).Methods("GET")
	r.HandleFunc("/ws", hub.HandleWebSocket)

	gallery.NewHandler(store).RegisterRoutes(r)
	upload.NewHandler(store, sink).RegisterRoutes(r)
	remix.NewHandler(store, registry, queue).RegisterRoutes(r)
	enhance.NewHandler(enhance.NewService(cfg)).RegisterRoutes(r)

	log.Printf("🚀 Remix Gallery Server starting on port %s", cfg.Port)
	log.Printf("❤️  Health check: http://localhost:%s/health", cfg.Port)
	log.Printf("📊 Metrics: http://localhost:%s/metrics", cfg.Port)
	log.Printf("📡 Progress WebSocket: ws://localhost:%s/ws?job=<jobId>", cfg.Port)

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
