package main

import (
	"os"
	"time"

	"catering-platform/config"
	httpapi "catering-platform/internal/api/http"
	"catering-platform/internal/service"
	"catering-platform/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter("bookings")
	defer kafkaWriter.Close()

	repo := storage.NewPostgresRepository(db)
	cache := storage.NewRedisCache(rdb, 24*7*time.Hour)
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost"
	}
	qr := service.DefaultQRGenerator{BaseURL: baseURL}

	catering := service.NewCateringService(repo, repo)
	bookings := service.NewBookingService(repo, repo, repo, cache, publisher, qr, config.ClosedWeekday())

	handler := httpapi.NewHandler(catering, bookings)
	router := httpapi.NewRouter(handler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	httpapi.StartServer(":"+port, router)
}
