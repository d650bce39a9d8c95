package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/imobi-crm/internal/infra/database"
	"github.com/xavierca1/imobi-crm/internal/infra/http/handlers"
	"github.com/xavierca1/imobi-crm/internal/infra/http/middleware"
	"github.com/xavierca1/imobi-crm/internal/infra/integration/ai"
	"github.com/xavierca1/imobi-crm/internal/infra/integration/sms"
	"github.com/xavierca1/imobi-crm/internal/infra/integration/storage"
	"github.com/xavierca1/imobi-crm/internal/infra/integration/whatsapp"
	"github.com/xavierca1/imobi-crm/internal/infra/mail"
	"github.com/xavierca1/imobi-crm/internal/infra/queue"
	"github.com/xavierca1/imobi-crm/internal/infra/worker"
	"github.com/xavierca1/imobi-crm/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"), os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	propertyRepo := database.NewPropertyRepository(db)
	releaseRepo := database.NewReleaseRepository(db)

	// 2. Gateways e Adapters
	whatsappClient := whatsapp.NewClient()
	smsClient := sms.NewClient(
		os.Getenv("TWILIO_ACCOUNT_SID"), os.Getenv("TWILIO_AUTH_TOKEN"),
		os.Getenv("TWILIO_FROM"), os.Getenv("TWILIO_URL"),
	)
	storageClient := storage.NewClient(
		os.Getenv("STORAGE_URL"), os.Getenv("STORAGE_BUCKET"), os.Getenv("STORAGE_API_KEY"),
	)
	aiClient := ai.NewClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_URL"), os.Getenv("OPENAI_MODEL"))
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
	if mailPort == 0 {
		mailPort = 587
	}
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"),
		os.Getenv("MAIL_PASS"), os.Getenv("MAIL_FROM"),
	)

	// 3. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo)
	followUpUC := usecase.NewFollowUpUseCase(leadRepo)
	actionUC := usecase.NewFollowUpActionUseCase(leadRepo, whatsappClient)
	importUC := usecase.NewImportReleaseUseCase(releaseRepo, storageClient, aiClient)
	createPropertyUC := usecase.NewCreatePropertyUseCase(propertyRepo, storageClient, aiClient)

	whatsappBulkUC := usecase.NewBulkMessageUseCase(leadRepo, whatsappClient)
	whatsappBulkUC.RecordWhatsApp = true
	smsBulkUC := usecase.NewBulkMessageUseCase(leadRepo, smsClient)

	// 4. Workers
	// Consumidor da fila de lembretes (envia WhatsApp)
	queueWorker := queue.NewWorker(rabbitMQ.Ch, whatsappClient)
	go queueWorker.Start(queue.QueueName)

	// Avaliação diária de follow-ups (publica lembretes + digest por email)
	digestWorker := worker.NewDigestWorker(followUpUC, producer, mailSender, os.Getenv("DIGEST_TO"))
	go digestWorker.Start(context.Background())

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(createLeadUC, actionUC, leadRepo)
	followUpHandler := handlers.NewFollowUpHandler(followUpUC, whatsappBulkUC)
	importHandler := handlers.NewImportHandler(importUC, releaseRepo)
	propertyHandler := handlers.NewPropertyHandler(createPropertyUC, propertyRepo)
	messageHandler := handlers.NewMessageHandler(smsBulkUC, leadRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/leads", leadHandler.Capture)
	r.Get("/leads", leadHandler.List)
	r.Post("/leads/{id}/followup-action", leadHandler.ApplyAction)

	r.Get("/followups", followUpHandler.Evaluate)
	r.Post("/followups/notify-all", followUpHandler.NotifyAll)

	r.Post("/releases/import", importHandler.ParseSpreadsheet)
	r.Post("/releases", importHandler.CreateRelease)
	r.Get("/releases/{id}", importHandler.GetRelease)
	r.Delete("/releases/{id}", importHandler.DeleteRelease)
	r.Post("/releases/{id}/images", importHandler.AttachImages)

	r.Post("/properties", propertyHandler.Create)
	r.Get("/properties", propertyHandler.List)
	r.Get("/properties/{id}", propertyHandler.Get)
	r.Put("/properties/{id}", propertyHandler.Update)
	r.Delete("/properties/{id}", propertyHandler.Delete)

	r.Post("/messages/bulk-sms", messageHandler.BulkSMS)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 Server ImobiCRM rodando na porta :%s", port)
	http.ListenAndServe(":"+port, r)
}
