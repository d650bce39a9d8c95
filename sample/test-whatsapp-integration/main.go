package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/xavierca1/imobi-crm/internal/infra/integration/whatsapp"
)

// Smoke test manual da Cloud API: go run ./sample/test-whatsapp-integration
// com WHATSAPP_ACCESS_TOKEN, WHATSAPP_PHONE_ID e TEST_PHONE no .env.
func main() {
	godotenv.Load()

	to := os.Getenv("TEST_PHONE")
	if to == "" {
		log.Fatal("defina TEST_PHONE (E.164, ex: +5511999990000)")
	}

	client := whatsapp.NewClient()
	messageID, err := client.Send(context.Background(), to, "Teste de integração ImobiCRM ✅")
	if err != nil {
		log.Fatalf("❌ Falha no envio: %v", err)
	}

	log.Printf("✅ Mensagem enviada, ID: %s", messageID)
}
