package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReminderSender define o contrato do provedor que entrega o lembrete
// (WhatsApp em produção, mock nos testes).
type ReminderSender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

type Worker struct {
	Channel *amqp.Channel
	Sender  ReminderSender
}

func NewWorker(ch *amqp.Channel, sender ReminderSender) *Worker {
	return &Worker{
		Channel: ch,
		Sender:  sender,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload ReminderPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem podre. Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Lembrete de follow-up: %s (prioridade %s)", payload.Name, payload.Priority)

			if _, err := w.Sender.Send(context.Background(), payload.Phone, payload.Message); err != nil {
				log.Printf("❌ [WORKER] Falha ao enviar lembrete para %s: %s", payload.Phone, err)
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] Lembrete entregue para %s", payload.Name)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}
