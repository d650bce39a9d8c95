package mail

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

const digestTemplate = `<h2>Follow-ups pendentes - {{.Date}}</h2>
<p>{{.Total}} lead(s) aguardando contato hoje.</p>
<table border="1" cellpadding="6" cellspacing="0">
  <tr><th>Lead</th><th>Telefone</th><th>Status</th><th>Prioridade</th><th>Dias de atraso</th></tr>
  {{range .Entries}}<tr><td>{{.Name}}</td><td>{{.Phone}}</td><td>{{.Status}}</td><td>{{.Priority}}</td><td>{{.DaysOverdue}}</td></tr>
  {{end}}
</table>`

// SendFollowUpDigest envia o resumo diário de leads vencidos para o
// corretor responsável.
func (s *EmailSender) SendFollowUpDigest(to string, entries []DigestEntry) error {
	data := digestData{
		Date:    time.Now().Format("02/01/2006"),
		Total:   len(entries),
		Entries: entries,
	}

	t, err := template.New("digest").Parse(digestTemplate)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("📋 %d follow-up(s) pendentes hoje", len(entries)))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
