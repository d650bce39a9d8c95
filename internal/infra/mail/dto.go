package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// DigestEntry é uma linha do resumo diário de follow-ups.
type DigestEntry struct {
	Name        string
	Phone       string
	Status      string
	Priority    string
	DaysOverdue int
}

type digestData struct {
	Date    string
	Total   int
	Entries []DigestEntry
}
