package entity

// ChatMessage entrada del registro de chat local (append-only, un solo dispositivo).
// Time y Date son las representaciones legibles que muestra la app.
type ChatMessage struct {
	ID     string   `json:"id"`
	Sender string   `json:"sender"`
	Text   string   `json:"text,omitempty"`
	Images []string `json:"images,omitempty"`
	Time   string   `json:"time"`
	Date   string   `json:"date"`
	IsMe   bool     `json:"isMe"`
	Avatar string   `json:"avatar"`
	Email  string   `json:"email,omitempty"`
}
