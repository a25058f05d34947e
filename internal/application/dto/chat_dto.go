package dto

// SendMessageRequest mensaje saliente: texto, imágenes o ambos.
type SendMessageRequest struct {
	Text   string   `json:"text,omitempty"`
	Images []string `json:"images,omitempty"`
}

// MessageResponse entrada del registro de chat.
type MessageResponse struct {
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

// IdentityResponse identidad visible del chat; campos vacíos si nunca se guardó.
type IdentityResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
