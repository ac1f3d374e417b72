package dto

// InboundMessageRequest is the payload the WhatsApp gateway posts for each
// incoming message. Only the fields the router needs are mapped.
type InboundMessageRequest struct {
	SenderID string `json:"sender" binding:"required"`
	Text     string `json:"text"`
	PushName string `json:"pushName"` // Optional: sender display name
}

// InboundMessageResponse reports what the router did with the message.
type InboundMessageResponse struct {
	Replied bool `json:"replied"`
}
