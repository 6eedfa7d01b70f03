package models

// Channels a request can arrive on.
const (
	ChannelAPI      = "api"
	ChannelWhatsApp = "whatsapp"
	ChannelTelegram = "telegram"
)
