package dto

type NotificationResponse struct {
	ID           string `json:"id"`
	StockEntryID string `json:"stock_entry_id"`
	Message      string `json:"message"`
	IsRead       bool   `json:"is_read"`
	CreatedAt    string `json:"created_at"`
}

// StockUpdateMessage is the wire shape broadcast on the stock_updates channel.
type StockUpdateMessage struct {
	Message string `json:"message"`
}
