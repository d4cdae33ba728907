package ingestion

// transactionDTO is the wire shape of the transaction creation response.
type transactionDTO struct {
	TransactionID string `json:"transaction_id"`
}
