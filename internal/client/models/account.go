package models

// Dashboard is returned by GET /accounts/dashboard.
type Dashboard struct {
	FullName      string  `json:"fullName"`
	Balance       float64 `json:"balance"`
	AccountNumber string  `json:"accountNumber"`
	Agency        string  `json:"agency"`
}

// Direction classifies a transaction relative to the account holder.
type Direction string

const (
	DirectionInbound  Direction = "INBOUND"
	DirectionOutbound Direction = "OUTBOUND"
)

// Inbound reports whether the transaction is a credit.
func (d Direction) Inbound() bool { return d == DirectionInbound }

// Transaction is a server-sourced, read-only statement entry. The server
// owns the ordering; the client never re-sorts.
type Transaction struct {
	Type           string    `json:"type"`
	Direction      Direction `json:"direction"`
	Amount         float64   `json:"amount"`
	Description    string    `json:"description,omitempty"`
	Date           string    `json:"date"`
	OtherPartyName string    `json:"otherPartyName,omitempty"`
}
