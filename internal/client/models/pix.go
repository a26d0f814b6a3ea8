package models

// Receiver is the result of a PIX key lookup. It is ephemeral: a new lookup
// always replaces the previous result.
type Receiver struct {
	FullName      string `json:"fullName"`
	Document      string `json:"document"`
	BankName      string `json:"bankName"`
	Agency        string `json:"agency"`
	AccountNumber string `json:"accountNumber"`
}

// TransferRequest is the body of POST /transfers/pix. Description is sent
// as null when the user left it empty.
type TransferRequest struct {
	TargetKey      string  `json:"targetKey"`
	Amount         float64 `json:"amount"`
	TransactionPin string  `json:"transactionPin"`
	Description    *string `json:"description"`
}

// TransferReceipt is returned by POST /transfers/pix.
type TransferReceipt struct {
	TransactionID string `json:"transactionId"`
}

// PixKeyType enumerates the key kinds the backend understands. Free-form
// types beyond the listed constants are allowed; only CPF, EMAIL and RANDOM
// have the server derive the value from the account holder.
type PixKeyType string

const (
	PixKeyCPF    PixKeyType = "CPF"
	PixKeyEmail  PixKeyType = "EMAIL"
	PixKeyPhone  PixKeyType = "PHONE"
	PixKeyRandom PixKeyType = "RANDOM"
)

// UsesAccountData reports whether the server derives the key value from the
// authenticated user. For these types the request must carry a null value.
func (t PixKeyType) UsesAccountData() bool {
	switch t {
	case PixKeyCPF, PixKeyEmail, PixKeyRandom:
		return true
	default:
		return false
	}
}

// PixKey is a registered key as returned by GET /pix-keys.
type PixKey struct {
	KeyType  PixKeyType `json:"keyType"`
	KeyValue string     `json:"keyValue"`
}

// PixKeyRequest is the body of POST /pix-keys. KeyValue must be nil when
// KeyType.UsesAccountData() holds, and a non-empty string otherwise.
type PixKeyRequest struct {
	KeyType  PixKeyType `json:"keyType"`
	KeyValue *string    `json:"keyValue"`
}
