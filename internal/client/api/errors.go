package api

// Kind classifies a normalized API error. Workflows never branch on it;
// it exists for logging and tests.
type Kind int

const (
	// KindTransport: the request could not be completed at all.
	KindTransport Kind = iota
	// KindParse: the response body was not valid JSON; the raw text is the message.
	KindParse
	// KindValidation: structured field-level errors, joined into one message.
	KindValidation
	// KindBusiness: a single-message server rejection (wrong PIN, duplicate key...).
	KindBusiness
	// KindHTTP: unclassified non-success status.
	KindHTTP
)

// Error is the single normalized shape every workflow consumes, regardless
// of the wire shape that produced it.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }
