package dto

// ErrorDefault is the uniform error envelope.
type ErrorDefault struct {
	Status      int          `json:"status"`
	Message     string       `json:"message"`
	FieldErrors []ErrorField `json:"fieldErrors,omitempty"`
}

type ErrorField struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Message is returned by operations with nothing else to report.
type Message struct {
	Message string `json:"message"`
}
