package vo

type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type HealthInformationQuery struct {
	ConsentID   string    `json:"consentId"`
	DateRange   DateRange `json:"dateRange"`
	DataPushURL string    `json:"dataPushUrl"`
}

type GatewayHealthInformationRequest struct {
	RequestID     string                 `json:"requestId"`
	Timestamp     string                 `json:"timestamp"`
	TransactionID string                 `json:"transactionId"`
	HIRequest     HealthInformationQuery `json:"hiRequest"`
}

type HealthInformationAcknowledgement struct {
	TransactionID string `json:"transactionId"`
	SessionStatus string `json:"sessionStatus"`
}

type HealthInformationResult struct {
	RequestID string                            `json:"requestId"`
	Timestamp string                            `json:"timestamp"`
	HIRequest *HealthInformationAcknowledgement `json:"hiRequest,omitempty"`
	Error     *GatewayError                     `json:"error,omitempty"`
	Resp      GatewayResponse                   `json:"resp"`
}

// HealthInformationRequestedEvent is handed to the data-flow consumers.
type HealthInformationRequestedEvent struct {
	TransactionID string                 `json:"transactionId"`
	ConsentID     string                 `json:"consentId"`
	HIPID         string                 `json:"hipId"`
	HIRequest     HealthInformationQuery `json:"hiRequest"`
}
