package vo

type LinkConfirmation struct {
	LinkRefNumber string `json:"linkRefNumber"`
	Token         string `json:"token"`
}

type GatewayLinkConfirmRequest struct {
	RequestID    string           `json:"requestId"`
	Timestamp    string           `json:"timestamp"`
	Confirmation LinkConfirmation `json:"confirmation"`
}

type LinkedPatient struct {
	ReferenceNumber string        `json:"referenceNumber"`
	Display         string        `json:"display"`
	CareContexts    []CareContext `json:"careContexts"`
}

type LinkConfirmationResult struct {
	RequestID string          `json:"requestId"`
	Timestamp string          `json:"timestamp"`
	Patient   *LinkedPatient  `json:"patient,omitempty"`
	Error     *GatewayError   `json:"error,omitempty"`
	Resp      GatewayResponse `json:"resp"`
}

// CareContextLinkedEvent is published once a link is confirmed.
type CareContextLinkedEvent struct {
	PatientID     string        `json:"patientId"`
	HIPID         string        `json:"hipId"`
	LinkRefNumber string        `json:"linkRefNumber"`
	CareContexts  []CareContext `json:"careContexts"`
}
