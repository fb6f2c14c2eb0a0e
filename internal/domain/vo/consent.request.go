package vo

type ConsentPurpose struct {
	Text string `json:"text"`
	Code string `json:"code"`
}

type ConsentParty struct {
	ID string `json:"id"`
}

type ConsentRequester struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier,omitempty"`
}

type ConsentPermission struct {
	AccessMode  string    `json:"accessMode"`
	DateRange   DateRange `json:"dateRange"`
	DataEraseAt string    `json:"dataEraseAt"`
}

// ConsentRequestDetail is what a health information user asks a patient to
// grant.
type ConsentRequestDetail struct {
	Purpose    ConsentPurpose    `json:"purpose"`
	Patient    ConsentParty      `json:"patient"`
	HIU        ConsentParty      `json:"hiu"`
	Requester  ConsentRequester  `json:"requester"`
	HITypes    []string          `json:"hiTypes"`
	Permission ConsentPermission `json:"permission"`
}

type GatewayConsentRequest struct {
	RequestID string               `json:"requestId"`
	Timestamp string               `json:"timestamp"`
	Consent   ConsentRequestDetail `json:"consent"`
}

type ConsentRequestReference struct {
	ID string `json:"id"`
}

// ConsentRequestResult is the on-init callback. ConsentRequest carries the
// id the consent manager assigned.
type ConsentRequestResult struct {
	RequestID      string                   `json:"requestId"`
	Timestamp      string                   `json:"timestamp"`
	ConsentRequest *ConsentRequestReference `json:"consentRequest,omitempty"`
	Error          *GatewayError            `json:"error,omitempty"`
	Resp           GatewayResponse          `json:"resp"`
}

type ConsentRequestCreatedEvent struct {
	ConsentRequestID string               `json:"consentRequestId"`
	RequestID        string               `json:"requestId"`
	Consent          ConsentRequestDetail `json:"consent"`
}

const (
	ConsentStatusRequested = "REQUESTED"
	ConsentStatusGranted   = "GRANTED"
	ConsentStatusDenied    = "DENIED"
	ConsentStatusRevoked   = "REVOKED"
	ConsentStatusExpired   = "EXPIRED"
)

type ConsentArtefactReference struct {
	ID string `json:"id"`
}

type ConsentNotificationDetail struct {
	ConsentRequestID string                     `json:"consentRequestId"`
	Status           string                     `json:"status"`
	ConsentArtefacts []ConsentArtefactReference `json:"consentArtefacts"`
}

// ConsentNotification is pushed by the gateway when the patient acts on a
// consent request. It answers no request of ours.
type ConsentNotification struct {
	RequestID    string                    `json:"requestId"`
	Timestamp    string                    `json:"timestamp"`
	Notification ConsentNotificationDetail `json:"notification"`
}

type ConsentArtefactGrantedEvent struct {
	ConsentRequestID string                     `json:"consentRequestId"`
	ConsentArtefacts []ConsentArtefactReference `json:"consentArtefacts"`
}
