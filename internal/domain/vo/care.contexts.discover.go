package vo

type PatientIdentifier struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type CareContext struct {
	ReferenceNumber string `json:"referenceNumber"`
	Display         string `json:"display"`
}

// DiscoveryQuery is what a patient submits to find their records at a provider.
type DiscoveryQuery struct {
	HIPID                 string              `json:"hipId"`
	Name                  string              `json:"name"`
	Gender                string              `json:"gender"`
	YearOfBirth           int                 `json:"yearOfBirth,omitempty"`
	VerifiedIdentifiers   []PatientIdentifier `json:"verifiedIdentifiers"`
	UnverifiedIdentifiers []PatientIdentifier `json:"unverifiedIdentifiers,omitempty"`
}

type DiscoveryPatient struct {
	ID                    string              `json:"id"`
	Name                  string              `json:"name"`
	Gender                string              `json:"gender"`
	YearOfBirth           int                 `json:"yearOfBirth,omitempty"`
	VerifiedIdentifiers   []PatientIdentifier `json:"verifiedIdentifiers"`
	UnverifiedIdentifiers []PatientIdentifier `json:"unverifiedIdentifiers,omitempty"`
}

type GatewayDiscoveryRequest struct {
	RequestID     string           `json:"requestId"`
	Timestamp     string           `json:"timestamp"`
	TransactionID string           `json:"transactionId"`
	Patient       DiscoveryPatient `json:"patient"`
}

type DiscoveredPatient struct {
	ReferenceNumber string        `json:"referenceNumber"`
	Display         string        `json:"display"`
	CareContexts    []CareContext `json:"careContexts"`
	MatchedBy       []string      `json:"matchedBy"`
}

// DiscoveryResult is the on-discover callback and also what the patient receives.
type DiscoveryResult struct {
	RequestID     string             `json:"requestId"`
	Timestamp     string             `json:"timestamp"`
	TransactionID string             `json:"transactionId"`
	Patient       *DiscoveredPatient `json:"patient,omitempty"`
	Error         *GatewayError      `json:"error,omitempty"`
	Resp          GatewayResponse    `json:"resp"`
}
