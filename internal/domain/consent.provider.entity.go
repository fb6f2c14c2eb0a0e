package domain

import "time"

type ConsentProvider struct {
	ConsentID string
	HIPID     string
	PatientID string
	Status    string
}

type LinkReference struct {
	LinkRefNumber string
	HIPID         string
	PatientID     string
	ExpiresAt     time.Time
}

type DiscoveryRequest struct {
	TransactionID string
	RequestID     string
	PatientID     string
	HIPID         string
}

type ConsentRequest struct {
	RequestID string
	HIUID     string
	PatientID string
	Purpose   string
	Status    string
}
