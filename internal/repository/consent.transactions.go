package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joshuarp/consent-bridge/internal/domain"
	"github.com/joshuarp/consent-bridge/internal/domain/vo"
)

type TransactionRepository struct {
	db *sqlx.DB
}

type consentProviderRow struct {
	ConsentID string `db:"consent_id"`
	HIPID     string `db:"hip_id"`
	PatientID string `db:"patient_id"`
	Status    string `db:"status"`
}

type linkReferenceRow struct {
	LinkRefNumber string    `db:"link_reference"`
	HIPID         string    `db:"hip_id"`
	PatientID     string    `db:"patient_id"`
	ExpiresAt     time.Time `db:"expires_at"`
}

func NewTransactionRepository(db *sqlx.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// ProviderForConsent returns the provider holding the records covered by a
// granted consent artefact.
func (r *TransactionRepository) ProviderForConsent(ctx context.Context, consentID string) (domain.ConsentProvider, error) {
	consentID = strings.TrimSpace(consentID)
	if consentID == "" {
		return domain.ConsentProvider{}, vo.ErrInvalidRequest
	}

	const query = `
		SELECT consent_artefact_id AS consent_id, hip_id, patient_id, status
		FROM consent_artefact
		WHERE consent_artefact_id = $1
		LIMIT 1
	`

	var row consentProviderRow
	if err := r.db.GetContext(ctx, &row, query, consentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ConsentProvider{}, vo.ErrNotFound
		}
		return domain.ConsentProvider{}, fmt.Errorf("%w: provider for consent: %w", vo.ErrStoreOperationFailed, err)
	}

	if row.Status != "GRANTED" {
		return domain.ConsentProvider{}, vo.ErrNotFound
	}

	return domain.ConsentProvider{
		ConsentID: row.ConsentID,
		HIPID:     row.HIPID,
		PatientID: row.PatientID,
		Status:    row.Status,
	}, nil
}

func (r *TransactionRepository) RecordDiscoveryRequest(ctx context.Context, request domain.DiscoveryRequest) error {
	const query = `
		INSERT INTO discovery_request (transaction_id, request_id, patient_id, hip_id, date_created)
		VALUES ($1, $2, $3, $4, now())
	`

	if _, err := r.db.ExecContext(ctx, query, request.TransactionID, request.RequestID, request.PatientID, request.HIPID); err != nil {
		return fmt.Errorf("%w: record discovery request: %w", vo.ErrStoreOperationFailed, err)
	}
	return nil
}

// ProviderForLinkReference resolves a link reference issued during
// link initiation. Expired references are reported as ErrLinkReferenceExpired.
func (r *TransactionRepository) ProviderForLinkReference(ctx context.Context, linkRefNumber string) (domain.LinkReference, error) {
	linkRefNumber = strings.TrimSpace(linkRefNumber)
	if linkRefNumber == "" {
		return domain.LinkReference{}, vo.ErrInvalidRequest
	}

	const query = `
		SELECT link_reference, hip_id, patient_id, expires_at
		FROM link_reference
		WHERE link_reference = $1
		LIMIT 1
	`

	var row linkReferenceRow
	if err := r.db.GetContext(ctx, &row, query, linkRefNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.LinkReference{}, vo.ErrNotFound
		}
		return domain.LinkReference{}, fmt.Errorf("%w: provider for link reference: %w", vo.ErrStoreOperationFailed, err)
	}

	if !row.ExpiresAt.After(time.Now()) {
		return domain.LinkReference{}, vo.ErrLinkReferenceExpired
	}

	return domain.LinkReference{
		LinkRefNumber: row.LinkRefNumber,
		HIPID:         row.HIPID,
		PatientID:     row.PatientID,
		ExpiresAt:     row.ExpiresAt,
	}, nil
}

// RecordConsentRequest stores a consent request before it is sent, so a
// callback for it always finds the row.
func (r *TransactionRepository) RecordConsentRequest(ctx context.Context, request domain.ConsentRequest) error {
	const query = `
		INSERT INTO consent_request (request_id, hiu_id, patient_id, purpose, status, date_created)
		VALUES ($1, $2, $3, $4, $5, now())
	`

	if _, err := r.db.ExecContext(ctx, query, request.RequestID, request.HIUID, request.PatientID, request.Purpose, request.Status); err != nil {
		return fmt.Errorf("%w: record consent request: %w", vo.ErrStoreOperationFailed, err)
	}
	return nil
}

// AssignConsentRequestID keeps the id the consent manager gave the request
// sent as requestID.
func (r *TransactionRepository) AssignConsentRequestID(ctx context.Context, requestID, consentRequestID string) error {
	const query = `
		UPDATE consent_request
		SET consent_request_id = $2, date_modified = now()
		WHERE request_id = $1
	`

	return r.execOne(ctx, "assign consent request id", query, requestID, consentRequestID)
}

func (r *TransactionRepository) UpdateConsentRequestStatus(ctx context.Context, consentRequestID, status string) error {
	const query = `
		UPDATE consent_request
		SET status = $2, date_modified = now()
		WHERE consent_request_id = $1
	`

	return r.execOne(ctx, "update consent request status", query, consentRequestID, status)
}

// execOne runs an update that must touch a row; none is ErrNotFound.
func (r *TransactionRepository) execOne(ctx context.Context, operation, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", vo.ErrStoreOperationFailed, operation, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s: %w", vo.ErrStoreOperationFailed, operation, err)
	}
	if affected == 0 {
		return vo.ErrNotFound
	}
	return nil
}
