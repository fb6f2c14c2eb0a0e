package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/consent-bridge/internal/domain"
	"github.com/joshuarp/consent-bridge/internal/domain/vo"
)

func newSQLXMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mockDB, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return sqlx.NewDb(sqlDB, "sqlmock"), mockDB
}

type TransactionRepositorySuite struct{ suite.Suite }

func (s *TransactionRepositorySuite) TestProviderForConsent_TableDriven() {
	repoErr := errors.New("connection reset")
	selectConsent := regexp.QuoteMeta("SELECT consent_artefact_id AS consent_id, hip_id, patient_id, status")

	tests := []struct {
		name      string
		consentID string
		setupMock func(sqlmock.Sqlmock)
		assertion func(domain.ConsentProvider, error)
	}{
		{
			name:      "invalid when consent id empty",
			consentID: "  ",
			assertion: func(_ domain.ConsentProvider, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrInvalidRequest)
			},
		},
		{
			name:      "not found when no artefact",
			consentID: "consent-1",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectQuery(selectConsent).
					WithArgs("consent-1").
					WillReturnError(sql.ErrNoRows)
			},
			assertion: func(_ domain.ConsentProvider, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrNotFound)
			},
		},
		{
			name:      "store failure is wrapped",
			consentID: "consent-1",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectQuery(selectConsent).
					WithArgs("consent-1").
					WillReturnError(repoErr)
			},
			assertion: func(_ domain.ConsentProvider, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrStoreOperationFailed)
				assert.ErrorIs(s.T(), err, repoErr)
			},
		},
		{
			name:      "revoked artefact is not found",
			consentID: "consent-1",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"consent_id", "hip_id", "patient_id", "status"}).
					AddRow("consent-1", "hip-1", "patient@ncg", "REVOKED")
				mockDB.ExpectQuery(selectConsent).WithArgs("consent-1").WillReturnRows(rows)
			},
			assertion: func(_ domain.ConsentProvider, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrNotFound)
			},
		},
		{
			name:      "success",
			consentID: "consent-1",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"consent_id", "hip_id", "patient_id", "status"}).
					AddRow("consent-1", "hip-1", "patient@ncg", "GRANTED")
				mockDB.ExpectQuery(selectConsent).WithArgs("consent-1").WillReturnRows(rows)
			},
			assertion: func(provider domain.ConsentProvider, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), "hip-1", provider.HIPID)
				assert.Equal(s.T(), "patient@ncg", provider.PatientID)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			db, mockDB := newSQLXMock(s.T())
			repo := NewTransactionRepository(db)
			if tc.setupMock != nil {
				tc.setupMock(mockDB)
			}

			provider, err := repo.ProviderForConsent(context.Background(), tc.consentID)
			tc.assertion(provider, err)
			require.NoError(s.T(), mockDB.ExpectationsWereMet())
		})
	}
}

func (s *TransactionRepositorySuite) TestRecordDiscoveryRequest_TableDriven() {
	insertDiscovery := regexp.QuoteMeta("INSERT INTO discovery_request (transaction_id, request_id, patient_id, hip_id, date_created)")
	request := domain.DiscoveryRequest{
		TransactionID: "txn-1",
		RequestID:     "req-1",
		PatientID:     "patient@ncg",
		HIPID:         "hip-1",
	}

	tests := []struct {
		name      string
		setupMock func(sqlmock.Sqlmock)
		assertion func(error)
	}{
		{
			name: "success",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectExec(insertDiscovery).
					WithArgs("txn-1", "req-1", "patient@ncg", "hip-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertion: func(err error) {
				require.NoError(s.T(), err)
			},
		},
		{
			name: "store failure is wrapped",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectExec(insertDiscovery).
					WithArgs("txn-1", "req-1", "patient@ncg", "hip-1").
					WillReturnError(errors.New("duplicate key"))
			},
			assertion: func(err error) {
				assert.ErrorIs(s.T(), err, vo.ErrStoreOperationFailed)
				assert.ErrorContains(s.T(), err, "duplicate key")
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			db, mockDB := newSQLXMock(s.T())
			repo := NewTransactionRepository(db)
			tc.setupMock(mockDB)

			tc.assertion(repo.RecordDiscoveryRequest(context.Background(), request))
			require.NoError(s.T(), mockDB.ExpectationsWereMet())
		})
	}
}

func (s *TransactionRepositorySuite) TestProviderForLinkReference_TableDriven() {
	selectLink := regexp.QuoteMeta("SELECT link_reference, hip_id, patient_id, expires_at")
	columns := []string{"link_reference", "hip_id", "patient_id", "expires_at"}

	tests := []struct {
		name      string
		reference string
		setupMock func(sqlmock.Sqlmock)
		assertion func(domain.LinkReference, error)
	}{
		{
			name:      "invalid when reference empty",
			reference: "",
			assertion: func(_ domain.LinkReference, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrInvalidRequest)
			},
		},
		{
			name:      "not found",
			reference: "ref-1",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectQuery(selectLink).WithArgs("ref-1").WillReturnError(sql.ErrNoRows)
			},
			assertion: func(_ domain.LinkReference, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrNotFound)
			},
		},
		{
			name:      "store failure is wrapped",
			reference: "ref-1",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectQuery(selectLink).WithArgs("ref-1").WillReturnError(errors.New("timeout"))
			},
			assertion: func(_ domain.LinkReference, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrStoreOperationFailed)
			},
		},
		{
			name:      "expired reference",
			reference: "ref-1",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).AddRow("ref-1", "hip-1", "patient@ncg", time.Now().Add(-time.Minute))
				mockDB.ExpectQuery(selectLink).WithArgs("ref-1").WillReturnRows(rows)
			},
			assertion: func(_ domain.LinkReference, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrLinkReferenceExpired)
			},
		},
		{
			name:      "success",
			reference: " ref-1 ",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).AddRow("ref-1", "hip-1", "patient@ncg", time.Now().Add(time.Hour))
				mockDB.ExpectQuery(selectLink).WithArgs("ref-1").WillReturnRows(rows)
			},
			assertion: func(reference domain.LinkReference, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), "hip-1", reference.HIPID)
				assert.Equal(s.T(), "patient@ncg", reference.PatientID)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			db, mockDB := newSQLXMock(s.T())
			repo := NewTransactionRepository(db)
			if tc.setupMock != nil {
				tc.setupMock(mockDB)
			}

			reference, err := repo.ProviderForLinkReference(context.Background(), tc.reference)
			tc.assertion(reference, err)
			require.NoError(s.T(), mockDB.ExpectationsWereMet())
		})
	}
}

func (s *TransactionRepositorySuite) TestRecordConsentRequest() {
	insertConsent := regexp.QuoteMeta("INSERT INTO consent_request (request_id, hiu_id, patient_id, purpose, status, date_created)")
	request := domain.ConsentRequest{
		RequestID: "req-1",
		HIUID:     "hiu-1",
		PatientID: "patient@ncg",
		Purpose:   "CAREMGT",
		Status:    vo.ConsentStatusRequested,
	}

	db, mockDB := newSQLXMock(s.T())
	repo := NewTransactionRepository(db)

	mockDB.ExpectExec(insertConsent).
		WithArgs("req-1", "hiu-1", "patient@ncg", "CAREMGT", "REQUESTED").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(s.T(), repo.RecordConsentRequest(context.Background(), request))

	mockDB.ExpectExec(insertConsent).WillReturnError(errors.New("duplicate key"))
	err := repo.RecordConsentRequest(context.Background(), request)
	assert.ErrorIs(s.T(), err, vo.ErrStoreOperationFailed)

	require.NoError(s.T(), mockDB.ExpectationsWereMet())
}

func (s *TransactionRepositorySuite) TestConsentRequestUpdates_TableDriven() {
	assignID := regexp.QuoteMeta("SET consent_request_id = $2, date_modified = now()")
	updateStatus := regexp.QuoteMeta("SET status = $2, date_modified = now()")

	tests := []struct {
		name      string
		call      func(*TransactionRepository) error
		setupMock func(sqlmock.Sqlmock)
		assertion func(error)
	}{
		{
			name: "assign consent request id",
			call: func(repo *TransactionRepository) error {
				return repo.AssignConsentRequestID(context.Background(), "req-1", "cr-1")
			},
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectExec(assignID).WithArgs("req-1", "cr-1").WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertion: func(err error) {
				require.NoError(s.T(), err)
			},
		},
		{
			name: "assign to unknown request",
			call: func(repo *TransactionRepository) error {
				return repo.AssignConsentRequestID(context.Background(), "req-1", "cr-1")
			},
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectExec(assignID).WithArgs("req-1", "cr-1").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertion: func(err error) {
				assert.ErrorIs(s.T(), err, vo.ErrNotFound)
			},
		},
		{
			name: "update status",
			call: func(repo *TransactionRepository) error {
				return repo.UpdateConsentRequestStatus(context.Background(), "cr-1", vo.ConsentStatusGranted)
			},
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectExec(updateStatus).WithArgs("cr-1", "GRANTED").WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertion: func(err error) {
				require.NoError(s.T(), err)
			},
		},
		{
			name: "update status store failure",
			call: func(repo *TransactionRepository) error {
				return repo.UpdateConsentRequestStatus(context.Background(), "cr-1", vo.ConsentStatusDenied)
			},
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectExec(updateStatus).WithArgs("cr-1", "DENIED").WillReturnError(errors.New("connection reset"))
			},
			assertion: func(err error) {
				assert.ErrorIs(s.T(), err, vo.ErrStoreOperationFailed)
				assert.ErrorContains(s.T(), err, "update consent request status")
			},
		},
		{
			name: "rows affected unavailable",
			call: func(repo *TransactionRepository) error {
				return repo.UpdateConsentRequestStatus(context.Background(), "cr-1", vo.ConsentStatusGranted)
			},
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectExec(updateStatus).WillReturnResult(sqlmock.NewErrorResult(errors.New("driver gave no count")))
			},
			assertion: func(err error) {
				assert.ErrorIs(s.T(), err, vo.ErrStoreOperationFailed)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			db, mockDB := newSQLXMock(s.T())
			repo := NewTransactionRepository(db)
			tc.setupMock(mockDB)

			tc.assertion(tc.call(repo))
			require.NoError(s.T(), mockDB.ExpectationsWereMet())
		})
	}
}

func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}
