package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/schemesvc/fas-api/internal/domain"
	"github.com/schemesvc/fas-api/internal/store"
)

// ApplicantService provides applicant-related operations, including the
// atomic creation of an applicant together with their household.
type ApplicantService interface {
	// CreateWithHousehold validates and persists an applicant and their
	// household members in a single transaction. Either everything is
	// inserted or nothing is.
	CreateWithHousehold(
		ctx context.Context,
		applicant *domain.Applicant,
		household []domain.HouseholdMember,
	) error

	// GetApplicant retrieves an applicant by ID.
	GetApplicant(ctx context.Context, id int64) (*domain.Applicant, error)

	// ListApplicants returns all registered applicants.
	ListApplicants(ctx context.Context) ([]domain.Applicant, error)

	// GetHousehold returns the applicant's household members in insertion order.
	GetHousehold(ctx context.Context, applicantID int64) ([]domain.HouseholdMember, error)
}

// ApplicantServiceImpl implements the ApplicantService interface
type ApplicantServiceImpl struct {
	applicants store.ApplicantStore
	db         *sql.DB
	logger     *slog.Logger
}

// NewApplicantService creates a new ApplicantService
func NewApplicantService(
	applicants store.ApplicantStore,
	db *sql.DB,
	logger *slog.Logger,
) ApplicantService {
	return &ApplicantServiceImpl{
		applicants: applicants,
		db:         db,
		logger:     logger.With("component", "applicant_service"),
	}
}

// CreateWithHousehold validates everything up front, then inserts the
// applicant and each household member inside one transaction.
func (s *ApplicantServiceImpl) CreateWithHousehold(
	ctx context.Context,
	applicant *domain.Applicant,
	household []domain.HouseholdMember,
) error {
	if err := applicant.Validate(); err != nil {
		return err
	}
	for i := range household {
		if err := household[i].Validate(); err != nil {
			return err
		}
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.applicants.WithTx(tx)

		if err := txStore.Create(ctx, applicant); err != nil {
			return fmt.Errorf("failed to create applicant: %w", err)
		}

		for i := range household {
			household[i].ApplicantID = applicant.ID
			if err := txStore.CreateHouseholdMember(ctx, &household[i]); err != nil {
				return fmt.Errorf("failed to create household member: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		s.logger.Error("failed to create applicant with household",
			"error", err,
			"name", applicant.Name,
			"household_size", len(household))
		return err
	}

	s.logger.Info("applicant created with household",
		"applicant_id", applicant.ID,
		"household_size", len(household))
	return nil
}

// GetApplicant retrieves an applicant by ID.
func (s *ApplicantServiceImpl) GetApplicant(ctx context.Context, id int64) (*domain.Applicant, error) {
	return s.applicants.GetByID(ctx, id)
}

// ListApplicants returns all registered applicants.
func (s *ApplicantServiceImpl) ListApplicants(ctx context.Context) ([]domain.Applicant, error) {
	return s.applicants.List(ctx)
}

// GetHousehold returns the applicant's household members in insertion order.
func (s *ApplicantServiceImpl) GetHousehold(
	ctx context.Context,
	applicantID int64,
) ([]domain.HouseholdMember, error) {
	return s.applicants.GetHousehold(ctx, applicantID)
}
