package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/schemesvc/fas-api/internal/domain"
	"github.com/schemesvc/fas-api/internal/service/eligibility"
	"github.com/schemesvc/fas-api/internal/store"
)

// SubmitApplicationRequest carries the fields of an application submission.
// SchemeApplied must already be validated against the known scheme names
// before the service is invoked; the service re-checks as a guard.
type SubmitApplicationRequest struct {
	Name          string
	DateOfBirth   time.Time
	SchemeApplied string
}

// ApplicationService adjudicates and records scheme applications.
type ApplicationService interface {
	// Submit resolves the applicant by exact (name, date of birth) match,
	// runs the eligibility gate, derives the outcome and persists exactly
	// one application record. No record is written on any failure path.
	//
	// Returns ErrNoMatchingApplicant when no applicant matches, and
	// domain.ErrUnknownScheme for a scheme name outside the known set.
	Submit(ctx context.Context, req SubmitApplicationRequest) (*domain.Application, error)

	// ListApplications returns all recorded applications.
	ListApplications(ctx context.Context) ([]domain.Application, error)
}

// ApplicationServiceImpl implements the ApplicationService interface
type ApplicationServiceImpl struct {
	applicants   store.ApplicantStore
	applications store.ApplicationStore
	gate         *eligibility.Service
	logger       *slog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applicants store.ApplicantStore,
	applications store.ApplicationStore,
	gate *eligibility.Service,
	logger *slog.Logger,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicants:   applicants,
		applications: applications,
		gate:         gate,
		logger:       logger.With("component", "application_service"),
	}
}

// Submit adjudicates one application. The resolve, gate and insert steps
// run strictly in sequence; they are deliberately not wrapped in a single
// transaction, matching the engine's documented concurrency model.
func (s *ApplicationServiceImpl) Submit(
	ctx context.Context,
	req SubmitApplicationRequest,
) (*domain.Application, error) {
	if !domain.IsKnownSchemeName(req.SchemeApplied) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownScheme, req.SchemeApplied)
	}

	applicant, err := s.applicants.FindByNameAndDOB(ctx, req.Name, req.DateOfBirth)
	if err != nil {
		if errors.Is(err, store.ErrApplicantNotFound) {
			s.logger.Debug("application submitted for unregistered applicant",
				"name", req.Name)
			return nil, ErrNoMatchingApplicant
		}
		s.logger.Error("failed to resolve applicant for application",
			"error", err,
			"name", req.Name)
		return nil, fmt.Errorf("failed to resolve applicant: %w", err)
	}

	gate, err := s.gate.CheckGate(ctx, applicant.ID)
	if err != nil {
		s.logger.Error("eligibility gate failed during adjudication",
			"error", err,
			"applicant_id", applicant.ID)
		return nil, fmt.Errorf("failed to check eligibility: %w", err)
	}

	// Outcome derives from the gate alone; whether the requested scheme
	// actually matches the applicant's household profile is not checked.
	// Flagged as an open product question in DESIGN.md - do not change
	// without confirming intended semantics.
	application := &domain.Application{
		ApplicantID:   applicant.ID,
		SchemeApplied: req.SchemeApplied,
		Name:          req.Name,
		DateOfBirth:   req.DateOfBirth,
		Eligible:      domain.EligibleNo,
		Status:        domain.ApplicationDenied,
	}
	if gate.Eligible {
		application.Eligible = domain.EligibleYes
		application.Status = domain.ApplicationApproved
	}

	if err := s.applications.Create(ctx, application); err != nil {
		s.logger.Error("failed to persist application",
			"error", err,
			"applicant_id", applicant.ID)
		return nil, fmt.Errorf("failed to persist application: %w", err)
	}

	s.logger.Info("application adjudicated",
		"application_id", application.ID,
		"applicant_id", applicant.ID,
		"scheme_applied", application.SchemeApplied,
		"status", application.Status)
	return application, nil
}

// ListApplications returns all recorded applications.
func (s *ApplicationServiceImpl) ListApplications(ctx context.Context) ([]domain.Application, error) {
	return s.applications.List(ctx)
}
