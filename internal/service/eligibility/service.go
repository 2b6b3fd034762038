// Package eligibility implements the scheme eligibility engine: the
// household classifier, the employment-status gate, and the scheme matcher.
package eligibility

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/schemesvc/fas-api/internal/domain"
	"github.com/schemesvc/fas-api/internal/platform/logger"
	"github.com/schemesvc/fas-api/internal/store"
)

// ErrNotEligible indicates the applicant exists but fails the eligibility
// gate. Callers must keep it distinct from store.ErrApplicantNotFound.
var ErrNotEligible = errors.New("applicant not eligible for schemes")

// ReasonNotUnemployed is the gate failure reason reported to callers.
const ReasonNotUnemployed = "Applicant is not unemployed and is not eligible for schemes."

// Seeded scheme IDs the matcher selects between. Scheme selection is a
// binary switch on the household classifier's output rather than a generic
// walk of stored criteria rows; the stored criteria remain authoritative
// for scheme content only. See DESIGN.md before generalizing.
const (
	retrenchmentSchemeID       = 1 // no qualifying school-age child
	retrenchmentFamilySchemeID = 2 // has qualifying school-age child
)

// schemeDescription is attached to every matched scheme summary.
const schemeDescription = "Financial assistance for retrenched workers"

// GateResult is the outcome of the employment-status precondition.
// Reason is empty when Eligible is true.
type GateResult struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

// SchemeSummary is one matched scheme with its rendered benefit lines.
type SchemeSummary struct {
	SchemeName  string   `json:"scheme_name"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
}

// Result is the payload of an eligibility query.
type Result struct {
	ApplicantID     int64           `json:"applicant_id"`
	EligibleSchemes []SchemeSummary `json:"eligible_schemes"`
}

// Service evaluates applicant eligibility and matches schemes. It holds no
// mutable state of its own; all shared state lives in the stores.
type Service struct {
	applicants store.ApplicantStore
	schemes    store.SchemeStore
	logger     *slog.Logger
	timeFunc   func() time.Time // Injectable for testing the classifier's year arithmetic
}

// NewService creates a new eligibility Service.
// If logger is nil, a default logger will be used.
func NewService(applicants store.ApplicantStore, schemes store.SchemeStore, logger *slog.Logger) *Service {
	if applicants == nil {
		panic("applicants store cannot be nil")
	}
	if schemes == nil {
		panic("schemes store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		applicants: applicants,
		schemes:    schemes,
		logger:     logger.With(slog.String("component", "eligibility_service")),
		timeFunc:   time.Now,
	}
}

// CheckGate runs the employment-status precondition for one applicant.
// Returns store.ErrApplicantNotFound if the applicant does not exist;
// a failing gate is reported through the result, not the error.
func (s *Service) CheckGate(ctx context.Context, applicantID int64) (*GateResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	applicant, err := s.applicants.GetByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	if applicant.EmploymentStatus != domain.EmploymentStatusUnemployed {
		log.Debug("applicant failed eligibility gate",
			slog.Int64("applicant_id", applicantID),
			slog.String("employment_status", applicant.EmploymentStatus))
		return &GateResult{Eligible: false, Reason: ReasonNotUnemployed}, nil
	}

	return &GateResult{Eligible: true}, nil
}

// EligibleSchemes runs the gate and, on a pass, matches the applicant's
// household profile to a scheme.
// Returns store.ErrApplicantNotFound for a missing applicant and
// ErrNotEligible when the gate fails; callers must surface the two
// differently.
func (s *Service) EligibleSchemes(ctx context.Context, applicantID int64) (*Result, error) {
	gate, err := s.CheckGate(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if !gate.Eligible {
		return nil, ErrNotEligible
	}

	return s.MatchSchemes(ctx, applicantID)
}

// MatchSchemes classifies the applicant's household and assembles the
// matched scheme's benefit summaries. Read-only; the caller is expected to
// have run the gate already.
func (s *Service) MatchSchemes(ctx context.Context, applicantID int64) (*Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	household, err := s.applicants.GetHousehold(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	currentYear := s.timeFunc().Year()

	schemeID := int64(retrenchmentSchemeID)
	if HasSchoolAgeChild(household, currentYear) {
		schemeID = retrenchmentFamilySchemeID
	}

	rows, err := s.schemes.GetSchemeBenefits(ctx, schemeID)
	if err != nil {
		return nil, err
	}

	log.Debug("matched scheme for applicant",
		slog.Int64("applicant_id", applicantID),
		slog.Int64("scheme_id", schemeID),
		slog.Int("benefit_rows", len(rows)))

	return &Result{
		ApplicantID:     applicantID,
		EligibleSchemes: groupBySchemeName(rows),
	}, nil
}

// groupBySchemeName collapses joined benefit rows into one summary per
// scheme name, preserving row order for both schemes and benefits.
// No rows yields an empty slice ("no benefits found"), not an error.
func groupBySchemeName(rows []store.SchemeBenefitRow) []SchemeSummary {
	summaries := make([]SchemeSummary, 0)
	index := make(map[string]int)

	for _, row := range rows {
		benefit := domain.Benefit{Name: row.BenefitName, Amount: row.BenefitAmount}

		i, ok := index[row.SchemeName]
		if !ok {
			summaries = append(summaries, SchemeSummary{
				SchemeName:  row.SchemeName,
				Description: schemeDescription,
				Benefits:    []string{},
			})
			i = len(summaries) - 1
			index[row.SchemeName] = i
		}
		summaries[i].Benefits = append(summaries[i].Benefits, benefit.Display())
	}

	return summaries
}
