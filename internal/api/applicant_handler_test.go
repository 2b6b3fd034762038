package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemesvc/fas-api/internal/domain"
	"github.com/schemesvc/fas-api/internal/mocks"
)

func validApplicantPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":              "Mary",
		"employment_status": "unemployed",
		"sex":               "female",
		"date_of_birth":     "1984-10-06",
		"marital_status":    "married",
		"household": []map[string]interface{}{
			{
				"name":              "Gwen",
				"employment_status": "unemployed",
				"sex":               "female",
				"date_of_birth":     "2016-03-12",
				"relation":          "daughter",
			},
		},
	}
}

func TestCreateApplicant(t *testing.T) {
	t.Parallel()

	t.Run("valid applicant with household", func(t *testing.T) {
		t.Parallel()

		var gotApplicant *domain.Applicant
		var gotHousehold []domain.HouseholdMember
		applicantService := &mocks.MockApplicantService{
			CreateWithHouseholdFn: func(ctx context.Context, applicant *domain.Applicant, household []domain.HouseholdMember) error {
				gotApplicant = applicant
				gotHousehold = household
				return nil
			},
		}
		handler := NewApplicantHandler(applicantService)

		body, err := json.Marshal(validApplicantPayload())
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		handler.Create(recorder, httptest.NewRequest("POST", "/api/applicants", bytes.NewBuffer(body)))

		assert.Equal(t, http.StatusOK, recorder.Code)
		require.NotNil(t, gotApplicant)
		assert.Equal(t, "Mary", gotApplicant.Name)
		assert.Equal(t, time.Date(1984, 10, 6, 0, 0, 0, 0, time.UTC), gotApplicant.DateOfBirth)
		require.Len(t, gotHousehold, 1)
		assert.Equal(t, domain.RelationDaughter, gotHousehold[0].Relation)
	})

	t.Run("applicant without household", func(t *testing.T) {
		t.Parallel()

		applicantService := &mocks.MockApplicantService{}
		handler := NewApplicantHandler(applicantService)

		payload := validApplicantPayload()
		delete(payload, "household")
		body, err := json.Marshal(payload)
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		handler.Create(recorder, httptest.NewRequest("POST", "/api/applicants", bytes.NewBuffer(body)))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("invalid employment status", func(t *testing.T) {
		t.Parallel()

		handler := NewApplicantHandler(&mocks.MockApplicantService{})

		payload := validApplicantPayload()
		payload["employment_status"] = "retired"
		body, err := json.Marshal(payload)
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		handler.Create(recorder, httptest.NewRequest("POST", "/api/applicants", bytes.NewBuffer(body)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("household member missing relation", func(t *testing.T) {
		t.Parallel()

		handler := NewApplicantHandler(&mocks.MockApplicantService{})

		payload := validApplicantPayload()
		payload["household"] = []map[string]interface{}{
			{
				"name":              "Gwen",
				"employment_status": "unemployed",
				"sex":               "female",
				"date_of_birth":     "2016-03-12",
			},
		}
		body, err := json.Marshal(payload)
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		handler.Create(recorder, httptest.NewRequest("POST", "/api/applicants", bytes.NewBuffer(body)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("malformed date of birth", func(t *testing.T) {
		t.Parallel()

		handler := NewApplicantHandler(&mocks.MockApplicantService{})

		payload := validApplicantPayload()
		payload["date_of_birth"] = "06-10-1984"
		body, err := json.Marshal(payload)
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		handler.Create(recorder, httptest.NewRequest("POST", "/api/applicants", bytes.NewBuffer(body)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestListApplicants(t *testing.T) {
	t.Parallel()

	t.Run("empty registry returns 404", func(t *testing.T) {
		t.Parallel()

		handler := NewApplicantHandler(&mocks.MockApplicantService{})
		recorder := httptest.NewRecorder()

		handler.List(recorder, httptest.NewRequest("GET", "/api/applicants", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var resp MessageResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "No applicants found.", resp.Message)
	})

	t.Run("returns applicants with wire dates", func(t *testing.T) {
		t.Parallel()

		applicantService := &mocks.MockApplicantService{
			Applicants: []domain.Applicant{
				{
					ID:               1,
					Name:             "Mary",
					MaritalStatus:    domain.MaritalStatusMarried,
					EmploymentStatus: domain.EmploymentStatusUnemployed,
					Sex:              domain.SexFemale,
					DateOfBirth:      time.Date(1984, 10, 6, 0, 0, 0, 0, time.UTC),
				},
			},
		}
		handler := NewApplicantHandler(applicantService)
		recorder := httptest.NewRecorder()

		handler.List(recorder, httptest.NewRequest("GET", "/api/applicants", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp []ApplicantResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "1984-10-06", resp[0].DateOfBirth)
	})
}
