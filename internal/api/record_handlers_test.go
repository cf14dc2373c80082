package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adoptly/adopt-api/internal/domain"
	"github.com/adoptly/adopt-api/internal/mocks"
)

func TestAdoptionHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		storeErr   error
		wantStatus int
	}{
		{
			name: "valid adoption request",
			payload: map[string]interface{}{
				"email":   "adopter@example.com",
				"petId":   uuid.New().String(),
				"phone":   "555-0101",
				"address": "1 Main St",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "pet id is opaque and unvalidated",
			payload: map[string]interface{}{
				"email": "adopter@example.com",
				"petId": "legacy-id-42",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing email",
			payload:    map[string]interface{}{"petId": uuid.New().String()},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing pet id",
			payload:    map[string]interface{}{"email": "adopter@example.com"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "store failure",
			payload: map[string]interface{}{
				"email": "adopter@example.com",
				"petId": uuid.New().String(),
			},
			storeErr:   errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := NewAdoptionHandler(&mocks.MockAdoptionStore{Err: tt.storeErr})

			body, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/adoptions", bytes.NewReader(body))
			recorder := httptest.NewRecorder()

			handler.Create(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp CreatedResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.True(t, resp.Success)
				assert.NotEqual(t, uuid.Nil, resp.InsertedID)
			} else {
				var resp map[string]interface{}
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, false, resp["success"])
			}
		})
	}
}

func TestAdoptionHandler_List(t *testing.T) {
	t.Parallel()

	adoptions := []domain.Adoption{
		{ID: uuid.New(), Email: "a@example.com", PetID: uuid.New().String()},
	}

	handler := NewAdoptionHandler(&mocks.MockAdoptionStore{Adoptions: adoptions})

	recorder := httptest.NewRecorder()
	handler.List(recorder, httptest.NewRequest(http.MethodGet, "/adoptions", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Success bool              `json:"success"`
		Count   int               `json:"count"`
		Data    []domain.Adoption `json:"data"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Count)
}

func TestReviewHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		storeErr   error
		wantStatus int
	}{
		{
			name: "valid review",
			payload: map[string]interface{}{
				"email":   "reviewer@example.com",
				"rating":  5,
				"comment": "Great shelter",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing rating",
			payload:    map[string]interface{}{"email": "reviewer@example.com"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing email",
			payload:    map[string]interface{}{"rating": 4},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "store failure",
			payload: map[string]interface{}{
				"email":  "reviewer@example.com",
				"rating": 5,
			},
			storeErr:   errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := NewReviewHandler(&mocks.MockReviewStore{Err: tt.storeErr})

			body, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewReader(body))
			recorder := httptest.NewRecorder()

			handler.Create(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestReviewHandler_List(t *testing.T) {
	t.Parallel()

	reviews := []domain.Review{
		{ID: uuid.New(), Email: "a@example.com", Rating: 5},
		{ID: uuid.New(), Email: "b@example.com", Rating: 4},
	}

	handler := NewReviewHandler(&mocks.MockReviewStore{Reviews: reviews})

	recorder := httptest.NewRecorder()
	handler.List(recorder, httptest.NewRequest(http.MethodGet, "/reviews", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Success bool            `json:"success"`
		Count   int             `json:"count"`
		Data    []domain.Review `json:"data"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Count)
}

func TestDonationHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		storeErr   error
		wantStatus int
	}{
		{
			name: "valid donation",
			payload: map[string]interface{}{
				"email":   "donor@example.com",
				"amount":  25.50,
				"message": "Keep it up",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing amount",
			payload:    map[string]interface{}{"email": "donor@example.com"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "non-positive amount",
			payload: map[string]interface{}{
				"email":  "donor@example.com",
				"amount": -5,
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "store failure",
			payload: map[string]interface{}{
				"email":  "donor@example.com",
				"amount": 10,
			},
			storeErr:   errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := NewDonationHandler(&mocks.MockDonationStore{Err: tt.storeErr})

			body, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/donations", bytes.NewReader(body))
			recorder := httptest.NewRecorder()

			handler.Create(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestDonationHandler_List(t *testing.T) {
	t.Parallel()

	donations := []domain.Donation{
		{ID: uuid.New(), Email: "a@example.com", Amount: 10},
	}

	handler := NewDonationHandler(&mocks.MockDonationStore{Donations: donations})

	recorder := httptest.NewRecorder()
	handler.List(recorder, httptest.NewRequest(http.MethodGet, "/donations", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Success bool              `json:"success"`
		Count   int               `json:"count"`
		Data    []domain.Donation `json:"data"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Count)
}
