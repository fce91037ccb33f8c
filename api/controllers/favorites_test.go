package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/venturehub/venturehub-backend/api/middleware"
	"github.com/venturehub/venturehub-backend/internal/favorites"
	"github.com/venturehub/venturehub-backend/internal/startups"
)

type stubFavoriteService struct {
	result       *favorites.ToggleResult
	page         startups.StartupPageDTO
	err          error
	lastInvestor uuid.UUID
	lastStartup  uuid.UUID
}

func (s *stubFavoriteService) Toggle(_ context.Context, investorID, startupID uuid.UUID) (*favorites.ToggleResult, error) {
	s.lastInvestor = investorID
	s.lastStartup = startupID
	return s.result, s.err
}

func (s *stubFavoriteService) List(context.Context, uuid.UUID, string, int) (startups.StartupPageDTO, error) {
	return s.page, s.err
}

func TestFavoriteToggleReportsResultingState(t *testing.T) {
	investorID := uuid.New()
	startupID := uuid.New()
	svc := &stubFavoriteService{result: &favorites.ToggleResult{StartupID: startupID, Favorited: true}}
	handler := FavoriteToggle(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/investors/me/favorites/"+startupID.String()+"/toggle", nil)
	req = addRouteParam(req, "startupId", startupID.String())
	req = req.WithContext(middleware.WithProfileID(req.Context(), investorID.String()))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.lastInvestor != investorID || svc.lastStartup != startupID {
		t.Fatalf("unexpected toggle args investor=%s startup=%s", svc.lastInvestor, svc.lastStartup)
	}

	var envelope struct {
		Data favorites.ToggleResult `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Data.Favorited {
		t.Fatalf("expected favorited=true in response")
	}
}

func TestFavoriteToggleRequiresProfile(t *testing.T) {
	startupID := uuid.New()
	handler := FavoriteToggle(&stubFavoriteService{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/investors/me/favorites/"+startupID.String()+"/toggle", nil)
	req = addRouteParam(req, "startupId", startupID.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", rec.Code)
	}
}
