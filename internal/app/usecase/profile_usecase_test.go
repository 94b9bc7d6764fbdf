package usecase_test

import (
	"context"
	"errors"
	"testing"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/health-coach/internal/app/usecase"
	"github.com/fardannozami/health-coach/internal/domain"
)

func ptr(f float64) *float64 { return &f }

func TestProfile_Load_ComputesBMI(t *testing.T) {
	api := newMockAPI()
	api.user = &domain.User{UserID: "u1", Name: "Alice", Height: 170, Weight: ptr(70)}
	uc := usecase.NewProfileUsecase(api, registered(), walog.Noop)

	view, err := uc.Load(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !view.HasBMI || view.BMI != 24.2 {
		t.Errorf("Expected BMI 24.2, got %v (has=%v)", view.BMI, view.HasBMI)
	}
	if view.BMICategory != "Normal weight" {
		t.Errorf("Expected 'Normal weight', got '%s'", view.BMICategory)
	}
}

func TestProfile_Load_NoWeight_NoBMI(t *testing.T) {
	api := newMockAPI()
	api.user = &domain.User{UserID: "u1", Height: 170}
	uc := usecase.NewProfileUsecase(api, registered(), walog.Noop)

	view, err := uc.Load(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if view.HasBMI || view.BMICategory != "" {
		t.Errorf("BMI should not be shown without weight, got %+v", view)
	}
}

func TestProfile_Load_NotRegistered(t *testing.T) {
	api := newMockAPI()
	uc := usecase.NewProfileUsecase(api, &mockSessions{}, walog.Noop)

	if _, err := uc.Load(context.Background()); !errors.Is(err, domain.ErrNotRegistered) {
		t.Errorf("Expected ErrNotRegistered, got %v", err)
	}
	if api.total() != 0 {
		t.Error("Expected no backend call")
	}
}

func TestProfile_Logout_RequiresConfirmation(t *testing.T) {
	sessions := registered()
	uc := usecase.NewProfileUsecase(newMockAPI(), sessions, walog.Noop)

	if err := uc.Logout(context.Background(), false); !errors.Is(err, domain.ErrLogoutNotConfirmed) {
		t.Errorf("Expected ErrLogoutNotConfirmed, got %v", err)
	}
	if sessions.session == nil || sessions.cleared != 0 {
		t.Error("Unconfirmed logout must not touch local storage")
	}

	if err := uc.Logout(context.Background(), true); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sessions.session != nil || sessions.cleared != 1 {
		t.Error("Confirmed logout should clear the session")
	}
}
