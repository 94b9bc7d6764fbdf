package usecase

import (
	"context"
	"fmt"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/health-coach/internal/domain"
)

type ProfileView struct {
	User        domain.User
	BMI         float64
	HasBMI      bool
	BMICategory string
}

type ProfileUsecase struct {
	api      domain.HealthAPI
	sessions domain.SessionStore
	log      walog.Logger
	loading  busyFlag
}

func NewProfileUsecase(api domain.HealthAPI, sessions domain.SessionStore, logger walog.Logger) *ProfileUsecase {
	return &ProfileUsecase{api: api, sessions: sessions, log: logger}
}

func (uc *ProfileUsecase) Load(ctx context.Context) (*ProfileView, error) {
	if err := uc.loading.acquire(); err != nil {
		return nil, err
	}
	defer uc.loading.release()

	s, err := requireSession(ctx, uc.sessions)
	if err != nil {
		return nil, err
	}

	user, err := uc.api.GetUser(ctx, s.UserID)
	if err != nil {
		uc.log.Warnf("Loading profile failed: %v", err)
		return nil, err
	}

	view := &ProfileView{User: *user}
	if bmi, ok := user.BMI(); ok {
		view.BMI = bmi
		view.HasBMI = true
		view.BMICategory = domain.BMICategory(bmi)
	}
	return view, nil
}

// Logout wipes the local identifier and display name. It is local only and
// cannot be undone, so the caller must pass the user's explicit confirmation.
func (uc *ProfileUsecase) Logout(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return domain.ErrLogoutNotConfirmed
	}
	if err := uc.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	uc.log.Infof("Local session cleared")
	return nil
}
