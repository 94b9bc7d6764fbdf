package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/health-coach/internal/domain"
)

const DefaultGender = "Male"

// RegistrationForm holds the raw text of the registration screen.
type RegistrationForm struct {
	Name   string
	Email  string
	Age    string
	Gender string
	Height string // centimeters
	Weight string // kilograms, optional
}

// Validate checks required fields and parses the numeric ones. Nothing is
// sent anywhere.
func (f RegistrationForm) Validate() (domain.NewUser, error) {
	var missing []string
	for _, field := range []struct{ name, value string }{
		{"name", f.Name},
		{"email", f.Email},
		{"age", f.Age},
		{"height", f.Height},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return domain.NewUser{}, fmt.Errorf("%w (missing: %s)", domain.ErrIncomplete, strings.Join(missing, ", "))
	}

	age, err := strconv.Atoi(strings.TrimSpace(f.Age))
	if err != nil || age <= 0 {
		return domain.NewUser{}, fmt.Errorf("%w: age must be a positive whole number", domain.ErrInvalidInput)
	}

	height, err := parsePositive(f.Height)
	if err != nil {
		return domain.NewUser{}, fmt.Errorf("%w: height must be a positive number", domain.ErrInvalidInput)
	}

	u := domain.NewUser{
		Name:   strings.TrimSpace(f.Name),
		Email:  strings.TrimSpace(f.Email),
		Age:    age,
		Gender: strings.TrimSpace(f.Gender),
		Height: height,
	}
	if u.Gender == "" {
		u.Gender = DefaultGender
	}

	if strings.TrimSpace(f.Weight) != "" {
		weight, err := parsePositive(f.Weight)
		if err != nil {
			return domain.NewUser{}, fmt.Errorf("%w: weight must be a positive number", domain.ErrInvalidInput)
		}
		u.Weight = &weight
	}

	return u, nil
}

func parsePositive(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("not positive: %v", v)
	}
	return v, nil
}

type RegistrationUsecase struct {
	api      domain.HealthAPI
	sessions domain.SessionStore
	log      walog.Logger
	loading  busyFlag
}

func NewRegistrationUsecase(api domain.HealthAPI, sessions domain.SessionStore, logger walog.Logger) *RegistrationUsecase {
	return &RegistrationUsecase{api: api, sessions: sessions, log: logger}
}

// AutoRedirect returns the cached session, or nil when the device has not
// registered yet.
func (uc *RegistrationUsecase) AutoRedirect(ctx context.Context) (*domain.Session, error) {
	return uc.sessions.Load(ctx)
}

func (uc *RegistrationUsecase) Submit(ctx context.Context, form RegistrationForm) (*domain.User, error) {
	newUser, err := form.Validate()
	if err != nil {
		return nil, err
	}

	if err := uc.loading.acquire(); err != nil {
		return nil, err
	}
	defer uc.loading.release()

	user, err := uc.api.CreateUser(ctx, newUser)
	if err != nil {
		uc.log.Warnf("Registration failed: %v", err)
		return nil, err
	}
	if user.UserID == "" {
		return nil, fmt.Errorf("backend returned no user_id")
	}

	name := user.Name
	if name == "" {
		name = newUser.Name
	}
	if err := uc.sessions.Save(ctx, domain.Session{UserID: user.UserID, Name: name}); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	uc.log.Infof("Registered user %s", user.UserID)
	return user, nil
}
