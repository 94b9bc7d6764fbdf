package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/health-coach/internal/domain"
)

const DefaultDailyLogLimit = 30

type MealForm struct {
	Food       string
	Portion    domain.PortionSize
	Vegetables bool
	Protein    bool
	Fried      bool
}

type DinnerForm struct {
	MealForm
	Dessert  bool
	After9PM bool
}

type SnacksForm struct {
	HadSnacks bool
	Food      string
	Beverages domain.BeverageLevel
}

// DailyLogForm is the state of the daily questionnaire.
type DailyLogForm struct {
	Breakfast MealForm
	Lunch     MealForm
	Dinner    DinnerForm
	Snacks    SnacksForm
	Water     domain.WaterIntake
}

func NewDailyLogForm() DailyLogForm {
	meal := MealForm{Portion: domain.PortionMedium}
	return DailyLogForm{
		Breakfast: meal,
		Lunch:     meal,
		Dinner:    DinnerForm{MealForm: meal},
		Snacks:    SnacksForm{Beverages: domain.BeveragesNone},
		Water:     domain.Water1To2L,
	}
}

func (f DailyLogForm) Validate() error {
	var missing []string
	if strings.TrimSpace(f.Breakfast.Food) == "" {
		missing = append(missing, "breakfast")
	}
	if strings.TrimSpace(f.Lunch.Food) == "" {
		missing = append(missing, "lunch")
	}
	if strings.TrimSpace(f.Dinner.Food) == "" {
		missing = append(missing, "dinner")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w (missing: %s)", domain.ErrIncomplete, strings.Join(missing, ", "))
	}
	return nil
}

func (f DailyLogForm) toDailyLog(userID string, day time.Time) domain.DailyLog {
	return domain.DailyLog{
		UserID:    userID,
		LogDate:   day.Format(domain.LogDateLayout),
		Breakfast: f.Breakfast.toEntry(),
		Lunch:     f.Lunch.toEntry(),
		Dinner: domain.DinnerEntry{
			MealEntry: f.Dinner.toEntry(),
			Dessert:   f.Dinner.Dessert,
			After9PM:  f.Dinner.After9PM,
		},
		Snacks: domain.SnackEntry{
			HadSnacks: f.Snacks.HadSnacks,
			Food:      strings.TrimSpace(f.Snacks.Food),
			Beverages: f.Snacks.Beverages,
		},
		WaterIntake: f.Water,
	}
}

func (m MealForm) toEntry() domain.MealEntry {
	return domain.MealEntry{
		Food:        strings.TrimSpace(m.Food),
		PortionSize: m.Portion,
		Vegetables:  m.Vegetables,
		Protein:     m.Protein,
		Fried:       m.Fried,
	}
}

// DailyLogUsecase owns the questionnaire for as long as the screen is open.
// Several logs for the same day are allowed.
type DailyLogUsecase struct {
	api      domain.HealthAPI
	sessions domain.SessionStore
	log      walog.Logger
	now      func() time.Time

	mu         sync.Mutex
	form       DailyLogForm
	submitting busyFlag
	loading    busyFlag
}

func NewDailyLogUsecase(api domain.HealthAPI, sessions domain.SessionStore, logger walog.Logger) *DailyLogUsecase {
	return &DailyLogUsecase{
		api:      api,
		sessions: sessions,
		log:      logger,
		now:      time.Now,
		form:     NewDailyLogForm(),
	}
}

// Form returns a copy of the current questionnaire state.
func (uc *DailyLogUsecase) Form() DailyLogForm {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.form
}

// Edit applies fn to the questionnaire state.
func (uc *DailyLogUsecase) Edit(fn func(f *DailyLogForm)) {
	uc.mu.Lock()
	fn(&uc.form)
	uc.mu.Unlock()
}

// Submit posts the current form tagged with today's date. On success the
// form goes back to its defaults; on failure it is left as it was.
func (uc *DailyLogUsecase) Submit(ctx context.Context) (*domain.DailyLog, error) {
	form := uc.Form()
	if err := form.Validate(); err != nil {
		return nil, err
	}

	if err := uc.submitting.acquire(); err != nil {
		return nil, err
	}
	defer uc.submitting.release()

	s, err := requireSession(ctx, uc.sessions)
	if err != nil {
		return nil, err
	}

	created, err := uc.api.CreateDailyLog(ctx, form.toDailyLog(s.UserID, uc.now()))
	if err != nil {
		uc.log.Warnf("Daily log submission failed: %v", err)
		return nil, err
	}

	uc.mu.Lock()
	uc.form = NewDailyLogForm()
	uc.mu.Unlock()

	return created, nil
}

// Recent lists the newest logs first. limit <= 0 means DefaultDailyLogLimit.
func (uc *DailyLogUsecase) Recent(ctx context.Context, limit int) ([]domain.DailyLog, error) {
	if limit <= 0 {
		limit = DefaultDailyLogLimit
	}

	if err := uc.loading.acquire(); err != nil {
		return nil, err
	}
	defer uc.loading.release()

	s, err := requireSession(ctx, uc.sessions)
	if err != nil {
		return nil, err
	}

	logs, err := uc.api.ListDailyLogs(ctx, s.UserID, limit)
	if err != nil {
		uc.log.Warnf("Loading daily logs failed: %v", err)
		return nil, err
	}
	return logs, nil
}
