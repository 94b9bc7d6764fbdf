package usecase

import (
	"context"
	"net/url"
	"strings"
	"sync"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/health-coach/internal/domain"
)

const DefaultVideoSearchURL = "https://www.youtube.com/results?search_query="

type LinkOpener interface {
	Open(url string) error
}

type WorkoutPlanUsecase struct {
	api            domain.HealthAPI
	sessions       domain.SessionStore
	gate           *CredentialGate
	opener         LinkOpener
	videoSearchURL string
	log            walog.Logger

	mu    sync.Mutex
	plans []domain.WorkoutPlan

	loading    busyFlag
	generating busyFlag
}

func NewWorkoutPlanUsecase(api domain.HealthAPI, sessions domain.SessionStore, prompter SecretPrompter, opener LinkOpener, videoSearchURL string, logger walog.Logger) *WorkoutPlanUsecase {
	if videoSearchURL == "" {
		videoSearchURL = DefaultVideoSearchURL
	}
	return &WorkoutPlanUsecase{
		api:            api,
		sessions:       sessions,
		gate:           NewCredentialGate(prompter),
		opener:         opener,
		videoSearchURL: videoSearchURL,
		log:            logger,
	}
}

func (uc *WorkoutPlanUsecase) Credentials() *CredentialGate {
	return uc.gate
}

func (uc *WorkoutPlanUsecase) Refresh(ctx context.Context) error {
	if err := uc.loading.acquire(); err != nil {
		return err
	}
	defer uc.loading.release()

	s, err := requireSession(ctx, uc.sessions)
	if err != nil {
		return err
	}

	plans, err := uc.api.ListWorkoutPlans(ctx, s.UserID)
	if err != nil {
		return err
	}

	uc.mu.Lock()
	uc.plans = plans
	uc.mu.Unlock()
	return nil
}

// Plans returns the last fetched plans in the order the backend sent them.
func (uc *WorkoutPlanUsecase) Plans() []domain.WorkoutPlan {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return append([]domain.WorkoutPlan(nil), uc.plans...)
}

// Generate asks the backend for a new plan, prompting for the API key on
// first use, then refreshes the list.
func (uc *WorkoutPlanUsecase) Generate(ctx context.Context) (*domain.GeneratedPlan, error) {
	if err := uc.generating.acquire(); err != nil {
		return nil, err
	}
	defer uc.generating.release()

	s, err := requireSession(ctx, uc.sessions)
	if err != nil {
		return nil, err
	}

	key, err := uc.gate.Key(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := uc.api.GenerateWorkoutPlan(ctx, s.UserID, key)
	if err != nil {
		uc.log.Warnf("Workout plan generation failed: %v", err)
	}

	if rerr := uc.Refresh(ctx); rerr != nil {
		uc.log.Warnf("Refreshing workout plans after generation failed: %v", rerr)
	}
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (uc *WorkoutPlanUsecase) ExerciseVideoURL(exercise string) string {
	return uc.videoSearchURL + url.QueryEscape(strings.TrimSpace(exercise)+" exercise")
}

// OpenExercise hands the exercise's video-search link to the opener.
// Failures are only logged.
func (uc *WorkoutPlanUsecase) OpenExercise(exercise string) {
	if strings.TrimSpace(exercise) == "" || uc.opener == nil {
		return
	}
	if err := uc.opener.Open(uc.ExerciseVideoURL(exercise)); err != nil {
		uc.log.Warnf("Opening video link for %q failed: %v", exercise, err)
	}
}

func (uc *WorkoutPlanUsecase) SearchExercises(ctx context.Context, query string, limit int) ([]domain.Exercise, error) {
	if err := uc.loading.acquire(); err != nil {
		return nil, err
	}
	defer uc.loading.release()

	exercises, err := uc.api.SearchExercises(ctx, query, limit)
	if err != nil {
		uc.log.Warnf("Exercise search failed: %v", err)
		return nil, err
	}
	return exercises, nil
}
