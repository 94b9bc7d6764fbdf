package usecase_test

import (
	"context"
	"sync"

	"github.com/fardannozami/health-coach/internal/domain"
)

// mockSessions implements domain.SessionStore in memory.
type mockSessions struct {
	session *domain.Session
	cleared int
	saveErr error
}

func (m *mockSessions) Load(ctx context.Context) (*domain.Session, error) {
	if m.session == nil {
		return nil, nil
	}
	s := *m.session
	return &s, nil
}

func (m *mockSessions) Save(ctx context.Context, s domain.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.session = &s
	return nil
}

func (m *mockSessions) Clear(ctx context.Context) error {
	m.session = nil
	m.cleared++
	return nil
}

func registered() *mockSessions {
	return &mockSessions{session: &domain.Session{UserID: "u1", Name: "Alice"}}
}

// mockAPI implements domain.HealthAPI, recording calls per endpoint.
type mockAPI struct {
	mu    sync.Mutex
	calls map[string]int

	createUserIn  domain.NewUser
	createUserOut *domain.User
	user          *domain.User

	createdLog  domain.DailyLog
	logs        []domain.DailyLog
	logsLimit   int
	uploadName  string
	uploadData  []byte
	analyzeKey  string
	analyzeID   string
	reports     []domain.HealthReport
	plans       []domain.WorkoutPlan
	generateKey string
	exercises   []domain.Exercise

	// errs maps an endpoint name to the error it should return.
	errs map[string]error
	// block, when set for an endpoint, is waited on before answering.
	block map[string]chan struct{}
}

func newMockAPI() *mockAPI {
	return &mockAPI{calls: map[string]int{}, errs: map[string]error{}, block: map[string]chan struct{}{}}
}

func (m *mockAPI) record(name string) error {
	m.mu.Lock()
	m.calls[name]++
	ch := m.block[name]
	err := m.errs[name]
	m.mu.Unlock()
	if ch != nil {
		<-ch
	}
	return err
}

func (m *mockAPI) count(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func (m *mockAPI) total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		n += c
	}
	return n
}

func (m *mockAPI) CreateUser(ctx context.Context, u domain.NewUser) (*domain.User, error) {
	m.createUserIn = u
	if err := m.record("CreateUser"); err != nil {
		return nil, err
	}
	return m.createUserOut, nil
}

func (m *mockAPI) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if err := m.record("GetUser"); err != nil {
		return nil, err
	}
	return m.user, nil
}

func (m *mockAPI) CreateDailyLog(ctx context.Context, log domain.DailyLog) (*domain.DailyLog, error) {
	m.createdLog = log
	if err := m.record("CreateDailyLog"); err != nil {
		return nil, err
	}
	log.LogID = "log-1"
	return &log, nil
}

func (m *mockAPI) ListDailyLogs(ctx context.Context, userID string, limit int) ([]domain.DailyLog, error) {
	m.logsLimit = limit
	if err := m.record("ListDailyLogs"); err != nil {
		return nil, err
	}
	return m.logs, nil
}

func (m *mockAPI) ListHealthReports(ctx context.Context, userID string) ([]domain.HealthReport, error) {
	if err := m.record("ListHealthReports"); err != nil {
		return nil, err
	}
	return m.reports, nil
}

func (m *mockAPI) UploadHealthReport(ctx context.Context, userID, fileName string, pdf []byte) (*domain.UploadResult, error) {
	m.uploadName = fileName
	m.uploadData = pdf
	if err := m.record("UploadHealthReport"); err != nil {
		return nil, err
	}
	return &domain.UploadResult{ReportID: "r-new", UserID: userID}, nil
}

func (m *mockAPI) AnalyzeHealthReport(ctx context.Context, reportID, apiKey string) (*domain.AnalysisResult, error) {
	m.analyzeID = reportID
	m.analyzeKey = apiKey
	if err := m.record("AnalyzeHealthReport"); err != nil {
		return nil, err
	}
	return &domain.AnalysisResult{ReportID: reportID, Analysis: "Looks fine", ModelUsed: "test"}, nil
}

func (m *mockAPI) ListWorkoutPlans(ctx context.Context, userID string) ([]domain.WorkoutPlan, error) {
	if err := m.record("ListWorkoutPlans"); err != nil {
		return nil, err
	}
	return m.plans, nil
}

func (m *mockAPI) GenerateWorkoutPlan(ctx context.Context, userID, apiKey string) (*domain.GeneratedPlan, error) {
	m.generateKey = apiKey
	if err := m.record("GenerateWorkoutPlan"); err != nil {
		return nil, err
	}
	return &domain.GeneratedPlan{PlanID: "p-new"}, nil
}

func (m *mockAPI) SearchExercises(ctx context.Context, query string, limit int) ([]domain.Exercise, error) {
	if err := m.record("SearchExercises"); err != nil {
		return nil, err
	}
	return m.exercises, nil
}

// mockPrompter answers secret prompts from a queue.
type mockPrompter struct {
	answers []string
	asked   int
}

func (m *mockPrompter) PromptSecret(ctx context.Context, label string) (string, error) {
	m.asked++
	if len(m.answers) == 0 {
		return "", nil
	}
	a := m.answers[0]
	m.answers = m.answers[1:]
	return a, nil
}

type mockOpener struct {
	opened []string
	err    error
}

func (m *mockOpener) Open(url string) error {
	m.opened = append(m.opened, url)
	return m.err
}
