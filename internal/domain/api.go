package domain

import "context"

// HealthAPI is the backend collaborator every flow talks to.
type HealthAPI interface {
	CreateUser(ctx context.Context, u NewUser) (*User, error)
	GetUser(ctx context.Context, userID string) (*User, error)

	CreateDailyLog(ctx context.Context, log DailyLog) (*DailyLog, error)
	ListDailyLogs(ctx context.Context, userID string, limit int) ([]DailyLog, error)

	ListHealthReports(ctx context.Context, userID string) ([]HealthReport, error)
	UploadHealthReport(ctx context.Context, userID, fileName string, pdf []byte) (*UploadResult, error)
	AnalyzeHealthReport(ctx context.Context, reportID, apiKey string) (*AnalysisResult, error)

	ListWorkoutPlans(ctx context.Context, userID string) ([]WorkoutPlan, error)
	GenerateWorkoutPlan(ctx context.Context, userID, apiKey string) (*GeneratedPlan, error)
	SearchExercises(ctx context.Context, query string, limit int) ([]Exercise, error)
}
