package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/health-coach/internal/domain"
)

// SelectedFile describes the document picked for upload.
type SelectedFile struct {
	Path     string
	Name     string
	Size     int64
	MimeType string
}

type HealthReportUsecase struct {
	api      domain.HealthAPI
	sessions domain.SessionStore
	gate     *CredentialGate
	log      walog.Logger

	mu       sync.Mutex
	selected *SelectedFile
	reports  []domain.HealthReport

	loading   busyFlag
	uploading busyFlag
	analyzing busyFlag
}

func NewHealthReportUsecase(api domain.HealthAPI, sessions domain.SessionStore, prompter SecretPrompter, logger walog.Logger) *HealthReportUsecase {
	return &HealthReportUsecase{
		api:      api,
		sessions: sessions,
		gate:     NewCredentialGate(prompter),
		log:      logger,
	}
}

func (uc *HealthReportUsecase) Credentials() *CredentialGate {
	return uc.gate
}

// Select picks a PDF for upload and returns its metadata.
func (uc *HealthReportUsecase) Select(path string) (*SelectedFile, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotPDF, filepath.Base(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNoFileSelected, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrNoFileSelected, path)
	}

	f := &SelectedFile{
		Path:     path,
		Name:     info.Name(),
		Size:     info.Size(),
		MimeType: "application/pdf",
	}

	uc.mu.Lock()
	uc.selected = f
	uc.mu.Unlock()

	return f, nil
}

func (uc *HealthReportUsecase) Selected() *SelectedFile {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.selected
}

// Upload sends the selected file and refreshes the report list. The
// selection is kept when the upload fails.
func (uc *HealthReportUsecase) Upload(ctx context.Context) (*domain.UploadResult, error) {
	file := uc.Selected()
	if file == nil {
		return nil, domain.ErrNoFileSelected
	}

	if err := uc.uploading.acquire(); err != nil {
		return nil, err
	}
	defer uc.uploading.release()

	s, err := requireSession(ctx, uc.sessions)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(file.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file.Name, err)
	}

	result, err := uc.api.UploadHealthReport(ctx, s.UserID, file.Name, data)
	if err != nil {
		uc.log.Warnf("Report upload failed: %v", err)
		return nil, err
	}

	uc.mu.Lock()
	uc.selected = nil
	uc.mu.Unlock()

	if err := uc.Refresh(ctx); err != nil {
		uc.log.Warnf("Refreshing reports after upload failed: %v", err)
	}
	return result, nil
}

// Refresh re-fetches the report list; the previous list is kept on failure.
func (uc *HealthReportUsecase) Refresh(ctx context.Context) error {
	if err := uc.loading.acquire(); err != nil {
		return err
	}
	defer uc.loading.release()

	s, err := requireSession(ctx, uc.sessions)
	if err != nil {
		return err
	}

	reports, err := uc.api.ListHealthReports(ctx, s.UserID)
	if err != nil {
		return err
	}

	uc.mu.Lock()
	uc.reports = reports
	uc.mu.Unlock()
	return nil
}

// Reports returns the last fetched list, most recent first as sent by the backend.
func (uc *HealthReportUsecase) Reports() []domain.HealthReport {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return append([]domain.HealthReport(nil), uc.reports...)
}

// Analyze asks the backend for an AI analysis of one report, prompting for
// the API key on first use. The list is re-fetched once the backend call
// returns, whatever its outcome.
func (uc *HealthReportUsecase) Analyze(ctx context.Context, reportID string) (*domain.AnalysisResult, error) {
	if err := uc.analyzing.acquire(); err != nil {
		return nil, err
	}
	defer uc.analyzing.release()

	if _, err := requireSession(ctx, uc.sessions); err != nil {
		return nil, err
	}

	key, err := uc.gate.Key(ctx)
	if err != nil {
		return nil, err
	}

	result, err := uc.api.AnalyzeHealthReport(ctx, reportID, key)
	if err != nil {
		uc.log.Warnf("Analysis of report %s failed: %v", reportID, err)
	}

	if rerr := uc.Refresh(ctx); rerr != nil {
		uc.log.Warnf("Refreshing reports after analysis failed: %v", rerr)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}
