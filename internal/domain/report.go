package domain

import "strings"

type HealthReport struct {
	ReportID      string `json:"report_id"`
	UserID        string `json:"user_id"`
	ExtractedText string `json:"extracted_text"`
	AIAnalysis    string `json:"ai_analysis,omitempty"`
	UploadDate    string `json:"upload_date"`
}

// HasAnalysis reports whether the backend has attached an AI analysis yet.
func (r HealthReport) HasAnalysis() bool {
	return strings.TrimSpace(r.AIAnalysis) != ""
}

type UploadResult struct {
	ReportID      string `json:"report_id"`
	UserID        string `json:"user_id"`
	ExtractedText string `json:"extracted_text"`
	Message       string `json:"message"`
}

type AnalysisResult struct {
	ReportID  string `json:"report_id"`
	Analysis  string `json:"analysis"`
	ModelUsed string `json:"model_used"`
}
