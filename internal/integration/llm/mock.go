package llm

import (
	"context"

	"github.com/futig/counsellor-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	mockChatReply = `Based on your profile, here is a balanced shortlist.

Dream: Massachusetts Institute of Technology, Stanford University
Target: University of Toronto, Technical University of Munich
Safe: Arizona State University, University of Leeds

Start with the target schools: they match your GPA and test scores best.`

	mockProfile = "```json\n" + `{
  "name": "Jane Doe",
  "email": "jane@example.com",
  "current_degree": "B.Sc. Computer Science",
  "current_university": "State University",
  "gpa": 3.8,
  "test_scores": {"ielts": 7.5, "toefl": null, "gre": 320},
  "work_experience": "Backend intern, 6 months",
  "research_experience": null,
  "skills": ["Go", "SQL", "Docker"],
  "projects": "Distributed key-value store"
}` + "\n```"

	mockGuidance = `{
  "General": [
    {"task": "Prepare a statement of purpose", "details": "Tailor it to each program"},
    {"task": "Request recommendation letters", "details": "Ask at least two professors"}
  ]
}`

	mockScholarships = `{
  "scholarships": [
    {"title": "Fulbright Foreign Student Program", "amount": "Full tuition", "deadline": "October", "description": "Graduate study in the US", "link": "https://foreign.fulbrightonline.org"},
    {"title": "DAAD Study Scholarship", "amount": "934 EUR/month", "deadline": "November", "description": "Master's study in Germany", "link": "https://www.daad.de"}
  ]
}`
)

// MockConnector returns canned completions keyed by purpose.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Complete(ctx context.Context, req *entity.CompletionRequest) (string, error) {
	ctxzap.Info(ctx, "[MOCK] completing request", zap.String("purpose", string(req.Purpose)))

	switch req.Purpose {
	case entity.PurposeProfileExtraction:
		return mockProfile, nil
	case entity.PurposeGuidance:
		return mockGuidance, nil
	case entity.PurposeScholarshipSearch:
		return mockScholarships, nil
	default:
		return mockChatReply, nil
	}
}
