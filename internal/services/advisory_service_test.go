package services_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"jobtrack/internal/advisory"
	"jobtrack/internal/models"
	"jobtrack/internal/repositories"
	"jobtrack/internal/services"
	"jobtrack/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAdvisoryClient is a mock implementation of services.AdvisoryClient
type MockAdvisoryClient struct {
	mock.Mock
}

func (m *MockAdvisoryClient) InterviewTips(ctx context.Context, role string) (*models.InterviewTips, error) {
	args := m.Called(role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InterviewTips), args.Error(1)
}

func (m *MockAdvisoryClient) AnalyzeResume(ctx context.Context, resumeText string) (*models.ResumeAnalysis, error) {
	args := m.Called(resumeText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ResumeAnalysis), args.Error(1)
}

func (m *MockAdvisoryClient) CoverLetter(ctx context.Context, resumeText, company, role string) (*models.CoverLetter, error) {
	args := m.Called(resumeText, company, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CoverLetter), args.Error(1)
}

func (m *MockAdvisoryClient) AnalyzeSkills(ctx context.Context, skills, roles []string) (*models.SkillsAnalysis, error) {
	args := m.Called(skills, roles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SkillsAnalysis), args.Error(1)
}

type stubResumeText struct {
	text string
	err  error
}

func (s stubResumeText) ExtractText(context.Context, string) (string, error) {
	return s.text, s.err
}

func TestAdvisoryService_InterviewTips(t *testing.T) {
	client := new(MockAdvisoryClient)
	svc := services.NewAdvisoryService(client, stubResumeText{}, nil)
	client.On("InterviewTips", "SRE").Return(&models.InterviewTips{Advice: "a"}, nil).Once()
	client.On("InterviewTips", "Dev").Return(nil, fmt.Errorf("timeout: %w", advisory.ErrUnavailable)).Once()

	tips, err := svc.InterviewTips(context.Background(), " SRE ")
	require.NoError(t, err)
	assert.Equal(t, "a", tips.Advice)

	_, err = svc.InterviewTips(context.Background(), "Dev")
	assert.Equal(t, http.StatusBadGateway, apperror.CodeOf(err))

	_, err = svc.InterviewTips(context.Background(), "  ")
	assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(err))
	client.AssertExpectations(t)
}

func TestAdvisoryService_AnalyzeResumeFallsBackToStoredResume(t *testing.T) {
	client := new(MockAdvisoryClient)
	client.On("AnalyzeResume", "stored text").Return(&models.ResumeAnalysis{Summary: "from store"}, nil).Once()
	client.On("AnalyzeResume", "pasted").Return(&models.ResumeAnalysis{Summary: "from body"}, nil).Once()
	svc := services.NewAdvisoryService(client, stubResumeText{text: "stored text"}, nil)

	got, err := svc.AnalyzeResume(context.Background(), "alice", "")
	require.NoError(t, err)
	assert.Equal(t, "from store", got.Summary)

	got, err = svc.AnalyzeResume(context.Background(), "alice", "pasted")
	require.NoError(t, err)
	assert.Equal(t, "from body", got.Summary)
	client.AssertExpectations(t)
}

func TestAdvisoryService_AnalyzeResumeWithoutAnyResume(t *testing.T) {
	client := new(MockAdvisoryClient)
	svc := services.NewAdvisoryService(client, stubResumeText{err: apperror.NotFound("Resume not found")}, nil)

	_, err := svc.AnalyzeResume(context.Background(), "alice", "")
	assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(err))
	client.AssertNotCalled(t, "AnalyzeResume", mock.Anything)
}

func TestAdvisoryService_CoverLetterRequiresCompanyAndRole(t *testing.T) {
	client := new(MockAdvisoryClient)
	svc := services.NewAdvisoryService(client, stubResumeText{text: "r"}, nil)

	_, err := svc.CoverLetter(context.Background(), "alice", "r", "", "Engineer")
	assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(err))

	client.On("CoverLetter", "r", "Acme", "Engineer").Return(&models.CoverLetter{CoverLetter: "Dear Acme"}, nil).Once()
	letter, err := svc.CoverLetter(context.Background(), "alice", "", "Acme", "Engineer")
	require.NoError(t, err)
	assert.Equal(t, "Dear Acme", letter.CoverLetter)
}

func TestAdvisoryService_AnalyzeSkillsUsesProfile(t *testing.T) {
	skills := services.NewSkillService(repositories.NewMemorySkillProfileRepository())
	client := new(MockAdvisoryClient)
	svc := services.NewAdvisoryService(client, stubResumeText{}, skills)

	_, err := svc.AnalyzeSkills(context.Background(), "alice", nil, nil)
	assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(err))

	_, err = skills.UpsertProfile("alice", services.SkillProfileInput{
		Skills:             ptr([]string{"go"}),
		InterestedJobRoles: ptr([]string{"backend"}),
	})
	require.NoError(t, err)

	client.On("AnalyzeSkills", []string{"go"}, []string{"backend"}).Return(&models.SkillsAnalysis{CareerAdvice: []string{"ship"}}, nil).Once()
	got, err := svc.AnalyzeSkills(context.Background(), "alice", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"ship"}, got.CareerAdvice)

	client.On("AnalyzeSkills", []string{"rust"}, []string{"backend"}).Return(&models.SkillsAnalysis{}, nil).Once()
	_, err = svc.AnalyzeSkills(context.Background(), "alice", []string{"rust"}, nil)
	require.NoError(t, err)
	client.AssertExpectations(t)
}
