package services

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"jobtrack/internal/advisory"
	"jobtrack/internal/models"
	"jobtrack/pkg/apperror"
)

// AdvisoryClient is the subset of advisory.Client used here.
type AdvisoryClient interface {
	InterviewTips(ctx context.Context, role string) (*models.InterviewTips, error)
	AnalyzeResume(ctx context.Context, resumeText string) (*models.ResumeAnalysis, error)
	CoverLetter(ctx context.Context, resumeText, company, role string) (*models.CoverLetter, error)
	AnalyzeSkills(ctx context.Context, skills, roles []string) (*models.SkillsAnalysis, error)
}

// ResumeTextSource yields the text of a user's stored resume.
type ResumeTextSource interface {
	ExtractText(ctx context.Context, owner string) (string, error)
}

// SkillSource yields a user's skill profile.
type SkillSource interface {
	GetProfile(username string) (*models.SkillProfile, error)
}

// AdvisoryService fills in missing request inputs from the caller's stored data and
// forwards the request to the advisory client.
type AdvisoryService struct {
	client  AdvisoryClient
	resumes ResumeTextSource
	skills  SkillSource
}

// NewAdvisoryService creates a new AdvisoryService.
func NewAdvisoryService(client AdvisoryClient, resumes ResumeTextSource, skills SkillSource) *AdvisoryService {
	return &AdvisoryService{client: client, resumes: resumes, skills: skills}
}

func (s *AdvisoryService) InterviewTips(ctx context.Context, role string) (*models.InterviewTips, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return nil, apperror.Validation("Job role is missing", map[string]string{"role": "is required"})
	}
	tips, err := s.client.InterviewTips(ctx, role)
	if err != nil {
		return nil, upstreamError(err)
	}
	return tips, nil
}

// AnalyzeResume analyses resumeText, or the caller's stored resume when it is blank.
func (s *AdvisoryService) AnalyzeResume(ctx context.Context, caller, resumeText string) (*models.ResumeAnalysis, error) {
	text, err := s.resumeText(ctx, caller, resumeText)
	if err != nil {
		return nil, err
	}
	analysis, err := s.client.AnalyzeResume(ctx, text)
	if err != nil {
		return nil, upstreamError(err)
	}
	return analysis, nil
}

func (s *AdvisoryService) CoverLetter(ctx context.Context, caller, resumeText, company, role string) (*models.CoverLetter, error) {
	details := map[string]string{}
	if company = strings.TrimSpace(company); company == "" {
		details["company"] = "is required"
	}
	if role = strings.TrimSpace(role); role == "" {
		details["role"] = "is required"
	}
	if len(details) > 0 {
		return nil, apperror.Validation("Company and role are required", details)
	}

	text, err := s.resumeText(ctx, caller, resumeText)
	if err != nil {
		return nil, err
	}
	letter, err := s.client.CoverLetter(ctx, text, company, role)
	if err != nil {
		return nil, upstreamError(err)
	}
	return letter, nil
}

// AnalyzeSkills uses the given lists, filling whichever is empty from the caller's
// skill profile.
func (s *AdvisoryService) AnalyzeSkills(ctx context.Context, caller string, skills, roles []string) (*models.SkillsAnalysis, error) {
	skills = cleanList(skills)
	roles = cleanList(roles)
	if len(skills) == 0 || len(roles) == 0 {
		profile, err := s.skills.GetProfile(caller)
		if err != nil {
			return nil, err
		}
		if len(skills) == 0 {
			skills = profile.Skills
		}
		if len(roles) == 0 {
			roles = profile.InterestedJobRoles
		}
	}
	if len(skills) == 0 || len(roles) == 0 {
		return nil, apperror.Validation("Skills and interested job roles are required", map[string]string{
			"skills":             "at least one skill is required",
			"interestedJobRoles": "at least one role is required",
		})
	}

	analysis, err := s.client.AnalyzeSkills(ctx, skills, roles)
	if err != nil {
		return nil, upstreamError(err)
	}
	return analysis, nil
}

func (s *AdvisoryService) resumeText(ctx context.Context, caller, provided string) (string, error) {
	if text := strings.TrimSpace(provided); text != "" {
		return text, nil
	}
	text, err := s.resumes.ExtractText(ctx, caller)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusNotFound {
			return "", apperror.Validation("Resume text is required", map[string]string{
				"resume": "provide resume text or upload a resume first",
			})
		}
		return "", err
	}
	return text, nil
}

func upstreamError(err error) error {
	log.Printf("Advisory request failed: %v", err)
	return apperror.Upstream("Advisory service is unavailable, please try again", err)
}

var _ AdvisoryClient = (*advisory.Client)(nil)
