// Package advisory formats career-advice prompts, sends them to a text generator and
// parses the structured JSON answers.
package advisory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"regexp"
	"strings"
	"time"

	"jobtrack/internal/models"
)

// ErrUnavailable wraps every generator, timeout or parse failure.
var ErrUnavailable = errors.New("advisory service unavailable")

var codeFence = regexp.MustCompile("(?m)^```(?:json)?|```$")

// Client sends one prompt per call. It does not retry or cache.
type Client struct {
	gen     Generator
	timeout time.Duration
}

// NewClient creates a Client. A non-positive timeout disables the per-call deadline.
func NewClient(gen Generator, timeout time.Duration) *Client {
	return &Client{gen: gen, timeout: timeout}
}

func (c *Client) InterviewTips(ctx context.Context, role string) (*models.InterviewTips, error) {
	var out models.InterviewTips
	if err := c.ask(ctx, "interview tips", fmt.Sprintf(interviewTipsPrompt, role), &out); err != nil {
		return nil, err
	}
	out.Tips = nonNil(out.Tips)
	out.Questions = nonNil(out.Questions)
	return &out, nil
}

func (c *Client) AnalyzeResume(ctx context.Context, resumeText string) (*models.ResumeAnalysis, error) {
	// The model sometimes answers with a fractional score.
	var raw struct {
		models.ResumeAnalysis
		Score float64 `json:"score"`
	}
	if err := c.ask(ctx, "resume analysis", fmt.Sprintf(analyzeResumePrompt, truncateResume(resumeText)), &raw); err != nil {
		return nil, err
	}
	out := raw.ResumeAnalysis
	out.Score = clampScore(raw.Score)
	out.SuggestedRoles = nonNil(out.SuggestedRoles)
	out.Strengths = nonNil(out.Strengths)
	out.Improvements = nonNil(out.Improvements)
	out.Keywords = nonNil(out.Keywords)
	out.Tips = nonNil(out.Tips)
	out.MissingSkills = nonNil(out.MissingSkills)
	return &out, nil
}

func (c *Client) CoverLetter(ctx context.Context, resumeText, company, role string) (*models.CoverLetter, error) {
	var out models.CoverLetter
	prompt := fmt.Sprintf(coverLetterPrompt, role, company, truncateResume(resumeText))
	if err := c.ask(ctx, "cover letter", prompt, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.CoverLetter) == "" {
		return nil, fmt.Errorf("cover letter: empty letter: %w", ErrUnavailable)
	}
	return &out, nil
}

func (c *Client) AnalyzeSkills(ctx context.Context, skills, roles []string) (*models.SkillsAnalysis, error) {
	var out models.SkillsAnalysis
	prompt := fmt.Sprintf(analyzeSkillsPrompt, strings.Join(skills, ", "), strings.Join(roles, ", "))
	if err := c.ask(ctx, "skills analysis", prompt, &out); err != nil {
		return nil, err
	}
	out.SkillsToImprove = nonNil(out.SkillsToImprove)
	out.AdditionalSkills = nonNil(out.AdditionalSkills)
	out.CareerAdvice = nonNil(out.CareerAdvice)
	return &out, nil
}

func (c *Client) ask(ctx context.Context, what, prompt string, out interface{}) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	raw, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		return fmt.Errorf("%s: %v: %w", what, err, ErrUnavailable)
	}

	cleaned := CleanJSON(raw)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		log.Printf("Advisory %s returned unparsable output (%v): %.200q", what, err, cleaned)
		return fmt.Errorf("%s: parse response: %v: %w", what, err, ErrUnavailable)
	}
	return nil
}

// CleanJSON strips Markdown code fences and any prose around the outermost JSON object.
func CleanJSON(raw string) string {
	cleaned := strings.TrimSpace(codeFence.ReplaceAllString(strings.TrimSpace(raw), ""))
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		return cleaned[start : end+1]
	}
	return cleaned
}

// clampScore rounds score to the nearest integer in [0, 100].
func clampScore(score float64) int {
	return int(math.Round(math.Max(0, math.Min(100, score))))
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
