package models

// ResumeAnalysis is the advisory service's assessment of a resume.
type ResumeAnalysis struct {
	Score          int      `json:"score"`
	Summary        string   `json:"summary"`
	SuggestedRoles []string `json:"suggestedRoles"`
	Strengths      []string `json:"strengths"`
	Improvements   []string `json:"improvements"`
	Keywords       []string `json:"keywords"`
	Tips           []string `json:"tips"`
	MissingSkills  []string `json:"missingSkills"`
}

// CoverLetter is a generated cover letter.
type CoverLetter struct {
	CoverLetter string `json:"coverLetter"`
}

// SkillsAnalysis is the advisory service's view of a skill set against target roles.
type SkillsAnalysis struct {
	SkillsToImprove  []string `json:"skillsToImprove"`
	AdditionalSkills []string `json:"additionalSkills"`
	CareerAdvice     []string `json:"careerAdvice"`
}

// InterviewTips holds role-specific preparation advice.
type InterviewTips struct {
	Advice    string   `json:"advice"`
	Tips      []string `json:"tips"`
	Questions []string `json:"questions"`
}
