package advisory

import "strings"

// maxResumeChars bounds the resume text sent in a single prompt.
const maxResumeChars = 20000

const interviewTipsPrompt = `You are an expert career counselor and interview coach.

For the job role: %s, provide a response in JSON format with the following structure:

{
    "advice": "Brief career advice specific to the job role",
    "tips": ["Tip 1", "Tip 2", "Tip 3"],
    "questions": ["Mock Question 1", "Mock Question 2", "Mock Question 3"]
}

Output only the JSON. Do not include backticks, markdown, or any explanations.
`

const analyzeResumePrompt = `Analyze this resume and suggest suitable job roles based on the skills, experience, and qualifications provided. Provide a detailed response in JSON format.

Resume:
%s

Provide output in this exact JSON structure:
{
    "score": 0,
    "summary": "Brief summary of the resume",
    "suggestedRoles": ["List of 3-5 suggested job roles"],
    "strengths": ["List of 3-5 strengths"],
    "improvements": ["List of 3-5 areas for improvement"],
    "keywords": ["List of 8-12 relevant keywords to include"],
    "tips": ["List of 3-5 optimization tips for the resume"],
    "missingSkills": ["List of 3-5 skills commonly expected for the suggested roles but absent from the resume"]
}

"score" is an integer from 0 to 100 rating the resume overall.
Be specific and actionable in your recommendations. Output only the JSON.
`

const coverLetterPrompt = `Write a professional cover letter for a %s position at %s based on this resume:

Resume:
%s

The cover letter should:
- Be about 250-350 words
- Highlight relevant skills and experiences
- Show enthusiasm for the specific role and company
- Be professional but not overly formal
- Include a strong opening and closing

Return the cover letter in this JSON format:
{
    "coverLetter": "The generated cover letter text here"
}
`

const analyzeSkillsPrompt = `You are an expert career counselor. Analyze the following skills and interested job roles to suggest skills to improve, additional skills to learn, and provide career advice.

Skills: %s
Interested Job Roles: %s

Provide a response in JSON format with the following structure:
{
    "skillsToImprove": ["List of 3-5 skills to enhance for the job roles"],
    "additionalSkills": ["List of 3-5 new skills to learn for the job roles"],
    "careerAdvice": ["List of 3-5 pieces of career advice"]
}

Be specific and actionable in your recommendations. Output only the JSON.
`

func truncateResume(text string) string {
	text = strings.TrimSpace(text)
	if len(text) <= maxResumeChars {
		return text
	}
	// Cut on a rune boundary.
	cut := maxResumeChars
	for cut > 0 && !utf8RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

func utf8RuneStart(b byte) bool { return b&0xC0 != 0x80 }
