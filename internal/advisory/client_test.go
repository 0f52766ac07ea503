package advisory

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	reply  string
	err    error
	prompt string
	wait   bool
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	if s.wait {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return s.reply, s.err
}

func TestCleanJSON(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```":        `{"a":1}`,
		"```\n{\"a\":1}\n```":            `{"a":1}`,
		"{\"a\":1}":                      `{"a":1}`,
		"Here you go:\n{\"a\":1}\nBye.": `{"a":1}`,
	}
	for in, want := range cases {
		assert.Equal(t, want, CleanJSON(in), in)
	}
}

func TestInterviewTipsParsesFencedReply(t *testing.T) {
	gen := &stubGenerator{reply: "```json\n{\"advice\":\"Practice\",\"tips\":[\"t1\"],\"questions\":[\"q1\",\"q2\"]}\n```"}
	client := NewClient(gen, time.Second)

	tips, err := client.InterviewTips(context.Background(), "Backend Engineer")
	require.NoError(t, err)
	assert.Equal(t, "Practice", tips.Advice)
	assert.Equal(t, []string{"t1"}, tips.Tips)
	assert.Equal(t, []string{"q1", "q2"}, tips.Questions)
	assert.Contains(t, gen.prompt, "Backend Engineer")
}

func TestAnalyzeResumeFillsMissingLists(t *testing.T) {
	gen := &stubGenerator{reply: `{"score":140,"summary":"Solid","suggestedRoles":["SRE"]}`}
	analysis, err := NewClient(gen, 0).AnalyzeResume(context.Background(), "Go developer")
	require.NoError(t, err)

	assert.Equal(t, 100, analysis.Score)
	assert.Equal(t, "Solid", analysis.Summary)
	assert.Equal(t, []string{"SRE"}, analysis.SuggestedRoles)
	assert.NotNil(t, analysis.Keywords)
	assert.NotNil(t, analysis.MissingSkills)
}

func TestAnalyzeResumeRoundsFractionalScore(t *testing.T) {
	cases := map[string]int{
		`{"score":85.5}`: 86,
		`{"score":72.4}`: 72,
		`{"score":-3.2}`: 0,
		`{"score":100.7}`: 100,
	}
	for reply, want := range cases {
		analysis, err := NewClient(&stubGenerator{reply: reply}, 0).AnalyzeResume(context.Background(), "Go developer")
		require.NoError(t, err, reply)
		assert.Equal(t, want, analysis.Score, reply)
	}
}

func TestAnalyzeResumeTruncatesLongText(t *testing.T) {
	gen := &stubGenerator{reply: `{"summary":"ok"}`}
	_, err := NewClient(gen, 0).AnalyzeResume(context.Background(), strings.Repeat("x", maxResumeChars+500))
	require.NoError(t, err)
	assert.Less(t, len(gen.prompt), maxResumeChars+2000)
}

func TestCoverLetterRejectsEmptyLetter(t *testing.T) {
	gen := &stubGenerator{reply: `{"coverLetter":"  "}`}
	_, err := NewClient(gen, 0).CoverLetter(context.Background(), "resume", "Acme", "Engineer")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestAnalyzeSkillsPromptListsInputs(t *testing.T) {
	gen := &stubGenerator{reply: `{"skillsToImprove":["sql"],"additionalSkills":["k8s"],"careerAdvice":["ship"]}`}
	out, err := NewClient(gen, 0).AnalyzeSkills(context.Background(), []string{"go", "sql"}, []string{"backend"})
	require.NoError(t, err)
	assert.Equal(t, []string{"k8s"}, out.AdditionalSkills)
	assert.Contains(t, gen.prompt, "Skills: go, sql")
	assert.Contains(t, gen.prompt, "Interested Job Roles: backend")
}

func TestFailuresAreUnavailable(t *testing.T) {
	ctx := context.Background()

	_, err := NewClient(&stubGenerator{err: errors.New("boom")}, 0).InterviewTips(ctx, "dev")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = NewClient(&stubGenerator{reply: "not json at all"}, 0).InterviewTips(ctx, "dev")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = NewClient(&stubGenerator{wait: true}, 10*time.Millisecond).InterviewTips(ctx, "dev")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = NewClient(UnconfiguredGenerator{}, 0).InterviewTips(ctx, "dev")
	assert.ErrorIs(t, err, ErrUnavailable)
}
