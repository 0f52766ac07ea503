package services_test

import (
	"net/http"
	"testing"

	"jobtrack/internal/models"
	"jobtrack/internal/repositories"
	"jobtrack/internal/services"
	"jobtrack/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestSkillService_GetProfileDefault(t *testing.T) {
	svc := services.NewSkillService(repositories.NewMemorySkillProfileRepository())

	for i := 0; i < 2; i++ {
		profile, err := svc.GetProfile("alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", profile.Username)
		assert.Empty(t, profile.Skills)
		assert.NotNil(t, profile.Skills)
		assert.Empty(t, profile.InterestedJobRoles)
		assert.Equal(t, models.PreferenceRemote, profile.Preference)
		assert.Equal(t, 0, profile.Experience)
		assert.Equal(t, "", profile.Location)
	}
}

func TestSkillService_UpsertReplacesEveryField(t *testing.T) {
	svc := services.NewSkillService(repositories.NewMemorySkillProfileRepository())

	first, err := svc.UpsertProfile("alice", services.SkillProfileInput{
		Skills:             ptr([]string{"go", " sql ", ""}),
		InterestedJobRoles: ptr([]string{"backend"}),
		Preference:         ptr(models.PreferenceHybrid),
		Experience:         ptr(4),
		Location:           ptr("Berlin"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "sql"}, []string(first.Skills))
	assert.NotEmpty(t, first.ID)

	second, err := svc.UpsertProfile("alice", services.SkillProfileInput{
		Skills: ptr([]string{"rust"}),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, []string{"rust"}, []string(second.Skills))
	assert.Empty(t, second.InterestedJobRoles)
	assert.Equal(t, models.PreferenceRemote, second.Preference)
	assert.Equal(t, 0, second.Experience)
	assert.Equal(t, "", second.Location)
}

func TestSkillService_PatchMergesPresentFields(t *testing.T) {
	svc := services.NewSkillService(repositories.NewMemorySkillProfileRepository())

	_, err := svc.PatchProfile("alice", services.SkillProfileInput{Location: ptr("Paris")})
	assert.Equal(t, http.StatusNotFound, apperror.CodeOf(err))

	_, err = svc.UpsertProfile("alice", services.SkillProfileInput{
		Skills:     ptr([]string{"go"}),
		Preference: ptr(models.PreferenceOnsite),
		Experience: ptr(5),
		Location:   ptr("Berlin"),
	})
	require.NoError(t, err)

	patched, err := svc.PatchProfile("alice", services.SkillProfileInput{
		Experience: ptr(0),
		Location:   ptr("Paris"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, []string(patched.Skills))
	assert.Equal(t, models.PreferenceOnsite, patched.Preference)
	assert.Equal(t, 0, patched.Experience)
	assert.Equal(t, "Paris", patched.Location)
}

func TestSkillService_RejectsInvalidInput(t *testing.T) {
	svc := services.NewSkillService(repositories.NewMemorySkillProfileRepository())

	_, err := svc.UpsertProfile("alice", services.SkillProfileInput{Preference: ptr("Mars")})
	assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(err))

	_, err = svc.UpsertProfile("alice", services.SkillProfileInput{Experience: ptr(-1)})
	assert.Equal(t, http.StatusBadRequest, apperror.CodeOf(err))

	profile, err := svc.GetProfile("alice")
	require.NoError(t, err)
	assert.Empty(t, profile.ID, "invalid input must not create a profile")
}
