package models

import "gorm.io/datatypes"

// Work preferences accepted on a skill profile.
const (
	PreferenceRemote = "Remote"
	PreferenceOnsite = "Onsite"
	PreferenceHybrid = "Hybrid"
)

// SkillProfile holds a user's skills and job preferences. There is at most one per user.
type SkillProfile struct {
	ID                 string                      `json:"_id,omitempty" gorm:"primaryKey;type:varchar(36)"`
	Username           string                      `json:"username" gorm:"uniqueIndex;type:varchar(50);not null"`
	Skills             datatypes.JSONSlice[string] `json:"skills"`
	InterestedJobRoles datatypes.JSONSlice[string] `json:"interestedJobRoles"`
	Preference         string                      `json:"preference" gorm:"type:varchar(10);not null;default:Remote"`
	Experience         int                         `json:"experience" gorm:"not null;default:0"`
	Location           string                      `json:"location" gorm:"type:varchar(200)"`
}

// DefaultSkillProfile is what a user without a stored profile sees.
func DefaultSkillProfile(username string) *SkillProfile {
	return &SkillProfile{
		Username:           username,
		Skills:             datatypes.JSONSlice[string]{},
		InterestedJobRoles: datatypes.JSONSlice[string]{},
		Preference:         PreferenceRemote,
		Experience:         0,
		Location:           "",
	}
}
