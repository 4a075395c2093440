package domain

import "fmt"

// ExperienceLevel enumerates required experience levels for a job ad.
type ExperienceLevel string

const (
	// ExperienceJunior is an entry-level position.
	ExperienceJunior ExperienceLevel = "junior"
	// ExperienceMid is a mid-level position.
	ExperienceMid ExperienceLevel = "mid"
	// ExperienceSenior is a senior position.
	ExperienceSenior ExperienceLevel = "senior"
)

// ExperienceLevels lists every allowed experience level.
func ExperienceLevels() []ExperienceLevel {
	return []ExperienceLevel{ExperienceJunior, ExperienceMid, ExperienceSenior}
}

// Valid reports whether the value is in the allowed set.
func (e ExperienceLevel) Valid() bool {
	switch e {
	case ExperienceJunior, ExperienceMid, ExperienceSenior:
		return true
	}
	return false
}

// JobType enumerates employment types.
type JobType string

const (
	// JobFullTime is full-time employment.
	JobFullTime JobType = "full-time"
	// JobPartTime is part-time employment.
	JobPartTime JobType = "part-time"
	// JobInternship is an internship.
	JobInternship JobType = "internship"
	// JobContract is contract work.
	JobContract JobType = "contract"
)

// JobTypes lists every allowed job type.
func JobTypes() []JobType {
	return []JobType{JobFullTime, JobPartTime, JobInternship, JobContract}
}

// Valid reports whether the value is in the allowed set.
func (j JobType) Valid() bool {
	switch j {
	case JobFullTime, JobPartTime, JobInternship, JobContract:
		return true
	}
	return false
}

// WorkMode enumerates work arrangements.
type WorkMode string

const (
	// WorkRemote is fully remote work.
	WorkRemote WorkMode = "remote"
	// WorkOnsite is fully on-site work.
	WorkOnsite WorkMode = "onsite"
	// WorkHybrid mixes remote and on-site work.
	WorkHybrid WorkMode = "hybrid"
)

// WorkModes lists every allowed work mode.
func WorkModes() []WorkMode {
	return []WorkMode{WorkRemote, WorkOnsite, WorkHybrid}
}

// Valid reports whether the value is in the allowed set.
func (w WorkMode) Valid() bool {
	switch w {
	case WorkRemote, WorkOnsite, WorkHybrid:
		return true
	}
	return false
}

// JobAd is a job advertisement record. When dual-written, the same id and
// field snapshot exist in both the text store and the vector store.
type JobAd struct {
	ID                      string
	Title                   string
	Description             string
	RequiredExperienceLevel ExperienceLevel
	JobType                 JobType
	WorkMode                WorkMode
	City                    string
	Country                 string
}

// Validate checks the enumerated fields.
func (j *JobAd) Validate() error {
	if !j.RequiredExperienceLevel.Valid() {
		return fmt.Errorf("%w: experience level %q not in %v",
			ErrValidation, j.RequiredExperienceLevel, ExperienceLevels())
	}
	if !j.JobType.Valid() {
		return fmt.Errorf("%w: job type %q not in %v", ErrValidation, j.JobType, JobTypes())
	}
	if !j.WorkMode.Valid() {
		return fmt.Errorf("%w: work mode %q not in %v", ErrValidation, j.WorkMode, WorkModes())
	}
	return nil
}

// EmbeddingText is the canonical rendering handed to the embedding gateway.
// The saga embeds exactly this string, in this field order.
func (j *JobAd) EmbeddingText() string {
	return fmt.Sprintf("%s: %s. Required level: %s, Job type: %s, Work mode: %s, Location: %s, %s",
		j.Title, j.Description, j.RequiredExperienceLevel, j.JobType, j.WorkMode, j.City, j.Country)
}

// JobAdPatch is a partial job ad update; nil fields are left unchanged.
type JobAdPatch struct {
	Title                   *string
	Description             *string
	RequiredExperienceLevel *ExperienceLevel
	JobType                 *JobType
	WorkMode                *WorkMode
	City                    *string
	Country                 *string
}

// IsEmpty reports whether the patch changes nothing.
func (p *JobAdPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.RequiredExperienceLevel == nil &&
		p.JobType == nil && p.WorkMode == nil && p.City == nil && p.Country == nil
}

// Validate checks the supplied fields against their allowed sets.
func (p *JobAdPatch) Validate() error {
	if p.RequiredExperienceLevel != nil && !p.RequiredExperienceLevel.Valid() {
		return fmt.Errorf("%w: experience level %q not in %v",
			ErrValidation, *p.RequiredExperienceLevel, ExperienceLevels())
	}
	if p.JobType != nil && !p.JobType.Valid() {
		return fmt.Errorf("%w: job type %q not in %v", ErrValidation, *p.JobType, JobTypes())
	}
	if p.WorkMode != nil && !p.WorkMode.Valid() {
		return fmt.Errorf("%w: work mode %q not in %v", ErrValidation, *p.WorkMode, WorkModes())
	}
	return nil
}

// Apply merges the patch into the job ad.
func (p *JobAdPatch) Apply(j *JobAd) {
	if p.Title != nil {
		j.Title = *p.Title
	}
	if p.Description != nil {
		j.Description = *p.Description
	}
	if p.RequiredExperienceLevel != nil {
		j.RequiredExperienceLevel = *p.RequiredExperienceLevel
	}
	if p.JobType != nil {
		j.JobType = *p.JobType
	}
	if p.WorkMode != nil {
		j.WorkMode = *p.WorkMode
	}
	if p.City != nil {
		j.City = *p.City
	}
	if p.Country != nil {
		j.Country = *p.Country
	}
}

// JobAdHit is a text-store search hit with its relevance score.
type JobAdHit struct {
	JobAd
	Score float64
}

// JobAdMatch is a vector-store hit. Score is set only when the query
// carried a real (non-placeholder) embedding.
type JobAdMatch struct {
	JobAd
	Score *float64
}
