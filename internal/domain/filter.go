package domain

import "fmt"

// Filter payloads are explicit optional-field structs: every field may be
// absent, none is required, and each payload has a single Validate pass
// that rejects out-of-enum values before any network call. A misspelled
// filter key is a compile error here, not a silently ignored map lookup.

// CandidateExperienceCityFilter selects candidates by minimum experience
// and city (text store).
type CandidateExperienceCityFilter struct {
	MinYearsExperience *float64
	City               *string
}

// Validate checks the payload.
func (f *CandidateExperienceCityFilter) Validate() error {
	if f.MinYearsExperience != nil && *f.MinYearsExperience < 0 {
		return fmt.Errorf("%w: min_years_experience must be non-negative", ErrValidation)
	}
	return nil
}

// CandidateSkillsEducationFilter selects candidates by skill tags and
// education level (text store).
type CandidateSkillsEducationFilter struct {
	Skills         []string
	EducationLevel *EducationLevel
}

// Validate checks the payload against the skill pool and enums.
func (f *CandidateSkillsEducationFilter) Validate() error {
	if err := ValidateSkills(f.Skills); err != nil {
		return err
	}
	if f.EducationLevel != nil && !f.EducationLevel.Valid() {
		return fmt.Errorf("%w: education level %q not in %v",
			ErrValidation, *f.EducationLevel, EducationLevels())
	}
	return nil
}

// JobAdSearchFilter selects job ads by keyword and categorical filters
// (text store).
type JobAdSearchFilter struct {
	Query                   *string
	RequiredExperienceLevel *ExperienceLevel
	WorkModes               []WorkMode
	City                    *string
}

// Validate checks the enumerated fields.
func (f *JobAdSearchFilter) Validate() error {
	if f.RequiredExperienceLevel != nil && !f.RequiredExperienceLevel.Valid() {
		return fmt.Errorf("%w: experience level %q not in %v",
			ErrValidation, *f.RequiredExperienceLevel, ExperienceLevels())
	}
	for _, wm := range f.WorkModes {
		if !wm.Valid() {
			return fmt.Errorf("%w: work mode %q not in %v", ErrValidation, wm, WorkModes())
		}
	}
	return nil
}

// CandidateVectorFilter selects candidates in the vector store: an optional
// semantic skill query plus equality/range metadata predicates.
type CandidateVectorFilter struct {
	SkillQuery         *string
	EducationLevel     *EducationLevel
	MinYearsExperience *float64
}

// Validate checks the payload.
func (f *CandidateVectorFilter) Validate() error {
	if f.EducationLevel != nil && !f.EducationLevel.Valid() {
		return fmt.Errorf("%w: education level %q not in %v",
			ErrValidation, *f.EducationLevel, EducationLevels())
	}
	if f.MinYearsExperience != nil && *f.MinYearsExperience < 0 {
		return fmt.Errorf("%w: min_years_experience must be non-negative", ErrValidation)
	}
	return nil
}

// JobAdVectorFilter selects job ads in the vector store: an optional
// semantic description query plus equality metadata predicates.
type JobAdVectorFilter struct {
	DescriptionQuery        *string
	RequiredExperienceLevel *ExperienceLevel
	JobType                 *JobType
	WorkMode                *WorkMode
	City                    *string
}

// Validate checks the enumerated fields.
func (f *JobAdVectorFilter) Validate() error {
	if f.RequiredExperienceLevel != nil && !f.RequiredExperienceLevel.Valid() {
		return fmt.Errorf("%w: experience level %q not in %v",
			ErrValidation, *f.RequiredExperienceLevel, ExperienceLevels())
	}
	if f.JobType != nil && !f.JobType.Valid() {
		return fmt.Errorf("%w: job type %q not in %v", ErrValidation, *f.JobType, JobTypes())
	}
	if f.WorkMode != nil && !f.WorkMode.Valid() {
		return fmt.Errorf("%w: work mode %q not in %v", ErrValidation, *f.WorkMode, WorkModes())
	}
	return nil
}

// JobAdReportFilter scopes the plain job ads report (text store).
type JobAdReportFilter struct {
	JobType         *JobType
	ExperienceLevel *ExperienceLevel
}

// Validate checks the enumerated fields.
func (f *JobAdReportFilter) Validate() error {
	if f.JobType != nil && !f.JobType.Valid() {
		return fmt.Errorf("%w: job type %q not in %v", ErrValidation, *f.JobType, JobTypes())
	}
	if f.ExperienceLevel != nil && !f.ExperienceLevel.Valid() {
		return fmt.Errorf("%w: experience level %q not in %v",
			ErrValidation, *f.ExperienceLevel, ExperienceLevels())
	}
	return nil
}

// CandidateReportFilter scopes the plain candidates report (text store).
type CandidateReportFilter struct {
	EducationLevel     *EducationLevel
	MinYearsExperience *float64
}

// Validate checks the payload.
func (f *CandidateReportFilter) Validate() error {
	if f.EducationLevel != nil && !f.EducationLevel.Valid() {
		return fmt.Errorf("%w: education level %q not in %v",
			ErrValidation, *f.EducationLevel, EducationLevels())
	}
	if f.MinYearsExperience != nil && *f.MinYearsExperience < 0 {
		return fmt.Errorf("%w: min_years_experience must be non-negative", ErrValidation)
	}
	return nil
}

// PageRequest is a 1-based pagination window over a match list.
type PageRequest struct {
	Page int
	Size int
}

// Normalize clamps the request to sane values given a default and max size.
func (p PageRequest) Normalize(defaultSize, maxSize int) PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size <= 0 {
		p.Size = defaultSize
	}
	if p.Size > maxSize {
		p.Size = maxSize
	}
	return p
}

// Bounds returns the half-open slice window [lo, hi) clipped to n.
func (p PageRequest) Bounds(n int) (int, int) {
	lo := (p.Page - 1) * p.Size
	if lo > n {
		lo = n
	}
	hi := lo + p.Size
	if hi > n {
		hi = n
	}
	return lo, hi
}
