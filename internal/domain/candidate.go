package domain

import (
	"fmt"
	"strings"
)

// EducationLevel enumerates candidate education levels.
type EducationLevel string

const (
	// EducationJunior is pre-degree education.
	EducationJunior EducationLevel = "junior"
	// EducationBachelor is a bachelor degree.
	EducationBachelor EducationLevel = "bachelor"
	// EducationMaster is a master degree.
	EducationMaster EducationLevel = "master"
)

// EducationLevels lists every allowed education level.
func EducationLevels() []EducationLevel {
	return []EducationLevel{EducationJunior, EducationBachelor, EducationMaster}
}

// Valid reports whether the value is in the allowed set.
func (e EducationLevel) Valid() bool {
	switch e {
	case EducationJunior, EducationBachelor, EducationMaster:
		return true
	}
	return false
}

// SkillPool is the fixed set of skill tags candidates may carry.
var SkillPool = []string{
	"Python", "Docker", "FastAPI", "SQL", "Java", "React", "AWS", "Kubernetes", "Git",
}

var skillSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(SkillPool))
	for _, s := range SkillPool {
		m[s] = struct{}{}
	}
	return m
}()

// ValidateSkills checks every skill against the fixed pool.
func ValidateSkills(skills []string) error {
	for _, s := range skills {
		if _, ok := skillSet[s]; !ok {
			return fmt.Errorf("%w: skill %q not in pool %v", ErrValidation, s, SkillPool)
		}
	}
	return nil
}

// Candidate is a job candidate record. The same field snapshot is stored
// in whichever store holds the candidate; the vector store additionally
// derives an embedding from EmbeddingText.
type Candidate struct {
	ID              string
	Firstname       string
	Lastname        string
	EducationLevel  EducationLevel
	YearsExperience float64
	Skills          []string
	City            string
	Country         string
}

// Validate checks enumerated fields and the skill pool.
func (c *Candidate) Validate() error {
	if !c.EducationLevel.Valid() {
		return fmt.Errorf("%w: education level %q not in %v",
			ErrValidation, c.EducationLevel, EducationLevels())
	}
	if c.YearsExperience < 0 {
		return fmt.Errorf("%w: years_experience must be non-negative", ErrValidation)
	}
	return ValidateSkills(c.Skills)
}

// EmbeddingText is the canonical rendering handed to the embedding gateway.
func (c *Candidate) EmbeddingText() string {
	return fmt.Sprintf("%s %s, Education: %s, Skills: %s, Experience: %g years, Location: %s, %s",
		c.Firstname, c.Lastname, c.EducationLevel,
		strings.Join(c.Skills, ", "), c.YearsExperience, c.City, c.Country)
}

// CandidatePatch is a partial candidate update; nil fields are left unchanged.
type CandidatePatch struct {
	Firstname       *string
	Lastname        *string
	EducationLevel  *EducationLevel
	YearsExperience *float64
	Skills          []string
	City            *string
	Country         *string
}

// IsEmpty reports whether the patch changes nothing.
func (p *CandidatePatch) IsEmpty() bool {
	return p.Firstname == nil && p.Lastname == nil && p.EducationLevel == nil &&
		p.YearsExperience == nil && p.Skills == nil && p.City == nil && p.Country == nil
}

// Validate checks the supplied fields against their allowed sets.
func (p *CandidatePatch) Validate() error {
	if p.EducationLevel != nil && !p.EducationLevel.Valid() {
		return fmt.Errorf("%w: education level %q not in %v",
			ErrValidation, *p.EducationLevel, EducationLevels())
	}
	if p.YearsExperience != nil && *p.YearsExperience < 0 {
		return fmt.Errorf("%w: years_experience must be non-negative", ErrValidation)
	}
	if p.Skills != nil {
		return ValidateSkills(p.Skills)
	}
	return nil
}

// Apply merges the patch into the candidate.
func (p *CandidatePatch) Apply(c *Candidate) {
	if p.Firstname != nil {
		c.Firstname = *p.Firstname
	}
	if p.Lastname != nil {
		c.Lastname = *p.Lastname
	}
	if p.EducationLevel != nil {
		c.EducationLevel = *p.EducationLevel
	}
	if p.YearsExperience != nil {
		c.YearsExperience = *p.YearsExperience
	}
	if p.Skills != nil {
		c.Skills = p.Skills
	}
	if p.City != nil {
		c.City = *p.City
	}
	if p.Country != nil {
		c.Country = *p.Country
	}
}

// CandidateMatch is a vector-store hit. Score is set only when the query
// carried a real (non-placeholder) embedding.
type CandidateMatch struct {
	Candidate
	Score *float64
}
