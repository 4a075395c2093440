package textstore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/query"
)

func candidateFields(c *domain.Candidate) map[string]string {
	return map[string]string{
		query.FieldFirstname:       c.Firstname,
		query.FieldLastname:        c.Lastname,
		query.FieldEducationLevel:  string(c.EducationLevel),
		query.FieldYearsExperience: strconv.FormatFloat(c.YearsExperience, 'f', -1, 64),
		query.FieldSkills:          strings.Join(c.Skills, skillSeparator),
		query.FieldCity:            c.City,
		query.FieldCountry:         c.Country,
	}
}

func parseCandidate(id string, fields map[string]string) (domain.Candidate, error) {
	years, err := strconv.ParseFloat(fields[query.FieldYearsExperience], 64)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("parse years_experience for %s: %w", id, err)
	}

	var skills []string
	if raw := fields[query.FieldSkills]; raw != "" {
		skills = strings.Split(raw, skillSeparator)
	}

	return domain.Candidate{
		ID:              id,
		Firstname:       fields[query.FieldFirstname],
		Lastname:        fields[query.FieldLastname],
		EducationLevel:  domain.EducationLevel(fields[query.FieldEducationLevel]),
		YearsExperience: years,
		Skills:          skills,
		City:            fields[query.FieldCity],
		Country:         fields[query.FieldCountry],
	}, nil
}

func jobAdFields(j *domain.JobAd) map[string]string {
	return map[string]string{
		query.FieldTitle:                   j.Title,
		query.FieldDescription:             j.Description,
		query.FieldRequiredExperienceLevel: string(j.RequiredExperienceLevel),
		query.FieldJobType:                 string(j.JobType),
		query.FieldWorkMode:                string(j.WorkMode),
		query.FieldCity:                    j.City,
		query.FieldCountry:                 j.Country,
	}
}

func parseJobAd(id string, fields map[string]string) domain.JobAd {
	return domain.JobAd{
		ID:                      id,
		Title:                   fields[query.FieldTitle],
		Description:             fields[query.FieldDescription],
		RequiredExperienceLevel: domain.ExperienceLevel(fields[query.FieldRequiredExperienceLevel]),
		JobType:                 domain.JobType(fields[query.FieldJobType]),
		WorkMode:                domain.WorkMode(fields[query.FieldWorkMode]),
		City:                    fields[query.FieldCity],
		Country:                 fields[query.FieldCountry],
	}
}
