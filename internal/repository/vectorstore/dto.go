package vectorstore

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/query"
)

// Metadata fields returned from KNN queries; the vector blob stays behind.
var candidateReturnFields = []string{
	query.FieldFirstname,
	query.FieldLastname,
	query.FieldEducationLevel,
	query.FieldYearsExperience,
	query.FieldSkills,
	query.FieldCity,
	query.FieldCountry,
}

var jobAdReturnFields = []string{
	query.FieldTitle,
	query.FieldDescription,
	query.FieldRequiredExperienceLevel,
	query.FieldJobType,
	query.FieldWorkMode,
	query.FieldCity,
	query.FieldCountry,
}

func candidateFields(c *domain.Candidate, vec []float32) map[string]string {
	return map[string]string{
		query.FieldFirstname:       c.Firstname,
		query.FieldLastname:        c.Lastname,
		query.FieldEducationLevel:  string(c.EducationLevel),
		query.FieldYearsExperience: strconv.FormatFloat(c.YearsExperience, 'f', -1, 64),
		query.FieldSkills:          strings.Join(c.Skills, skillSeparator),
		query.FieldCity:            c.City,
		query.FieldCountry:         c.Country,
		vectorField:                vectorToBlob(vec),
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

func jobAdFields(j *domain.JobAd, vec []float32) map[string]string {
	return map[string]string{
		query.FieldTitle:                   j.Title,
		query.FieldDescription:             j.Description,
		query.FieldRequiredExperienceLevel: string(j.RequiredExperienceLevel),
		query.FieldJobType:                 string(j.JobType),
		query.FieldWorkMode:                string(j.WorkMode),
		query.FieldCity:                    j.City,
		query.FieldCountry:                 j.Country,
		vectorField:                        vectorToBlob(vec),
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

func vectorToBlob(v []float32) string {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return string(buf)
}
