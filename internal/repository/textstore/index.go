package textstore

import (
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/db"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/query"
)

const (
	keyPrefix       = "jobmatcher:text:"
	candidatePrefix = keyPrefix + "candidates:"
	jobAdPrefix     = keyPrefix + "job_ads:"
	candidateIndex  = keyPrefix + "candidates:idx"
	jobAdIndex      = keyPrefix + "job_ads:idx"

	skillSeparator = ","
)

func candidateIndexDef() *db.IndexDefinition {
	return db.NewIndex(candidateIndex).
		Prefix(candidatePrefix).
		Tag(query.FieldEducationLevel).
		Numeric(query.FieldYearsExperience).
		TagWithSeparator(query.FieldSkills, skillSeparator).
		Tag(query.FieldCity).
		Tag(query.FieldCountry).
		MustBuild()
}

func jobAdIndexDef() *db.IndexDefinition {
	return db.NewIndex(jobAdIndex).
		Prefix(jobAdPrefix).
		Text(query.FieldTitle).
		Text(query.FieldDescription).
		Tag(query.FieldRequiredExperienceLevel).
		Tag(query.FieldJobType).
		Tag(query.FieldWorkMode).
		Tag(query.FieldCity).
		Tag(query.FieldCountry).
		MustBuild()
}
