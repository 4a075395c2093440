package vectorstore

import (
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/db"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/query"
)

const (
	keyPrefix       = "jobmatcher:vector:"
	candidatePrefix = keyPrefix + "candidates:"
	jobAdPrefix     = keyPrefix + "job_ads:"
	candidateIndex  = keyPrefix + "candidates:idx"
	jobAdIndex      = keyPrefix + "job_ads:idx"

	vectorField    = "__vector"
	vectorAlias    = "vector" // attribute name KNN clauses reference
	skillSeparator = ","

	hnswM           = 16
	hnswEFConstruct = 200
)

func candidateIndexDef(dim int) *db.IndexDefinition {
	return db.NewIndex(candidateIndex).
		Prefix(candidatePrefix).
		VectorHNSW(vectorField, vectorAlias, dim, db.DistanceCosine, hnswM, hnswEFConstruct).
		Tag(query.FieldEducationLevel).
		Numeric(query.FieldYearsExperience).
		TagWithSeparator(query.FieldSkills, skillSeparator).
		Tag(query.FieldCity).
		Tag(query.FieldCountry).
		MustBuild()
}

func jobAdIndexDef(dim int) *db.IndexDefinition {
	return db.NewIndex(jobAdIndex).
		Prefix(jobAdPrefix).
		VectorHNSW(vectorField, vectorAlias, dim, db.DistanceCosine, hnswM, hnswEFConstruct).
		Tag(query.FieldRequiredExperienceLevel).
		Tag(query.FieldJobType).
		Tag(query.FieldWorkMode).
		Tag(query.FieldCity).
		Tag(query.FieldCountry).
		MustBuild()
}
