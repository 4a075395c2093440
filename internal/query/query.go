// Package query builds search queries from filter payloads. Builders are
// pure: they validate, compose clauses and pick aggregations; the only I/O
// is embedding semantic query text. Rendering into RediSearch syntax lives
// here too so both stores share one set of escapers.
package query

// Indexed field names shared by both stores.
const (
	FieldFirstname               = "firstname"
	FieldLastname                = "lastname"
	FieldEducationLevel          = "education_level"
	FieldYearsExperience         = "years_experience"
	FieldSkills                  = "skills"
	FieldCity                    = "city"
	FieldCountry                 = "country"
	FieldTitle                   = "title"
	FieldDescription             = "description"
	FieldRequiredExperienceLevel = "required_experience_level"
	FieldJobType                 = "job_type"
	FieldWorkMode                = "work_mode"
)

// Clause is a single filter condition on an indexed field. Exactly one of
// Term, Terms or GTE is set.
type Clause struct {
	Field string
	Term  string
	Terms []string
	GTE   *float64
}

// Term builds an exact-value clause.
func Term(field, value string) Clause {
	return Clause{Field: field, Term: value}
}

// Terms builds an any-of clause.
func Terms(field string, values []string) Clause {
	return Clause{Field: field, Terms: values}
}

// GTE builds a lower-bounded numeric range clause.
func GTE(field string, min float64) Clause {
	return Clause{Field: field, GTE: &min}
}

// Match is a full-text search over one or more text fields.
type Match struct {
	Fields []string
	Query  string
}

// Sort orders results by a sortable field. When absent, results rank by
// relevance score descending.
type Sort struct {
	Field string
	Desc  bool
}

// Aggregation requests a summary alongside the hits. At most one of the
// fields is set.
type Aggregation struct {
	AvgField     string
	CountByField string
}

// Aggregates carries the summary computed for an Aggregation request.
type Aggregates struct {
	Avg    *float64
	Counts map[string]int
}

// TextQuery is a composed text-store query. An empty filter payload yields
// MatchAll=true rather than an always-false query.
type TextQuery struct {
	MatchAll bool
	Match    *Match
	Clauses  []Clause
	Sort     *Sort
	Agg      *Aggregation
}

// Predicate is a metadata pre-filter condition on a vector-store field.
// Exactly one of Eq or GTE is set.
type Predicate struct {
	Field string
	Eq    string
	GTE   *float64
}

// Eq builds an equality predicate.
func Eq(field, value string) Predicate {
	return Predicate{Field: field, Eq: value}
}

// AtLeast builds a lower-bounded numeric predicate.
func AtLeast(field string, min float64) Predicate {
	return Predicate{Field: field, GTE: &min}
}

// VectorQuery is a composed vector-store query. When the source payload
// carried no semantic query text, Vector is a zero vector and Scored is
// false; matches from such a query carry no similarity score.
type VectorQuery struct {
	Vector     []float32
	Scored     bool
	Predicates []Predicate
	TopK       int
}
