package vectorstore

import (
	"testing"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/db"
)

// KNN clauses reference the @vector attribute, so both schemas must declare
// the stored __vector field under that alias.
func TestIndexDefs_VectorFieldAlias(t *testing.T) {
	for _, def := range []*db.IndexDefinition{candidateIndexDef(4), jobAdIndexDef(4)} {
		found := false
		for _, f := range def.Fields {
			if f.Type != db.IndexFieldVector {
				continue
			}
			found = true
			if f.Name != vectorField {
				t.Errorf("%s: vector field name = %q, want %q", def.Name, f.Name, vectorField)
			}
			if f.Alias != vectorAlias {
				t.Errorf("%s: vector field alias = %q, want %q", def.Name, f.Alias, vectorAlias)
			}
		}
		if !found {
			t.Errorf("%s: no vector field declared", def.Name)
		}
	}
}
