package models

import (
	"reflect"
	"strings"
	"sync"
)

// Immutable candidate fields: set at creation, never patched.
var immutableCandidateFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"job_id":       true,
	"applied_date": true,
	"created_by":   true,
}

var (
	candidateColumnsOnce sync.Once
	candidateColumns     map[string]bool
)

// CandidateUpdateColumns returns the set of field names a partial
// update may touch. Derived from the Candidate struct's json tags so
// the model stays the single source of truth; derived (gorm:"-") and
// immutable fields are excluded. Unknown keys in an update payload are
// filtered against this set and silently ignored, which is what lets
// the write side tolerate field ids the mapper fallback invented.
func CandidateUpdateColumns() map[string]bool {
	candidateColumnsOnce.Do(func() {
		candidateColumns = make(map[string]bool)
		t := reflect.TypeOf(Candidate{})
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if strings.Contains(f.Tag.Get("gorm"), "-") {
				continue
			}
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" || immutableCandidateFields[name] {
				continue
			}
			candidateColumns[name] = true
		}
	})
	return candidateColumns
}
