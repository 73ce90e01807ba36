// Package editor produces minimal partial-update payloads for
// candidate records and applies them through the record store.
package editor

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/models"
)

// ValidationError rejects an enumerated value outside its scale.
type ValidationError struct {
	Field string
	Value interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %v for field %s", e.Value, e.Field)
}

// Payload is a sparse field map. A key maps to nil when the edit
// cleared the field; keys never touched by the edit are absent, so the
// store leaves them alone.
type Payload map[string]interface{}

// Assessment fields are stored as integers on the 1..4 scale; the edit
// form delivers them as strings.
var assessmentFields = map[string]bool{
	"general_attitude_assessment":   true,
	"oral_communication_assessment": true,
}

// BuildUpdatePayload converts a sparse edit overlay into the payload
// sent to the store. Exactly the keys present in edits appear in the
// result: empty strings are normalized to null, assessment scores are
// coerced to integers and validated, everything else (nested arrays
// and objects included) passes through as-is. The original snapshot
// never leaks into the payload, which is what keeps the update partial.
func BuildUpdatePayload(original *models.Candidate, edits map[string]interface{}) (Payload, error) {
	_ = original // identity context only; values come exclusively from edits

	payload := make(Payload, len(edits))
	for key, value := range edits {
		if assessmentFields[key] {
			score, err := coerceAssessment(key, value)
			if err != nil {
				return nil, err
			}
			payload[key] = score
			continue
		}
		if s, ok := value.(string); ok && s == "" {
			payload[key] = nil
			continue
		}
		payload[key] = value
	}
	return payload, nil
}

// coerceAssessment maps "" to nil and numeric input to an int in 1..4.
// Out-of-scale values are a ValidationError, never clamped.
func coerceAssessment(field string, value interface{}) (interface{}, error) {
	var score int
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, &ValidationError{Field: field, Value: value}
		}
		score = n
	case int:
		score = v
	case float64:
		// JSON numbers decode as float64.
		if v != float64(int(v)) {
			return nil, &ValidationError{Field: field, Value: value}
		}
		score = int(v)
	default:
		return nil, &ValidationError{Field: field, Value: value}
	}

	if score < 1 || score > 4 {
		return nil, &ValidationError{Field: field, Value: value}
	}
	return score, nil
}

// RecordStore is the slice of the store client the editor needs.
type RecordStore interface {
	GetCandidate(ctx context.Context, id string) (*models.Candidate, error)
	UpdateCandidate(ctx context.Context, id string, payload map[string]interface{}) error
}

type Editor struct {
	Store RecordStore
}

func New(store RecordStore) *Editor {
	return &Editor{Store: store}
}

// ApplyUpdate sends the payload and returns a freshly fetched record
// rather than echoing the submission, so store-side derived fields are
// reflected. On failure nothing local is mutated; the caller retries
// by re-invoking.
func (e *Editor) ApplyUpdate(ctx context.Context, candidateID string, payload Payload) (*models.Candidate, error) {
	if err := e.Store.UpdateCandidate(ctx, candidateID, payload); err != nil {
		return nil, err
	}
	return e.Store.GetCandidate(ctx, candidateID)
}
