// Package battles defines the interface for battle history persistence
package battles

//go:generate mockgen -destination=mock/mock_repository.go -package=battlesmock github.com/pokebattle/battle-api/internal/repositories/battles Repository

import (
	"context"
	"time"

	"github.com/pokebattle/battle-api/internal/errors"
)

// DefaultListLimit is used when a list request does not set a limit
const DefaultListLimit = 50

// Record is a stored battle
type Record struct {
	ID        string    `json:"id"`
	Pokemon1  string    `json:"pokemon1"`
	Pokemon2  string    `json:"pokemon2"`
	Winner    string    `json:"winner"`
	Outcome   string    `json:"outcome"`
	BattleLog []string  `json:"battle_log"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository defines the interface for battle history persistence
type Repository interface {
	// Record stores a resolved battle
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Record(ctx context.Context, input *RecordInput) (*RecordOutput, error)

	// List returns stored battles newest first
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// RecordInput defines the input for recording a battle
type RecordInput struct {
	Record *Record
}

// RecordOutput defines the output for recording a battle
type RecordOutput struct {
	Record *Record
}

// ListInput defines the input for listing battles
type ListInput struct {
	// Limit caps the number of records; zero means DefaultListLimit
	Limit int
}

// ListOutput defines the output for listing battles
type ListOutput struct {
	Records []*Record
}

func validateRecord(input *RecordInput) error {
	if input == nil || input.Record == nil {
		return errors.InvalidArgument("record is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Record.ID == "" {
		vb.RequiredField("id")
	}
	if input.Record.Winner == "" {
		vb.RequiredField("winner")
	}
	if input.Record.CreatedAt.IsZero() {
		vb.RequiredField("created_at")
	}
	return vb.Build()
}

func listLimit(input *ListInput) int {
	if input == nil || input.Limit <= 0 {
		return DefaultListLimit
	}
	return input.Limit
}

func cloneRecord(r *Record) *Record {
	clone := *r
	clone.BattleLog = append([]string(nil), r.BattleLog...)
	return &clone
}
