package v1alpha1

import (
	"encoding/json"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/pokebattle/battle-api/internal/entities/pokemon"
	"github.com/pokebattle/battle-api/internal/errors"
	"github.com/pokebattle/battle-api/internal/orchestrators/battle"
	"github.com/pokebattle/battle-api/internal/repositories/battles"
)

// BattleRequest is the body of a battle request
type BattleRequest struct {
	Pokemon1 string `json:"pokemon1"`
	Pokemon2 string `json:"pokemon2"`
}

// BattleResponse is the body returned for a battle
type BattleResponse struct {
	BattleID  string       `json:"battle_id"`
	Pokemon1  pokemon.Info `json:"pokemon1"`
	Pokemon2  pokemon.Info `json:"pokemon2"`
	Winner    string       `json:"winner"`
	Outcome   string       `json:"outcome"`
	BattleLog []string     `json:"battle_log"`
}

// ListBattlesRequest is the body of a history request
type ListBattlesRequest struct {
	Limit int `json:"limit,omitempty"`
}

// BattleRecord is a stored battle as returned by the history endpoints
type BattleRecord struct {
	ID        string    `json:"id"`
	Pokemon1  string    `json:"pokemon1"`
	Pokemon2  string    `json:"pokemon2"`
	Winner    string    `json:"winner"`
	Outcome   string    `json:"outcome"`
	BattleLog []string  `json:"battle_log"`
	CreatedAt time.Time `json:"created_at"`
}

// ListBattlesResponse is the body returned for a history request
type ListBattlesResponse struct {
	Battles []BattleRecord `json:"battles"`
}

// NewBattleResponse converts an orchestrator result
func NewBattleResponse(output *battle.BattleOutput) *BattleResponse {
	return &BattleResponse{
		BattleID:  output.BattleID,
		Pokemon1:  output.Pokemon1,
		Pokemon2:  output.Pokemon2,
		Winner:    output.Winner,
		Outcome:   output.Outcome,
		BattleLog: output.BattleLog,
	}
}

// NewListBattlesResponse converts stored records
func NewListBattlesResponse(records []*battles.Record) *ListBattlesResponse {
	resp := &ListBattlesResponse{
		Battles: make([]BattleRecord, 0, len(records)),
	}
	for _, r := range records {
		resp.Battles = append(resp.Battles, BattleRecord{
			ID:        r.ID,
			Pokemon1:  r.Pokemon1,
			Pokemon2:  r.Pokemon2,
			Winner:    r.Winner,
			Outcome:   r.Outcome,
			BattleLog: r.BattleLog,
			CreatedAt: r.CreatedAt,
		})
	}
	return resp
}

// ToStruct encodes v as a protobuf Struct through its JSON form
func ToStruct(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}

	s := &structpb.Struct{}
	if err := s.UnmarshalJSON(data); err != nil {
		return nil, errors.Wrap(err, "failed to convert message")
	}
	return s, nil
}

// FromStruct decodes a protobuf Struct into v through its JSON form
func FromStruct(s *structpb.Struct, v interface{}) error {
	if s == nil {
		s = &structpb.Struct{}
	}

	data, err := s.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "failed to convert message")
	}

	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed message")
	}
	return nil
}
