// Package v1alpha1 handles the battle gRPC service
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/pokebattle/battle-api/internal/errors"
	"github.com/pokebattle/battle-api/internal/orchestrators/battle"
)

// BattleHandlerConfig holds dependencies for the battle handler
type BattleHandlerConfig struct {
	BattleService battle.Service
}

// Validate ensures all required dependencies are present
func (c *BattleHandlerConfig) Validate() error {
	if c.BattleService == nil {
		return errors.InvalidArgument("battle service is required")
	}
	return nil
}

// BattleHandler implements the battle gRPC service
type BattleHandler struct {
	battleService battle.Service
}

var _ BattleServiceServer = (*BattleHandler)(nil)

// NewBattleHandler creates a new battle handler with the given configuration
func NewBattleHandler(cfg *BattleHandlerConfig) (*BattleHandler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &BattleHandler{
		battleService: cfg.BattleService,
	}, nil
}

// Battle runs a battle between the two requested pokemon
func (h *BattleHandler) Battle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in BattleRequest
	if err := FromStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.battleService.Battle(ctx, &battle.BattleInput{
		Pokemon1: in.Pokemon1,
		Pokemon2: in.Pokemon2,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := ToStruct(NewBattleResponse(output))
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// ListBattles returns previously recorded battles newest first
func (h *BattleHandler) ListBattles(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ListBattlesRequest
	if err := FromStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.battleService.ListBattles(ctx, &battle.ListBattlesInput{Limit: in.Limit})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := ToStruct(NewListBattlesResponse(output.Battles))
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}
