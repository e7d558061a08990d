package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pokebattle/battle-api/internal/orchestrators/battle"
)

var (
	battleSeed    uint64
	battleTimeout time.Duration
)

var battleCmd = &cobra.Command{
	Use:   "battle <pokemon1> <pokemon2>",
	Short: "Run a single battle locally and print the log",
	Args:  cobra.ExactArgs(2),
	RunE:  runBattle,
}

func init() {
	battleCmd.Flags().Uint64Var(&battleSeed, "seed", 0, "seed for a reproducible battle (overrides battle.seed)")
	battleCmd.Flags().DurationVar(&battleTimeout, "timeout", 60*time.Second, "time allowed to fetch both pokemon")
}

func runBattle(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Battle.Seed = battleSeed
	}
	if err := setupLogger(cfg.Log); err != nil {
		return err
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := context.WithTimeout(cmd.Context(), battleTimeout)
	defer cancel()

	output, err := a.battleService.Battle(ctx, &battle.BattleInput{
		Pokemon1: args[0],
		Pokemon2: args[1],
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s vs %s\n", output.Pokemon1.Name, output.Pokemon2.Name)
	for _, line := range output.BattleLog {
		_, _ = fmt.Fprintln(out, line)
	}
	_, _ = fmt.Fprintf(out, "Winner: %s (%s)\n", output.Winner, output.Outcome)
	return nil
}
