package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pokebattle/battle-api/internal/handlers/api/v1alpha1"
)

var battleJSON bool

var battleCmd = &cobra.Command{
	Use:   "battle <pokemon1> <pokemon2>",
	Short: "Run a battle on the server",
	Args:  cobra.ExactArgs(2),
	RunE:  runBattle,
}

func init() {
	battleCmd.Flags().BoolVar(&battleJSON, "json", false, "print the full response as JSON")
}

func runBattle(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	req, err := v1alpha1.ToStruct(&v1alpha1.BattleRequest{
		Pokemon1: args[0],
		Pokemon2: args[1],
	})
	if err != nil {
		return err
	}

	resp, err := client.Battle(ctx, req)
	if err != nil {
		return describeError(err)
	}

	var out v1alpha1.BattleResponse
	if err := v1alpha1.FromStruct(resp, &out); err != nil {
		return err
	}

	if battleJSON {
		return printJSON(cmd, &out)
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "Battle %s: %s vs %s\n", out.BattleID, out.Pokemon1.Name, out.Pokemon2.Name)
	for _, line := range out.BattleLog {
		_, _ = fmt.Fprintln(w, line)
	}
	_, _ = fmt.Fprintf(w, "Winner: %s (%s)\n", out.Winner, out.Outcome)
	return nil
}
