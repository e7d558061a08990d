package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pokebattle/battle-api/internal/handlers/api/v1alpha1"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previous battles, newest first",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "maximum battles to list (0 uses the server default)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "print the full response as JSON")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	req, err := v1alpha1.ToStruct(&v1alpha1.ListBattlesRequest{Limit: historyLimit})
	if err != nil {
		return err
	}

	resp, err := client.ListBattles(ctx, req)
	if err != nil {
		return describeError(err)
	}

	var out v1alpha1.ListBattlesResponse
	if err := v1alpha1.FromStruct(resp, &out); err != nil {
		return err
	}

	if historyJSON {
		return printJSON(cmd, &out)
	}

	w := cmd.OutOrStdout()
	if len(out.Battles) == 0 {
		_, _ = fmt.Fprintln(w, "No battles recorded")
		return nil
	}
	for _, b := range out.Battles {
		_, _ = fmt.Fprintf(w, "%s  %s  %s vs %s  winner=%s (%s)\n",
			b.CreatedAt.Format(time.RFC3339), b.ID, b.Pokemon1, b.Pokemon2, b.Winner, b.Outcome)
	}
	return nil
}
