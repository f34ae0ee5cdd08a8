package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hobbesian/leviathan/internal/memory"
)

func init() {
	cmd := &cobra.Command{
		Use:   "recent [bucket]",
		Short: "Show a bucket's most recent entries",
		Args:  cobra.ExactArgs(1),
		Run:   runRecent,
	}
	cmd.Flags().IntP("limit", "l", 0, "Max entries (default: the bucket's retention count)")
	RootCmd.AddCommand(cmd)
}

func runRecent(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	bucket := args[0]

	store := openStore(loadConfig(), nil)
	defer store.Close()

	var out any
	if strings.HasSuffix(bucket, memory.SummarySuffix) {
		out = store.Summaries(strings.TrimSuffix(bucket, memory.SummarySuffix))
	} else {
		out = store.Recent(bucket, limit)
	}

	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}
