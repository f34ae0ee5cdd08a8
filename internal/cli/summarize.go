package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "summarize [bucket]",
		Short: "Compact a bucket now instead of waiting for the append trigger",
		Args:  cobra.ExactArgs(1),
		Run:   runSummarize,
	}
	RootCmd.AddCommand(cmd)
}

func runSummarize(cmd *cobra.Command, args []string) {
	bucket := args[0]
	cfg := loadConfig()
	store := openStore(cfg, openClient(cfg))
	defer store.Close()

	if err := store.Summarize(cmd.Context(), bucket); err != nil {
		exitErr("summarize", err)
	}
	b, _ := json.MarshalIndent(store.Summaries(bucket), "", "  ")
	fmt.Println(string(b))
}
