package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "context [bucket]...",
		Short: "Show buckets as a stage would see them",
		Long: "Assemble each bucket's latest summary and recent entries into one ordered\n" +
			"sequence, concatenated across buckets in argument order.",
		Args: cobra.MinimumNArgs(1),
		Run:  runContext,
	}
	RootCmd.AddCommand(cmd)
}

func runContext(cmd *cobra.Command, args []string) {
	store := openStore(loadConfig(), nil)
	defer store.Close()

	entries := store.WithContextMulti(args...)
	b, _ := json.MarshalIndent(entries, "", "  ")
	fmt.Println(string(b))
}
