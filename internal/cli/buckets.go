package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "buckets",
		Short: "List memory buckets and their entry counts",
		Run:   runBuckets,
	}
	RootCmd.AddCommand(cmd)
}

func runBuckets(cmd *cobra.Command, args []string) {
	store := openStore(loadConfig(), nil)
	defer store.Close()

	b, _ := json.MarshalIndent(store.Buckets(), "", "  ")
	fmt.Println(string(b))
}
