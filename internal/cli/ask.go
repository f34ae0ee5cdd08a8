package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ask [query]",
		Short: "Process one query and print the final response",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAsk,
	}
	cmd.Flags().BoolP("verbose", "v", false, "Print every intermediate thought process as JSON")
	RootCmd.AddCommand(cmd)
}

func runAsk(cmd *cobra.Command, args []string) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	query := strings.Join(args, " ")

	m, store := openMind()
	defer store.Close()

	result, err := m.ProcessQuery(cmd.Context(), query)
	if err != nil {
		exitErr("ask", err)
	}

	if verbose {
		b, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(b))
		return
	}
	fmt.Println(result.FinalResponse)
}
