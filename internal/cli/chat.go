package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hobbesian/leviathan/internal/memory"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive shell for the Hobbesian mind",
		Long: "Process queries through the full chain of thought processes.\n" +
			"Inside the shell, 'memory' lists buckets, 'memory <bucket>' shows its\n" +
			"entries, and 'exit' quits.",
		Run: runChat,
	}
	RootCmd.AddCommand(cmd)
}

func runChat(cmd *cobra.Command, args []string) {
	m, store := openMind()
	defer store.Close()

	fmt.Println("=== Hobbesian Mind Simulator ===")
	fmt.Println("Type a query to process through Hobbes' model of cognition.")
	fmt.Println("Special commands: memory | memory <bucket> | exit")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print("\nQuery > ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		switch {
		case input == "":
			continue
		case strings.EqualFold(input, "exit"):
			return
		case strings.HasPrefix(strings.ToLower(input), "memory"):
			showMemory(store, strings.Fields(input))
			continue
		}

		fmt.Println("\nProcessing your query through Hobbesian thought processes...")
		result, err := m.ProcessQuery(cmd.Context(), input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error processing query: %v\n", err)
			continue
		}

		fmt.Println("\n=== FINAL RESPONSE ===")
		fmt.Println(result.FinalResponse)
		fmt.Println("\nType 'memory' to view the memories created during this process.")
	}
}

func showMemory(store *memory.Store, fields []string) {
	if len(fields) == 1 {
		fmt.Println("\nAvailable memory buckets:")
		for _, b := range store.Buckets() {
			fmt.Printf("  %s (%d memories)\n", b.Name, b.Entries)
		}
		return
	}

	bucket := fields[1]
	if strings.HasSuffix(bucket, memory.SummarySuffix) {
		source := strings.TrimSuffix(bucket, memory.SummarySuffix)
		sums := store.Summaries(source)
		if len(sums) == 0 {
			fmt.Printf("\nNo summaries in %q.\n", bucket)
			return
		}
		fmt.Printf("\n=== Summaries in %q ===\n", bucket)
		for i, s := range sums {
			fmt.Printf("\n--- Summary %d ---\n", i+1)
			fmt.Printf("Timestamp: %s\n", s.Timestamp)
			fmt.Printf("Entries summarized: %d\n", s.EntriesSummarized)
			fmt.Printf("\nContent:\n%s\n", previewContent(s.Content))
		}
		return
	}

	entries := store.Recent(bucket, store.Len(bucket))
	if len(entries) == 0 {
		fmt.Printf("\nNo memories in %q bucket.\n", bucket)
		return
	}
	fmt.Printf("\n=== Memories in %q ===\n", bucket)
	for i, e := range entries {
		fmt.Printf("\n--- Memory %d ---\n", i+1)
		fmt.Printf("Timestamp: %s\n", e.Timestamp)
		if len(e.Metadata) > 0 {
			fmt.Println("Metadata:")
			for k, v := range e.Metadata {
				fmt.Printf("  %s: %v\n", k, v)
			}
		}
		fmt.Printf("\nContent:\n%s\n", previewContent(e.Content))
	}
}

func previewContent(s string) string {
	runes := []rune(s)
	if len(runes) <= 500 {
		return s
	}
	return string(runes[:500]) + "..."
}
