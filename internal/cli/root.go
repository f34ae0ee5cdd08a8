// Package cli implements the leviathan CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hobbesian/leviathan/internal/blob"
	"github.com/hobbesian/leviathan/internal/config"
	"github.com/hobbesian/leviathan/internal/llm"
	"github.com/hobbesian/leviathan/internal/logger"
	"github.com/hobbesian/leviathan/internal/memory"
	"github.com/hobbesian/leviathan/internal/mind"
)

var (
	configPath  string
	storeFlag   string
	backendFlag string
	modelFlag   string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "leviathan",
	Short: "A Hobbesian model of cognition over self-summarizing memory",
	Long: "Chains LLM-driven thought processes from Hobbes' Leviathan over bucketed\n" +
		"memory stores that compact themselves into generated summaries as they grow.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (YAML)")
	RootCmd.PersistentFlags().StringVarP(&storeFlag, "store", "s", "", "Memory store location (directory or sqlite file)")
	RootCmd.PersistentFlags().StringVarP(&backendFlag, "backend", "b", "", "Storage backend: file or sqlite")
	RootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "Model name")
}

func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		exitErr("load config", err)
	}
	if backendFlag != "" {
		cfg.Store.Backend = backendFlag
	}
	if storeFlag != "" {
		cfg.Store.Dir = storeFlag
		cfg.Store.Path = storeFlag
	}
	if modelFlag != "" {
		cfg.Model = modelFlag
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		exitErr("init logger", err)
	}
	return cfg
}

func openBlobs(cfg *config.Config) blob.Store {
	switch cfg.Store.Backend {
	case "sqlite":
		s, err := blob.NewSQLiteStore(cfg.Store.Path)
		if err != nil {
			exitErr("open store", err)
		}
		return s
	case "file":
		s, err := blob.NewFileStore(cfg.Store.Dir)
		if err != nil {
			exitErr("open store", err)
		}
		return s
	default:
		exitErr("open store", fmt.Errorf("unknown backend %q", cfg.Store.Backend))
		return nil
	}
}

// openStore hydrates the bucket store. gen may be nil for commands
// that never trigger compaction.
func openStore(cfg *config.Config, gen memory.Generator) *memory.Store {
	store, err := memory.New(context.Background(), openBlobs(cfg), gen,
		memory.WithLogger(logger.Get()),
		memory.WithDefaultPolicy(memory.Policy{Retention: cfg.Memory.DefaultRetention}))
	if err != nil {
		exitErr("open store", err)
	}
	return store
}

func openClient(cfg *config.Config) llm.Client {
	client, err := llm.NewOpenAI(llm.Options{
		Model:   cfg.Model,
		APIKey:  cfg.API.Key,
		BaseURL: cfg.API.BaseURL,
	})
	if err != nil {
		exitErr("init llm client", err)
	}
	return client
}

// openMind wires the full pipeline: llm client, bucket store, stages.
func openMind() (*mind.Mind, *memory.Store) {
	cfg := loadConfig()
	client := openClient(cfg)
	store := openStore(cfg, client)
	m := mind.New(client, store, cfg.Memory.ConversationRetention,
		mind.WithLogger(logger.Get()))
	return m, store
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
