// vl is a small CLI over the Visual Layer SDK.
//
// Usage:
//
//	vl health
//	vl datasets
//	vl dataset <dataset-id>
//	vl search <dataset-id> <label> [label...]
//
// Credentials and endpoint come from config/<ENV>.yaml with env var
// substitution (VISUAL_LAYER_API_KEY, VISUAL_LAYER_API_SECRET).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	visuallayer "github.com/visual-layer/visuallayer-go"
	"github.com/visual-layer/visuallayer-go/internal/config"
	logpkg "github.com/visual-layer/visuallayer-go/internal/logger"
	"github.com/visual-layer/visuallayer-go/internal/version"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug("vl starting",
		zap.String("version", version.Version),
		zap.String("env", env),
		zap.String("base_url", cfg.API.BaseURL),
	)

	client, err := visuallayer.New(
		visuallayer.WithCredentials(cfg.API.Key, cfg.API.Secret),
		visuallayer.WithBaseURL(cfg.API.BaseURL),
		visuallayer.WithTimeout(time.Duration(cfg.API.TimeoutSec)*time.Second),
		visuallayer.WithPollInterval(time.Duration(cfg.Polling.IntervalSec)*time.Second),
		visuallayer.WithMaxWait(time.Duration(cfg.Polling.MaxWaitSec)*time.Second),
		visuallayer.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal("failed to create client", zap.Error(err))
	}

	ctx := context.Background()
	if err := run(ctx, client, os.Args[1:]); err != nil {
		logger.Fatal("command failed", zap.Error(err))
	}
}

func run(ctx context.Context, client *visuallayer.Client, args []string) error {
	switch args[0] {
	case "health":
		if err := client.Healthcheck(ctx); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil

	case "datasets":
		ds, err := client.Datasets().List(ctx)
		if err != nil {
			return err
		}
		for _, d := range ds {
			fmt.Printf("%s\t%s\t%s\t%d media\n", d.ID, d.Status, d.Name, d.MediaCount)
		}
		return nil

	case "dataset":
		if len(args) < 2 {
			return fmt.Errorf("usage: vl dataset <dataset-id>")
		}
		d, err := client.Datasets().Get(ctx, args[1])
		if err != nil {
			return err
		}
		return printJSON(d)

	case "search":
		if len(args) < 3 {
			return fmt.Errorf("usage: vl search <dataset-id> <label> [label...]")
		}
		rs, err := client.Search(args[1]).ByLabels(ctx, visuallayer.EntityImages, args[2:]...)
		if err != nil {
			return err
		}
		fmt.Printf("%d rows, columns: %v\n", rs.Len(), rs.Columns)
		for _, row := range rs.Rows {
			if err := printJSON(row); err != nil {
				return err
			}
		}
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  vl health
  vl datasets
  vl dataset <dataset-id>
  vl search <dataset-id> <label> [label...]`)
}
