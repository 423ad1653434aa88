package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wihd/balance/engine"
	"github.com/wihd/balance/internal/config"
	"github.com/wihd/balance/internal/logging"
	"github.com/wihd/balance/majority"
	"github.com/wihd/balance/report"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	v := viper.New()
	var configPath string

	root := &cobra.Command{
		Use:   "balance",
		Short: "Find a minimum-depth weighing strategy for the MAJORITY coin puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			done := make(chan error, 1)
			go func() { done <- solve(v) }()
			select {
			case err := <-done:
				return err
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.Int("coins", config.Default().Coins, "number of coins (must be odd)")
	flags.Int("stop-depth", config.Default().StopDepth, "give up and report unresolved past this depth")
	flags.StringP("output", "o", config.Default().Output, `output path, or "-" for stdout`)
	flags.String("format", string(config.Default().Format), "report format: text, dot, or svg")
	flags.Bool("happy-path", config.Default().HappyPath, "restrict the report to one optimal subtree per state")
	flags.BoolP("verbose", "v", config.Default().Verbose, "enable debug logging")
	flags.StringVar(&configPath, "config", "", "path to a balance.yaml config file")

	for _, name := range []string{"coins", "stop-depth", "output", "format", "happy-path", "verbose"} {
		if err := v.BindPFlag(viperKey(name), flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			return nil
		}
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", configPath, err)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}

// viperKey maps a flag's kebab-case name to the snake_case key
// internal/config's mapstructure tags expect.
func viperKey(flagName string) string {
	key := []byte(flagName)
	for i, c := range key {
		if c == '-' {
			key[i] = '_'
		}
	}
	return string(key)
}

func solve(v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Verbose)

	cache := engine.NewCache()
	problem := majority.New(cfg.Coins, cache)
	e := engine.New[majority.State](problem, engine.WithLogger[majority.State](logger))

	depthMin, depthMax := e.Solve(uint8(cfg.StopDepth))
	logger.Info().Int("coins", cfg.Coins).Uint8("depth_min", depthMin).Uint8("depth_max", depthMax).Msg("solve complete")

	out := os.Stdout
	if cfg.Output != "-" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("create output file %s: %w", cfg.Output, err)
		}
		defer f.Close()
		out = f
	}

	switch cfg.Format {
	case config.FormatText:
		return report.Text[majority.State](e, out, report.TextOptions{HappyPath: cfg.HappyPath})
	case config.FormatDOT:
		_, err := fmt.Fprint(out, report.DOT[majority.State](e))
		return err
	case config.FormatSVG:
		svg, err := report.RenderSVG[majority.State](e)
		if err != nil {
			return err
		}
		_, err = out.Write(svg)
		return err
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
}
