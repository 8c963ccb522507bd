package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bitfsorg/ecopayout-go/address"
	"github.com/bitfsorg/ecopayout-go/config"
	"github.com/bitfsorg/ecopayout-go/host"
	"github.com/bitfsorg/ecopayout-go/store"
)

// node bundles what a single command needs: the contract instance, the
// address API of the configured network and the resources to release.
type node struct {
	cfg      config.Config
	api      address.BSV
	log      zerolog.Logger
	instance *host.Instance

	db      *store.BoltStore
	metrics *http.Server
}

// loadConfig resolves the configuration. An explicit --config must exist; the
// default location falls back to environment-only settings.
func loadConfig() (config.Config, error) {
	var cfg config.Config
	var err error
	switch {
	case rootFlags.ConfigFile != "":
		cfg, err = config.LoadConfig(rootFlags.ConfigFile)
	default:
		dir := rootFlags.DataDir
		if dir == "" {
			dir = config.DefaultDataDir()
		}
		cfg, err = config.LoadConfig(config.ConfigPath(dir))
		if errors.Is(err, config.ErrConfigNotFound) {
			cfg, err = config.FromEnv()
		}
	}
	if err != nil {
		return config.Config{}, err
	}

	if rootFlags.DataDir != "" {
		cfg.DataDir = rootFlags.DataDir
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	if strings.ToLower(cfg.LogFormat) == "text" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func openNode(cmd *cobra.Command) (*node, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	n := &node{
		cfg: cfg,
		api: address.ForNetwork(cfg.Network),
		log: newLogger(cfg, cmd.ErrOrStderr()),
	}

	n.db, err = store.OpenBoltStore(cfg.DBPath())
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	if cfg.MetricsAddr != "" {
		n.serveMetrics(reg)
	}

	n.instance = host.New(n.db, n.api,
		host.WithLogger(n.log.With().Str("module", "host").Logger()),
		host.WithMetrics(host.NewMetrics(reg)),
	)
	return n, nil
}

func (n *node) serveMetrics(reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	n.metrics = &http.Server{
		Addr:              n.cfg.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		err := n.metrics.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			n.log.Error().Err(err).Str("addr", n.cfg.MetricsAddr).Msg("metrics server failed")
		}
	}()
	n.log.Debug().Str("addr", n.cfg.MetricsAddr).Msg("serving metrics")
}

func (n *node) Close() error {
	if n.metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = n.metrics.Shutdown(ctx)
	}
	return n.db.Close()
}

// env builds the invocation context from the --signer, --contract and
// --height flags.
func (n *node) env(f *envFlags) (host.Env, error) {
	var env host.Env
	var err error
	if f.Signer == "" {
		return env, fmt.Errorf("%w: --signer is required", host.ErrInvalidMsg)
	}
	env.Signer, err = n.api.Canonicalize(f.Signer)
	if err != nil {
		return env, fmt.Errorf("signer: %w", err)
	}
	if f.Contract == "" && f.RequireContract {
		return env, fmt.Errorf("%w: --contract is required", host.ErrInvalidMsg)
	}
	if f.Contract != "" {
		env.Contract, err = n.api.Canonicalize(f.Contract)
		if err != nil {
			return env, fmt.Errorf("contract: %w", err)
		}
	}
	env.Height = f.Height
	return env, nil
}

type envFlags struct {
	Signer   string
	Contract string
	Height   int64

	// RequireContract rejects a missing --contract; payouts are sent from it.
	RequireContract bool
}

func (f *envFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Signer, "signer", "", "Address of the caller")
	cmd.Flags().StringVar(&f.Contract, "contract", "", "Address of the contract instance")
	cmd.Flags().Int64Var(&f.Height, "height", 0, "Current block height")
}

// readInput reads the message file named by args[0], or stdin for "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read message: %w", err)
	}
	return data, nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
