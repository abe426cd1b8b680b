package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/log"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"nfc_contract/config"
	"nfc_contract/contract"
	nfcrpc "nfc_contract/rpc"
	"nfc_contract/sdk"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON-RPC node (default command)",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// node is one running registry: state, ledger, contract and the HTTP surface.
type node struct {
	cfg      config.Config
	state    *contract.MemState
	contract *contract.Contract
	rpc      *gethrpc.Server
	handler  http.Handler
}

// newNode boots a registry from cfg. The contract is initialized with the
// configured admin unless the loaded state already holds one.
func newNode(ctx context.Context, cfg config.Config, reg *prometheus.Registry) (*node, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	state := contract.NewMemState()
	if cfg.StateFile != "" {
		if err := state.LoadFile(cfg.StateFile); err != nil {
			return nil, err
		}
	}
	alloc, err := cfg.Allocation()
	if err != nil {
		return nil, err
	}
	ledger := sdk.NewMemLedger(alloc)

	c, err := contract.New(state, ledger, contract.WithMetrics(contract.NewMetrics(reg)))
	if err != nil {
		return nil, fmt.Errorf("loading contract: %w", err)
	}
	if !c.Initialized() {
		admin, err := cfg.AdminAddress()
		if err != nil {
			return nil, fmt.Errorf("contract.admin: %w", err)
		}
		args, err := cfg.InitArgs()
		if err != nil {
			return nil, err
		}
		if err := c.Init(ctx, sdk.NewEnv(admin, nil), args); err != nil {
			return nil, fmt.Errorf("initializing contract: %w", err)
		}
		log.Info("Contract initialized", "admin", admin, "treasury", args.Treasury, "feeInBp", args.FeeInBp)
	}

	srv, err := nfcrpc.NewServer(c)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/", nfcrpc.Handler(srv, cfg.Server.AllowedOrigins))
	if cfg.Server.Metrics {
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
	return &node{cfg: cfg, state: state, contract: c, rpc: srv, handler: mux}, nil
}

// close stops the rpc server and writes the snapshot when configured.
func (n *node) close() error {
	n.rpc.Stop()
	if n.cfg.StateFile == "" {
		return nil
	}
	if err := n.state.SaveFile(n.cfg.StateFile); err != nil {
		return err
	}
	log.Info("State snapshot written", "path", n.cfg.StateFile, "keys", n.state.Len())
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := setupLogging(cfg.Log); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	n, err := newNode(ctx, cfg, reg)
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              cfg.Server.Listen,
		Handler:           n.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("JSON-RPC server started", "listen", cfg.Server.Listen, "namespace", nfcrpc.Namespace)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down")
	case err := <-errCh:
		if err != nil {
			_ = n.close()
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown incomplete", "err", err)
	}
	return n.close()
}
