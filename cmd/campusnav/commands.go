package main

import (
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/internal/config"
	"github.com/katalvlaran/campusnav/internal/httpapi"
	"github.com/katalvlaran/campusnav/internal/logging"
	"github.com/katalvlaran/campusnav/internal/menu"
	"github.com/katalvlaran/campusnav/navigator"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	configPath string
	flags      config.Config

	cfg config.Config
	log *slog.Logger
	nav *navigator.Navigator
}

func newRootCmd() *cobra.Command {
	a := &app{flags: config.Default()}

	root := &cobra.Command{
		Use:   "campusnav",
		Short: "Shortest walking routes across the campus",
		Long: `campusnav finds the shortest walking route between two places on the
campus map with the Bellman-Ford algorithm. Without a subcommand it starts
the interactive menu.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runMenu,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	pf.StringVar(&a.flags.Algorithm, "algorithm", a.flags.Algorithm, "shortest-path engine: bellman-ford or dijkstra")
	pf.StringVar(&a.flags.Log.Level, "log-level", a.flags.Log.Level, "log level: debug, info, warn, error")
	pf.StringVar(&a.flags.Log.Format, "log-format", a.flags.Log.Format, "log format: text or json")
	pf.BoolVar(&a.flags.NegativeCycleCheck, "negative-cycle-check", a.flags.NegativeCycleCheck,
		"run the Bellman-Ford negative-cycle pass")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API and Prometheus metrics",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}
	serve.Flags().StringVar(&a.flags.Server.Addr, "addr", a.flags.Server.Addr, "listen address")

	root.AddCommand(
		&cobra.Command{
			Use:   "menu",
			Short: "Start the interactive menu",
			Args:  cobra.NoArgs,
			RunE:  a.runMenu,
		},
		&cobra.Command{
			Use:   "nodes",
			Short: "List every place on the map",
			Args:  cobra.NoArgs,
			RunE:  a.runNodes,
		},
		&cobra.Command{
			Use:     "route FROM TO",
			Short:   "Print the shortest route between two places",
			Example: "  campusnav route A J",
			Args:    cobra.ExactArgs(2),
			RunE:    a.runRoute,
		},
		&cobra.Command{
			Use:   "reach FROM",
			Short: "List the places reachable from one place",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runReach,
		},
		serve,
	)

	return root
}

// setup merges file and flag settings, then builds the logger and navigator.
// Flags win over the file only when set explicitly.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		cfg.Algorithm = a.flags.Algorithm
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.flags.Log.Level
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.flags.Log.Format
	}
	if flags.Changed("negative-cycle-check") {
		cfg.NegativeCycleCheck = a.flags.NegativeCycleCheck
	}
	if flags.Changed("addr") {
		cfg.Server.Addr = a.flags.Server.Addr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.log, err = logging.New(cmd.ErrOrStderr(), cfg.Log); err != nil {
		return err
	}

	m, err := campus.Default()
	if err != nil {
		return err
	}
	g, err := m.Graph()
	if err != nil {
		return err
	}
	algo, err := navigator.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}
	a.nav, err = navigator.New(g,
		navigator.WithAlgorithm(algo),
		navigator.WithNegativeCycleCheck(cfg.NegativeCycleCheck),
		navigator.WithUnit(m.Unit),
		navigator.WithLogger(a.log),
	)
	if err != nil {
		return err
	}
	a.log.Debug("campus map loaded",
		slog.String("name", m.Name),
		slog.Int("nodes", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.String("algorithm", cfg.Algorithm))

	return nil
}

func (a *app) runMenu(cmd *cobra.Command, _ []string) error {
	return menu.New(a.nav, cmd.InOrStdin(), cmd.OutOrStdout(), a.log).Run(cmd.Context())
}

func (a *app) runNodes(cmd *cobra.Command, _ []string) error {
	_, err := io.WriteString(cmd.OutOrStdout(), navigator.FormatNodes(a.nav.Nodes()))
	return err
}

func (a *app) runRoute(cmd *cobra.Command, args []string) error {
	res, err := a.nav.Route(args[0], args[1])
	if err != nil {
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), a.nav.FormatResult(res))

	return err
}

func (a *app) runReach(cmd *cobra.Command, args []string) error {
	start, err := a.nav.Node(args[0])
	if err != nil {
		return err
	}
	places, err := a.nav.Reachable(start.ID)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(places) == 0 {
		_, err = fmt.Fprintf(out, "No places reachable from %s.\n", start.Label)
		return err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Reachable from %s (%d):\n", start.Label, len(places))
	b.WriteString(navigator.FormatNodes(places))
	_, err = io.WriteString(out, b.String())

	return err
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	timeout, err := a.cfg.ShutdownTimeout()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return httpapi.New(a.nav, a.log).ListenAndServe(ctx, a.cfg.Server.Addr, timeout)
}
