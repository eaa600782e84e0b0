package main

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"location-selector/api"
	"location-selector/config"
	"location-selector/logging"
	"location-selector/models"
	"location-selector/selector"
	"location-selector/tui"
	"location-selector/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var _ selector.Source = (*api.Client)(nil)

// errReported means the failure was already printed for the user.
var errReported = errors.New("reported")

type app struct {
	cfg     *models.Config
	logger  *zap.Logger
	client  *api.Client
	printer *ui.Printer
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		client: api.NewClient(cfg.BaseURL,
			api.WithTimeout(cfg.Timeout),
			api.WithLogger(logger),
		),
		printer: ui.NewPrinter(cmd.OutOrStdout(), cfg.NoColor),
	}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "location-selector",
		Short:         "Pick a country, state and city from the location API",
		Long:          `Without a subcommand an interactive picker is started. Each choice loads the options of the next dropdown.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			a.logger.Info("starting picker", zap.String("base_url", a.cfg.BaseURL), zap.String("config", a.cfg.ConfigFile))
			if err := tui.Run(cmd.Context(), a.client, a.logger, tui.Options{AltScreen: a.cfg.AltScreen}); err != nil {
				a.logger.Error("picker failed", zap.Error(err))
				return err
			}
			return nil
		},
	}
	config.RegisterFlags(rootCmd.PersistentFlags())

	countriesCmd := &cobra.Command{
		Use:   "countries",
		Short: "List every country",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				names, err := a.client.Countries(cmd.Context())
				if err != nil {
					return a.fetchFailed(cmd, models.LevelCountry, err)
				}
				a.printer.PrintNames("Countries", names)
				return nil
			})
		},
	}

	statesCmd := &cobra.Command{
		Use:   "states <country>",
		Short: "List the states of a country",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				country := models.LocationName(args[0])
				names, err := a.client.States(cmd.Context(), country)
				if err != nil {
					return a.fetchFailed(cmd, models.LevelState, err)
				}
				a.printer.PrintNames("States of "+country.String(), names)
				return nil
			})
		},
	}

	citiesCmd := &cobra.Command{
		Use:   "cities <country> <state>",
		Short: "List the cities of a state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				country, state := models.LocationName(args[0]), models.LocationName(args[1])
				names, err := a.client.Cities(cmd.Context(), country, state)
				if err != nil {
					return a.fetchFailed(cmd, models.LevelCity, err)
				}
				a.printer.PrintNames(fmt.Sprintf("Cities of %s, %s", state, country), names)
				return nil
			})
		},
	}

	selectCmd := &cobra.Command{
		Use:   "select <country> <state> <city>",
		Short: "Walk the full selection chain and print the result",
		Long:  `Each name must be one of the options the API offers for its parent, exactly as the interactive picker would show it.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				return a.selectChain(cmd, models.Names(args))
			})
		},
	}

	rootCmd.AddCommand(countriesCmd, statesCmd, citiesCmd, selectCmd)
	return rootCmd
}

func withApp(cmd *cobra.Command, fn func(a *app) error) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()
	return fn(a)
}

// selectChain drives a selector through country, state and city the same
// way the picker does, checking each name against the loaded options.
func (a *app) selectChain(cmd *cobra.Command, chain []models.LocationName) error {
	ctx := cmd.Context()
	sel := selector.New()

	if err := a.resolve(ctx, sel, sel.Mount()); err != nil {
		return a.fetchFailed(cmd, models.LevelCountry, err)
	}

	for _, level := range models.Levels {
		name := chain[level]
		if !slices.Contains(sel.Options(level), name) {
			ui.NewPrinter(cmd.ErrOrStderr(), a.cfg.NoColor).PrintError(fmt.Sprintf("%q is not a valid %s", name, level))
			return errReported
		}

		req, ok := sel.Select(level, name)
		if !ok {
			continue
		}
		if err := a.resolve(ctx, sel, req); err != nil {
			return a.fetchFailed(cmd, req.Level, err)
		}
	}

	a.printer.PrintSelection(sel.Message())
	return nil
}

func (a *app) resolve(ctx context.Context, sel *selector.Selector, req selector.Request) error {
	res := selector.Fetch(ctx, a.client, req)
	sel.Apply(res)
	return res.Err
}

func (a *app) fetchFailed(cmd *cobra.Command, level models.Level, err error) error {
	a.logger.Error("fetch failed", zap.Stringer("level", level), zap.Error(err))
	ui.NewPrinter(cmd.ErrOrStderr(), a.cfg.NoColor).PrintError(selector.FailureMessage(level))
	return errReported
}

// execute runs the command tree and prints any error not already shown,
// including cobra's own argument and flag errors.
func execute(ctx context.Context, rootCmd *cobra.Command) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errReported) {
		rootCmd.PrintErrln("Error:", err)
		rootCmd.PrintErrf("Run '%s --help' for usage.\n", rootCmd.CommandPath())
	}
	return err
}
