package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tuiselect/internal/config"
	"tuiselect/internal/eventbus"
	"tuiselect/internal/logging"
	"tuiselect/internal/ui"
)

type options struct {
	configPath string
	logPath    string
	noMouse    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tuiselect",
		Short: "Fill in a form of dropdowns in the terminal",
		Long: `tuiselect shows a form of dropdown fields read from a TOML file.
Each field is single or multiple choice; selections are saved back to the
same file with ctrl+s, or on every change when autosave is enabled.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath(), "Form definition file")
	cmd.Flags().StringVar(&opts.logPath, "log", logging.DefaultFile, "Log file")
	cmd.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "Disable mouse support")

	cmd.AddCommand(newInitCmd(opts))
	return cmd
}

func newInitCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample form to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(opts.configPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", opts.configPath)
			}
			if err := config.NewConfigService(opts.configPath).Save(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", opts.configPath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

func run(opts *options) error {
	logCloser := logging.Setup(opts.logPath)
	defer logCloser.Close()

	bus := eventbus.New()
	defer bus.Close()

	// Collect the events the status line reports until the program exists
	eventChan := make(chan eventbus.DomainEvent, 100)
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventConfigLoaded, forwardEvent)
	bus.Subscribe(eventbus.EventConfigSaved, forwardEvent)
	bus.Subscribe(eventbus.EventError, forwardEvent)

	configSvc := config.NewConfigServiceWithBus(opts.configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	fields, err := cfg.DomainFields()
	if err != nil {
		return fmt.Errorf("%s: %w", opts.configPath, err)
	}
	if opts.noMouse {
		cfg.UI.Mouse = false
	}

	persister := config.NewPersister(configSvc, cfg)
	if cfg.UI.Autosave {
		stop := persister.Autosave(bus)
		defer stop()
	}

	log.Printf("Creating UI model with %d fields...", len(fields))
	model := ui.NewModel(bus, fields, cfg.UI, persister)

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithReportFocus()}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(model, programOpts...)

	go func() {
		for e := range eventChan {
			p.Send(ui.EventMsg{Event: e})
		}
	}()

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")

	// drain the bus before the forwarder stops
	bus.Close()
	close(eventChan)
	return nil
}
