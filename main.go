package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"boxgrip/internal/config"
	"boxgrip/internal/eventbus"
	"boxgrip/internal/logic"
	"boxgrip/internal/selection"
	"boxgrip/internal/ui"
	"boxgrip/internal/ui/coordinator"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to the layout file")
	flag.StringVar(&configPath, "c", "", "Path to the layout file (shorthand)")
	flag.Parse()

	if configPath == "" {
		configPath = config.DefaultPath()
	}

	if err := run(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(bus, configPath)
	cfg, err := configSvc.Load()
	if err != nil {
		return err
	}

	// Set up logging
	if cfg.LogFile != "" {
		logFile, err := tea.LogToFile(cfg.LogFile, "boxgrip")
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		defer logFile.Close()
	}
	log.Printf("Loaded layout from %s (%d boxes)", configPath, len(cfg.Boxes))

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store := logic.NewMemoryElementStore()
	coord := coordinator.NewCoordinator(bus, store, selection.WithLogger(log.Default()))
	if err := coord.Load(cfg.Layout()); err != nil {
		return err
	}
	defer coord.Close()

	uiModel, err := ui.NewModel(bus, cfg, configSvc, coord)
	if err != nil {
		return err
	}

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Forward domain events to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventLayoutChanged,
		eventbus.EventConfigSaved,
		eventbus.EventError,
	} {
		bus.Subscribe(t, forward)
	}

	// Log the canvas history
	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		log.Printf("Selection: %v", e.(eventbus.SelectionChangedEvent).Selected)
	})
	bus.Subscribe(eventbus.EventElementAdded, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ElementAddedEvent)
		log.Printf("Added %s at %v", ev.ID, ev.Bounds)
	})
	bus.Subscribe(eventbus.EventElementRemoved, func(e eventbus.DomainEvent) {
		log.Printf("Removed %s", e.(eventbus.ElementRemovedEvent).ID)
	})

	go func() {
		for {
			select {
			case e := <-eventChan:
				p.Send(ui.EventMsg{Event: e})
			case <-ctx.Done():
				return
			}
		}
	}()

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}
