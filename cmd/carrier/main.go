// cmd/carrier/main.go
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-carrier/pkg/config"
	"github.com/opd-ai/go-carrier/pkg/engine"
	"github.com/opd-ai/go-carrier/pkg/entity"
	"github.com/opd-ai/go-carrier/pkg/health"
	"github.com/opd-ai/go-carrier/pkg/logging"
	"github.com/opd-ai/go-carrier/pkg/render"
	engorender "github.com/opd-ai/go-carrier/pkg/render/engo"
	"github.com/opd-ai/go-carrier/pkg/resource"
)

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	renderer := flag.String("renderer", "", "Rendering backend: null, terminal or engo (overrides config)")
	width := flag.Int("width", 0, "Window width in pixels (engo renderer, overrides config)")
	height := flag.Int("height", 0, "Window height in pixels (engo renderer, overrides config)")
	fullscreen := flag.Bool("fullscreen", false, "Run fullscreen (engo renderer)")
	flag.Parse()

	// Create default configuration file if requested
	if *createDefault {
		defaultConfig := config.DefaultConfig()
		if err := config.SaveConfig(defaultConfig, *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	// Load configuration
	var simConfig *config.SimConfig

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", *configPath,
		)
		simConfig = config.DefaultConfig()
	} else {
		simConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
	}

	// Apply environment variable overrides
	if err := config.ApplyEnvironmentOverrides(simConfig); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}

	// Command-line flags win over both
	if *renderer != "" {
		simConfig.DisplayConfig.Renderer = *renderer
	}
	if *width > 0 {
		simConfig.DisplayConfig.Width = *width
	}
	if *height > 0 {
		simConfig.DisplayConfig.Height = *height
	}

	envConfig, err := config.LoadConfigFromEnv()
	if err != nil {
		logger.Error(ctx, "Failed to load environment configuration", err)
		os.Exit(1)
	}

	// Create the rendering backend
	var scene entity.Scene
	var terminalScene *render.TerminalScene
	var engoScene *engorender.EngoScene

	switch simConfig.DisplayConfig.Renderer {
	case "null":
		scene = render.NewNullScene()
	case "terminal":
		terminalScene = render.NewTerminalScene(
			simConfig.DisplayConfig.Width,
			simConfig.DisplayConfig.Height,
			simConfig.DisplayConfig.Scale,
		)
		scene = terminalScene
	case "engo":
		engoScene = engorender.NewEngoScene(simConfig.DisplayConfig.Scale)
		scene = engoScene
	default:
		logger.Error(ctx, "Unknown renderer", nil,
			"renderer", simConfig.DisplayConfig.Renderer,
		)
		os.Exit(1)
	}

	// Create simulation
	sim := engine.NewSimulation(simConfig, scene)

	// Setup resource management
	resourceManager := resource.NewResourceManager(envConfig)
	if err := resourceManager.Start(); err != nil {
		logger.Error(ctx, "Failed to start resource manager", err)
		os.Exit(1)
	}

	// Setup health checks
	healthChecker := health.NewHealthChecker()
	healthChecker.AddCheck(health.NewSimulationHealthCheck(
		func() bool { return sim.Running },
	))
	healthChecker.AddCheck(health.NewRosterHealthCheck(
		func() int { return len(sim.Roster) },
	))
	healthChecker.AddCheck(health.NewMemoryHealthCheck(
		envConfig.MaxMemoryMB,
		resourceManager.GetMemoryUsage,
	))

	var healthServer *http.Server
	if simConfig.HealthConfig.Enabled {
		healthMux := http.NewServeMux()
		healthMux.HandleFunc("/health", healthChecker.LivenessHandler)
		healthMux.HandleFunc("/ready", healthChecker.ReadinessHandler)

		healthServer = &http.Server{
			Addr:         simConfig.HealthConfig.Addr,
			Handler:      healthMux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		}

		err := resourceManager.StartGoroutine(ctx, "health-server", func(ctx context.Context) {
			logger.Info(ctx, "Starting health check server",
				"addr", healthServer.Addr,
			)
			if err := healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error(ctx, "Health check server failed", err)
			}
		})
		if err != nil {
			logger.Error(ctx, "Failed to start health check server", err)
			os.Exit(1)
		}
	}

	logger.Info(ctx, "Starting carrier simulation",
		"renderer", simConfig.DisplayConfig.Renderer,
		"roster_size", simConfig.RosterSize,
		"tick_rate", simConfig.TickRate,
	)

	if engoScene != nil {
		runEngo(sim, engoScene, simConfig, *fullscreen)
	} else {
		runHeadless(ctx, logger, sim, terminalScene)
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), envConfig.ShutdownTimeout)
	defer cancel()

	if healthServer != nil {
		if err := healthServer.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "Health check server shutdown failed", err)
		}
	}

	if err := resourceManager.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "Resource manager shutdown failed", err)
	}

	logger.Info(ctx, "Carrier simulation stopped")
}

// runEngo hands control of the process to the Engo game loop. The
// simulation is initialized inside the scene's Setup, once the ECS world
// exists; Engo blocks until the window is closed.
func runEngo(sim *engine.Simulation, scene *engorender.EngoScene, cfg *config.SimConfig, fullscreen bool) {
	opts := engo.RunOptions{
		Title:      "Carrier",
		Width:      cfg.DisplayConfig.Width,
		Height:     cfg.DisplayConfig.Height,
		Fullscreen: fullscreen,
		VSync:      true,
	}

	engo.Run(opts, &engorender.CarrierScene{
		Sim:      sim,
		Renderer: scene,
	})

	if sim.Running {
		sim.Deinit()
	}
}

// runHeadless drives the simulation loop directly for the null and
// terminal backends, stopping on SIGINT or SIGTERM.
func runHeadless(ctx context.Context, logger *logging.Logger, sim *engine.Simulation, terminal *render.TerminalScene) {
	sim.Init()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info(ctx, "Shutdown signal received")
		cancel()
	}()

	var onFrame func()
	if terminal != nil {
		onFrame = func() {
			terminal.SetCenter(sim.Carrier.Position())
			terminal.Present()
		}
	}

	sim.Run(runCtx, onFrame)
	sim.Deinit()
}
