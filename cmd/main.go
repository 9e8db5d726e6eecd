// citypulse serves a set of city-information agents over the ADK launcher
// (console/web/rest) with a separate ops port for health and metrics.
//
// Usage:
//
//	citypulse web -port 8080      serve the web UI and REST API
//	citypulse console             interactive console session
//	citypulse ask "<prompt>"      one-shot prompt against the root agent
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/cmd/launcher"
	"google.golang.org/adk/cmd/launcher/full"

	"citypulse/internal/adapters/config"
	"citypulse/internal/agents"
	"citypulse/internal/bootstrap"
	"citypulse/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		logger.Fatalf("citypulse failed: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	container, err := bootstrap.NewContainer(ctx, cfg)
	if err != nil {
		return err
	}

	lifecycle := bootstrap.NewLifecycle(container)
	lifecycle.StartOps()
	defer lifecycle.Shutdown(container)

	args := os.Args[1:]
	if len(args) > 0 && args[0] == "ask" {
		return ask(ctx, container, args[1:])
	}

	launcherConfig := &launcher.Config{
		AgentLoader: agent.NewSingleLoader(container.RootAgent),
	}

	l := full.NewLauncher()
	if err := l.Execute(ctx, launcherConfig, args); err != nil {
		return fmt.Errorf("%w\n\n%s", err, l.CommandLineSyntax())
	}

	return nil
}

// ask runs a single prompt through the root agent and prints the answer.
func ask(ctx context.Context, container *bootstrap.Container, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: citypulse ask \"<prompt>\"")
	}

	executor, err := agents.NewExecutor(container.Config.App.Name, container.RootAgent)
	if err != nil {
		return err
	}

	result, err := executor.Ask(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Println(result.Text)
	return nil
}
