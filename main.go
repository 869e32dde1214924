package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"profeed/config"
	"profeed/service"

	"go.uber.org/zap"
)

// CliVersion is reported by the version command.
const CliVersion = "1.0.0"

var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches the command line. It is split from main so tests can
// intercept exit.
func RealMain() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("profeed version %s\n", CliVersion)
	case "serve":
		exit(serve())
	case "store":
		exit(store(os.Args[2:]))
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: profeed <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the feed API server.
  store <command>                Manage the feed database (init, clean, backup, restore, help).

Configuration is read from PROFEED_* environment variables.
`
	fmt.Println(helpText)
}

func setup() (config.Config, *zap.SugaredLogger, bool) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cfg, nil, false
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cfg, nil, false
	}
	return cfg, logger, true
}

// serve runs the API until SIGINT or SIGTERM.
func serve() int {
	cfg, logger, ok := setup()
	if !ok {
		return 1
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := service.RunAppServer(ctx, cfg, logger); err != nil {
		logger.Errorw("server stopped", "error", err)
		return 1
	}
	logger.Infow("server stopped")
	return 0
}

func store(args []string) int {
	cfg, logger, ok := setup()
	if !ok {
		return 1
	}
	defer logger.Sync()
	return service.HandleCommand(cfg, logger, args)
}
