// Command shellfixdemo is a thin smoke-test harness over the shellfix
// library: it runs a handful of canned failing commands through the
// corrector and prints the suggested fixes in a table, optionally
// exposing the engine's Prometheus metrics over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/diillson/shellfix/config"
	"github.com/diillson/shellfix/corrector"
	"github.com/diillson/shellfix/engine"
	"github.com/diillson/shellfix/metrics"
	"github.com/diillson/shellfix/utils"
	"github.com/diillson/shellfix/version"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type scenario struct {
	label   string
	command engine.Command
	session engine.SessionMetadata
}

func scenarios() []scenario {
	return []scenario{
		{
			label:   "repeated verb",
			command: engine.NewCommand("git git status", "", 1),
			session: engine.NewSessionMetadata(),
		},
		{
			label:   "typo'd top-level command",
			command: engine.NewCommand("gitt checkout", "command not found", 127),
			session: engine.NewSessionMetadata().SetExecutables([]string{"git", "cargo"}),
		},
		{
			label:   "missing script permission",
			command: engine.NewCommand("./foo --flag", "zsh: permission denied: ./foo", 126),
			session: engine.NewSessionMetadata(),
		},
		{
			label: "git push with no upstream",
			command: engine.NewCommand("git push",
				"fatal: The current branch random has no upstream branch.\n"+
					"To push the current branch and set the remote as upstream, use\n\n"+
					"\tgit push --set-upstream origin random\n", 1),
			session: engine.NewSessionMetadata(),
		},
	}
}

func main() {
	logger, err := utils.InitializeLogger(os.Getenv("LOG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := config.New(logger, os.Getenv("SHELLFIX_CONFIG"))
	cfg.Load()
	config.Global = cfg
	engine.SuccessExitCodes = toSet(cfg.SuccessExitCodes())
	engine.FuzzyCutoff = cfg.FuzzyCutoff()

	utils.LogStartupInfo(logger)

	ruleMetrics := metrics.NewRuleMetrics()
	metrics.NewEngineMetrics(version.Version, corrector.RuleCount(), time.Now())

	var metricsServer *metrics.Server
	if addr := os.Getenv("SHELLFIX_METRICS_ADDR"); addr != "" {
		port := utils.GetEnvOrDefault("SHELLFIX_METRICS_PORT", "9090")
		p, convErr := parsePort(port)
		if convErr != nil {
			logger.Warn("invalid SHELLFIX_METRICS_PORT, metrics server disabled", zap.Error(convErr))
		} else {
			metricsServer = metrics.NewServer(p, logger)
			metricsServer.Start()
			defer metricsServer.Stop()
		}
	}

	dispatcher := corrector.NewDispatcher(logger, ruleMetrics)
	ctx := context.Background()

	width, _, termErr := utils.GetTerminalSize()
	isTerminal := termErr == nil && term.IsTerminal(int(os.Stdout.Fd()))

	for _, s := range scenarios() {
		corrections := dispatcher.Correct(ctx, s.command, s.session)
		printScenario(s, corrections, isTerminal, width)
	}
}

func toSet(codes []int) map[int]bool {
	set := make(map[int]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return set
}

func parsePort(s string) (int, error) {
	var port int
	_, err := fmt.Sscanf(s, "%d", &port)
	return port, err
}

func printScenario(s scenario, corrections []engine.PublicCorrection, isTerminal bool, width int) {
	fmt.Printf("\n$ %s\n", s.command.Input())
	if len(corrections) == 0 {
		fmt.Println("  (no suggestions)")
		return
	}

	if !isTerminal || width <= 0 {
		for _, c := range corrections {
			fmt.Printf("  -> %s  [%s]\n", c.Command, c.RuleApplied)
		}
		return
	}

	labelWidth := 0
	for _, c := range corrections {
		if w := runewidth.StringWidth(c.RuleApplied); w > labelWidth {
			labelWidth = w
		}
	}
	for _, c := range corrections {
		pad := labelWidth - runewidth.StringWidth(c.RuleApplied)
		fmt.Printf("  [%s]%s  %s\n", c.RuleApplied, spaces(pad), c.Command)
	}
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
