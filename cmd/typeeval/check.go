package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/funvibe/typeeval/internal/analyzer"
	"github.com/funvibe/typeeval/internal/cache"
	"github.com/funvibe/typeeval/internal/config"
	"github.com/funvibe/typeeval/internal/diagnostics"
	"github.com/funvibe/typeeval/internal/pipeline"
)

// handleCheck runs the checking pass over declaration modules and prints
// the diagnostics. It returns 1 when any error was reported.
func handleCheck(args []string, stdout, stderr io.Writer) int {
	configPath := ""
	verbose := false
	var paths []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-config", "--config":
			if i+1 >= len(args) {
				fmt.Fprintln(stderr, "-config needs a file")
				return 2
			}
			i++
			configPath = args[i]
		case "-v", "-verbose", "--verbose":
			verbose = true
		default:
			paths = append(paths, args[i])
		}
	}
	if len(paths) == 0 {
		fmt.Fprintln(stderr, "check needs at least one module")
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	if verbose {
		cfg.Verbose = true
	}

	ctx := pipeline.NewPipelineContext(cfg, paths...)
	if cfg.Verbose {
		ctx.Logger = log.New(stderr, log.Prefix(), log.Flags())
	}
	ctx = pipeline.New(&analyzer.CheckProcessor{}, &cache.StoreProcessor{}).Run(ctx)
	if ctx.Err != nil {
		fmt.Fprintf(stderr, "%v\n", ctx.Err)
		return 1
	}

	colors := detectColors(stdout)
	for _, d := range ctx.Errors {
		fmt.Fprintln(stdout, colors.format(d))
	}
	if ctx.HasErrors() {
		return 1
	}
	fmt.Fprintf(stdout, "%d module(s) checked, no errors\n", len(ctx.Modules))
	return 0
}

// loadConfig reads an explicit config file, or typeeval.yaml in the working
// directory when present.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault(config.ConfigFileName)
}

type palette struct {
	enabled bool
}

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

// detectColors enables ANSI colors when w is a terminal and NO_COLOR is not
// set.
func detectColors(w io.Writer) palette {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return palette{}
	}
	f, ok := w.(*os.File)
	if !ok {
		return palette{}
	}
	return palette{enabled: isTerminal(f.Fd()) && os.Getenv("TERM") != "dumb"}
}

func (p palette) format(d *diagnostics.DiagnosticError) string {
	if !p.enabled {
		return d.Error()
	}
	color := colorRed
	if d.Severity != diagnostics.SeverityError {
		color = colorYellow
	}
	return color + d.Error() + colorReset + colorDim + " (" + d.Code.Title() + ")" + colorReset
}
