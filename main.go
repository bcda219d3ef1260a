package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/danielewski/Game-Of-Life/utils"
)

// options holds the command-line flags; flags that are set override the config file
type options struct {
	configPath  string
	mode        string
	generations int
	delay       time.Duration
	rows        int
	cols        int
	set         map[string]bool
}

func parseFlags(args []string) (options, error) {
	var (
		opts options
		fs   = flag.NewFlagSet("gameoflife", flag.ContinueOnError)
	)
	fs.StringVar(&opts.configPath, "config", "config.json", "path to the JSON configuration file")
	fs.StringVar(&opts.mode, "mode", utils.ModeAsk, "display mode: animate, step, or empty to ask")
	fs.IntVar(&opts.generations, "generations", 0, "stop after this many generations (0 = unbounded)")
	fs.DurationVar(&opts.delay, "delay", 0, "delay between animated generations")
	fs.IntVar(&opts.rows, "rows", 0, "number of grid rows")
	fs.IntVar(&opts.cols, "cols", 0, "number of grid columns")

	if err := fs.Parse(args); err != nil {
		return opts, errors.Wrap(err, "[parseFlags] failed to parse arguments")
	}

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})
	return opts, nil
}

// apply overrides config with every flag given on the command line
func (o options) apply(config utils.Config) utils.Config {
	if o.set["mode"] {
		config.Mode = o.mode
	}
	if o.set["generations"] {
		config.MaxGenerations = o.generations
	}
	if o.set["delay"] {
		config.FrameRate = o.delay
	}
	if o.set["rows"] {
		config.Rows = o.rows
	}
	if o.set["cols"] {
		config.Cols = o.cols
	}
	return config
}

// loadConfig reads the config file, falling back to defaults when it does not exist
func loadConfig(opts options) (utils.Config, error) {
	config, err := utils.LoadConfig(opts.configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			return config, err
		}
		fmt.Printf("Using default configuration (%s not found)\n", opts.configPath)
		config = utils.DefaultConfig()
	}

	config = opts.apply(config)
	if err = config.Validate(); err != nil {
		return config, errors.Wrap(err, "[loadConfig] invalid command-line overrides")
	}
	return config, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	config, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	if err = play(config, os.Stdin, os.Stdout, sigChan); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
