package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/termwin/internal/config"
	"github.com/1broseidon/termwin/internal/logging"
	"github.com/1broseidon/termwin/internal/shell"
)

var version = "dev"

// runShell is replaced in tests so no display server is needed.
var runShell = shell.Run

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "help", "-h", "--help":
			printMainUsage(stdout)
			return 0
		case "version":
			fmt.Fprintf(stdout, "termwin %s\n", version)
			return 0
		case "config":
			return runConfig(args[1:], stdout, stderr)
		}
	}
	return runWindow(args, stderr)
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: termwin [options]")
	fmt.Fprintln(w, "       termwin <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Open the terminal window and run until the display server goes away.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -config PATH        Config file (default: ~/.config/termwin/config.yaml)")
	fmt.Fprintln(w, "  -log-level LEVEL    debug, info, warning or error")
	fmt.Fprintln(w, "  -display NAME       X display (default: $DISPLAY)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print effective configuration")
	fmt.Fprintln(w, "  config explain      Show where a config value comes from")
	fmt.Fprintln(w, "  version             Print version")
	fmt.Fprintln(w, "  help                Show this help")
}

func runWindow(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("termwin", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printMainUsage(stderr) }
	path := fs.String("config", "", "Config file path (default: ~/.config/termwin/config.yaml)")
	level := fs.String("log-level", "", "Log level: debug, info, warning, error")
	display := fs.String("display", "", "X display name (default: $DISPLAY)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", fs.Arg(0))
		printMainUsage(stderr)
		return 2
	}

	res, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if *level != "" {
		if err := res.Override("log_level", func(c *config.Config) { c.LogLevel = *level }); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}
	if *display != "" {
		if err := res.Override("display", func(c *config.Config) { c.Display = *display }); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}

	logger, err := logging.New(stderr, res.Config.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger.Debug("configuration loaded",
		"file", res.File,
		"width", res.Config.Width,
		"height", res.Config.Height)

	if err := runShell(res.Config, logger); err != nil {
		logger.Error("termwin failed", "error", err)
		return 1
	}
	return 0
}

func loadConfig(path string) (*config.LoadResult, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

func runConfig(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  termwin config validate [--path PATH]")
		fmt.Fprintln(stderr, "  termwin config print [--path PATH] [--defaults]")
		fmt.Fprintln(stderr, "  termwin config explain [--path PATH] <key>")
		return 2
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/termwin/config.yaml)")
	printDefaults := false
	if args[0] == "print" {
		fs.BoolVar(&printDefaults, "defaults", false, "Print built-in defaults (no files)")
	}
	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	switch args[0] {
	case "validate":
		if _, err := loadConfig(*path); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintln(stdout, "config: ok")
		return 0

	case "print":
		cfg := config.DefaultConfig()
		if !printDefaults {
			res, err := loadConfig(*path)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return 1
			}
			cfg = res.Config
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprint(stdout, string(data))
		return 0

	case "explain":
		if fs.NArg() != 1 {
			fmt.Fprintln(stderr, "Usage: termwin config explain [--path PATH] <key>")
			return 2
		}
		key := fs.Arg(0)
		res, err := loadConfig(*path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		values, err := configValues(res.Config)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		value, ok := values[key]
		if !ok {
			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(stderr, "unknown key %q (known: %v)\n", key, keys)
			return 1
		}
		fmt.Fprintf(stdout, "%s: %v\n", key, value)
		fmt.Fprintf(stdout, "source: %s\n", describeSource(res.Sources[key]))
		return 0

	default:
		fmt.Fprintf(stderr, "Unknown config command: %s\n", args[0])
		return 2
	}
}

func configValues(cfg *config.Config) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func describeSource(src config.Source) string {
	switch src.Kind {
	case config.SourceFile:
		return fmt.Sprintf("%s:%d:%d", src.File, src.Line, src.Column)
	case config.SourceFlag:
		return "command line"
	default:
		return "default"
	}
}
