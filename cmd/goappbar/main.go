package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/example/goappbar/internal/appbar"
	"github.com/example/goappbar/internal/config"
	"github.com/example/goappbar/internal/logging"
	"github.com/example/goappbar/internal/platform"
)

const (
	exitOK         = 0
	exitUsage      = 1
	exitDockFailed = 2
)

const usageText = "usage: goappbar set <position> <thickness> <hwnd>\n" +
	"       goappbar remove <hwnd>\n"

var errUsage = errors.New("invalid usage")

var openBackend = platform.Open

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type globalFlags struct {
	// debug is nil unless -debug appeared on the command line.
	debug   *bool
	backend string
	layout  string
}

func run(args []string, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)

	filtered, flags, err := parseGlobalFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprint(stderr, usageText)
		return exitUsage
	}

	opts := config.DetectOptions().Override(flags.backend, flags.layout, flags.debug)
	if opts.Debug {
		logging.EnableDebug()
	}

	err = handleCLI(context.Background(), opts, filtered, stdout)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprint(stderr, usageText)
		return exitUsage
	case errors.Is(err, appbar.ErrInvalidHandle):
		fmt.Fprintln(stderr, err)
		return exitUsage
	default:
		fmt.Fprintf(stderr, "docking failed: %v\n", err)
		return exitDockFailed
	}
}

func handleCLI(ctx context.Context, opts config.Options, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	command := normalizeCommand(args[0])
	switch command {
	case "set":
		return handleSet(ctx, opts, args[1:], stdout)
	case "remove":
		return handleRemove(ctx, opts, args[1:])
	default:
		return fmt.Errorf("%w: unknown command %s", errUsage, args[0])
	}
}

func normalizeCommand(arg string) string {
	trimmed := strings.TrimLeft(arg, "-/")
	return strings.ToLower(trimmed)
}

func handleSet(ctx context.Context, opts config.Options, args []string, stdout io.Writer) error {
	if len(args) < 3 {
		return errUsage
	}

	edge, known := appbar.ParseEdge(args[0])
	if !known {
		logging.Warnf("unrecognized position %q, docking to %s", args[0], edge)
	}
	thickness, ok := appbar.ParseThickness(args[1])
	if !ok {
		logging.Warnf("invalid thickness %q, using %d", args[1], thickness)
	}
	window, err := appbar.ParseWindowHandle(args[2])
	if err != nil {
		return err
	}

	backend, err := openBackend(opts)
	if err != nil {
		return err
	}
	defer backend.Close()

	negotiator := appbar.NewNegotiator(backend, backend)
	res, err := negotiator.Set(ctx, appbar.Request{Edge: edge, Thickness: thickness, Window: window})
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, res.String())
	return nil
}

// handleRemove never fails once the operand count is right; problems are
// logged and the process still exits 0.
func handleRemove(ctx context.Context, opts config.Options, args []string) error {
	if len(args) < 1 {
		return errUsage
	}

	window, err := appbar.ParseWindowHandle(args[0])
	if err != nil {
		logging.Warnf("remove: %v", err)
		return nil
	}

	backend, err := openBackend(opts)
	if err != nil {
		logging.Warnf("remove: %v", err)
		return nil
	}
	defer backend.Close()

	if err := appbar.NewNegotiator(backend, backend).Remove(ctx, window); err != nil {
		logging.Warnf("remove: %v", err)
	}
	return nil
}

// parseGlobalFlags extracts the global flags from anywhere in args. Anything
// that is not a known flag, including negative numbers such as a "-5"
// thickness, is passed through as a positional argument.
func parseGlobalFlags(args []string) ([]string, globalFlags, error) {
	var flags globalFlags
	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			filtered = append(filtered, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") {
			filtered = append(filtered, arg)
			continue
		}

		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		switch strings.ToLower(name) {
		case "debug":
			parsed := true
			if hasValue {
				var err error
				if parsed, err = strconv.ParseBool(value); err != nil {
					return nil, flags, fmt.Errorf("invalid value %q for -debug", value)
				}
			}
			flags.debug = &parsed
		case "backend", "layout":
			if !hasValue {
				if i+1 >= len(args) {
					return nil, flags, fmt.Errorf("flag -%s requires a value", name)
				}
				i++
				value = args[i]
			}
			if strings.EqualFold(name, "backend") {
				flags.backend = value
			} else {
				flags.layout = value
			}
		default:
			filtered = append(filtered, arg)
		}
	}
	return filtered, flags, nil
}
