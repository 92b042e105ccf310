package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	rmdrender "github.com/alnah/go-rmdrender"
	"github.com/alnah/go-rmdrender/internal/config"
	"github.com/alnah/go-rmdrender/internal/fileutil"
	"github.com/alnah/go-rmdrender/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrFlags     = errors.New("invalid flags")
	ErrNoInput   = errors.New("no input file specified")
	ErrExtraArgs = errors.New("unexpected arguments")

	// Reported through their own output, never printed as errors.
	errHelp   = errors.New("help requested")
	errDoctor = errors.New("environment not ready")
)

// runMain runs the CLI and returns the process exit code.
// Errors go to env.Stderr, followed by the usage message when the error
// is about how the command was invoked.
func runMain(ctx context.Context, args []string, env *Environment) int {
	err := run(ctx, args, env)
	if err == nil {
		return ExitSuccess
	}

	var exitErr *rmdrender.ExitError
	switch {
	case errors.Is(err, errHelp), errors.Is(err, errDoctor):
	case errors.As(err, &exitErr):
		// The engine has reported on its own streams.
	default:
		fmt.Fprintf(env.Stderr, "rmdrender: %v\n", err)
	}
	if needsUsage(err) {
		printUsage(env.Stderr)
	}

	return exitCodeFor(err)
}

// run parses args (including the program name) and performs one render,
// or one of the informational actions (help, version, doctor).
func run(ctx context.Context, args []string, env *Environment) error {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	flags, positional, err := parseFlags(rest)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFlags, err)
	}
	if flags.help {
		return errHelp
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "rmdrender %s\n", Version)
		return nil
	}

	cfg, err := loadSettings(flags, env)
	if err != nil {
		return err
	}

	renderer, err := rmdrender.NewRenderer(
		rmdrender.WithRscript(cfg.Engine.Rscript),
		rmdrender.WithTagLabel(cfg.Tag.Label),
		rmdrender.WithTagFormat(cfg.Tag.Format),
		rmdrender.WithRunner(env.Runner),
		rmdrender.WithLookPath(env.LookPath),
		rmdrender.WithClock(env.Now),
		rmdrender.WithOutput(env.Stdout, env.Stderr),
		rmdrender.WithStdin(env.Stdin),
	)
	if err != nil {
		return err
	}

	if flags.doctor {
		if code := runDoctorCmd(ctx, renderer, env, flags.json); code != ExitSuccess {
			return errDoctor
		}
		return nil
	}

	input, err := singleInput(positional)
	if err != nil {
		return err
	}

	enginePath, err := renderer.LocateEngine()
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForEngineNotFound())
	}
	verbosef(env, flags.verbose, "engine %s", enginePath)

	format := cfg.Output.Format
	if flags.formatSet {
		format = flags.format
	}

	plan, err := renderer.Plan(rmdrender.Request{
		InputFile:  input,
		OutputDir:  flags.dir,
		OutputFile: flags.output,
		Format:     format,
		Tag:        flags.tag || cfg.Tag.Enabled,
		Verbose:    flags.verbose,
	})
	if err != nil {
		if errors.Is(err, rmdrender.ErrOutputDirectory) {
			return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
		}
		return err
	}

	return renderer.Render(ctx, plan)
}

// loadSettings layers the config file and environment variables.
// Flags are applied by the caller.
func loadSettings(flags *cliFlags, env *Environment) (*config.Config, error) {
	warnUnknownEnvVars(env.Stderr, env.Environ)

	envCfg, err := loadEnvConfig(env.Environ)
	if err != nil {
		return nil, err
	}

	cfg := config.DefaultConfig()
	name := flags.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name != "" {
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		verbosef(env, flags.verbose, "config %s", name)
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// singleInput checks that exactly one positional argument was given.
func singleInput(positional []string) (string, error) {
	switch len(positional) {
	case 0:
		return "", ErrNoInput
	case 1:
		return positional[0], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrExtraArgs, strings.Join(positional[1:], " "))
	}
}

// verbosef prints a detail line on stdout when verbose is set.
func verbosef(env *Environment, verbose bool, format string, args ...any) {
	if !verbose {
		return
	}
	fmt.Fprintf(env.Stdout, "verbose: "+format+"\n", args...)
}
