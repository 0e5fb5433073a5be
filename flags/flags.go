package flags

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

const EnvVarPrefix = "STEPREPORT"

func prefixEnvVar(name string) []string {
	return []string{EnvVarPrefix + "_" + name}
}

var (
	RunFile = &cli.StringFlag{
		Name:     "runfile",
		Value:    "",
		Required: true,
		EnvVars:  prefixEnvVar("RUNFILE"),
		Usage:    "Path to the recorded run file (eg. 'run.yaml')",
	}
	OutputDir = &cli.StringFlag{
		Name:    "output-dir",
		Value:   "reports",
		EnvVars: prefixEnvVar("OUTPUT_DIR"),
		Usage:   "Directory to write rendered reports into",
	}
	Suite = &cli.StringFlag{
		Name:    "suite",
		Value:   "",
		EnvVars: prefixEnvVar("SUITE"),
		Usage:   "Suite name override; defaults to the name recorded in the run file",
	}
	RunInterval = &cli.DurationFlag{
		Name:    "run-interval",
		Value:   0,
		EnvVars: prefixEnvVar("RUN_INTERVAL"),
		Usage:   "Interval between re-renders of the run file (e.g. '1h', '30m'). Set to 0 or omit for run-once mode.",
	}
	ServeAddr = &cli.StringFlag{
		Name:    "serve-addr",
		Value:   "",
		EnvVars: prefixEnvVar("SERVE_ADDR"),
		Usage:   "Address to serve rendered reports on (eg. ':8090'). Empty disables the report server.",
	}
	ShowGroups = &cli.BoolFlag{
		Name:    "show-groups",
		Value:   true,
		EnvVars: prefixEnvVar("SHOW_GROUPS"),
		Usage:   "Include group steps as rows in the console table",
	}
	Details = &cli.BoolFlag{
		Name:    "details",
		Value:   true,
		EnvVars: prefixEnvVar("DETAILS"),
		Usage:   "Include error details in text summaries",
	}
	AnyFailurePolicy = &cli.BoolFlag{
		Name:    "any-failure-policy",
		Value:   false,
		EnvVars: prefixEnvVar("ANY_FAILURE_POLICY"),
		Usage:   "Aggregate with the pass/fail-only policy instead of worst-first",
	}
	LogLevel = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		EnvVars: prefixEnvVar("LOG_LEVEL"),
		Usage:   "Log level: trace, debug, info, warn, error",
	}
)

var requiredFlags = []cli.Flag{
	RunFile,
}

var optionalFlags = []cli.Flag{
	OutputDir,
	Suite,
	RunInterval,
	ServeAddr,
	ShowGroups,
	Details,
	AnyFailurePolicy,
	LogLevel,
}

var Flags []cli.Flag

func init() {
	Flags = append(requiredFlags, optionalFlags...)
}

func CheckRequired(ctx *cli.Context) error {
	for _, f := range requiredFlags {
		if !ctx.IsSet(f.Names()[0]) {
			return fmt.Errorf("flag %s is required", f.Names()[0])
		}
	}
	return nil
}
