// Command preflight audits a development environment before a workload runs:
// virtualenv isolation, manually installed tools, env-var template
// compliance, and manifest dependency resolution. It only inspects and
// reports; every documented failure degrades to a printed message.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"preflight/internal/cli"
	"preflight/internal/depcheck"
	"preflight/internal/envcheck"
	"preflight/internal/envfile"
	"preflight/internal/inspect"
	"preflight/internal/manifest"
	"preflight/internal/toolcheck"
	"preflight/internal/venv"
)

func main() {
	a := newApp(os.Environ(), os.Stdout)
	if err := a.rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app wires the checks to a report stream and an inspector factory. The
// factory indirection lets tests run the command tree against a Fake.
type app struct {
	out io.Writer
	cfg cli.Config

	debug        bool
	logger       *zap.Logger
	newInspector func(venvDir string, logger *zap.Logger) inspect.Inspector
}

func newApp(environ []string, out io.Writer) *app {
	return &app{
		out: out,
		newInspector: func(venvDir string, logger *zap.Logger) inspect.Inspector {
			return inspect.NewSystem(environ, venvDir, logger)
		},
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "preflight",
		Short:         "Audit a development environment before a workload runs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("env-file", cli.Default().EnvFile, "env template file to audit against")
	flags.String("manifest", cli.Default().Manifest, "project manifest file")
	flags.String("venv", cli.Default().Venv, "expected virtual environment path")
	flags.BoolP("verbose", "v", false, "always print the dependency table")
	flags.BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		&cobra.Command{
			Use:   "audit",
			Short: "Run all checks in sequence",
			RunE: func(cmd *cobra.Command, args []string) error {
				a.runRuntime()
				a.runTools()
				a.runEnv()
				a.runDeps()
				return nil
			},
		},
		&cobra.Command{
			Use:   "runtime",
			Short: "Check virtual environment isolation",
			RunE:  func(cmd *cobra.Command, args []string) error { a.runRuntime(); return nil },
		},
		&cobra.Command{
			Use:   "tools",
			Short: "Check manually installed tools from the template directive",
			RunE:  func(cmd *cobra.Command, args []string) error { a.runTools(); return nil },
		},
		&cobra.Command{
			Use:   "env",
			Short: "Check environment variables against the template",
			RunE:  func(cmd *cobra.Command, args []string) error { a.runEnv(); return nil },
		},
		&cobra.Command{
			Use:   "deps",
			Short: "Check installed packages against the manifest",
			RunE:  func(cmd *cobra.Command, args []string) error { a.runDeps(); return nil },
		},
	)
	return root
}

// setup loads preflight.yaml defaults, applies flag overrides, and installs
// the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := cli.Load(".")
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("env-file") {
		cfg.EnvFile, _ = flags.GetString("env-file")
	}
	if flags.Changed("manifest") {
		cfg.Manifest, _ = flags.GetString("manifest")
	}
	if flags.Changed("venv") {
		cfg.Venv, _ = flags.GetString("venv")
	}
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
	a.cfg = cfg

	a.logger = zap.NewNop()
	if a.debug {
		if a.logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) inspector() inspect.Inspector {
	return a.newInspector(a.cfg.Venv, a.logger)
}

func (a *app) runRuntime() {
	findings := venv.Audit(a.inspector(), a.cfg.Venv)
	fmt.Fprint(a.out, venv.Render(findings))
}

func (a *app) runTools() {
	file, err := envfile.Load(a.cfg.EnvFile)
	if err != nil {
		// The template is optional; a missing or unreadable file skips
		// the whole check.
		return
	}
	result := toolcheck.Check(a.inspector(), file.Tools)
	fmt.Fprint(a.out, toolcheck.Render(result))
}

func (a *app) runEnv() {
	file, err := envfile.Load(a.cfg.EnvFile)
	if err != nil {
		fmt.Fprint(a.out, envcheck.RenderMissingTemplate(a.cfg.EnvFile))
		return
	}
	result := envcheck.Check(a.inspector(), file)
	fmt.Fprint(a.out, envcheck.Render(result))
}

func (a *app) runDeps() {
	m, err := manifest.Load(a.cfg.Manifest)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprint(a.out, depcheck.RenderMissingManifest(a.cfg.Manifest))
		} else {
			fmt.Fprintf(a.out, "ERROR: %v\n", err)
		}
		return
	}
	result := depcheck.Resolve(a.inspector(), m)
	if depcheck.ShouldPrint(result, a.cfg.Verbose) {
		fmt.Fprint(a.out, depcheck.Render(result))
	}
}
