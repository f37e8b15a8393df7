package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/filecheck.mod/filecheck"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/gubarz/mdpp/internal/config"
	"github.com/gubarz/mdpp/internal/interpreter"
	"github.com/gubarz/mdpp/internal/logging"
	"github.com/gubarz/mdpp/internal/preprocess"
	"github.com/gubarz/mdpp/internal/render"
	"github.com/gubarz/mdpp/internal/ui"
)

var version = "0.2.0"

const stdinName = "<stdin>"

var rootCmd = &cobra.Command{
	Use:   "mdpp [src [dest]]",
	Short: "Markdown macro preprocessor",
	Long: `Expands directives embedded in a markdown document before it is
handed to a markdown renderer.

  $(cmd)          replaced by the first line cmd prints
  $$ text $$      wrapped in <pre></pre> verbatim
  %title text     <title>, also binds $title
  %meta name val  <meta>, also binds $name
  %               opens or closes <head>

All $(...) directives of a document run in one shell, so variables persist
from line to line. Indented code blocks are copied unchanged. src defaults
to stdin and dest to stdout.`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPreprocess,
}

var previewCmd = &cobra.Command{
	Use:   "preview [src]",
	Short: "Expand a document and page through the result",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPreview,
}

var directivesCmd = &cobra.Command{
	Use:   "directives",
	Short: "List the directives in priority order",
	Args:  cobra.NoArgs,
	RunE:  runDirectives,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(directivesCmd)

	rootCmd.PersistentFlags().String("shell", "/bin/sh", "Interpreter evaluating $(...) directives")
	rootCmd.PersistentFlags().String("terminator", ";", "Terminator appended to every interpreter statement")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "Append JSON logs to this file")
	rootCmd.Flags().BoolP("render", "e", false, "Pipe the output through the markdown renderer")
	rootCmd.Flags().String("markdown", "markdown", "Renderer command, or \"builtin\" for the in-process renderer")

	viper.BindPFlag("shell", rootCmd.PersistentFlags().Lookup("shell"))
	viper.BindPFlag("terminator", rootCmd.PersistentFlags().Lookup("terminator"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("markdown", rootCmd.Flags().Lookup("markdown"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
	ui.RefreshStyles()
}

func newLogger() (*logging.Logger, error) {
	return logging.New(logging.Options{
		Level: config.GetLogLevel(),
		File:  config.GetLogFile(),
	})
}

// openSource returns the document named by the first argument, or stdin
func openSource(args []string) (string, io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return stdinName, os.Stdin, func() {}, nil
	}

	path := args[0]
	es := filecheck.Provisos{
		Checks:    []check.FileInfo{check.FileInfoIsRegular},
		Existence: filecheck.MustExist,
	}
	if err := es.StatusCheck(path); err != nil {
		return "", nil, nil, fmt.Errorf("unable to open src file: %w", err)
	}
	f, err := os.Open(path)
	if err != nil {
		return "", nil, nil, fmt.Errorf("unable to open src file: %w", err)
	}
	return path, f, func() { f.Close() }, nil
}

func expand(name string, src io.Reader, dst io.Writer, logger *logging.Logger) error {
	p := preprocess.New(preprocess.WithLogger(logger.Logger))
	return p.RunShell(name, src, dst, config.GetShell(),
		interpreter.WithTerminator(config.GetTerminator()))
}

func runPreprocess(cmd *cobra.Command, args []string) error {
	if e, _ := cmd.Flags().GetBool("render"); e {
		config.SetRender(true)
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Close()

	name, src, closeSrc, err := openSource(args)
	if err != nil {
		return err
	}
	defer closeSrc()

	var dst io.Writer = os.Stdout
	var destFile *os.File
	if len(args) > 1 {
		destFile, err = os.Create(args[1])
		if err != nil {
			return fmt.Errorf("unable to open dest file: %w", err)
		}
		dst = destFile
	}

	out := dst
	var sink io.WriteCloser
	if config.GetRender() {
		sink, err = render.Open(config.GetMarkdown(), config.GetShell(), config.GetMarkdownExtensions(), dst)
		if err != nil {
			return err
		}
		out = sink
	}

	runErr := expand(name, src, out, logger)
	if sink != nil {
		if err := sink.Close(); err != nil && runErr == nil {
			runErr = err
		}
	}
	if destFile != nil {
		if err := destFile.Close(); err != nil && runErr == nil {
			runErr = fmt.Errorf("unable to close dest file: %w", err)
		}
	}
	return runErr
}

func runPreview(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Close()

	name, src, closeSrc, err := openSource(args)
	if err != nil {
		return err
	}
	defer closeSrc()

	var buf bytes.Buffer
	if err := expand(name, src, &buf, logger); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	return ui.RunPreview(name, buf.String())
}

func runDirectives(cmd *cobra.Command, args []string) error {
	fmt.Fprint(cmd.OutOrStdout(), ui.FormatTable(preprocess.New().Table()))
	return nil
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		ui.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}
