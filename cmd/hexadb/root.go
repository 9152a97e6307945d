package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hexaDB/internal/config"
	"hexaDB/internal/engine"
	"hexaDB/internal/format"
	"hexaDB/internal/logging"
	"hexaDB/internal/storage/filestore"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	configPath string
	file       string
	dir        string
	logLevel   string
	json       bool
	noLoad     bool
}

// app is what a subcommand runs against once flags and config are resolved.
type app struct {
	cfg    config.Config
	eng    *engine.DBEngine
	files  *filestore.FileStore
	logger *slog.Logger
	closer io.Closer

	in  io.Reader
	out io.Writer
	err io.Writer
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{}
	a := &app{in: in, out: out, err: errOut}

	root := &cobra.Command{
		Use:   "hexadb",
		Short: "HexaDB: a small in-process relational store",
		Long: `HexaDB keeps tables of INT, TEXT and REAL columns in memory and persists
the whole database to a single text file on demand.

Without a subcommand an interactive session is started.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, opts)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.repl()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	f := root.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "hexadb.yaml", "path to the YAML configuration file")
	f.StringVarP(&opts.file, "file", "f", "", "database file (overrides database.file)")
	f.StringVar(&opts.dir, "dir", "", "directory relative database files live in (overrides database.dir)")
	f.StringVar(&opts.logLevel, "log-level", "", "DEBUG, INFO, WARN or ERROR (overrides log.level)")
	f.BoolVar(&opts.json, "json", false, "print results as JSON")
	f.BoolVar(&opts.noLoad, "no-load", false, "start with an empty database instead of loading the file")

	root.AddCommand(
		&cobra.Command{
			Use:   "repl",
			Short: "Start an interactive session (default)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.repl()
			},
		},
		newExecCmd(a),
		&cobra.Command{
			Use:   "schema",
			Short: "Print every table with its columns and kinds",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := fmt.Fprintln(a.out, strings.TrimRight(a.eng.DescribeSchema(), "\n"))
				return err
			},
		},
	)
	return root
}

func newExecCmd(a *app) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "exec COMMAND...",
		Short: "Run commands non-interactively",
		Long: `Run each argument as one command, in order, and print its result.
Stops at the first failing command. With --save the database is written back
to the database file after every command succeeded.`,
		Example: `  hexadb exec "CREATE TABLE people (name TEXT, age INT)" \
    "INSERT INTO people VALUES ('Alice', 30)" --save`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range args {
				if err := a.run(c); err != nil {
					return err
				}
			}
			if save {
				return a.save(a.cfg.Database.File)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "save the database file afterwards")
	return cmd
}

// setup resolves config and flags, then builds the logger, the file store
// and the engine, loading the database file if configured to.
func (a *app) setup(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	if opts.file != "" {
		cfg.Database.File = opts.file
	}
	if opts.dir != "" {
		cfg.Database.Dir = opts.dir
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.json {
		cfg.Output.Format = config.FormatJSON
	}
	if opts.noLoad {
		cfg.Database.AutoLoad = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, closer, err := logging.New(logging.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		OutputPath: cfg.Log.Output,
	})
	if err != nil {
		return err
	}
	a.logger, a.closer = logger, closer

	files, err := filestore.New(cfg.Database.Dir)
	if err != nil {
		return err
	}
	a.files = files
	a.eng = engine.New(cfg.Database.Name, files, logger)

	if cfg.Database.AutoLoad {
		a.initialLoad()
	}
	return nil
}

// initialLoad loads the database file. Failure is not fatal: the session
// continues with an empty database.
func (a *app) initialLoad() {
	path := a.cfg.Database.File
	err := a.eng.Load(path)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist):
		a.logger.Debug("no database file yet, starting empty", "path", a.files.Path(path))
	default:
		a.logger.Warn("could not load database, starting with a new one", "path", a.files.Path(path), "err", err)
		fmt.Fprintf(a.err, "Warning: Could not load database from file. Starting with a new database. Error: %v\n", err)
	}
}

// run executes one command and prints its result.
func (a *app) run(command string) error {
	res, err := a.eng.Execute(command)
	if err != nil {
		return err
	}
	if a.cfg.Output.Format == config.FormatJSON {
		return format.WriteJSON(a.out, res)
	}
	return res.Render(a.out)
}

func (a *app) save(path string) error {
	if err := a.eng.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Database '%s' saved to '%s'\n", a.eng.Name(), path)
	return nil
}

func (a *app) load(path string) error {
	if err := a.eng.Load(path); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Database '%s' loaded from '%s'\n", a.eng.Name(), path)
	return nil
}
