package main

import (
	"bufio"
	"fmt"
	"strings"
)

const prompt = "HexaDB> "

const helpText = `
HexaDB Command Reference
═══════════════════════

Table Operations:
  CREATE TABLE table_name (column1_name data_type, ...)
  INSERT INTO table_name [(columns)] VALUES (values)
  SELECT columns FROM table_name [WHERE column op value]
  UPDATE table_name SET column = value[, ...] [WHERE column op value]
  DELETE FROM table_name [WHERE column op value]

Database Management:
  CREATE INDEX index_name ON table_name (column)
  PRINT TABLE table_name
  SAVE DB [filename] - Save database to file
  LOAD DB [filename] - Load database from file

Supported Data Types:
  INT   - Integer values
  TEXT  - Text strings
  REAL  - Decimal numbers

WHERE operators: =, ==, != on every kind; <, > on INT only.
TEXT literals in WHERE are compared as written, without removing quotes.

Other Commands:
  exit  - Exit HexaDB
`

// metaArg reports whether line is the two-word meta-command kw (e.g.
// "SAVE DB", any case) and returns its optional argument.
func metaArg(line, kw string) (string, bool) {
	f := strings.Fields(line)
	want := strings.Fields(kw)
	if len(f) < len(want) || len(f) > len(want)+1 {
		return "", false
	}
	for i, w := range want {
		if !strings.EqualFold(f[i], w) {
			return "", false
		}
	}
	if len(f) > len(want) {
		return f[len(want)], true
	}
	return "", true
}

// repl reads commands line by line until "exit" or end of input. A failing
// command prints its error and the session goes on.
func (a *app) repl() error {
	fmt.Fprintln(a.out, "Welcome to HexaDB Terminal")
	fmt.Fprintln(a.out, "Type 'help' for commands, 'exit' to quit.")

	sc := bufio.NewScanner(a.in)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	for {
		fmt.Fprint(a.out, prompt)
		if !sc.Scan() {
			fmt.Fprintln(a.out)
			break
		}
		line := strings.TrimSpace(sc.Text())

		switch {
		case line == "":
			continue
		case strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit"):
			return a.exit()
		case strings.EqualFold(line, "help"):
			fmt.Fprint(a.out, helpText)
			continue
		}

		if name, ok := metaArg(line, "SAVE DB"); ok {
			if name == "" {
				name = a.cfg.Database.File
			}
			if err := a.save(name); err != nil {
				fmt.Fprintf(a.err, "Error saving database: %v\n", err)
			}
			continue
		}
		if name, ok := metaArg(line, "LOAD DB"); ok {
			if name == "" {
				name = a.cfg.Database.File
			}
			if err := a.load(name); err != nil {
				fmt.Fprintf(a.err, "Error loading database: %v\n", err)
			}
			continue
		}

		if err := a.run(line); err != nil {
			fmt.Fprintf(a.err, "Error: %v\n", err)
		}
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return a.exit()
}

// exit saves the database when auto_save is on.
func (a *app) exit() error {
	if a.cfg.Database.AutoSave {
		if err := a.save(a.cfg.Database.File); err != nil {
			return err
		}
	}
	fmt.Fprintln(a.out, "Exiting HexaDB.")
	return nil
}
