package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/josepacelli/pty-table/internal/config"
	"github.com/josepacelli/pty-table/internal/pty"
	"github.com/josepacelli/pty-table/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the table entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupTable(); err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "INDEX\tFREQUENCY\tPTY\tNAME")
		for i, e := range storage.Table().Entries() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, pty.FormatFrequency(e.FrequencyKHz), ptyLabel(e), e.Name)
		}
		return w.Flush()
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup FREQUENCY",
	Short: "Lookup the entry for the given frequency (e.g. 102.7 or 102700)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupTable(); err != nil {
			return err
		}

		freq := pty.ParseFrequency(args[0])
		e, st := storage.Table().Find(freq)
		if st != pty.StatusOK {
			return errors.Wrapf(pty.ErrDoesNotExist, "lookup %s", pty.FormatFrequency(freq))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", pty.FormatFrequency(e.FrequencyKHz), ptyLabel(e), e.Name)
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add FREQUENCY PTY [NAME...]",
	Short: "Add an entry (PTY is a code 0-31, a program type name or a free-text tag)",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupTable(); err != nil {
			return err
		}

		for _, arg := range args[1:] {
			if strings.ContainsAny(arg, "\r\n") {
				return fmt.Errorf("line breaks are not allowed: %q", arg)
			}
		}

		t := storage.Table()
		e := pty.Entry{
			FrequencyKHz: pty.ParseFrequency(args[0]),
			Name:         strings.Join(args[2:], " "),
		}

		code, ok := pty.ParsePTY(args[1])
		switch t.Schema() {
		case pty.SchemaCode:
			if !ok {
				return fmt.Errorf("invalid program type '%s'", args[1])
			}
			e.Code = code
			e.Tag = pty.PTYName(code)
		default:
			e.Tag = args[1]
			e.Code = code
		}

		if st := t.Add(e); st != pty.StatusOK {
			return fmt.Errorf("save table error: %s", st)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "added %s at index %d\n", pty.FormatLine(e, t.Schema()), t.Count()-1)
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove INDEX",
	Short: "Remove the entry at the given index (see list)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Wrap(err, "parse index error")
		}

		if err := setupTable(); err != nil {
			return err
		}

		switch st := storage.Table().Remove(i); st {
		case pty.StatusOK:
		case pty.StatusNotFound:
			return errors.Wrapf(pty.ErrDoesNotExist, "index %d", i)
		default:
			return fmt.Errorf("save table error: %s", st)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "removed index %d\n", i)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the table with the configured seed list and save it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupTable(); err != nil {
			return err
		}

		seed, err := pty.Seed(config.C.Table.Seed)
		if err != nil {
			return err
		}
		if seed == nil {
			return errors.New("no seed list configured (table.seed)")
		}

		t := storage.Table()
		t.LoadSeed()
		if st := t.Save(); st != pty.StatusOK {
			return fmt.Errorf("save table error: %s", st)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "installed %d entries\n", t.Count())
		return nil
	},
}

func setupTable() error {
	return runTasks(
		setLogLevel,
		setSyslog,
		setupStorage,
	)
}

func ptyLabel(e pty.Entry) string {
	if e.Tag != "" {
		return e.Tag
	}
	return fmt.Sprintf("%d (%s)", e.Code, pty.PTYName(e.Code))
}
