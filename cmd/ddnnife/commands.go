package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/raabh/d-dnnf-reasoner/compile"
	"github.com/raabh/d-dnnf-reasoner/ddnnf"
	"github.com/raabh/d-dnnf-reasoner/nnf"
	"github.com/raabh/d-dnnf-reasoner/satcheck"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	features uint32
	compiler string
	tempDir  string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:          "ddnnife",
		Short:        "reason about and incrementally edit compiled d-DNNF circuits",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if flags.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().Uint32VarP(&flags.features, "features", "f", 0,
		"number of features; 0 infers it from the circuit")
	cmd.PersistentFlags().StringVar(&flags.compiler, "compiler", "",
		"path to a d4 binary; empty uses the bounded enumeration compiler")
	cmd.PersistentFlags().StringVar(&flags.tempDir, "temp-dir", ".",
		"directory for intermediate CNF/NNF files")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false,
		"enable debug logging")

	cmd.AddCommand(newCountCmd(flags))
	cmd.AddCommand(newQueryCmd(flags))
	cmd.AddCommand(newInsertCmd(flags))
	cmd.AddCommand(newCNFCmd(flags))
	return cmd
}

// compilerFunc picks the configured external compiler or the in-process
// fallback.
func (f *rootFlags) compilerFunc() compile.Func {
	if f.compiler != "" {
		return compile.D4(f.compiler)
	}
	return satcheck.EnumerationCompiler(0)
}

// load builds the counting facade from any supported input.
func (f *rootFlags) load(path string) (*ddnnf.Ddnnf, error) {
	return nnf.BuildDdnnf(path, f.features,
		nnf.WithCompiler(f.compilerFunc()),
		nnf.WithTempDir(f.tempDir))
}

func newCountCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "count <circuit>",
		Short: "print the model count of a circuit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := flags.load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.RootCount().String())
			return nil
		},
	}
}

func newQueryCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "query <circuit> <literal...>",
		Short: "count models under a partial assignment",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := flags.load(args[0])
			if err != nil {
				return err
			}
			assumptions, err := parseLiterals(args[1:])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.Query(assumptions).String())
			return nil
		},
	}
}

func newInsertCmd(flags *rootFlags) *cobra.Command {
	var (
		clauseSpec string
		outPath    string
		check      bool
	)
	cmd := &cobra.Command{
		Use:   "insert <circuit>",
		Short: "conjoin a clause onto a compiled circuit without full recompilation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clause, err := parseLiterals(strings.Split(clauseSpec, ","))
			if err != nil {
				return err
			}
			d, err := flags.load(args[0])
			if err != nil {
				return err
			}
			before := d.RootCount()

			err = d.Graph.InsertClause(clause,
				ddnnf.WithCompiler(flags.compilerFunc()),
				ddnnf.WithParser(nnf.Parse),
				ddnnf.WithTempDir(flags.tempDir))
			if err != nil {
				return err
			}
			d.Rebuild()

			logrus.WithFields(logrus.Fields{
				"clause": clause,
				"before": before.String(),
				"after":  d.RootCount().String(),
			}).Info("clause inserted")
			fmt.Fprintln(cmd.OutOrStdout(), d.RootCount().String())

			if check {
				entailed, checkErr := verifyInsertion(d, clause)
				if checkErr != nil {
					return checkErr
				}
				if !entailed {
					return errors.Errorf("edited circuit does not entail clause %v", clause)
				}
				logrus.Info("edited circuit entails the inserted clause")
			}
			if outPath != "" {
				return writeCircuit(d, outPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&clauseSpec, "clause", "c", "", "clause literals, comma separated (required)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the edited circuit to this c2d file")
	cmd.Flags().BoolVar(&check, "check", false, "verify the clause is entailed after insertion")
	_ = cmd.MarkFlagRequired("clause")
	return cmd
}

func newCNFCmd(flags *rootFlags) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "cnf <circuit>",
		Short: "Tseitin back-translation of the whole circuit to DIMACS CNF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := flags.load(args[0])
			if err != nil {
				return err
			}
			cnf, _ := d.Graph.TransformToCNF(d.Graph.Root(), nil)
			if outPath != "" {
				return ddnnf.WriteCNF(outPath, cnf)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(cnf, "\n"))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the CNF to this file instead of stdout")
	return cmd
}

// verifyInsertion checks entailment of the clause against the edited
// circuit's own CNF rendition.
func verifyInsertion(d *ddnnf.Ddnnf, clause []int32) (bool, error) {
	lines, inverse := d.Graph.TransformToCNF(d.Graph.Root(), nil)
	clauses, _, err := satcheck.ReadDimacs(strings.Join(lines, "\n"))
	if err != nil {
		return false, err
	}
	// Entailment must be stated over the CNF's compact variable space.
	renumber := make(map[int32]int32, len(inverse))
	for compact, orig := range inverse {
		renumber[orig] = compact
	}
	mapped := make([]int32, len(clause))
	for i, lit := range clause {
		v := lit
		if v < 0 {
			v = -v
		}
		compact, ok := renumber[v]
		if !ok {
			return false, errors.Errorf("clause variable %d not in edited circuit", lit)
		}
		if lit < 0 {
			compact = -compact
		}
		mapped[i] = compact
	}
	return satcheck.Entails(clauses, mapped)
}

// writeCircuit persists the current snapshot in the c2d dialect.
func writeCircuit(d *ddnnf.Ddnnf, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()
	return nnf.WriteC2D(f, d.Nodes, d.NumberOfVariables)
}

// parseLiterals converts decimal literal strings, rejecting zero.
func parseLiterals(raw []string) ([]int32, error) {
	out := make([]int32, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		lit, err := strconv.ParseInt(r, 10, 32)
		if err != nil || lit == 0 {
			return nil, errors.Errorf("invalid literal %q", r)
		}
		out = append(out, int32(lit))
	}
	return out, nil
}
