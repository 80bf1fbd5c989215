package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"toy-qucs/pkg/checker"
	"toy-qucs/pkg/engine"
	"toy-qucs/pkg/equation"
	"toy-qucs/pkg/netlist"
	"toy-qucs/pkg/util"
)

var (
	eqnVars    []string
	listFormat string
)

// runChecker parses a netlist file and runs the full check and
// expansion pass over it. Diagnostics go to stderr.
func runChecker(path string) (*checker.Checker, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading netlist: %v", err)
	}

	statements, err := netlist.Parse(string(input))
	if err != nil {
		return nil, err
	}

	eqns := equation.NewSet(eqnVars...)
	ck := checker.New(statements, eqns)
	if err := ck.Run(); err != nil {
		for _, diag := range ck.Diagnostics {
			fmt.Fprintln(os.Stderr, diag.Error())
		}
		fmt.Fprintln(os.Stderr, "netlist check FAILED")
		return nil, err
	}
	return ck, nil
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <netlist>",
		Short: "Check a netlist and report diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ck, err := runChecker(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("checker notice, netlist OK, %d statement(s) after expansion\n", len(ck.Root))
			counts := netlist.TypeCounts(ck.Root)
			types := make([]string, 0, len(counts))
			for typeName := range counts {
				types = append(types, typeName)
			}
			sort.Strings(types)
			for _, typeName := range types {
				fmt.Printf("  %d %s instance(s)\n", counts[typeName], typeName)
			}
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <netlist>",
		Short: "Print the checked, expanded netlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ck, err := runChecker(args[0])
			if err != nil {
				return err
			}
			switch listFormat {
			case "text":
				for _, st := range ck.Root {
					fmt.Println(st.String())
				}
			case "yaml":
				out, err := yaml.Marshal(ck.Root)
				if err != nil {
					return fmt.Errorf("encoding netlist: %v", err)
				}
				fmt.Print(string(out))
			default:
				return fmt.Errorf("unknown list format %q, want text or yaml", listFormat)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&listFormat, "format", "text", "output format (text or yaml)")
	return cmd
}

func newOpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "op <netlist>",
		Short: "Compute the DC operating point of a checked netlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ck, err := runChecker(args[0])
			if err != nil {
				return err
			}
			eng, err := engine.New(componentsOnly(ck))
			if err != nil {
				return err
			}
			result, err := eng.OperatingPoint()
			if err != nil {
				return err
			}

			names := make([]string, 0, len(result))
			for name := range result {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				unit := "V"
				if strings.HasPrefix(name, "I(") {
					unit = "A"
				}
				fmt.Printf("%-20s %s\n", name, util.FormatValueFactor(result[name], unit))
			}
			return nil
		},
	}
}

// componentsOnly strips actions from the expanded list; the operating
// point only consumes components.
func componentsOnly(ck *checker.Checker) []*netlist.Statement {
	components := make([]*netlist.Statement, 0, len(ck.Root))
	for _, st := range ck.Root {
		if st.Action {
			continue
		}
		components = append(components, st)
	}
	return components
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "qucscheck",
		Short:         "Netlist checker and subcircuit expander",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringArrayVar(&eqnVars, "eqnvar", nil, "declare an equation-defined variable (repeatable)")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newOpCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
