package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/japanoise/mipsasm/src/assembler"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
)

var (
	dataBase       string
	lenientNumbers bool
	dumpSymbols    bool
)

var rootCmd = &cobra.Command{
	Use:   "mipsasm infile outfile",
	Short: "Assemble MIPS source into a bit-string listing",
	Long: `Mipsasm translates a small MIPS subset into one line of 32 '0'/'1'
characters per machine word, for use with the course simulator. Text words
come first, then a blank line, then the .data words.

Supported: la, add, sub, and, or, slt, sll, srl, jr, lw, sw, addi, andi, ori,
slti, beq, j, jal, and the .text, .data, .word and .asciiz directives.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// glog checks that the standard flag set has been parsed.
		return flag.CommandLine.Parse(nil)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := assembler.ParseNumber(dataBase)
		if err != nil {
			return fmt.Errorf("--data-base: %w", err)
		}
		if base <= 0 {
			return fmt.Errorf("--data-base: must be positive, got %d", base)
		}
		res, err := assembler.Assemble(args[0], args[1], assembler.Options{
			DataBase:       base,
			LenientNumbers: lenientNumbers,
		})
		if res != nil && dumpSymbols {
			for _, name := range res.Labels {
				pp.Fprintf(os.Stderr, "%s = 0x%x\n", name, res.Symbols[name])
			}
		}
		return err
	},
}

func init() {
	flag.Set("logtostderr", "true")
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	rootCmd.Flags().StringVar(&dataBase, "data-base", "0x2000", "address of the first .data word")
	rootCmd.Flags().BoolVar(&lenientNumbers, "lenient-numbers", false, "treat malformed numbers as their leading digits instead of failing")
	rootCmd.Flags().BoolVar(&dumpSymbols, "dump-symbols", false, "print the symbol table to stderr")
}

func main() {
	err := rootCmd.Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
