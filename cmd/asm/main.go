// Copyright 2026, Aleksa Ilić

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aleksailic/ASM/asm"
)

var (
	output  string
	testDir string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "asm <source>",
	Short: "Assembler for a 16-bit two-address CPU",
	Long: `Translates one assembly source file into a textual object listing
holding the section contents, the symbol and constant tables and the
relocation table.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("test") {
			return runGolden(testDir)
		}
		if len(args) != 1 {
			return fmt.Errorf("expected a source file, got %d arguments", len(args))
		}
		return assembleFile(args[0], output)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&output, "output", "o", "a.o", "object listing file")
	rootCmd.Flags().StringVarP(&testDir, "test", "t", "tests", "run the golden tests under the given directory")
	rootCmd.Flags().Lookup("test").NoOptDefVal = "tests"
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace both passes on stderr")
}

func assembleFile(source, output string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	assembler := asm.New()
	assembler.Verbose = verbose
	if err = assembler.Assemble(in); err != nil {
		return fmt.Errorf("%v: %w", source, err)
	}

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	defer out.Close()

	return assembler.WriteListing(out)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
