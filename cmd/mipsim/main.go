// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ezrec/mipsim/emulator"
	"github.com/ezrec/mipsim/io"
	"github.com/ezrec/mipsim/translate"
)

// load assembles a source file, printing any diagnostics to stderr.
func load(emu *emulator.Emulator, source string) (runnable bool) {
	inf, err := os.Open(source)
	if err != nil {
		log.Printf("%v: %v", source, err)
		atexit.Exit(1)
	}
	defer inf.Close()

	runnable, diags, err := emu.Parse(inf)
	if err != nil {
		log.Printf("%v: %v", source, err)
		atexit.Exit(1)
	}

	for _, diag := range diags {
		fmt.Fprintf(os.Stderr, "%v: %v\n", source, diag)
	}

	return
}

func main() {
	var verbose bool
	var output string
	var locale string

	rootCmd := &cobra.Command{
		Use:   "mipsim",
		Short: "MIPS subset assembler and emulator",
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "Message locale, such as de-DE (default: system)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if len(locale) == 0 {
			return nil
		}
		return translate.SetLocale(locale)
	}

	asmCmd := &cobra.Command{
		Use:   "asm FILE",
		Short: "Assemble a program and print its listing",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			emu := emulator.NewEmulator()
			emu.Verbose = verbose

			load(emu, args[0])
			if len(emu.Program.Diagnostics) != 0 {
				atexit.Exit(1)
			}

			fmt.Print(emu.Program.Listing(emu.Assembler.Table))
		},
	}

	runCmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Assemble and run a program",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			emu := emulator.NewEmulator()
			emu.Verbose = verbose

			tape := &io.Tape{Output: os.Stdout}
			if output != "-" {
				ouf, err := os.Create(output)
				if err != nil {
					log.Printf("%v: %v", output, err)
					atexit.Exit(1)
				}
				atexit.Register(func() { ouf.Close() })
				tape.Output = ouf
			}
			emu.Cpu.Console = tape

			if !load(emu, args[0]) {
				if len(emu.Program.Diagnostics) == 0 {
					log.Printf("%v: %v", args[0], emulator.ErrNotRunnable)
				}
				atexit.Exit(1)
			}

			err := emu.Run()
			if err != nil {
				log.Printf("%v: %v", args[0], err)
				if verbose {
					log.Print(emu.Cpu)
				}
				atexit.Exit(1)
			}

			if verbose {
				log.Print(emu.Cpu)
			}
		},
	}
	runCmd.Flags().StringVarP(&output, "output", "o", "-", "Console output")

	rootCmd.AddCommand(asmCmd, runCmd)

	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
