package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tsatke/numparser"
	"github.com/tsatke/numparser/internal/event"
)

var (
	// Version can be set with the Go linker.
	Version string = "master"
	// AppName is the name of this app, as displayed in the help
	// text of the root command.
	AppName = "numparser"
)

var (
	base uint8

	rootCmd = &cobra.Command{
		Use:  AppName + " [--base N] script...",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if base < 2 {
				return fmt.Errorf("base must lie within [2, 255], got %d", base)
			}

			fs := afero.NewOsFs()
			for _, script := range args {
				if err := run(fs, script); err != nil {
					return err
				}
			}
			return nil
		},
	}
)

func init() {
	rootCmd.Flags().Uint8Var(&base, "base", 10, "number base of the accumulated digits")
}

func run(fs afero.Fs, script string) error {
	events, err := event.ParseFile(fs, script)
	if err != nil {
		return err
	}

	p := numparser.New(base)
	for _, ev := range events {
		if ev.Is(event.Digit) || ev.Is(event.ExponentDigit) {
			if ev.Digit() >= base {
				return fmt.Errorf("%s: digit %d out of range for base %d", script, ev.Digit(), base)
			}
		}
		ev.Apply(p)
	}

	switch v := p.End().(type) {
	case numparser.Int:
		fmt.Printf("int: %d\n", int64(v))
	case numparser.Float:
		fmt.Printf("float: %v\n", float64(v))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s", err)
		os.Exit(1)
	}
}
