package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Urethramancer/terasm/disassembler"
)

var rootCmd = &cobra.Command{
	Use:   "terdis image [dest]",
	Short: "Disassemble a tryte image back into source",
	Args:  cobra.RangeArgs(1, 2),

	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var dst string
		if len(args) == 2 {
			dst = args[1]
		}
		return run(args[0], dst)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "reading image")
	}
	defer f.Close()

	img, err := disassembler.ReadImage(f)
	if err != nil {
		return errors.Wrap(err, src)
	}

	text, err := disassembler.Disassemble(img)
	if err != nil {
		return errors.Wrap(err, "disassembly")
	}

	if dst == "" {
		fmt.Print(text)
		return nil
	}

	if err := os.WriteFile(dst, []byte(text), 0644); err != nil {
		return errors.Wrap(err, "writing output")
	}
	fmt.Printf("Disassembly written to %s\n", dst)
	return nil
}
