package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Urethramancer/terasm/assembler"
	"github.com/Urethramancer/terasm/isa"
)

var (
	verbose bool
	comment string
	base    int64
	listing bool
	symbols bool
)

var rootCmd = &cobra.Command{
	Use:   "terasm source [dest]",
	Short: "Assemble balanced ternary source into a tryte image",
	Long: `Terasm assembles a source file into a text image, one instruction or
data directive per line. The destination defaults to the source name with
.asm replaced by .ter. Nothing is written when assembly fails.`,

	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dst := defaultDest(args[0])
		if len(args) == 2 {
			dst = args[1]
		}
		return run(args[0], dst)
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log both passes")
	rootCmd.Flags().StringVarP(&comment, "comment", "c", ";", "comment marker")
	rootCmd.Flags().Int64VarP(&base, "base", "b", isa.LoadAddress, "load address added to absolute references")
	rootCmd.Flags().BoolVarP(&listing, "list", "l", false, "print a listing to stdout")
	rootCmd.Flags().BoolVarP(&symbols, "symbols", "s", false, "dump the symbol table")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(src, dst string) error {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return errors.Wrap(err, "reading source")
	}

	asm := assembler.New(
		assembler.WithConfig(assembler.Config{CommentMarker: comment, BaseAddress: base}),
		assembler.WithLogger(log.WithField("file", src)),
	)
	prog, err := asm.Assemble(string(data))
	if err != nil {
		var aerr *assembler.Error
		if errors.As(err, &aerr) {
			return errors.Errorf("%s:%d: %v", src, aerr.Line, aerr.Err)
		}
		return err
	}

	if err := writeImage(prog, dst); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"dest": dst, "trytes": prog.Size()}).Debug("image written")

	if listing {
		if err := prog.WriteListing(os.Stdout, listingWidth()); err != nil {
			return err
		}
	}
	if symbols {
		pp.Println(prog.Symbols())
	}
	return nil
}

// defaultDest swaps a trailing .asm for .ter.
func defaultDest(src string) string {
	return strings.TrimSuffix(src, ".asm") + ".ter"
}

// writeImage writes to a temporary file next to dst and renames it into
// place, so a failed run never leaves a partial image behind.
func writeImage(prog *assembler.Program, dst string) error {
	f, err := os.CreateTemp(filepath.Dir(dst), ".terasm-*")
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	tmp := f.Name()

	_, err = prog.WriteTo(f)
	if err == nil {
		err = f.Chmod(0644)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, dst)
	}
	if err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "writing %s", dst)
	}
	return nil
}

// listingWidth returns the terminal width, or 80 columns when stdout is not a terminal.
func listingWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return 80
}
