// Command x86dis decodes a subset of the 16-bit 8086 instruction set into
// NASM-syntax assembly text.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/x86dis/app"
	"github.com/retroenv/x86dis/buildinfo"
	"github.com/retroenv/x86dis/log"
	"github.com/spf13/cobra"
)

// version, commit and date are set via -ldflags at build time.
var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()
	err := newRootCommand().ExecuteContext(ctx)
	if err == nil {
		return
	}

	var ioErr *ioError
	if errors.As(err, &ioErr) {
		os.Exit(2)
	}
	os.Exit(1)
}

type globalFlags struct {
	configPath string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	logger := log.New()

	root := &cobra.Command{
		Use:     "x86dis",
		Short:   "Disassemble a subset of the 16-bit 8086 instruction set",
		Version: buildinfo.Version(version, commit, date),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if flags.verbose {
				logger.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", defaultConfigPath(), "path to the x86dis config file")
	root.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "enable debug logging")

	root.AddCommand(newDecodeCommand(logger, flags))
	root.AddCommand(newRoundtripCommand(logger, flags))
	return root
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "x86dis.ini"
	}
	return fmt.Sprintf("%s/.config/x86dis/x86dis.ini", home)
}
