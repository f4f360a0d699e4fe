package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/retroenv/x86dis/arch/cpu/x86"
	"github.com/retroenv/x86dis/log"
	"github.com/spf13/cobra"
)

func newRoundtripCommand(logger *log.Logger, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roundtrip <input-file>",
		Short: "Decode a file, reassemble it with an external assembler, and compare the bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCLIConfig(flags.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return runRoundtrip(cmd, logger, cfg, args[0])
		},
	}
	return cmd
}

func runRoundtrip(cmd *cobra.Command, logger *log.Logger, cfg cliConfig, inputPath string) error {
	original, err := os.ReadFile(inputPath)
	if err != nil {
		return wrapIO(fmt.Errorf("reading input file: %w", err))
	}

	text, err := x86.Decode(original)
	if err != nil {
		return fmt.Errorf("decoding input: %w", err)
	}

	dir, err := os.MkdirTemp("", "x86dis-roundtrip-*")
	if err != nil {
		return wrapIO(fmt.Errorf("creating temp dir: %w", err))
	}
	defer os.RemoveAll(dir)

	asmPath := filepath.Join(dir, "listing.asm")
	if err := os.WriteFile(asmPath, []byte(text), 0o644); err != nil {
		return wrapIO(fmt.Errorf("writing listing: %w", err))
	}

	binPath := filepath.Join(dir, "listing.bin")
	assembler := exec.CommandContext(cmd.Context(), cfg.AssemblerPath, "-f", "bin", asmPath, "-o", binPath)
	var stderr bytes.Buffer
	assembler.Stderr = &stderr
	if err := assembler.Run(); err != nil {
		return fmt.Errorf("running assembler %q: %w: %s", cfg.AssemblerPath, err, stderr.String())
	}

	reassembled, err := os.ReadFile(binPath)
	if err != nil {
		return wrapIO(fmt.Errorf("reading assembler output: %w", err))
	}

	if !bytes.Equal(original, reassembled) {
		return fmt.Errorf("round-trip mismatch: reassembled %d bytes, original %d bytes", len(reassembled), len(original))
	}

	logger.Info("round-trip succeeded", "path", inputPath, "bytes", len(original))
	fmt.Printf("round-trip OK: %s\n", inputPath)
	return nil
}
