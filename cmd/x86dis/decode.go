package main

import (
	"fmt"
	"os"

	"github.com/retroenv/x86dis/arch/cpu/x86"
	"github.com/retroenv/x86dis/log"
	"github.com/spf13/cobra"
)

func newDecodeCommand(logger *log.Logger, _ *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "decode <input-file>",
		Short: "Decode a raw 8086 byte stream into NASM-syntax assembly text",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runDecode(logger, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the decoded text to this file instead of stdout")
	return cmd
}

func runDecode(logger *log.Logger, inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return wrapIO(fmt.Errorf("reading input file: %w", err))
	}
	logger.Info("read input file", "path", inputPath, "bytes", len(data))

	text, err := x86.Decode(data)
	if err != nil {
		logger.Fatal("decode failed", "error", err)
		return err
	}
	logger.Debug("decoded instructions", "bytes", len(data))

	if outputPath == "" {
		fmt.Print(text)
		return nil
	}

	if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
		return wrapIO(fmt.Errorf("writing output file: %w", err))
	}
	logger.Info("wrote output file", "path", outputPath)
	return nil
}
