package main

import (
	"os"

	"github.com/retroenv/x86dis/config"
)

// cliConfig holds the settings x86dis reads from its INI-style config file.
// Fields are optional: a missing config file falls back to the struct-tag
// defaults rather than failing the command; a file that exists but cannot be
// read or parsed is an error.
type cliConfig struct {
	AssemblerPath string `config:"assembler.path,default=nasm"`
	OutputDir     string `config:"output.dir,default=."`
}

// loadCLIConfig reads path into a cliConfig, silently returning the default
// configuration if the file does not exist.
func loadCLIConfig(path string) (cliConfig, error) {
	var cfg cliConfig
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := config.LoadBytes(nil, &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if err := config.Load(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
