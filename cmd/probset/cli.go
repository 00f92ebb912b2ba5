package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/probset"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Datasets is nil unless a database path is configured.
	Datasets probset.DatasetService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"PROBSET_DB" help:"SQLite database mirroring written datasets"`
	Verbose bool   `short:"v" help:"Log every step of the conversion"`

	Convert ConvertCmd `cmd:"" default:"withargs" help:"Convert category folders into JSON datasets (default)"`
	List    ListCmd    `cmd:"" help:"List datasets stored in the database"`
	Show    ShowCmd    `cmd:"" help:"Print a dataset stored in the database as JSON"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Input       string   `short:"i" default:"." help:"Directory holding the category folders"`
	Output      string   `short:"o" default:"." help:"Directory the datasets are written to"`
	Config      string   `short:"c" help:"YAML folder table replacing the built-in one"`
	Folders     []string `short:"f" name:"folder" help:"Convert only the named folder (repeatable)"`
	KeepGoing   bool     `short:"k" help:"Continue with the next folder after a failure"`
	PrintConfig bool     `help:"Print the folder table as YAML and exit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name string `arg:"" help:"Dataset name"`
}
