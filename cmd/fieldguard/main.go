// Command fieldguard validates a JSON object against a schema file.
//
//	fieldguard -schema rules.yaml [-input data.json] [-plain] [-transitive]
//
// The input is read from stdin when -input is omitted or "-". The result is
// printed as JSON with "valid", "invalid" and "errors" members. The exit code
// is 0 when every field is valid, 1 when some are not and 2 on usage, input
// or schema errors. Defaults come from FIELDGUARD_* environment variables.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/fieldguard/pkg/config"
	"github.com/dmitrymomot/fieldguard/pkg/logger"
	"github.com/dmitrymomot/fieldguard/pkg/schema"
	"github.com/dmitrymomot/fieldguard/pkg/validator"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitError   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type result struct {
	Valid   map[string]any    `json:"valid"`
	Invalid map[string]any    `json:"invalid"`
	Errors  map[string]string `json:"errors"`
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "fieldguard: %v\n", err)
		return exitError
	}

	fs := flag.NewFlagSet("fieldguard", flag.ContinueOnError)
	fs.SetOutput(stderr)
	schemaPath := fs.String("schema", cfg.SchemaPath, "schema file (.yaml, .yml, .json or .toml)")
	inputPath := fs.String("input", "-", "JSON input file, - for stdin")
	fs.BoolVar(&cfg.PlainMessages, "plain", cfg.PlainMessages, "report plain messages")
	fs.BoolVar(&cfg.TransitiveRequires, "transitive", cfg.TransitiveRequires, "resolve requires until stable")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if *schemaPath == "" {
		fmt.Fprintln(stderr, "fieldguard: -schema is required")
		fs.Usage()
		return exitError
	}

	log := cfg.Logger(stderr)

	rules, err := schema.LoadFile(*schemaPath)
	if err != nil {
		log.Error("cannot load schema", logger.Error(err))
		return exitError
	}

	input, err := readInput(*inputPath, stdin)
	if err != nil {
		log.Error("cannot read input", logger.Error(err))
		return exitError
	}

	s := validator.NewSession(input, cfg.SessionOptions(validator.WithLogger(log))...)
	if err := s.ValidateAll(rules); err != nil {
		log.Error("schema rejected", logger.Error(err))
		return exitError
	}

	out := result{
		Valid:   s.Valid,
		Invalid: s.Invalid,
		Errors:  validator.ExtractValidationErrors(s.Err()).Map(),
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Error("cannot write result", logger.Error(err))
		return exitError
	}

	auditSession(log, s)
	if s.HasErrors() {
		return exitInvalid
	}
	return exitValid
}

func auditSession(log *slog.Logger, s *validator.Session) {
	if err := s.Audit(); err != nil {
		log.Error("validation failures left unhandled", logger.Error(err))
	}
}

func readInput(path string, stdin io.Reader) (validator.Input, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var input validator.Input
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		if errors.Is(err, io.EOF) {
			return validator.Input{}, nil
		}
		return nil, fmt.Errorf("decode input: %w", err)
	}
	return input, nil
}
