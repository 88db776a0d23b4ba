package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"ctf/config"
	"ctf/internal/domain/service"
	"ctf/internal/errors"
	"ctf/internal/infra/auth"
	logs "ctf/internal/infra/log"
)

const (
	prompt      = "Enter a flag to be hashed: "
	serviceName = "ctf-hash"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	// stdout carries only the hash.
	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		slog.Error("Failed to create logger", slog.Any("error", err))
		os.Exit(1)
	}

	if err := run(os.Stdin, os.Stdout, os.Stderr, auth.NewBcryptHasher(cfg)); err != nil {
		logger.Error("Failed to hash flag", slog.Any("error", err))
		os.Exit(1)
	}
}

// newLogger tags log lines with this tool's name instead of the shared config's.
func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	hashCfg := *cfg
	hashCfg.Env.ServiceName = serviceName

	return logs.NewWithWriter(&hashCfg, w)
}

// run prompts on promptOut, reads one line from in and writes its hash to out.
// The line terminator is not part of the hashed text.
func run(in io.Reader, out, promptOut io.Writer, hasher service.SecretHasher) error {
	if _, err := fmt.Fprint(promptOut, prompt); err != nil {
		return errors.Wrap(err, "write prompt failed")
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "read input failed")
	}
	if err != nil && line == "" {
		return errors.New("no input to hash")
	}

	hash, err := hasher.Hash(strings.TrimRight(line, "\r\n"))
	if err != nil {
		return errors.Wrap(err, "hash input failed")
	}

	if _, err := fmt.Fprintln(out, hash); err != nil {
		return errors.Wrap(err, "write hash failed")
	}

	return nil
}
