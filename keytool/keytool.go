package keytool

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// SHA256CertFingerprints finds `keytool` on the PATH and runs
// SHA256CertFingerprints against it. See Command.SHA256CertFingerprints.
func SHA256CertFingerprints(ctx context.Context, name string) ([]string, error) {
	return Command("keytool").SHA256CertFingerprints(ctx, name)
}

// Command represents the path to a `keytool` executable.
type Command string

func (c Command) String() string {
	return string(c)
}

// SHA256CertFingerprints runs `keytool -printcert -jarfile` against the
// signed archive at name, e.g. an .apk, and returns the SHA-256
// fingerprint of each signer's certificate in the order keytool prints
// them.
func (c Command) SHA256CertFingerprints(ctx context.Context, name string) ([]string, error) {
	var (
		stdout = new(bytes.Buffer)
		stderr = new(bytes.Buffer)
		//nolint:gosec
		cmd = exec.CommandContext(ctx, c.String(), "-printcert", "-jarfile", name)
	)

	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s -printcert %s: %w: %s", c, name, err, msg)
		}

		return nil, fmt.Errorf("%s -printcert %s: %w", c, name, err)
	}

	fingerprints, err := parseSHA256CertFingerprints(stdout)
	if err != nil {
		return nil, err
	} else if len(fingerprints) == 0 {
		return nil, fmt.Errorf("%s -printcert %s: no sha256 cert fingerprints found", c, name)
	}

	return fingerprints, nil
}

func parseSHA256CertFingerprints(r io.Reader) ([]string, error) {
	var (
		fingerprints = []string{}
		scanner      = bufio.NewScanner(r)
	)

	for scanner.Scan() {
		if _, after, ok := strings.Cut(scanner.Text(), "SHA256: "); ok {
			if fields := strings.Fields(after); len(fields) > 0 {
				fingerprints = append(fingerprints, fields[0])
			}
		}
	}

	return fingerprints, scanner.Err()
}
