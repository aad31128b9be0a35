// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"bufio"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// MasterPasswordEnv names the environment variable that, when set, supplies
// the master password to non-interactive runs.
const MasterPasswordEnv = "SECURE_VAULT_MASTER_PASSWORD"

// TerminalPrompter reads from a terminal without echo, or line by line when
// the input is not a terminal (pipes, tests).
type TerminalPrompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader

	// fd is the terminal descriptor of in, or -1.
	fd int
}

// NewTerminalPrompter reads from in and writes prompts to out.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	p := &TerminalPrompter{in: in, out: out, reader: bufio.NewReader(in), fd: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
	}
	return p
}

// NewStdPrompter is a [TerminalPrompter] on os.Stdin and os.Stderr.
func NewStdPrompter() *TerminalPrompter {
	return NewTerminalPrompter(os.Stdin, os.Stderr)
}

func (p *TerminalPrompter) Password(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	if p.fd < 0 {
		return p.readLine()
	}

	secret, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(secret), nil
}

func (p *TerminalPrompter) NewPassword(prompt string) (string, error) {
	first, err := p.Password(prompt)
	if err != nil {
		return "", err
	}
	second, err := p.Password("Repeat " + strings.ToLower(prompt[:1]) + prompt[1:])
	if err != nil {
		return "", err
	}

	if subtle.ConstantTimeCompare([]byte(first), []byte(second)) != 1 {
		return "", ErrPasswordMismatch
	}
	return first, nil
}

func (p *TerminalPrompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	return p.readLine()
}

func (p *TerminalPrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", ErrEmptyInput
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// EnvPrompter answers Password and NewPassword from [MasterPasswordEnv] and
// delegates everything else.
type EnvPrompter struct {
	Prompter
	password string
}

// WithEnvPassword wraps p with [EnvPrompter] when [MasterPasswordEnv] is set.
func WithEnvPassword(p Prompter) Prompter {
	password, ok := os.LookupEnv(MasterPasswordEnv)
	if !ok || password == "" {
		return p
	}
	return &EnvPrompter{Prompter: p, password: password}
}

func (p *EnvPrompter) Password(string) (string, error) {
	return p.password, nil
}

func (p *EnvPrompter) NewPassword(string) (string, error) {
	return p.password, nil
}
