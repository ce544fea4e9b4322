/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package login

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks for missing credentials
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
	fd     int
	tty    bool
}

// NewPrompter reads from in and writes prompts to out. When in is a
// terminal the password is read without echo.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{reader: bufio.NewReader(in), out: out, fd: -1}
	if f, ok := in.(*os.File); ok {
		p.fd = int(f.Fd())
		p.tty = term.IsTerminal(p.fd)
	}
	return p
}

// Username prompts until a non-empty value is entered
func (p *Prompter) Username() (string, error) {
	for {
		_, _ = fmt.Fprint(p.out, "Username: ")
		input, err := p.readLine()
		if err != nil {
			return "", fmt.Errorf("error reading username: %w", err)
		}
		if input != "" {
			return input, nil
		}
		_, _ = fmt.Fprintln(p.out, "Username cannot be empty. Please try again.")
	}
}

// Password prompts until a non-empty value is entered
func (p *Prompter) Password() (string, error) {
	for {
		_, _ = fmt.Fprint(p.out, "Password: ")

		var password string
		if p.tty {
			passwordBytes, err := term.ReadPassword(p.fd)
			_, _ = fmt.Fprintln(p.out)
			if err != nil {
				return "", fmt.Errorf("error reading password: %w", err)
			}
			password = string(passwordBytes)
		} else {
			input, err := p.readLine()
			if err != nil {
				return "", fmt.Errorf("error reading password: %w", err)
			}
			password = input
		}

		if password != "" {
			return password, nil
		}
		_, _ = fmt.Fprintln(p.out, "Password cannot be empty. Please try again.")
	}
}

// readLine returns the next trimmed line. A final line without a newline
// is accepted; io.EOF is returned only when nothing was read.
func (p *Prompter) readLine() (string, error) {
	input, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}
