package main

import (
	"fmt"
	"io"
	"os"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	source, err := c.read(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	m, err := deps.Parser.Parse(source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	name := c.File
	if name == "-" {
		name = ""
	}
	r := newRecord(name, m)
	if err := writeRecord(deps.Stdout, deps.Format, r); err != nil {
		return err
	}
	return checkStrict(deps.Strict, []record{r})
}

func (c *ParseCmd) read(stdin io.Reader) (string, error) {
	if c.File == "" || c.File == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(c.File)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
