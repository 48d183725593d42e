package translate

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultLocalCommand is the offline translation binary invoked for
// individual strings.
const DefaultLocalCommand = "argos-translate"

// Command is the local capability: an external offline translation engine
// invoked once per string. The text is passed as the final argument and
// the translation read from stdout.
type Command struct {
	// Path is the binary name or path.
	Path string
	// Args are fixed arguments placed before the text.
	Args []string
}

// NewCommand returns a zh → en local engine. An empty path selects the
// default argos-translate invocation.
func NewCommand(path string) *Command {
	if path == "" {
		return &Command{
			Path: DefaultLocalCommand,
			Args: []string{"--from-lang", "zh", "--to-lang", "en"},
		}
	}
	return &Command{Path: path}
}

// Name implements Local.
func (c *Command) Name() string { return c.Path }

// Available reports whether the engine binary can be found in PATH.
func (c *Command) Available() bool {
	_, err := exec.LookPath(c.Path)
	return err == nil
}

// TranslateOne implements Local.
func (c *Command) TranslateOne(ctx context.Context, text string) (string, error) {
	if _, err := exec.LookPath(c.Path); err != nil {
		return "", fmt.Errorf("%w: %s not found in PATH", ErrUnavailable, c.Path)
	}

	args := append(append([]string{}, c.Args...), text)
	cmd := exec.CommandContext(ctx, c.Path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s: %w: %s", c.Path, err, msg)
		}
		return "", fmt.Errorf("%s: %w", c.Path, err)
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" {
		return "", fmt.Errorf("%s produced no output for %q", c.Path, text)
	}
	return out, nil
}
