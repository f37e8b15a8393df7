// Package render hands preprocessed markdown to a downstream renderer.
package render

import (
	"io"
	"os"
	"os/exec"

	goerrors "github.com/goliatone/go-errors"
)

const TextCodeRenderer = "RENDERER_FAILED"

// Builtin is the command name that selects the in-process renderer
const Builtin = "builtin"

// Open returns a sink whose input is rendered into dst. command names an
// external renderer run through shell, or Builtin. extensions only apply to
// Builtin. Closing the sink finishes rendering.
func Open(command, shell string, extensions []string, dst io.Writer) (io.WriteCloser, error) {
	if command == Builtin {
		return NewGoldmark(dst, extensions), nil
	}
	return Command(shell, command, dst)
}

// Pipe feeds an external renderer process through its stdin
type Pipe struct {
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	command string
}

// Command starts command with shell -c. Its stdout goes to dst and its
// stderr to os.Stderr.
func Command(shell, command string, dst io.Writer) (*Pipe, error) {
	cmd := exec.Command(shell, "-c", command)
	cmd.Env = os.Environ()
	cmd.Stdout = dst
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, wrapRendererError(err, command)
	}
	if err := cmd.Start(); err != nil {
		return nil, wrapRendererError(err, command)
	}
	return &Pipe{cmd: cmd, stdin: stdin, command: command}, nil
}

// Write sends preprocessed text to the renderer
func (p *Pipe) Write(b []byte) (int, error) {
	n, err := p.stdin.Write(b)
	if err != nil {
		return n, wrapRendererError(err, p.command)
	}
	return n, nil
}

// Close ends the renderer's input and waits for it to exit
func (p *Pipe) Close() error {
	closeErr := p.stdin.Close()
	if err := p.cmd.Wait(); err != nil {
		return wrapRendererError(err, p.command)
	}
	if closeErr != nil {
		return wrapRendererError(closeErr, p.command)
	}
	return nil
}

func wrapRendererError(err error, command string) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, goerrors.CategoryExternal, "renderer "+command).
		WithTextCode(TextCodeRenderer)
}
