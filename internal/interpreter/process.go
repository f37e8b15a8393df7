package interpreter

import (
	"errors"
	"io"
	"os"
	"os/exec"
)

// Process is an interpreter subprocess reached through its stdin and stdout.
// It is started once and lives until Close.
type Process struct {
	*Session
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

// Spawn starts shell as a long-lived interpreter. The shell reads statements
// from its stdin; its stderr is forwarded to stderr (os.Stderr when nil).
func Spawn(shell string, stderr io.Writer, opts ...Option) (*Process, error) {
	cmd := exec.Command(shell)
	cmd.Env = os.Environ()
	if stderr == nil {
		stderr = os.Stderr
	}
	cmd.Stderr = stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, wrapStartError(err, shell)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, wrapStartError(err, shell)
	}
	if err := cmd.Start(); err != nil {
		return nil, wrapStartError(err, shell)
	}

	p := &Process{
		Session: NewSession(stdin, stdout, opts...),
		cmd:     cmd,
		stdin:   stdin,
	}
	p.logger.Debug("interpreter started", "shell", shell, "pid", cmd.Process.Pid)
	return p, nil
}

// Close closes the statement stream and waits for the interpreter to exit.
// A non-zero exit status of the shell is logged, not returned.
func (p *Process) Close() error {
	closeErr := p.stdin.Close()
	waitErr := p.cmd.Wait()

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		p.logger.Warn("interpreter exited", "status", exitErr.ExitCode())
		waitErr = nil
	}
	if waitErr != nil {
		return wrapIOError(waitErr, "interpreter wait")
	}
	if closeErr != nil && !errors.Is(closeErr, os.ErrClosed) {
		return wrapIOError(closeErr, "interpreter close")
	}
	p.logger.Debug("interpreter stopped")
	return nil
}
