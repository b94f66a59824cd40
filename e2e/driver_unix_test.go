//go:build e2e && unix

package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

// binPath is set by TestMain once the binary is built
var binPath string

// Terminal input sequences
const (
	KeyEnter = "\r"
	KeyCtrlC = "\x03"
	KeyCtrlS = "\x13"
	KeyTab   = "\t"
	KeyDown  = "\x1b[B"
	KeyUp    = "\x1b[A"
	KeyQuit  = "q"
)

// ansiRe matches the escape sequences Bubble Tea writes: CSI, OSC, charset
// and keypad mode switches, plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// FormDriver runs the binary in a pseudo-terminal against a form file in a
// private directory and records everything it draws
type FormDriver struct {
	t        *testing.T
	dir      string
	formPath string

	ptmx   *os.File
	cmd    *exec.Cmd
	exited chan error

	mu  sync.Mutex
	out bytes.Buffer
}

// NewFormDriver writes form into a fresh directory. The directory and the
// process are cleaned up when the test ends.
func NewFormDriver(t *testing.T, form string) *FormDriver {
	t.Helper()
	dir := t.TempDir()
	d := &FormDriver{
		t:        t,
		dir:      dir,
		formPath: filepath.Join(dir, "form.toml"),
		exited:   make(chan error, 1),
	}
	if err := os.WriteFile(d.formPath, []byte(form), 0644); err != nil {
		t.Fatalf("failed to write form: %v", err)
	}
	t.Cleanup(d.Close)
	return d
}

// Start launches the binary on the form file with extra arguments
func (d *FormDriver) Start(args ...string) error {
	args = append([]string{"-c", d.formPath, "--log", filepath.Join(d.dir, "tuiselect.log")}, args...)
	d.cmd = exec.Command(binPath, args...)
	d.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+d.dir,
		"XDG_CONFIG_HOME="+filepath.Join(d.dir, ".config"),
	)

	ptmx, err := pty.StartWithSize(d.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		return fmt.Errorf("failed to start in pty: %w", err)
	}
	d.ptmx = ptmx

	go d.record()
	go func() {
		d.exited <- d.cmd.Wait()
	}()
	return nil
}

func (d *FormDriver) record() {
	buf := make([]byte, 8192)
	for {
		n, err := d.ptmx.Read(buf)
		if n > 0 {
			d.mu.Lock()
			d.out.Write(buf[:n])
			d.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// Send writes raw input to the terminal
func (d *FormDriver) Send(keys string) error {
	_, err := d.ptmx.Write([]byte(keys))
	return err
}

func (d *FormDriver) Enter() error { return d.Send(KeyEnter) }
func (d *FormDriver) Down() error  { return d.Send(KeyDown) }
func (d *FormDriver) Up() error    { return d.Send(KeyUp) }
func (d *FormDriver) Tab() error   { return d.Send(KeyTab) }
func (d *FormDriver) Save() error  { return d.Send(KeyCtrlS) }
func (d *FormDriver) Quit() error  { return d.Send(KeyQuit) }

// SendCtrlC sends ctrl+c, which quits even with a list open
func (d *FormDriver) SendCtrlC() error { return d.Send(KeyCtrlC) }

// Screen returns everything drawn so far without escape sequences
func (d *FormDriver) Screen() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return ansiRe.ReplaceAllString(d.out.String(), "")
}

// SeePlain waits up to three seconds for text to be drawn
func (d *FormDriver) SeePlain(text string) bool {
	return d.waitFor(text, 3*time.Second)
}

// WaitForStatusMessage waits for a status line message
func (d *FormDriver) WaitForStatusMessage(message string, timeout time.Duration) bool {
	return d.waitFor(message, timeout)
}

func (d *FormDriver) waitFor(text string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if strings.Contains(d.Screen(), text) {
			return true
		}
		if time.Now().After(deadline) {
			d.t.Logf("%q not drawn; screen tail:\n%s", text, tail(d.Screen(), 2048))
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// WaitExit waits for the process to end
func (d *FormDriver) WaitExit(timeout time.Duration) error {
	select {
	case err := <-d.exited:
		return err
	case <-time.After(timeout):
		return fmt.Errorf("process still running after %s", timeout)
	}
}

// ReadForm returns the current content of the form file
func (d *FormDriver) ReadForm() string {
	data, err := os.ReadFile(d.formPath)
	if err != nil {
		d.t.Fatalf("failed to read form: %v", err)
	}
	return string(data)
}

// Close ends the process and releases the pty
func (d *FormDriver) Close() {
	if d.ptmx != nil {
		_ = d.ptmx.Close()
		d.ptmx = nil
	}
	if d.cmd != nil && d.cmd.Process != nil {
		_ = d.cmd.Process.Kill()
	}
}

func tail(s string, n int) string {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}
