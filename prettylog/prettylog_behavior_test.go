package prettylog

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetGlobals rewinds the install-once guard and restores the process
// default logger and the injection points when the test finishes.
func resetGlobals(t *testing.T) {
	t.Helper()
	prevLogger := slog.Default()
	prevStdout, prevStderr := outStdout, outStderr
	prevProbe := isTerminal
	installed.Store(false)
	t.Cleanup(func() {
		slog.SetDefault(prevLogger)
		outStdout, outStderr = prevStdout, prevStderr
		isTerminal = prevProbe
		installed.Store(false)
	})
}

func fakeTerminal(t *testing.T, tty bool) {
	t.Helper()
	isTerminal = func(*os.File) bool { return tty }
}

func TestInit_DefaultLevelIsInfo(t *testing.T) {
	resetGlobals(t)
	var buf bytes.Buffer
	outStderr = &buf
	fakeTerminal(t, false)

	require.NoError(t, Init(Config{}))
	slog.Debug("debug-suppressed")
	slog.Info("info-enabled")

	assert.NotContains(t, buf.String(), "debug-suppressed")
	assert.Contains(t, buf.String(), "info-enabled")
}

func TestInit_SecondCallFails(t *testing.T) {
	resetGlobals(t)
	var buf bytes.Buffer
	outStderr = &buf
	fakeTerminal(t, false)

	require.NoError(t, Init(Config{Level: slog.LevelDebug}))
	err := Init(Config{Level: slog.LevelError, Color: ColorAlways})
	require.ErrorIs(t, err, ErrAlreadyInitialized)

	// The first installation is untouched: debug still passes the filter
	// and the output is still plain.
	slog.Debug("still-debug")
	assert.Contains(t, buf.String(), "still-debug")
	assert.NotContains(t, buf.String(), "\033[")
}

func TestInit_ColorAuto(t *testing.T) {
	cases := []struct {
		name     string
		tty      bool
		wantAnsi bool
	}{
		{"terminal", true, true},
		{"pipe", false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resetGlobals(t)
			var buf bytes.Buffer
			outStderr = &buf
			fakeTerminal(t, tc.tty)

			require.NoError(t, Init(Config{}))
			slog.Info("auto-color")

			if tc.wantAnsi {
				assert.Contains(t, buf.String(), "\033[")
			} else {
				assert.NotContains(t, buf.String(), "\033[")
			}
		})
	}
}

func TestInit_ColorNeverPlainOutput(t *testing.T) {
	resetGlobals(t)
	var buf bytes.Buffer
	outStderr = &buf
	fakeTerminal(t, true) // the explicit mode wins over the probe

	require.NoError(t, Init(Config{Color: ColorNever}))
	slog.Default().WithGroup("mymod").Warn("hello")

	out := buf.String()
	assert.NotContains(t, out, "\033[")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "mymod")
	assert.Contains(t, out, "hello")
}

func TestInit_ColorAlwaysStylesLevel(t *testing.T) {
	resetGlobals(t)
	var buf bytes.Buffer
	outStderr = &buf
	fakeTerminal(t, false) // the explicit mode wins over the probe

	require.NoError(t, Init(Config{Color: ColorAlways}))
	slog.Default().WithGroup("mymod").Warn("hello")

	assert.Contains(t, buf.String(), "\033[1;33mWARN \033[0m")
	assert.Contains(t, buf.String(), "mymod")
	assert.Contains(t, buf.String(), "hello")
}

func TestInit_StdoutDestination(t *testing.T) {
	resetGlobals(t)
	var stdoutBuf, stderrBuf bytes.Buffer
	outStdout, outStderr = &stdoutBuf, &stderrBuf
	fakeTerminal(t, false)

	require.NoError(t, Init(Config{Destination: Stdout}))
	slog.Info("to-stdout")

	assert.Contains(t, stdoutBuf.String(), "to-stdout")
	assert.Empty(t, stderrBuf.String())
}

func TestInitLevel_RaisesThreshold(t *testing.T) {
	resetGlobals(t)
	var buf bytes.Buffer
	outStderr = &buf
	fakeTerminal(t, false)

	require.NoError(t, InitLevel(slog.LevelError))
	slog.Warn("warn-suppressed")
	slog.Error("error-enabled")

	assert.NotContains(t, buf.String(), "warn-suppressed")
	assert.Contains(t, buf.String(), "error-enabled")
}

func TestInitDefaults_LogsToStderr(t *testing.T) {
	resetGlobals(t)
	var stdoutBuf, stderrBuf bytes.Buffer
	outStdout, outStderr = &stdoutBuf, &stderrBuf
	fakeTerminal(t, false)

	require.NoError(t, InitDefaults())
	slog.Info("default-init")

	assert.Contains(t, stderrBuf.String(), "default-init")
	assert.Empty(t, stdoutBuf.String())
}

func TestInit_CustomThemeWins(t *testing.T) {
	resetGlobals(t)
	var buf bytes.Buffer
	outStderr = &buf
	fakeTerminal(t, false)

	theme := &Theme{Info: "\033[35m"}
	require.NoError(t, Init(Config{Color: ColorNever, Theme: theme}))
	slog.Info("styled anyway")

	assert.Contains(t, buf.String(), "\033[35mINFO \033[0m")
}

func TestColorMode_Resolve(t *testing.T) {
	resetGlobals(t)
	cases := []struct {
		name string
		mode ColorMode
		tty  bool
		want bool
	}{
		{"always wins over pipe", ColorAlways, false, true},
		{"never wins over terminal", ColorNever, true, false},
		{"auto on terminal", ColorAuto, true, true},
		{"auto on pipe", ColorAuto, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fakeTerminal(t, tc.tty)
			assert.Equal(t, tc.want, tc.mode.resolve(Stderr))
		})
	}
}

func TestDestination_String(t *testing.T) {
	assert.Equal(t, "stderr", Stderr.String())
	assert.Equal(t, "stdout", Stdout.String())
}
