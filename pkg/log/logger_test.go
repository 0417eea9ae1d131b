package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	logger := New("test")

	SetLevel(Notice)
	logger.Infof("hidden %d", 1)
	logger.Noticef("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Info message should be filtered at Notice level, got %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("Expected notice message in output, got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("trace %s", "row")
	if !strings.Contains(buf.String(), "trace row") {
		t.Errorf("Expected debug message at Debug level, got %q", buf.String())
	}
}

func TestFormatIncludesModuleAndLevel(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	SetLevel(Info)
	defer SetLevel(Notice)
	New("scene").Info("built")

	out := buf.String()
	for _, want := range []string{"[scene]", "[INFO]", "built"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %q", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("Buffer sink should not receive color escapes, got %q", out)
	}
}

func TestSetSinkPreservesLevel(t *testing.T) {
	SetLevel(Debug)
	defer SetLevel(Notice)

	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	New("test").Debug("still visible")
	if !strings.Contains(buf.String(), "still visible") {
		t.Errorf("Expected level to survive SetSink, got %q", buf.String())
	}
}
