package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/audiorganizer/internal/audio"
	"github.com/handiism/audiorganizer/internal/config"
	"github.com/handiism/audiorganizer/internal/model"
)

var audioBytes = append([]byte{0xff, 0xfb, 0x90, 0x64}, make([]byte, 256)...)

func writeTagged(t *testing.T, path string, tags model.TagPair) {
	t.Helper()
	if err := os.WriteFile(path, audioBytes, 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	if err := audio.NewTagger(nil).WriteTags(path, tags, nil); err != nil {
		t.Fatalf("WriteTags: %v", err)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand(&out)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_CopyMode(t *testing.T) {
	src := t.TempDir()
	writeTagged(t, filepath.Join(src, "song.mp3"), model.TagPair{Artist: "AC/DC", Album: "Live: 1992"})

	out, err := execute(t, src, "--mode", "copy", "--no-color")
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}

	dest := filepath.Join(src, "AC-DC", "Live- 1992", "song.mp3")
	if _, err := os.Stat(dest); err != nil {
		t.Errorf("expected %s: %v", dest, err)
	}
	if _, err := os.Stat(filepath.Join(src, "song.mp3")); err != nil {
		t.Error("copy must keep the original")
	}
	if !strings.Contains(out, "Copied: song.mp3 -> "+dest) {
		t.Errorf("output missing per-file line:\n%s", out)
	}
	if !strings.Contains(out, "Summary") {
		t.Errorf("output missing summary table:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("output should not contain ANSI escapes with --no-color")
	}
}

func TestRootCommand_DestAndReport(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeTagged(t, filepath.Join(src, "a.mp3"), model.TagPair{Artist: "Artist", Album: "Album"})
	report := filepath.Join(t.TempDir(), "report.json")

	out, err := execute(t, src, "--dest", dst, "--report", report)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}

	if _, err := os.Stat(filepath.Join(dst, "Artist", "Album", "a.mp3")); err != nil {
		t.Errorf("file not moved into dest: %v", err)
	}
	if _, err := os.Stat(filepath.Join(src, "a.mp3")); !errors.Is(err, os.ErrNotExist) {
		t.Error("move should remove the original")
	}

	data, err := os.ReadFile(report)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var decoded struct {
		Mode      string `json:"mode"`
		Organized int    `json:"organized"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if decoded.Mode != "move" || decoded.Organized != 1 {
		t.Errorf("report = %+v", decoded)
	}
}

func TestRootCommand_PerFileFailureKeepsExitStatus(t *testing.T) {
	src := t.TempDir()
	writeTagged(t, filepath.Join(src, "a.mp3"), model.TagPair{Artist: "A", Album: "B"})
	if err := os.MkdirAll(filepath.Join(src, "A", "B"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "A", "B", "a.mp3"), []byte("taken"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, src, "--no-color")
	if err != nil {
		t.Fatalf("per-file failures must not fail the command: %v", err)
	}
	if !strings.Contains(out, "Error processing a.mp3") {
		t.Errorf("output missing error line:\n%s", out)
	}
}

func TestRootCommand_ArgumentErrors(t *testing.T) {
	src := t.TempDir()

	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"no source", []string{}, nil},
		{"two sources", []string{src, src}, nil},
		{"bad mode", []string{src, "--mode", "link"}, config.ErrInvalidMode},
		{"bad playlist format", []string{src, "--playlist-format", "xspf"}, nil},
		{"empty placeholder", []string{src, "--unknown-artist", " . "}, nil},
		{"missing source", []string{filepath.Join(src, "missing")}, os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestRootCommand_DryRunVerbose(t *testing.T) {
	src := t.TempDir()
	writeTagged(t, filepath.Join(src, "a.mp3"), model.TagPair{Artist: "A", Album: "B"})

	out, err := execute(t, src, "--dry-run", "--verbose", "--no-color")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Reading tags: a.mp3") {
		t.Errorf("verbose output missing:\n%s", out)
	}
	if !strings.Contains(out, "Would move: a.mp3") {
		t.Errorf("dry-run output missing:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(src, "a.mp3")); err != nil {
		t.Error("dry run must not move the file")
	}
}
