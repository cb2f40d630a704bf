package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()

	want := []string{"drop", "merge", "tracks", "cache", "deps", "config"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestDropCommandRejectsOutOfRangeDropRate(t *testing.T) {
	root := newRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"drop", "movie.mp4", "--drop-rate", "150"})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected an error for --drop-rate 150")
	}
	if !strings.Contains(err.Error(), "between 0 and 100") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMergeCommandRequiresTwoLanguages(t *testing.T) {
	root := newRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"merge", "movie.mp4"})

	if err := root.Execute(); err == nil {
		t.Fatal("expected an error when only the video argument is given")
	}
}
