package main

import (
	"testing"
)

func TestRootCommandWiring(t *testing.T) {
	// All subcommands must be registered on the root command.
	want := map[string]bool{
		"run":     false,
		"batch":   false,
		"serve":   false,
		"version": false,
	}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestPersistentFlags(t *testing.T) {
	for _, name := range []string{"config-dir", "env", "verbose"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag %q not defined", name)
		}
	}

	if got := rootCmd.PersistentFlags().Lookup("config-dir").DefValue; got != "config" {
		t.Errorf("config-dir default = %q, want config", got)
	}
	if got := rootCmd.PersistentFlags().Lookup("env").DefValue; got != "dev" {
		t.Errorf("env default = %q, want dev", got)
	}
}

func TestBatchTasksRegistered(t *testing.T) {
	for _, name := range []string{"prune-logs", "noop"} {
		if _, ok := batchTasks[name]; !ok {
			t.Errorf("batch task %q not registered", name)
		}
	}
}

func TestVersionCommandExists(t *testing.T) {
	if versionCmd == nil {
		t.Fatal("versionCmd is nil")
	}
	if versionCmd.Use != "version" {
		t.Errorf("versionCmd.Use = %q, want %q", versionCmd.Use, "version")
	}
	if versionCmd.Run == nil {
		t.Error("versionCmd.Run should not be nil")
	}
}
