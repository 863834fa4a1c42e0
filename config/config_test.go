package config

import (
	"testing"

	"github.com/oortcore/simulator/sandbox"
)

func TestLoadWithNoFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected default listen addr, got %q", cfg.ListenAddr)
	}
	if cfg.DefaultScenario != "tutorial01" {
		t.Fatalf("expected default scenario tutorial01, got %q", cfg.DefaultScenario)
	}
	if cfg.ControllerDeadline != sandbox.DefaultDeadline {
		t.Fatalf("expected the sandbox default deadline, got %v", cfg.ControllerDeadline)
	}
	if cfg.InstanceID == "" {
		t.Fatalf("expected a generated instance id")
	}
}

func TestLoadGeneratesDistinctInstanceIDs(t *testing.T) {
	a, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if a.InstanceID == b.InstanceID {
		t.Fatalf("expected distinct instance ids across loads, got %q twice", a.InstanceID)
	}
}
