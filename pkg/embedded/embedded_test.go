package embedded

import (
	"strings"
	"testing"
)

func TestReadFileDefaults(t *testing.T) {
	for _, path := range []string{UnitsPath, SettingsPath, SpawnScriptPath} {
		data, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%s) failed: %v", path, err)
		}
		if len(data) == 0 {
			t.Errorf("ReadFile(%s) returned empty data", path)
		}
	}
}

func TestReadFileNormalizesPrefix(t *testing.T) {
	if _, err := ReadFile("./" + UnitsPath); err != nil {
		t.Errorf("Expected ./ prefix to be accepted, got %v", err)
	}
}

func TestReadFileRejectsUnknownPrefix(t *testing.T) {
	_, err := ReadFile("assets/units.yaml")
	if err == nil {
		t.Fatal("Expected error for unknown prefix")
	}
	if !strings.Contains(err.Error(), "unknown resource path prefix") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestExists(t *testing.T) {
	if !Exists(UnitsPath) {
		t.Errorf("Expected %s to exist", UnitsPath)
	}
	if Exists("data/missing.yaml") {
		t.Error("Expected data/missing.yaml to be absent")
	}
}

func TestGlob(t *testing.T) {
	matches, err := Glob("data/scripts/*.lua")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("Expected 1 lua script, got %v", matches)
	}
}
