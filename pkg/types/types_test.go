package types

import "testing"

func TestDefenderKindRoundTrip(t *testing.T) {
	for _, k := range AllDefenderKinds() {
		if got := DefenderKindFromString(k.String()); got != k {
			t.Errorf("DefenderKindFromString(%q) = %v, want %v", k.String(), got, k)
		}
	}

	if got := DefenderKindFromString("cactus"); got != DefenderUnknown {
		t.Errorf("Expected DefenderUnknown for unknown id, got %v", got)
	}
	if DefenderUnknown.String() != "unknown" {
		t.Errorf("Expected 'unknown', got %q", DefenderUnknown.String())
	}
}

func TestEnemyKindFromString(t *testing.T) {
	tests := []struct {
		in   string
		want EnemyKind
	}{
		{"triangle", EnemyTriangle},
		{"pentagon", EnemyPentagon},
		{"hexagon", EnemyUnknown},
		{"", EnemyUnknown},
	}

	for _, tt := range tests {
		if got := EnemyKindFromString(tt.in); got != tt.want {
			t.Errorf("EnemyKindFromString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEnemyKindSides(t *testing.T) {
	if EnemyTriangle.Sides() != 3 {
		t.Errorf("Expected triangle to have 3 sides, got %d", EnemyTriangle.Sides())
	}
	if EnemyPentagon.Sides() != 5 {
		t.Errorf("Expected pentagon to have 5 sides, got %d", EnemyPentagon.Sides())
	}
}
