package strategy

import (
	"errors"
	"testing"
)

func TestAvailableListsRegisteredStrategies(t *testing.T) {
	available := Available()
	if len(available) != 2 {
		t.Fatalf("expected 2 strategies, got %d", len(available))
	}
	if available[0].ID != "momentum" || available[1].ID != "rebalancing" {
		t.Errorf("unexpected order: %+v", available)
	}
	for _, d := range available {
		s, err := Create(d.ID)
		if err != nil {
			t.Errorf("Create(%q): %v", d.ID, err)
			continue
		}
		if s.Name() != d.Name {
			t.Errorf("%q: descriptor name %q != strategy name %q", d.ID, d.Name, s.Name())
		}
		if s.Description() != d.Description {
			t.Errorf("%q: descriptor description %q != strategy description %q", d.ID, d.Description, s.Description())
		}
	}
}

func TestCreateUnknownStrategy(t *testing.T) {
	_, err := Create("unknown")
	if !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
}
