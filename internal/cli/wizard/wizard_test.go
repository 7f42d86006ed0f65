package wizard

import "testing"

// Run only opens a form for values that are missing; when both are present
// it must return immediately without touching the terminal.
func TestRunWithAllValuesProvided(t *testing.T) {
	result, err := Run("TaskManager", "demo")
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if result.Name != "TaskManager" {
		t.Errorf("Name = %q, want %q", result.Name, "TaskManager")
	}
	if result.Description != "demo" {
		t.Errorf("Description = %q, want %q", result.Description, "demo")
	}
}
