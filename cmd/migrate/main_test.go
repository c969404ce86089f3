package main

import "testing"

func TestParseSteps(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{"default", nil, 1, false},
		{"explicit", []string{"3"}, 3, false},
		{"zero", []string{"0"}, 0, true},
		{"negative", []string{"-2"}, 0, true},
		{"not a number", []string{"all"}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSteps(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestRunRequiresCommand(t *testing.T) {
	if err := run(nil); err == nil {
		t.Error("expected usage error without a command")
	}
}

func TestRunRejectsSQLite(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", t.TempDir()+"/budget.db")

	if err := run([]string{"up"}); err == nil {
		t.Error("expected sqlite driver to be rejected")
	}
}
