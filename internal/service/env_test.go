package service

import (
	"testing"

	"github.com/SchwenderOne/roscher4gpt5/internal/recurrence"
)

func TestEnv_WindowDefaults(t *testing.T) {
	tests := []struct {
		name string
		days *int
		want int
	}{
		{"unset", nil, recurrence.DefaultWindowDays},
		{"negative", ptr(-3), recurrence.DefaultWindowDays},
		{"explicit zero", ptr(0), 0},
		{"explicit", ptr(3), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := Env{WindowDays: tt.days}.withDefaults()
			if got := env.window(); got != tt.want {
				t.Errorf("window() = %d, want %d", got, tt.want)
			}
			if env.Clock == nil || env.Logger == nil {
				t.Error("expected clock and logger defaults")
			}
		})
	}
}
