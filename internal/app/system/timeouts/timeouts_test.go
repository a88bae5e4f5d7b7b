package timeouts_test

import (
	"testing"
	"time"

	"github.com/dalemusser/campushub/internal/app/system/timeouts"
)

func TestConfigureFromEnv_Overrides(t *testing.T) {
	t.Setenv("TIMEOUT_SHORT", "7s")
	t.Setenv("TIMEOUT_LONG", "bogus")

	n := timeouts.ConfigureFromEnv()
	if n != 1 {
		t.Errorf("configured: got %d, want 1", n)
	}
	if got := timeouts.Short(); got != 7*time.Second {
		t.Errorf("Short: got %v, want 7s", got)
	}
	if got := timeouts.Long(); got != timeouts.DefaultLong {
		t.Errorf("Long should keep its default on an invalid value, got %v", got)
	}
}
