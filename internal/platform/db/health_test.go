package db

import (
	"testing"
)

func TestPoolStats_Fields(t *testing.T) {
	stats := &PoolStats{
		TotalConns:    8,
		IdleConns:     3,
		AcquiredConns: 5,
		MaxConns:      10,
		Healthy:       true,
	}

	if stats.TotalConns != 8 {
		t.Errorf("expected TotalConns 8, got %d", stats.TotalConns)
	}
	if stats.IdleConns != 3 {
		t.Errorf("expected IdleConns 3, got %d", stats.IdleConns)
	}
	if stats.AcquiredConns != 5 {
		t.Errorf("expected AcquiredConns 5, got %d", stats.AcquiredConns)
	}
	if stats.MaxConns != 10 {
		t.Errorf("expected MaxConns 10, got %d", stats.MaxConns)
	}
	if !stats.Healthy {
		t.Error("expected Healthy to be true")
	}
}

func TestPoolStats_UnhealthyState(t *testing.T) {
	stats := &PoolStats{MaxConns: 10}

	if stats.Healthy {
		t.Error("expected Healthy to be false when TotalConns is 0")
	}
}
