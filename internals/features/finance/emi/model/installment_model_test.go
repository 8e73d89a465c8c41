package model

import (
	"testing"
	"time"
)

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name    string
		status  string
		dueDate time.Time
		want    string
	}{
		{"pending past due reads overdue", InstallmentStatusPending, yesterday, InstallmentStatusOverdue},
		{"pending future stays pending", InstallmentStatusPending, tomorrow, InstallmentStatusPending},
		{"pending due today stays pending", InstallmentStatusPending, now.Truncate(24 * time.Hour), InstallmentStatusPending},
		{"paid never flips", InstallmentStatusPaid, yesterday, InstallmentStatusPaid},
		{"processing never flips", InstallmentStatusProcessing, yesterday, InstallmentStatusProcessing},
		{"cancelled never flips", InstallmentStatusCancelled, yesterday, InstallmentStatusCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := InstallmentModel{InstallmentStatus: tt.status, InstallmentDueDate: tt.dueDate}
			if got := m.EffectiveStatus(now); got != tt.want {
				t.Errorf("EffectiveStatus = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsOpen(t *testing.T) {
	open := []string{InstallmentStatusPending, InstallmentStatusOverdue, InstallmentStatusProcessing}
	closed := []string{InstallmentStatusPaid, InstallmentStatusCancelled}

	for _, s := range open {
		m := InstallmentModel{InstallmentStatus: s}
		if !m.IsOpen() {
			t.Errorf("IsOpen(%q) = false, want true", s)
		}
	}
	for _, s := range closed {
		m := InstallmentModel{InstallmentStatus: s}
		if m.IsOpen() {
			t.Errorf("IsOpen(%q) = true, want false", s)
		}
	}
}
