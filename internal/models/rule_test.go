package models

import (
	"testing"
	"time"
)

func TestComparisonEvaluate(t *testing.T) {
	tests := []struct {
		op        Comparison
		value     float64
		threshold float64
		want      bool
	}{
		{CompareGT, 35, 30, true},
		{CompareGT, 30, 30, false},
		{CompareGTE, 30, 30, true},
		{CompareLT, 45, 60, true},
		{CompareLT, 60, 60, false},
		{CompareLTE, 60, 60, true},
		{CompareEQ, 0.3, 0.3, true},
		{CompareNEQ, 0.3, 0.3, false},
		{CompareNEQ, 0.4, 0.3, true},
		{Comparison("between"), 1, 2, false},
	}
	for _, tt := range tests {
		if got := tt.op.Evaluate(tt.value, tt.threshold); got != tt.want {
			t.Errorf("%q.Evaluate(%v, %v) = %v, want %v", tt.op, tt.value, tt.threshold, got, tt.want)
		}
	}
}

func TestComparisonValid(t *testing.T) {
	for _, op := range []Comparison{CompareGT, CompareLT, CompareGTE, CompareLTE, CompareEQ, CompareNEQ} {
		if !op.Valid() {
			t.Errorf("%q should be valid", op)
		}
	}
	if Comparison("contains").Valid() {
		t.Errorf("unknown operator should be invalid")
	}
}

func TestRuleExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	open := RecommendationRule{IsActive: true}
	if open.Expired(now) {
		t.Errorf("rule without expiration should never expire")
	}

	past := now.Add(-time.Hour)
	expired := RecommendationRule{Expiration: &past}
	if !expired.Expired(now) {
		t.Errorf("rule past its expiration should report expired")
	}

	future := now.Add(time.Hour)
	live := RecommendationRule{Expiration: &future}
	if live.Expired(now) {
		t.Errorf("rule before its expiration should not report expired")
	}
}

func TestSeverityConfidence(t *testing.T) {
	if got := SeverityConfidence(SeveritySevere); got != 0.9 {
		t.Errorf("severe = %v, want 0.9", got)
	}
	if got := SeverityConfidence(SeverityModerate); got != 0.7 {
		t.Errorf("moderate = %v, want 0.7", got)
	}
	if got := SeverityConfidence(SeverityMild); got != 0.4 {
		t.Errorf("mild = %v, want 0.4", got)
	}
}

func TestSeverityPriority(t *testing.T) {
	if got := SeverityPriority(SeveritySevere); got != PriorityHigh {
		t.Errorf("severe = %q", got)
	}
	if got := SeverityPriority(SeverityModerate); got != PriorityMedium {
		t.Errorf("moderate = %q", got)
	}
	if got := SeverityPriority(SeverityMild); got != PriorityLow {
		t.Errorf("mild = %q", got)
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityHigh.Rank() <= PriorityMedium.Rank() || PriorityMedium.Rank() <= PriorityLow.Rank() {
		t.Errorf("priority ranks out of order: high=%d medium=%d low=%d",
			PriorityHigh.Rank(), PriorityMedium.Rank(), PriorityLow.Rank())
	}
	if Priority("urgent").Rank() != 0 {
		t.Errorf("unknown priority should rank zero")
	}
}
