package model

import (
	"testing"
)

func TestCompareScore(t *testing.T) {
	tests := []struct {
		name     string
		pf, pa   int
		expected Result
	}{
		{name: "win", pf: 25, pa: 20, expected: ResultWin},
		{name: "loss", pf: 20, pa: 25, expected: ResultLoss},
		{name: "tie", pf: 2, pa: 2, expected: ResultTie},
		{name: "zero zero", pf: 0, pa: 0, expected: ResultTie},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if a := CompareScore(tc.pf, tc.pa); a != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, a)
			}
		})
	}
}

func TestSetResult(t *testing.T) {
	s := Set{SetNo: 1, PointsFor: 25, PointsAgainst: 27}
	if s.Result() != ResultLoss {
		t.Errorf("expected L, got %s", s.Result())
	}
}
