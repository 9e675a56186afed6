package loan

import (
	"reflect"
	"testing"
)

func TestAdjustRateLayered(t *testing.T) {
	l := newReferenceLoan(t)
	schedule := mustGenerate(t, l)

	snapshot := make(Schedule, len(schedule))
	copy(snapshot, schedule)

	l.AdjustRate(mustDecimal(t, "3.9"), 2, schedule)
	l.AdjustRate(mustDecimal(t, "3.55"), 3, schedule)

	if !l.AnnualRate.Equal(mustDecimal(t, "3.55")) {
		t.Errorf("loan.AnnualRate = %s, expected 3.55", l.AnnualRate)
	}

	// Period 58 keeps the original plan entirely.
	if !reflect.DeepEqual(schedule[0], snapshot[0]) {
		t.Errorf("record before the pivot changed: %+v", schedule[0])
	}

	// Period 59 got the first change only.
	if !schedule[1].InterestRate.Equal(mustDecimal(t, "3.9")) {
		t.Errorf("schedule[1].InterestRate = %s, expected 3.9", schedule[1].InterestRate)
	}
	if !schedule[1].Interest.Equal(mustDecimal(t, "1736.77")) {
		t.Errorf("schedule[1].Interest = %s, expected 1736.77", schedule[1].Interest)
	}
	if !schedule[1].TotalPayment.Equal(mustDecimal(t, "4060.21")) {
		t.Errorf("schedule[1].TotalPayment = %s, expected 4060.21", schedule[1].TotalPayment)
	}

	// Period 60 onward carries the second change.
	for i := 2; i < len(schedule); i++ {
		if !schedule[i].InterestRate.Equal(mustDecimal(t, "3.55")) {
			t.Fatalf("schedule[%d].InterestRate = %s, expected 3.55", i, schedule[i].InterestRate)
		}
	}
	if !schedule[2].Interest.Equal(mustDecimal(t, "1574.03")) {
		t.Errorf("schedule[2].Interest = %s, expected 1574.03", schedule[2].Interest)
	}

	// Principal payments and balances are inherited, never recomputed.
	for i := range schedule {
		if !schedule[i].PrincipalPayment.Equal(snapshot[i].PrincipalPayment) {
			t.Fatalf("schedule[%d].PrincipalPayment changed from %s to %s",
				i, snapshot[i].PrincipalPayment, schedule[i].PrincipalPayment)
		}
		if !schedule[i].RemainingPrincipal.Equal(snapshot[i].RemainingPrincipal) {
			t.Fatalf("schedule[%d].RemainingPrincipal changed from %s to %s",
				i, snapshot[i].RemainingPrincipal, schedule[i].RemainingPrincipal)
		}
	}
}

func TestAdjustRatePivotBeyondEnd(t *testing.T) {
	l := newReferenceLoan(t)
	schedule := mustGenerate(t, l)

	snapshot := make(Schedule, len(schedule))
	copy(snapshot, schedule)

	l.AdjustRate(mustDecimal(t, "9.9"), len(schedule)+1, schedule)

	if !reflect.DeepEqual(schedule, snapshot) {
		t.Error("pivot beyond the schedule end still mutated records")
	}
	// The loan's own rate tracks the request regardless.
	if !l.AnnualRate.Equal(mustDecimal(t, "9.9")) {
		t.Errorf("loan.AnnualRate = %s, expected 9.9", l.AnnualRate)
	}
}

func TestAdjustRateNonPositivePivot(t *testing.T) {
	l := newReferenceLoan(t)
	schedule := mustGenerate(t, l)

	snapshot := make(Schedule, len(schedule))
	copy(snapshot, schedule)

	l.AdjustRate(mustDecimal(t, "9.9"), 0, schedule)
	l.AdjustRate(mustDecimal(t, "9.9"), -1, schedule)

	if !reflect.DeepEqual(schedule, snapshot) {
		t.Error("non-positive pivot mutated records")
	}
}

func TestAdjustRateFromFirstPeriod(t *testing.T) {
	l := newReferenceLoan(t)
	schedule := mustGenerate(t, l)

	l.AdjustRate(mustDecimal(t, "3.9"), 1, schedule)

	for i := range schedule {
		if !schedule[i].InterestRate.Equal(mustDecimal(t, "3.9")) {
			t.Fatalf("schedule[%d].InterestRate = %s, expected 3.9", i, schedule[i].InterestRate)
		}
	}
	// 536714.20 * 3.9% / 12
	if !schedule[0].Interest.Equal(mustDecimal(t, "1744.32")) {
		t.Errorf("schedule[0].Interest = %s, expected 1744.32", schedule[0].Interest)
	}
}
