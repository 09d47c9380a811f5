package battery

import "testing"

func TestRecommendations_GeneralAdviceAlwaysPresent(t *testing.T) {
	for _, charge := range []float64{0, 10, 19.9, 20, 50, 90, 90.1, 100} {
		recs := New(60).WithCharge(charge).Recommendations()
		if len(recs) < len(generalAdvice) {
			t.Fatalf("charge %v: missing general advice: %v", charge, recs)
		}
		tail := recs[len(recs)-len(generalAdvice):]
		for i, want := range generalAdvice {
			if tail[i] != want {
				t.Fatalf("charge %v: advice %d: got %q want %q", charge, i, tail[i], want)
			}
		}
	}
}

func TestRecommendations_Warnings(t *testing.T) {
	low := New(60).WithCharge(10).Recommendations()
	if low[0] != lowChargeWarning {
		t.Fatalf("low charge: got %q", low[0])
	}
	high := New(60).WithCharge(95).Recommendations()
	if high[0] != highChargeWarning {
		t.Fatalf("high charge: got %q", high[0])
	}
	mid := New(60).WithCharge(50).Recommendations()
	if len(mid) != len(generalAdvice) {
		t.Fatalf("mid charge should carry no warning: %v", mid)
	}
	// Thresholds are exclusive.
	if got := New(60).WithCharge(20).Recommendations(); len(got) != len(generalAdvice) {
		t.Fatalf("charge 20 should carry no warning: %v", got)
	}
	if got := New(60).WithCharge(90).Recommendations(); len(got) != len(generalAdvice) {
		t.Fatalf("charge 90 should carry no warning: %v", got)
	}
}
