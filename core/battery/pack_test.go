package battery

import (
	"math"
	"testing"
)

func TestPack_AvailableCapacity(t *testing.T) {
	for soh := 70.0; soh <= 100; soh += 2.5 {
		p := New(60).WithSoH(soh)
		want := 60 * soh / 100
		if got := p.AvailableCapacityKWh(); math.Abs(got-want) > 1e-9 {
			t.Fatalf("soh=%v: got %v want %v", soh, got, want)
		}
		if p.AvailableCapacityKWh() > p.CapacityKWh {
			t.Fatalf("available capacity exceeds nominal capacity at soh=%v", soh)
		}
	}
}

func TestPack_UsableEnergy(t *testing.T) {
	p := New(60).WithCharge(75)
	if got := p.UsableEnergyKWh(); got != 45 {
		t.Fatalf("usable energy: got %v want 45", got)
	}
}

func TestPack_Validate(t *testing.T) {
	if err := New(60).Validate(); err != nil {
		t.Fatalf("valid pack rejected: %v", err)
	}
	if err := New(0).Validate(); err == nil {
		t.Fatal("zero capacity accepted")
	}
	if err := New(-5).Validate(); err == nil {
		t.Fatal("negative capacity accepted")
	}
}

func TestPack_ValueSemantics(t *testing.T) {
	p := New(60)
	q := p.WithCharge(10).WithSoH(80)
	if p.ChargePercent != 100 || p.SoH != 100 {
		t.Fatal("WithCharge/WithSoH mutated the receiver")
	}
	if q.ChargePercent != 10 || q.SoH != 80 {
		t.Fatalf("unexpected derived pack: %+v", q)
	}
}
