package generator

import "testing"

func TestGenerate_BarInvariants(t *testing.T) {
	g := New("TEST", 100, 0.02, 42)
	records := g.Generate(120)

	if len(records) != 120 {
		t.Fatalf("expected 120 records, got %d", len(records))
	}
	for i, r := range records {
		if r.Low > r.High {
			t.Errorf("record %d: low %.2f above high %.2f", i, r.Low, r.High)
		}
		if r.Open < r.Low || r.Open > r.High {
			t.Errorf("record %d: open %.2f outside [%.2f, %.2f]", i, r.Open, r.Low, r.High)
		}
		if r.Close < r.Low || r.Close > r.High {
			t.Errorf("record %d: close %.2f outside [%.2f, %.2f]", i, r.Close, r.Low, r.High)
		}
		if r.Volume < 0 {
			t.Errorf("record %d: negative volume %d", i, r.Volume)
		}
		if i > 0 && !records[i-1].Date.Before(r.Date) {
			t.Errorf("record %d: dates not strictly ascending", i)
		}
	}
}

func TestGenerate_SeedReproducibility(t *testing.T) {
	a := New("TEST", 175, 0.02, 7).Generate(30)
	b := New("TEST", 175, 0.02, 7).Generate(30)
	for i := range a {
		if a[i].Close != b[i].Close || a[i].Volume != b[i].Volume {
			t.Fatalf("record %d differs between identically seeded runs", i)
		}
	}
}

func TestGenerate_ZeroDays(t *testing.T) {
	if records := New("TEST", 100, 0.02, 1).Generate(0); len(records) != 0 {
		t.Errorf("expected no records for zero days, got %d", len(records))
	}
}
