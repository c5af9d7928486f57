package currency

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  Currency
		ok    bool
	}{
		{"PKR", PKR, true},
		{"usd", USD, true},
		{"Eur", EUR, true},
		{"GBP", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := Parse(tc.input)
		if tc.ok {
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("Parse(%q) expected %s, got %s", tc.input, tc.want, got)
			}
		} else if err == nil {
			t.Fatalf("Parse(%q) expected error", tc.input)
		}
	}
}

func TestFormat(t *testing.T) {
	rates := DefaultRates()

	cases := []struct {
		name           string
		amount         float64
		target         Currency
		fractionDigits int
		want           string
	}{
		{"pkr whole", 1200, PKR, 0, "₨ 1,200"},
		{"pkr large", 1234567, PKR, 0, "₨ 1,234,567"},
		{"usd converts", 2780, USD, 2, "$ 10.00"},
		{"eur converts", 600, EUR, 2, "€ 2.00"},
		{"small amount", 500, PKR, 0, "₨ 500"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Format(tc.amount, tc.target, rates, tc.fractionDigits)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFormatMissingRateFallsBackToBase(t *testing.T) {
	got := Format(1000, USD, Rates{}, 0)
	if got != "$ 1,000" {
		t.Fatalf("expected unconverted amount with missing rate, got %q", got)
	}
}

func TestNormalizeFillsGaps(t *testing.T) {
	got := Normalize(Settings{Selected: USD, Rates: Rates{USD: 300}})

	if got.Selected != USD {
		t.Fatalf("expected selection to survive, got %s", got.Selected)
	}
	if got.Rates[USD] != 300 {
		t.Fatalf("expected custom USD rate 300, got %v", got.Rates[USD])
	}
	if got.Rates[EUR] != 300 {
		t.Fatalf("expected EUR to fall back to default 300, got %v", got.Rates[EUR])
	}
	if got.Rates[PKR] != 1 {
		t.Fatalf("expected PKR rate 1, got %v", got.Rates[PKR])
	}
}

func TestNormalizeRejectsInvalidSelection(t *testing.T) {
	got := Normalize(Settings{Selected: "GBP"})
	if got.Selected != PKR {
		t.Fatalf("expected invalid selection to reset to PKR, got %s", got.Selected)
	}
}

func TestNormalizeIgnoresNonPositiveRates(t *testing.T) {
	got := Normalize(Settings{Rates: Rates{USD: -5, EUR: 0}})
	if got.Rates[USD] != 278 {
		t.Fatalf("expected negative rate to be ignored, got %v", got.Rates[USD])
	}
	if got.Rates[EUR] != 300 {
		t.Fatalf("expected zero rate to be ignored, got %v", got.Rates[EUR])
	}
}
