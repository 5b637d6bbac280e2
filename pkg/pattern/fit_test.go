package pattern

import (
	"errors"
	"testing"
)

func TestResolveFit(t *testing.T) {
	for _, s := range []string{"slim", "regular", "loose"} {
		fit, err := ResolveFit(s)
		if err != nil {
			t.Errorf("ResolveFit(%q) failed: %v", s, err)
		}
		if string(fit) != s {
			t.Errorf("ResolveFit(%q) = %q", s, fit)
		}
	}
}

func TestResolveFitUnknown(t *testing.T) {
	for _, s := range []string{"", "tight", "Regular", "SLIM"} {
		_, err := ResolveFit(s)
		var unknown *UnknownFitCategoryError
		if !errors.As(err, &unknown) {
			t.Errorf("ResolveFit(%q): expected UnknownFitCategoryError, got %v", s, err)
			continue
		}
		if unknown.Value != s {
			t.Errorf("UnknownFitCategoryError.Value = %q, want %q", unknown.Value, s)
		}
	}
}

func TestEaseProfileTable(t *testing.T) {
	want := map[FitCategory]EaseProfile{
		FitSlim:    {3.0, 3.0, 3.0, 0.75, 1.25, 3.5},
		FitRegular: {4.0, 4.0, 4.0, 1.0, 2.0, 4.5},
		FitLoose:   {5.0, 5.0, 5.0, 1.5, 3.0, 5.5},
	}
	for fit, profile := range want {
		if got := fit.Ease(); got != profile {
			t.Errorf("%s ease profile = %+v, want %+v", fit, got, profile)
		}
	}
}

func TestFitLabel(t *testing.T) {
	if got := FitRegular.Label(); got != "Regular" {
		t.Errorf("Label() = %q, want Regular", got)
	}
}
