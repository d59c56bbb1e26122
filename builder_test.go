package fontmet

import "errors"
import "strings"
import "testing"

func TestSetBaselineInvalidFontSize(t *testing.T) {
	widths := map[rune]float64{ 'a': 42.0 }
	for _, fontSize := range []int{ -2147483648, -42, -1, 0 } {
		_, err := Builder().SetBaseline(fontSize, widths)
		if err == nil { t.Fatalf("expected error for fontSize %d", fontSize) }
		if !errors.Is(err, ErrInvalidArgument) { t.Fatalf("expected ErrInvalidArgument, got %v", err) }
		if !strings.Contains(err.Error(), "fontSize must be positive") {
			t.Fatalf("unexpected error message: %s", err.Error())
		}
	}
}

func TestSetBaselineValidFontSize(t *testing.T) {
	widths := map[rune]float64{ 'a': 42.0 }
	for _, fontSize := range []int{ 1, 42, 2147483647 } {
		_, err := Builder().SetBaseline(fontSize, widths)
		if err != nil { t.Fatalf("unexpected error for fontSize %d: %v", fontSize, err) }
	}
}

func TestSetBaselineBadMaps(t *testing.T) {
	_, err := Builder().SetBaseline(42, nil)
	if !errors.Is(err, ErrInvalidArgument) { t.Fatalf("expected ErrInvalidArgument, got %v", err) }

	_, err = Builder().SetBaseline(42, map[rune]float64{})
	if !errors.Is(err, ErrInvalidArgument) { t.Fatalf("expected ErrInvalidArgument, got %v", err) }

	// surrogate code points are not valid Unicode scalars
	_, err = Builder().SetBaseline(42, map[rune]float64{ 0xD800: 10.0 })
	if !errors.Is(err, ErrInvalidArgument) { t.Fatalf("expected ErrInvalidArgument, got %v", err) }

	_, err = Builder().SetBaseline(42, map[rune]float64{ 'a': -1.0 })
	if !errors.Is(err, ErrInvalidArgument) { t.Fatalf("expected ErrInvalidArgument, got %v", err) }
}

func TestSetBaselineDefensiveCopy(t *testing.T) {
	widths := map[rune]float64{ 'a': 42.0 }
	step, err := Builder().SetBaseline(7, widths)
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	widths['a'] = 1000.0 // mutation after the call must not leak in
	metrics := step.SkipPreCalculation().Disable().Build()
	width, supported, err := metrics.Width('a', 7)
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	if !supported { t.Fatal("expected 'a' to be supported") }
	if width != 42.0 { t.Fatalf("expected 42.0, got %f", width) }
}

func TestPreCalculate(t *testing.T) {
	widths := map[rune]float64{ 'x': 42.0 }
	step, err := Builder().SetBaseline(7, widths)
	if err != nil { t.Fatalf("unexpected error: %v", err) }

	// duplicates and the baseline size itself are deduplicated
	onDemand, err := step.PreCalculate(14, 14, 7, 21)
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	metrics := onDemand.Disable().Build()

	if !metrics.HasPreCalculated(7)  { t.Fatal("expected size 7 to be precalculated") }
	if !metrics.HasPreCalculated(14) { t.Fatal("expected size 14 to be precalculated") }
	if !metrics.HasPreCalculated(21) { t.Fatal("expected size 21 to be precalculated") }
	if metrics.HasPreCalculated(28)  { t.Fatal("didn't expect size 28 to be precalculated") }

	width, supported, err := metrics.Width('x', 21)
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	if !supported { t.Fatal("expected 'x' to be supported at size 21") }
	if width != 126.0 { t.Fatalf("expected 126.0, got %f", width) }
}

func TestPreCalculateInvalidSize(t *testing.T) {
	widths := map[rune]float64{ 'x': 42.0 }
	step, err := Builder().SetBaseline(7, widths)
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	_, err = step.PreCalculate(14, 0, 21)
	if !errors.Is(err, ErrInvalidArgument) { t.Fatalf("expected ErrInvalidArgument, got %v", err) }

	// the failing call must not have expanded anything, not even
	// the valid sizes that preceded the bad one
	onDemand, err := step.PreCalculate()
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	metrics := onDemand.Disable().Build()
	if metrics.HasPreCalculated(14) { t.Fatal("expected no partial expansion") }
	if metrics.HasPreCalculated(21) { t.Fatal("expected no partial expansion") }
}

func TestCacheLimitValidation(t *testing.T) {
	widths := map[rune]float64{ 'x': 42.0 }
	step, err := Builder().SetBaseline(7, widths)
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	onDemand := step.SkipPreCalculation()

	for _, limit := range []int{ -1, 0 } {
		_, err := onDemand.EnableWithFIFOCache(limit)
		if !errors.Is(err, ErrInvalidArgument) { t.Fatalf("expected ErrInvalidArgument, got %v", err) }
		_, err = onDemand.EnableWithPopularityCache(limit)
		if !errors.Is(err, ErrInvalidArgument) { t.Fatalf("expected ErrInvalidArgument, got %v", err) }
	}

	buildStep, err := onDemand.EnableWithFIFOCache(1)
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	if buildStep.Build() == nil { t.Fatal("expected non-nil metrics") }
}
