package diag_test

import (
	"testing"

	"rcl/internal/diag"
	"rcl/internal/source"
)

func mk(code diag.Code, sev diag.Severity, start, end uint32) diag.Diagnostic {
	return diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  code.String(),
		Primary:  source.Span{File: 0, Start: start, End: end},
	}
}

func TestBagLimit(t *testing.T) {
	bag := diag.NewBag(2)
	if !bag.Add(mk(diag.SynUnexpectedToken, diag.SevError, 0, 1)) {
		t.Fatal("first add should succeed")
	}
	if !bag.Add(mk(diag.SynUnexpectedToken, diag.SevError, 1, 2)) {
		t.Fatal("second add should succeed")
	}
	if bag.Add(mk(diag.SynUnexpectedToken, diag.SevError, 2, 3)) {
		t.Fatal("add past the limit should report false")
	}
	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
}

func TestBagHasErrorsAndWarnings(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(mk(diag.LexInfo, diag.SevInfo, 0, 0))
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatal("info alone is neither warning nor error")
	}
	bag.Add(mk(diag.SynInfo, diag.SevWarning, 0, 0))
	if bag.HasErrors() {
		t.Fatal("warning is not an error")
	}
	if !bag.HasWarnings() {
		t.Fatal("warning should count")
	}
	bag.Add(mk(diag.SynUnexpectedToken, diag.SevError, 0, 0))
	if !bag.HasErrors() {
		t.Fatal("error should count")
	}
}

func TestBagSort(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(mk(diag.SynUnexpectedToken, diag.SevError, 9, 10))
	bag.Add(mk(diag.LexUnknownChar, diag.SevError, 0, 1))
	bag.Add(mk(diag.SynTrailingInput, diag.SevError, 4, 5))
	bag.Sort()

	items := bag.Items()
	if items[0].Primary.Start != 0 || items[1].Primary.Start != 4 || items[2].Primary.Start != 9 {
		t.Errorf("sort order wrong: %v", items)
	}
}

func TestBagDedup(t *testing.T) {
	bag := diag.NewBag(10)
	d := mk(diag.SynUnexpectedToken, diag.SevError, 3, 4)
	bag.Add(d)
	bag.Add(d)
	bag.Add(mk(diag.SynUnexpectedToken, diag.SevError, 5, 6))
	bag.Dedup()
	if bag.Len() != 2 {
		t.Errorf("Len after Dedup = %d, want 2", bag.Len())
	}
}

func TestBagMergeGrows(t *testing.T) {
	a := diag.NewBag(1)
	a.Add(mk(diag.SynUnexpectedToken, diag.SevError, 0, 1))
	b := diag.NewBag(2)
	b.Add(mk(diag.LexUnknownChar, diag.SevError, 1, 2))
	b.Add(mk(diag.SynTrailingInput, diag.SevError, 2, 3))

	a.Merge(b)
	if a.Len() != 3 {
		t.Errorf("Len after Merge = %d, want 3", a.Len())
	}
}

func TestCodeID(t *testing.T) {
	if got := diag.SynUnexpectedToken.ID(); got != "RCL2001" {
		t.Errorf("ID = %q, want RCL2001", got)
	}
	if got := diag.LexUnknownChar.String(); got != "LexUnknownChar" {
		t.Errorf("String = %q", got)
	}
	if got := diag.Code(4242).String(); got != "RCL4242" {
		t.Errorf("unknown code String = %q, want RCL4242", got)
	}
}

func TestBagReporter(t *testing.T) {
	bag := diag.NewBag(5)
	var r diag.Reporter = diag.BagReporter{Bag: bag}
	r.Report(diag.SynUnexpectedToken, diag.SevError, source.Span{Start: 1, End: 2}, "boom", nil)
	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	if bag.Items()[0].Message != "boom" {
		t.Errorf("message = %q", bag.Items()[0].Message)
	}

	diag.NopReporter{}.Report(diag.SynInfo, diag.SevInfo, source.Span{}, "dropped", nil)
}
