package einvoice

import (
	"testing"
	"time"
)

func TestInvoiceNumberSequenceBasics(t *testing.T) {
	s := New("RE-", 2024)

	if got := s.Peek(); got != "RE-2024-001" {
		t.Errorf("Peek() = %q, want RE-2024-001", got)
	}
	if got := s.NextNumber(); got != "RE-2024-001" {
		t.Errorf("NextNumber() = %q, want RE-2024-001", got)
	}
	if got := s.NextNumber(); got != "RE-2024-002" {
		t.Errorf("NextNumber() = %q, want RE-2024-002", got)
	}
}

func TestInvoiceNumberSequenceStartingAt(t *testing.T) {
	s := StartingAt("RE-", 2024, 50)
	if got := s.NextNumber(); got != "RE-2024-050" {
		t.Errorf("NextNumber() = %q, want RE-2024-050", got)
	}
}

func TestInvoiceNumberSequenceWithPadding(t *testing.T) {
	s := New("RE-", 2024).WithPadding(5)
	if got := s.NextNumber(); got != "RE-2024-00001" {
		t.Errorf("NextNumber() = %q, want RE-2024-00001", got)
	}
}

func TestInvoiceNumberSequenceAdvanceYear(t *testing.T) {
	s := New("RE-", 2024)
	s.NextNumber()
	s.NextNumber()

	if err := s.AdvanceYear(2023); err == nil {
		t.Error("AdvanceYear to an earlier year should fail")
	}
	if err := s.AdvanceYear(2025); err != nil {
		t.Fatalf("AdvanceYear: %v", err)
	}
	if got := s.NextNumber(); got != "RE-2025-001" {
		t.Errorf("NextNumber() after AdvanceYear = %q, want RE-2025-001", got)
	}
}

func TestInvoiceNumberSequenceAutoAdvance(t *testing.T) {
	s := New("RE-", 2024)
	s.NextNumber()

	advanced, err := s.AutoAdvance(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("AutoAdvance: %v", err)
	}
	if advanced {
		t.Error("AutoAdvance should not roll over within the same year")
	}

	advanced, err = s.AutoAdvance(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("AutoAdvance: %v", err)
	}
	if !advanced {
		t.Error("AutoAdvance should roll over into a new year")
	}
	if got := s.NextNumber(); got != "RE-2025-001" {
		t.Errorf("NextNumber() after AutoAdvance = %q, want RE-2025-001", got)
	}
}
