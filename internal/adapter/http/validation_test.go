package http

import (
	"strings"
	"testing"
)

func TestHex32Validation(t *testing.T) {
	type P struct {
		AppointmentID string `validate:"hex32"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{AppointmentID: strings.Repeat("a", 32)}); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	for _, s := range []string{
		"",
		strings.Repeat("A", 32), // uppercase
		"deadbeef",              // too short
		strings.Repeat("g", 32), // non-hex char
	} {
		err := cv.Validate(P{AppointmentID: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "AppointmentID", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, fe)
		}
	}
}

func TestAppIDValidation(t *testing.T) {
	type P struct {
		ApplicationID string `validate:"appid"`
	}
	cv := NewValidator()

	for _, s := range []string{"IDC-1700000000001", "IDC-1762204800123"} {
		if err := cv.Validate(P{ApplicationID: s}); err != nil {
			t.Fatalf("expected appid OK for %q, got %v", s, err)
		}
	}
	for _, s := range []string{
		"",
		"IDC-",
		"IDC-abc",
		"idc-1700000000001", // lowercase prefix
		"1700000000001",
	} {
		err := cv.Validate(P{ApplicationID: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "ApplicationID", "application reference") {
			t.Fatalf("expected appid message for %q, got: %+v", s, fe)
		}
	}
}

func TestTimeSlotValidation(t *testing.T) {
	type P struct {
		TimeSlot string `validate:"timeslot"`
	}
	cv := NewValidator()

	for _, s := range []string{"08:00", "13:00", "16:00"} {
		if err := cv.Validate(P{TimeSlot: s}); err != nil {
			t.Fatalf("expected timeslot OK for %q, got %v", s, err)
		}
	}
	for _, s := range []string{"", "12:00", "8:00", "17:00", "noon"} {
		err := cv.Validate(P{TimeSlot: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "TimeSlot", "time slot") {
			t.Fatalf("expected timeslot message for %q, got: %+v", s, fe)
		}
	}
}

func TestPhoneValidation(t *testing.T) {
	type P struct {
		PhoneNumber string `validate:"phone"`
	}
	cv := NewValidator()

	for _, s := range []string{"+237 600000001", "670000000", "+33 1 23 45 67 89"} {
		if err := cv.Validate(P{PhoneNumber: s}); err != nil {
			t.Fatalf("expected phone OK for %q, got %v", s, err)
		}
	}
	for _, s := range []string{"", "12345", "call-me-maybe", "+237-600-000"} {
		err := cv.Validate(P{PhoneNumber: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "PhoneNumber", "phone number") {
			t.Fatalf("expected phone message for %q, got: %+v", s, fe)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name     string `validate:"required"`
		Capacity int    `validate:"gte=1"`
		Reason   string `validate:"max=5"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Name: "", Capacity: 0, Reason: "toolong"})
	if err == nil {
		t.Fatal("expected validation errors")
	}
	fe := ToFieldErrors(err)
	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing required message: %+v", fe)
	}
	if !containsFieldMsg(fe, "Capacity", "greater than or equal to 1") {
		t.Fatalf("missing gte message: %+v", fe)
	}
	if !containsFieldMsg(fe, "Reason", "at most 5") {
		t.Fatalf("missing max message: %+v", fe)
	}
}
