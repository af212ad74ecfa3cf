package sysex

import "testing"

func TestDescribe(t *testing.T) {
	tests := []struct {
		msgType MessageType
		mode    BankMode
		bank    byte
		program byte
		want    string
		ok      bool
	}{
		{MessageCurrent, BankCurrent, 0, 0, "Current sound (edit buffer) dump", true},
		{MessageProgram, BankCurrent, 5, 42, "Current selected bank, PROGRAM NUMBER=42", true},
		{MessageProgram, BankExplicit, 3, 7, "PROGRAM BANK=3, PROGRAM NUMBER=7", true},
		{MessageProgram, 2, 3, 7, "", false},
		{MessageProgramPair, BankExplicit, 1, 10, "PROGRAM BANK=1, PROGRAM NUMBER=10 and 11", true},
		{MessageProgramPair, BankCurrent, 2, 10, "PROGRAM BANK=2, PROGRAM NUMBER=10 and 11", true},
		{0x03, BankExplicit, 1, 10, "", false},
		{0x7F, BankCurrent, 0, 0, "", false},
	}

	for _, tc := range tests {
		blocks := 1
		if tc.msgType == MessageProgramPair {
			blocks = 2
		}

		got, ok := Describe(makeFrame(tc.msgType, tc.mode, tc.bank, tc.program, blocks))
		if got != tc.want || ok != tc.ok {
			t.Errorf("%s mode %d: got (%q, %v), want (%q, %v)", tc.msgType, tc.mode, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDescribeShort(t *testing.T) {
	if _, ok := Describe([]byte{StartMarker, EndMarker}); ok {
		t.Error("short frame should not be described")
	}
}

func TestMessageTypeString(t *testing.T) {
	if s := MessageProgramPair.String(); s != "program pair dump" {
		t.Errorf("got %q", s)
	}
	if s := MessageType(0x10).String(); s != "patch data dump (10)" {
		t.Errorf("got %q", s)
	}
}
