package sysex

import "fmt"

type MessageType byte

const (
	MessageCurrent     MessageType = 0x00 /* Current sound, sent from the edit buffer */
	MessageProgram     MessageType = 0x01
	MessageProgramPair MessageType = 0x02
)

func (m MessageType) String() string {
	switch m {
	case MessageCurrent:
		return "current sound dump"
	case MessageProgram:
		return "program dump"
	case MessageProgramPair:
		return "program pair dump"
	}
	return fmt.Sprintf("patch data dump (%02x)", byte(m))
}

type BankMode byte

const (
	BankCurrent  BankMode = 0
	BankExplicit BankMode = 1
)

// Describe returns a human readable summary of a validated frame. The second
// return value is false for message types that are not reported.
func Describe(frame []byte) (string, bool) {
	if len(frame) <= OffsetProgram {
		return "", false
	}

	bank := int(frame[OffsetBank])
	program := int(frame[OffsetProgram])

	switch MessageType(frame[OffsetMsgType]) {
	case MessageCurrent:
		return "Current sound (edit buffer) dump", true

	case MessageProgram:
		switch BankMode(frame[OffsetBankMode]) {
		case BankCurrent:
			return fmt.Sprintf("Current selected bank, PROGRAM NUMBER=%d", program), true
		case BankExplicit:
			return fmt.Sprintf("PROGRAM BANK=%d, PROGRAM NUMBER=%d", bank, program), true
		}

	case MessageProgramPair:
		/* The bank byte is reported in both modes: the V-Station does not seem
		 * to honour the "current bank" destination for pairs. */
		switch BankMode(frame[OffsetBankMode]) {
		case BankCurrent, BankExplicit:
			return fmt.Sprintf("PROGRAM BANK=%d, PROGRAM NUMBER=%d and %d", bank, program, program+1), true
		}
	}

	return "", false
}
