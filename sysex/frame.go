package sysex

import (
	"gitlab.com/gomidi/midi/v2"
)

const (
	StartMarker = 0xF0
	EndMarker   = 0xF7

	DeviceType       = 0x01
	DeviceIDAStation = 0x40
	DeviceIDKStation = 0x41 /* Also used by the V-Station */
)

var VendorID = [3]byte{0x00, 0x20, 0x29}

const (
	OffsetVendor     = 1
	OffsetDeviceType = 4
	OffsetDeviceID   = 5
	OffsetMsgType    = 7
	OffsetBankMode   = 8
	OffsetBank       = 11
	OffsetProgram    = 12
	OffsetData       = 13

	HeaderSize      = OffsetData
	ProgramDataSize = 128

	/* Program pair dump is the largest message we handle */
	MaxFrameSize = HeaderSize + 2*ProgramDataSize + 1
)

func work(frame []byte, index int, fix bool) error {
	if len(frame) < HeaderSize+1 {
		return newFrameError(ErrorShortFrame, index, frame, len(frame))
	}

	var data []byte
	if !midi.Message(frame).GetSysEx(&data) || frame[len(frame)-1] != EndMarker {
		return newFrameError(ErrorNotSysex, index, frame, 0)
	}

	for i, id := range VendorID {
		if offs := OffsetVendor + i; frame[offs] != id {
			return mismatch(ErrorUnknownVendorID, index, frame, offs, id)
		}
	}

	if frame[OffsetDeviceType] != DeviceType {
		return mismatch(ErrorUnknownDeviceType, index, frame, OffsetDeviceType, DeviceType)
	}

	switch frame[OffsetDeviceID] {
	case DeviceIDKStation:
		e := newFrameError(ErrorAlreadyTarget, index, frame, OffsetDeviceID)
		e.Got = DeviceIDKStation
		e.Want = DeviceIDAStation
		return e
	case DeviceIDAStation:
	default:
		return mismatch(ErrorUnknownDeviceID, index, frame, OffsetDeviceID, DeviceIDAStation)
	}

	if fix {
		frame[OffsetDeviceID] = DeviceIDKStation
	}

	return nil
}

// CheckFrame validates the header of an A-Station dump without modifying it.
func CheckFrame(frame []byte) error {
	return work(frame, 0, false)
}

// PatchFrame validates the header and rewrites the device ID so that a
// K-Station or V-Station accepts the dump. The frame is left untouched on error.
func PatchFrame(frame []byte) error {
	return work(frame, 0, true)
}
