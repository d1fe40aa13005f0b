package protocol

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vango-dev/classbind/internal/errors"
)

// Frame batches one check cycle's patches. Seq increases by one per flushed
// frame so clients can detect gaps after a reconnect.
type Frame struct {
	Seq     uint64  `msgpack:"s"`
	Patches []Patch `msgpack:"p"`
}

// EncodeFrame serializes a frame to msgpack after validating limits.
func EncodeFrame(f *Frame) ([]byte, error) {
	if err := validateFrame(f); err != nil {
		return nil, err
	}
	data, err := msgpack.Marshal(f)
	if err != nil {
		return nil, errors.FromError(err, errors.CodeFrameMalformed)
	}
	return data, nil
}

// DecodeFrame deserializes and validates a msgpack frame.
func DecodeFrame(data []byte) (*Frame, error) {
	if len(data) > MaxFrameBytes {
		return nil, errors.New(errors.CodeFrameTooLarge).
			WithDetail("Encoded frame exceeds MaxFrameBytes.")
	}
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return nil, errors.FromError(err, errors.CodeFrameMalformed)
	}
	if err := validateFrame(&f); err != nil {
		return nil, err
	}
	for _, p := range f.Patches {
		if !p.Op.Valid() {
			return nil, errors.New(errors.CodeFrameMalformed).
				WithDetail("Frame contains an unknown patch op.")
		}
	}
	return &f, nil
}

// validateFrame enforces the structural limits shared by both directions.
func validateFrame(f *Frame) error {
	if len(f.Patches) > MaxPatchesPerFrame {
		return errors.New(errors.CodeFrameTooLarge).
			WithDetail("Frame exceeds MaxPatchesPerFrame.")
	}
	for _, p := range f.Patches {
		if len(p.Class) > MaxClassLen || len(p.HID) > MaxHIDLen {
			return errors.New(errors.CodeFrameTooLarge).
				WithDetail("A patch exceeds the class or element ID length limit.")
		}
	}
	return nil
}
