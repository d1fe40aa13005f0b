package protocol

// Hard limits on frame contents. Frames violating these fail encode and
// decode with E401; they bound per-session memory on both ends.
const (
	// MaxPatchesPerFrame caps the patches one frame may carry.
	MaxPatchesPerFrame = 4096

	// MaxClassLen caps a single class token's byte length.
	MaxClassLen = 256

	// MaxHIDLen caps an element ID's byte length.
	MaxHIDLen = 64

	// MaxFrameBytes caps the encoded frame size accepted by DecodeFrame.
	MaxFrameBytes = 1 << 20
)
