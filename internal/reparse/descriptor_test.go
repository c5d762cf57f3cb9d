package reparse

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/yourusername/junction-manager/internal/testutil"
)

// TestLayoutConstants verifies the derived layout values against the
// documented Windows numbers.
func TestLayoutConstants(t *testing.T) {
	if MaximumBufferSize != 16384 {
		t.Errorf("MaximumBufferSize = %d, want 16384", MaximumBufferSize)
	}
	if ReparseTagMountPoint != 0xA0000003 {
		t.Errorf("ReparseTagMountPoint = 0x%X, want 0xA0000003", ReparseTagMountPoint)
	}
	// Path buffer holds `\??\` + target + NUL + target + NUL, two bytes per
	// unit, inside the 16368 bytes left after the header and descriptor.
	if MaxTargetLength != 4089 {
		t.Errorf("MaxTargetLength = %d, want 4089", MaxTargetLength)
	}
}

func TestEncodeFieldLayout(t *testing.T) {
	const target = `C:\target\dir`
	buf, err := EncodeMountPoint(target)
	if err != nil {
		t.Fatalf("EncodeMountPoint(%q) failed: %v", target, err)
	}

	le := binary.LittleEndian
	n := len(target) // pure ASCII, one UTF-16 unit per byte

	if got := le.Uint32(buf[0:]); got != ReparseTagMountPoint {
		t.Errorf("ReparseTag = 0x%X, want 0x%X", got, uint32(ReparseTagMountPoint))
	}
	wantDataLen := uint16(8 + (4+n)*2 + n*2 + 4)
	if got := le.Uint16(buf[4:]); got != wantDataLen {
		t.Errorf("ReparseDataLength = %d, want %d", got, wantDataLen)
	}
	if got := le.Uint16(buf[6:]); got != 0 {
		t.Errorf("Reserved = %d, want 0", got)
	}
	if got := le.Uint16(buf[8:]); got != 0 {
		t.Errorf("SubstituteNameOffset = %d, want 0", got)
	}
	if got := le.Uint16(buf[10:]); got != uint16((4+n)*2) {
		t.Errorf("SubstituteNameLength = %d, want %d", got, (4+n)*2)
	}
	if got := le.Uint16(buf[12:]); got != uint16((4+n)*2+2) {
		t.Errorf("PrintNameOffset = %d, want %d", got, (4+n)*2+2)
	}
	if got := le.Uint16(buf[14:]); got != uint16(n*2) {
		t.Errorf("PrintNameLength = %d, want %d", got, n*2)
	}

	// Total size is header + ReparseDataLength, within the OS bound.
	if len(buf) != int(8+wantDataLen) {
		t.Errorf("encoded size = %d, want %d", len(buf), 8+wantDataLen)
	}
	if len(buf) > MaximumBufferSize {
		t.Errorf("encoded size %d exceeds MaximumBufferSize", len(buf))
	}
}

func TestLengthBoundary(t *testing.T) {
	atLimit := `C:\` + strings.Repeat("x", MaxTargetLength-3)
	if _, err := EncodeMountPoint(atLimit); err != nil {
		t.Errorf("target of exactly %d units failed: %v", MaxTargetLength, err)
	}

	overLimit := atLimit + "x"
	if _, err := EncodeMountPoint(overLimit); !errors.Is(err, ErrTargetTooLong) {
		t.Errorf("target of %d units: err = %v, want ErrTargetTooLong", MaxTargetLength+1, err)
	}
}

func TestDecodeRejectsMalformedBuffers(t *testing.T) {
	valid, err := EncodeMountPoint(`C:\target`)
	if err != nil {
		t.Fatalf("EncodeMountPoint failed: %v", err)
	}

	tests := []struct {
		name string
		buf  []byte
	}{
		{"empty", nil},
		{"truncated header", valid[:6]},
		{"header only", valid[:8]},
		{"truncated descriptor", valid[:12]},
		{"substitute name out of bounds", func() []byte {
			b := append([]byte{}, valid...)
			binary.LittleEndian.PutUint16(b[10:], uint16(len(b))) // length past the buffer
			return b
		}()},
		{"substitute name shorter than kernel prefix", func() []byte {
			b := append([]byte{}, valid...)
			binary.LittleEndian.PutUint16(b[10:], 4) // two units, prefix needs four
			return b
		}()},
		{"odd substitute name length", func() []byte {
			b := append([]byte{}, valid...)
			binary.LittleEndian.PutUint16(b[10:], 11)
			return b
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeMountPoint(tt.buf); !errors.Is(err, ErrInvalidDescriptor) {
				t.Errorf("DecodeMountPoint() err = %v, want ErrInvalidDescriptor", err)
			}
		})
	}
}

// A symlink reparse buffer has a different layout (an extra flags word
// before the path buffer), so decoding must stop at the tag rather than
// misparse the bytes as a junction target.
func TestDecodeRejectsForeignReparseTags(t *testing.T) {
	const reparseTagSymlink = 0xA000000C

	buf, err := EncodeMountPoint(`C:\target`)
	if err != nil {
		t.Fatalf("EncodeMountPoint failed: %v", err)
	}

	for _, tag := range []uint32{reparseTagSymlink, 0, 0x80000017} {
		binary.LittleEndian.PutUint32(buf[0:], tag)
		if _, err := DecodeMountPoint(buf); !errors.Is(err, ErrNotMountPoint) {
			t.Errorf("DecodeMountPoint with tag 0x%08X: err = %v, want ErrNotMountPoint", tag, err)
		}
	}
}

// Decode(Encode(target)) must return the target unchanged, with case
// preserved, for every target within the length limit.
func TestMountPointRoundTrip(t *testing.T) {
	testutil.RapidCheck(t, func(rt *rapid.T) {
		target := testutil.AbsoluteNormalizedPath(8).Draw(rt, "target")

		buf, err := EncodeMountPoint(target)
		if err != nil {
			rt.Fatalf("EncodeMountPoint(%q) failed: %v", target, err)
		}
		got, err := DecodeMountPoint(buf)
		if err != nil {
			rt.Fatalf("DecodeMountPoint failed: %v", err)
		}
		if got != target {
			rt.Fatalf("round trip of %q produced %q", target, got)
		}
	})
}

// Targets with characters outside the basic multilingual plane occupy two
// UTF-16 units each; the limit is counted in units, not runes.
func TestTargetLengthCountsUTF16Units(t *testing.T) {
	if got := TargetLength(`C:\ab`); got != 5 {
		t.Errorf("TargetLength ASCII = %d, want 5", got)
	}
	// U+1F600 encodes as a surrogate pair.
	if got := TargetLength(`C:\` + string(rune(0x1F600))); got != 5 {
		t.Errorf("TargetLength with surrogate pair = %d, want 5", got)
	}
}
