// Package reparse encodes and decodes the mount-point (junction) reparse
// descriptor that Windows stores behind FSCTL_SET_REPARSE_POINT /
// FSCTL_GET_REPARSE_POINT.
//
// The on-disk layout, little-endian throughout:
//
//	[header]      ReparseTag uint32, ReparseDataLength uint16, Reserved uint16
//	[descriptor]  SubstituteNameOffset, SubstituteNameLength,
//	              PrintNameOffset, PrintNameLength (all uint16, in bytes,
//	              relative to the start of the path buffer)
//	[path buffer] `\??\` prefix, target, NUL, target again (display form), NUL
//	              (all UTF-16LE)
//
// The substitute name is what the kernel follows; `\??\` is the
// object-namespace prefix (a synonym for \DosDevices\, not the Win32 \\?\
// marker). The print name is what `dir` shows; like MKLINK, we store the
// target without the kernel prefix there.
//
// Everything here is pure byte manipulation: buffers are built and parsed
// with explicit bounds-checked offsets, never by aliasing a struct over raw
// memory, so the package builds and tests on every platform.
package reparse

import (
	"encoding/binary"
	"errors"
	"unicode/utf16"
)

const (
	// MaximumBufferSize is MAXIMUM_REPARSE_DATA_BUFFER_SIZE: the hard upper
	// bound the OS places on an entire reparse descriptor.
	MaximumBufferSize = 16 * 1024

	// ReparseTagMountPoint is IO_REPARSE_TAG_MOUNT_POINT, the tag
	// identifying junctions (and volume mount points).
	ReparseTagMountPoint = 0xA0000003

	headerSize     = 8 // tag + data length + reserved
	descriptorSize = 8 // four uint16 offset/length fields

	// kernelPrefix routes the substitute name through the NT object
	// namespace.
	kernelPrefix = `\??\`

	kernelPrefixUnits = 4 // UTF-16 code units in kernelPrefix
	bytesPerUnit      = 2

	// MaxTargetLength is the longest target, in UTF-16 code units, that
	// fits the layout: the path buffer holds the kernel prefix, two copies
	// of the target, and two NUL terminators, and the whole descriptor must
	// stay within MaximumBufferSize. Derived once here; 4089 units.
	MaxTargetLength = ((MaximumBufferSize - headerSize - descriptorSize -
		kernelPrefixUnits*bytesPerUnit - 2*bytesPerUnit) / 2) / bytesPerUnit
)

var (
	// ErrTargetTooLong reports a target whose UTF-16 form exceeds
	// MaxTargetLength.
	ErrTargetTooLong = errors.New("junction target path is too long")

	// ErrInvalidDescriptor reports a buffer too short or internally
	// inconsistent to be a mount-point descriptor.
	ErrInvalidDescriptor = errors.New("malformed reparse descriptor buffer")

	// ErrNotMountPoint reports a well-formed reparse buffer carrying a tag
	// other than IO_REPARSE_TAG_MOUNT_POINT, such as a symlink's. Other tags
	// use different layouts, so their buffers must not be parsed as
	// junctions.
	ErrNotMountPoint = errors.New("reparse data does not carry the mount-point tag")
)

// TargetLength returns the length of target in UTF-16 code units, which is
// the unit the layout limit is expressed in.
func TargetLength(target string) int {
	return len(utf16.Encode([]rune(target)))
}

// EncodeMountPoint serializes a junction descriptor pointing at target.
// The target must be an absolute path without the \\?\ marker; the caller
// strips it, since the kernel prefix written here replaces its job.
// Returns ErrTargetTooLong when the target exceeds MaxTargetLength.
func EncodeMountPoint(target string) ([]byte, error) {
	target16 := utf16.Encode([]rune(target))
	if len(target16) > MaxTargetLength {
		return nil, ErrTargetTooLong
	}
	prefix16 := utf16.Encode([]rune(kernelPrefix))

	substituteLen := (len(prefix16) + len(target16)) * bytesPerUnit
	printOffset := substituteLen + bytesPerUnit // past the first NUL
	printLen := len(target16) * bytesPerUnit
	dataLen := descriptorSize + substituteLen + printLen + 2*bytesPerUnit

	buf := make([]byte, headerSize+dataLen)
	le := binary.LittleEndian

	le.PutUint32(buf[0:], ReparseTagMountPoint)
	le.PutUint16(buf[4:], uint16(dataLen))
	le.PutUint16(buf[6:], 0) // reserved

	le.PutUint16(buf[8:], 0) // substitute name offset
	le.PutUint16(buf[10:], uint16(substituteLen))
	le.PutUint16(buf[12:], uint16(printOffset))
	le.PutUint16(buf[14:], uint16(printLen))

	off := headerSize + descriptorSize
	off = putUTF16(buf, off, prefix16)
	off = putUTF16(buf, off, target16)
	off += bytesPerUnit // NUL terminator
	off = putUTF16(buf, off, target16)
	_ = off + bytesPerUnit // trailing NUL already zeroed

	return buf, nil
}

func putUTF16(buf []byte, off int, units []uint16) int {
	for _, u := range units {
		binary.LittleEndian.PutUint16(buf[off:], u)
		off += bytesPerUnit
	}
	return off
}

// DecodeMountPoint parses a descriptor buffer, as returned by
// FSCTL_GET_REPARSE_POINT, and returns the logical target: the substitute
// name with the kernel prefix stripped. Buffers tagged as anything other
// than a mount point are rejected with ErrNotMountPoint, and every offset
// is validated against the buffer length before it is dereferenced.
func DecodeMountPoint(buf []byte) (string, error) {
	if len(buf) < headerSize+descriptorSize {
		return "", ErrInvalidDescriptor
	}
	le := binary.LittleEndian

	if le.Uint32(buf[0:]) != ReparseTagMountPoint {
		return "", ErrNotMountPoint
	}

	substituteOffset := int(le.Uint16(buf[8:]))
	substituteLen := int(le.Uint16(buf[10:]))

	pathBuffer := buf[headerSize+descriptorSize:]
	if substituteLen%bytesPerUnit != 0 ||
		substituteOffset+substituteLen > len(pathBuffer) {
		return "", ErrInvalidDescriptor
	}
	if substituteLen/bytesPerUnit < kernelPrefixUnits {
		// Too short to carry the `\??\` prefix every junction starts with.
		return "", ErrInvalidDescriptor
	}

	name := pathBuffer[substituteOffset : substituteOffset+substituteLen]
	units := make([]uint16, 0, substituteLen/bytesPerUnit-kernelPrefixUnits)
	for off := kernelPrefixUnits * bytesPerUnit; off < len(name); off += bytesPerUnit {
		units = append(units, le.Uint16(name[off:]))
	}
	return string(utf16.Decode(units)), nil
}
