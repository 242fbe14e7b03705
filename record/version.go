package record

import (
	"github.com/blang/semver"

	"github.com/greenbridge-ag/go-pcmi/pcmierr"
)

// Version is the controller's firmware version (PCMI_SEND_VERSION/
// PCMI_VERSION_DATA, 0x9F/0xA0), a CR-delimited record with no RLI.
// Semver is used for comparison since raw-field comparison is ambiguous and
// rules unspecified; this mirrors kryptco-kr's use of blang/semver for
// comparable version values.
type Version struct {
	Header Header

	Major, Minor byte
	Build        uint16

	Semver semver.Version
}

// IsAtLeast reports whether v is the same as or newer than other, so
// callers can gate format-dependent behavior on firmware version
// independent of a given record's own record_format byte.
func (v Version) IsAtLeast(other semver.Version) bool {
	return v.Semver.GTE(other)
}

// DecodeVersion decodes a firmware version record.
func DecodeVersion(payload string) (Version, error) {
	h, cur, err := ParseHeader(payload)
	if err != nil {
		return Version{}, err
	}

	major, err := cur.ReadByte()
	if err != nil {
		return Version{}, &pcmierr.ProtocolError{Reason: "reading version major: " + err.Error()}
	}
	minor, err := cur.ReadByte()
	if err != nil {
		return Version{}, &pcmierr.ProtocolError{Reason: "reading version minor: " + err.Error()}
	}
	build, err := cur.ReadUint16()
	if err != nil {
		return Version{}, &pcmierr.ProtocolError{Reason: "reading version build: " + err.Error()}
	}

	return Version{
		Header: h,
		Major:  major,
		Minor:  minor,
		Build:  build,
		Semver: semver.Version{Major: uint64(major), Minor: uint64(minor), Patch: uint64(build)},
	}, nil
}
