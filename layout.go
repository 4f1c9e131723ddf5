package iso8583

import "sort"

// sectionKind identifies one of the three top-level wire sections a Layout
// orders: MTI, the optional Header, and Bitmap+Data (fused, per the design
// note that a bitmap/data split would break framing).
type sectionKind int

const (
	sectionMTI sectionKind = iota
	sectionHeader
	sectionBitmapData
)

// Layout controls the wire-level shape of a Family's messages: whether a
// header section is present, how the bitmap is transcribed, and the
// serialize/parse order of the three sections. Section order is a
// permutation expressed as independent integer ranks — MTIPosition,
// HeaderPosition, BitmapDataPosition — sorted ascending, matching the
// layout view's "ordering as a permutation" option set. The default
// order is MTI, then Header, then Bitmap+Data.
type Layout struct {
	HasHeader  bool
	BitmapMode BitmapMode

	MTIPosition        int
	HeaderPosition     int
	BitmapDataPosition int
}

// DefaultLayout returns a Layout with no header section, a hex-encoded
// bitmap, and the default MTI-before-header-before-bitmap/data order.
func DefaultLayout() *Layout {
	return &Layout{
		HasHeader:          false,
		BitmapMode:         BitmapHex,
		MTIPosition:        0,
		HeaderPosition:     1,
		BitmapDataPosition: 2,
	}
}

// BinaryLayout returns a Layout with no header section, a raw-binary
// bitmap, and the default section order, matching schemes that transmit
// the bitmap as 8/16 raw bytes rather than hex digits.
func BinaryLayout() *Layout {
	return &Layout{
		HasHeader:          false,
		BitmapMode:         BitmapBinary,
		MTIPosition:        0,
		HeaderPosition:     1,
		BitmapDataPosition: 2,
	}
}

// orderedSections returns the sections this Layout emits/parses, sorted
// ascending by rank. The Header section is omitted entirely when
// HasHeader is false, regardless of its configured rank.
func (l *Layout) orderedSections() []sectionKind {
	type ranked struct {
		kind sectionKind
		rank int
	}
	sections := []ranked{{sectionMTI, l.MTIPosition}}
	if l.HasHeader {
		sections = append(sections, ranked{sectionHeader, l.HeaderPosition})
	}
	sections = append(sections, ranked{sectionBitmapData, l.BitmapDataPosition})

	sort.SliceStable(sections, func(i, j int) bool { return sections[i].rank < sections[j].rank })

	out := make([]sectionKind, len(sections))
	for i, s := range sections {
		out[i] = s.kind
	}
	return out
}
