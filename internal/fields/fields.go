// Package fields holds the semantic wrapper types returned from a file's
// metadata: size, permissions, timestamps, and so on. None of these are raw
// integers — each tags the value with what it means, so the render layer
// never has to guess which column it's formatting.
package fields

// Type is a file's coarse kind, used both for coloring and for sort-by-type.
// Ordering matters: it's compared directly when SortField is FileType.
type Type int

const (
	TypeDirectory Type = iota
	TypeFile
	TypeLink
	TypePipe
	TypeSocket
	TypeCharDevice
	TypeBlockDevice
	TypeSpecial
)

func (t Type) IsRegularFile() bool { return t == TypeFile }

// Permissions is the twelve-bit Unix permission set: rwx for user, group,
// and other, plus setuid, setgid, and sticky.
type Permissions struct {
	UserRead, UserWrite, UserExecute    bool
	GroupRead, GroupWrite, GroupExecute bool
	OtherRead, OtherWrite, OtherExecute bool
	Setuid, Setgid, Sticky              bool
}

// PermissionsPlus fuses the file type, its permission bits, and whether it
// carries extended attributes, since the details table renders all three as
// a single column.
type PermissionsPlus struct {
	FileType    Type
	Permissions Permissions
	Xattrs      bool
}

// Links is a file's hard link count, flagged when it's a regular file with
// more than one link — a condition worth highlighting since it's unusual.
type Links struct {
	Count    uint64
	Multiple bool
}

type Inode uint64

// Blocks is the on-disk block count. BlocksNone marks an entry with no known
// count; the stat adapter fills in a count for every kind of entry, and the
// details renderer decides which kinds display it.
type Blocks struct {
	Value uint64
	Valid bool
}

func BlocksSome(n uint64) Blocks { return Blocks{Value: n, Valid: true} }

var BlocksNone = Blocks{}

type UserID uint32
type GroupID uint32

// DeviceIDs is the major/minor pair printed in the size column for block
// and character device entries.
type DeviceIDs struct {
	Major, Minor uint8
}

// Size is a file's size in bytes, or the absence of one (directories and
// links don't have a meaningful size), or a pair of device numbers for
// block/char device entries which reuse the size column.
type Size struct {
	kind      sizeKind
	bytes     uint64
	deviceIDs DeviceIDs
}

type sizeKind int

const (
	sizeKindNone sizeKind = iota
	sizeKindBytes
	sizeKindDevice
)

func SizeOf(bytes uint64) Size   { return Size{kind: sizeKindBytes, bytes: bytes} }
func SizeNone() Size             { return Size{kind: sizeKindNone} }
func SizeDeviceIDs(d DeviceIDs) Size { return Size{kind: sizeKindDevice, deviceIDs: d} }

func (s Size) IsNone() bool            { return s.kind == sizeKindNone }
func (s Size) IsDeviceIDs() bool       { return s.kind == sizeKindDevice }
func (s Size) Bytes() (uint64, bool)   { return s.bytes, s.kind == sizeKindBytes }
func (s Size) DeviceIDsValue() DeviceIDs { return s.deviceIDs }

// Time is a Unix timestamp with nanosecond precision. It's totally ordered:
// seconds first, then nanoseconds break ties.
type Time struct {
	Seconds     int64
	Nanoseconds int64
}

func (t Time) Compare(o Time) int {
	if t.Seconds != o.Seconds {
		if t.Seconds < o.Seconds {
			return -1
		}
		return 1
	}
	switch {
	case t.Nanoseconds < o.Nanoseconds:
		return -1
	case t.Nanoseconds > o.Nanoseconds:
		return 1
	default:
		return 0
	}
}

// GitStatus is one half (staged or unstaged) of a file's git state.
type GitStatus int

const (
	GitNotModified GitStatus = iota
	GitNew
	GitModified
	GitDeleted
	GitRenamed
	GitTypeChange
	GitIgnored
	GitConflicted
)

// Fold combines this file's status with a descendant's, for rolling a
// directory's git status up from its children: any non-trivial status
// dominates NotModified, and the first one encountered wins otherwise
// (matching the "a|b" fold described by the git provider contract).
func (g GitStatus) Fold(other GitStatus) GitStatus {
	if g == GitNotModified {
		return other
	}
	return g
}

// Git is the pair of staged/unstaged statuses exa tracks per file.
type Git struct {
	Staged, Unstaged GitStatus
}
