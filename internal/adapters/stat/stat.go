// Package stat wraps lstat/stat/readdir/readlink/xattr syscalls behind a
// small interface that returns this module's own field types instead of
// os.FileInfo, since fields like nanosecond timestamps, block count, and
// device major/minor aren't exposed by the standard library on their own.
package stat

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/dylanreedx/exa-go/internal/fields"
)

// Info is everything fsmodel.BuildFile needs from a single lstat/stat call.
type Info struct {
	PermissionsPlus fields.PermissionsPlus
	Size            fields.Size
	Links           fields.Links
	Inode           fields.Inode
	Blocks          fields.Blocks
	User            fields.UserID
	Group           fields.GroupID
	Modified, Accessed, Created fields.Time
}

// ReadDirNames lists a directory's immediate entry names in the by-name
// order os.ReadDir returns (the filter/sort stage then imposes whatever
// order the user asked for).
func ReadDirNames(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", path, err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

func Lstat(path string) (Info, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return Info{}, fmt.Errorf("lstat %s: %w", path, err)
	}
	return infoFromStat(&st, path), nil
}

func Stat(path string) (Info, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Info{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return infoFromStat(&st, path), nil
}

func Readlink(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", fmt.Errorf("readlink %s: %w", path, err)
	}
	return target, nil
}

func infoFromStat(st *unix.Stat_t, path string) Info {
	ft := fileType(st.Mode)
	perms := permissionsFromMode(st.Mode)

	var size fields.Size
	switch ft {
	case fields.TypeDirectory, fields.TypeLink:
		size = fields.SizeNone()
	case fields.TypeBlockDevice, fields.TypeCharDevice:
		major := uint8((st.Rdev >> 8) & 0xff)
		minor := uint8(st.Rdev & 0xff)
		size = fields.SizeDeviceIDs(fields.DeviceIDs{Major: major, Minor: minor})
	default:
		size = fields.SizeOf(uint64(st.Size))
	}

	return Info{
		PermissionsPlus: fields.PermissionsPlus{
			FileType:    ft,
			Permissions: perms,
			Xattrs:      hasXattrs(path),
		},
		Size:     size,
		Links:    fields.Links{Count: uint64(st.Nlink), Multiple: ft == fields.TypeFile && st.Nlink > 1},
		Inode:    fields.Inode(st.Ino),
		Blocks:   fields.BlocksSome(uint64(st.Blocks)),
		User:     fields.UserID(st.Uid),
		Group:    fields.GroupID(st.Gid),
		Modified: fields.Time{Seconds: int64(st.Mtim.Sec), Nanoseconds: int64(st.Mtim.Nsec)},
		Accessed: fields.Time{Seconds: int64(st.Atim.Sec), Nanoseconds: int64(st.Atim.Nsec)},
		Created:  fields.Time{Seconds: int64(st.Ctim.Sec), Nanoseconds: int64(st.Ctim.Nsec)},
	}
}

func fileType(mode uint32) fields.Type {
	switch mode & syscall.S_IFMT {
	case syscall.S_IFDIR:
		return fields.TypeDirectory
	case syscall.S_IFLNK:
		return fields.TypeLink
	case syscall.S_IFIFO:
		return fields.TypePipe
	case syscall.S_IFSOCK:
		return fields.TypeSocket
	case syscall.S_IFCHR:
		return fields.TypeCharDevice
	case syscall.S_IFBLK:
		return fields.TypeBlockDevice
	case syscall.S_IFREG:
		return fields.TypeFile
	default:
		return fields.TypeSpecial
	}
}

func permissionsFromMode(mode uint32) fields.Permissions {
	return fields.Permissions{
		UserRead:    mode&unix.S_IRUSR != 0,
		UserWrite:   mode&unix.S_IWUSR != 0,
		UserExecute: mode&unix.S_IXUSR != 0,
		GroupRead:   mode&unix.S_IRGRP != 0,
		GroupWrite:  mode&unix.S_IWGRP != 0,
		GroupExecute: mode&unix.S_IXGRP != 0,
		OtherRead:   mode&unix.S_IROTH != 0,
		OtherWrite:  mode&unix.S_IWOTH != 0,
		OtherExecute: mode&unix.S_IXOTH != 0,
		Setuid:      mode&unix.S_ISUID != 0,
		Setgid:      mode&unix.S_ISGID != 0,
		Sticky:      mode&unix.S_ISVTX != 0,
	}
}

// hasXattrs reports whether the file carries any extended attributes, via
// a zero-size Llistxattr probe (returns the buffer length needed, 0 if
// there are none; ENOTSUP/EOPNOTSUPP filesystems just report false).
func hasXattrs(path string) bool {
	n, err := unix.Llistxattr(path, nil)
	return err == nil && n > 0
}
