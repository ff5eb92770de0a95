//go:build linux

package probe

import "golang.org/x/sys/unix"

func birthtime(path string) int64 {
	var stx unix.Statx_t

	// AT_SYMLINK_NOFOLLOW: probe the link itself. STATX_BTIME is a hint,
	// not a demand; the kernel reports what it actually filled via Mask.
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME, &stx)
	if err != nil || stx.Mask&unix.STATX_BTIME == 0 {
		return 0
	}

	return stx.Btime.Sec*1e9 + int64(stx.Btime.Nsec)
}
