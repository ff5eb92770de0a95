//go:build freebsd

package probe

import "golang.org/x/sys/unix"

func birthtime(path string) int64 {
	var st unix.Stat_t

	if err := unix.Lstat(path, &st); err != nil {
		return 0
	}

	ts := st.Birthtim
	if ts.Sec == 0 && ts.Nsec == 0 {
		return 0
	}

	return int64(ts.Sec)*1e9 + int64(ts.Nsec)
}
