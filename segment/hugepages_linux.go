//go:build linux

package segment

// shmHugetlbFlag requests huge-page backing from shmget on platforms that
// support it. golang.org/x/sys/unix does not expose SHM_HUGETLB, so the
// kernel-defined value (linux/shm.h) is used directly.
const shmHugetlbFlag = 04000
