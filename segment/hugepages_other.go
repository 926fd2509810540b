//go:build darwin || freebsd

package segment

// shmHugetlbFlag is 0 on platforms whose SysV shmget has no huge-page
// flag; Create silently treats HugePages as best-effort there.
const shmHugetlbFlag = 0
