//go:build !mafs_accelerated

package opmode

// Selected is the backend used by For and the package-level functions.
const Selected = Basic
