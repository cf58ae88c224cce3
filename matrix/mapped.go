// SPDX-License-Identifier: MIT

// Package matrix: file-backed Fixed container.
//
// File layout (little-endian):
//
//	offset  size  field
//	0       8     magic "MAFSMTX1"
//	8       8     rows        (int64)
//	16      8     cols        (int64)
//	24      8     element size in bytes (int64)
//	32      ...   rows*cols raw elements, in the storage order of the owning Matrix
//
// The element area starts on an 8-byte boundary of a page-aligned mapping, so
// every Number kind can be viewed in place without copying.
package matrix

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/bits"
	"os"
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

const (
	mappedMagic      = "MAFSMTX1"
	mappedHeaderSize = 32
)

// Mapped is a Fixed container whose elements live in a memory-mapped file.
// Writes through Data() land in the page cache; Flush forces them to disk.
// A Mapped container must be closed exactly once.
type Mapped[T Number] struct {
	file       *os.File
	mm         mmap.MMap
	rows, cols int
	data       []T
	swap       []T
}

// CreateMapped creates (or truncates) path and maps a rows×cols zeroed matrix.
//
// Errors:
//   - ErrInvalidDimensions if rows < 0 or cols < 0.
//   - any *os.PathError from creating, sizing or mapping the file.
//
// Complexity: O(1) besides the kernel's zero-fill of the file.
func CreateMapped[T Number](path string, rows, cols int) (*Mapped[T], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("CreateMapped", ErrInvalidDimensions)
	}
	elem := elemSize[T]()

	f, err := os.Create(path)
	if err != nil {
		return nil, matrixErrorf("CreateMapped", err)
	}
	if err = f.Truncate(int64(mappedHeaderSize + rows*cols*elem)); err != nil {
		_ = f.Close()
		return nil, matrixErrorf("CreateMapped", err)
	}
	mm, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		_ = f.Close()
		return nil, matrixErrorf("CreateMapped", err)
	}

	copy(mm[0:8], mappedMagic)
	binary.LittleEndian.PutUint64(mm[8:16], uint64(rows))
	binary.LittleEndian.PutUint64(mm[16:24], uint64(cols))
	binary.LittleEndian.PutUint64(mm[24:32], uint64(elem))

	m := newMapped[T](f, mm, rows, cols)
	if err = m.Flush(); err != nil {
		_ = m.Close()
		return nil, matrixErrorf("CreateMapped", err)
	}

	return m, nil
}

// OpenMapped maps an existing file written by CreateMapped.
//
// Errors:
//   - ErrCorruptMapping if the file is shorter than the header, the magic
//     differs, the element size differs from T, or the file size does not
//     match rows*cols elements.
//   - any *os.PathError from opening or mapping the file.
func OpenMapped[T Number](path string) (*Mapped[T], error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, matrixErrorf("OpenMapped", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, matrixErrorf("OpenMapped", err)
	}
	if info.Size() < mappedHeaderSize {
		_ = f.Close()
		return nil, matrixErrorf("OpenMapped: file too small", ErrCorruptMapping)
	}

	mm, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		_ = f.Close()
		return nil, matrixErrorf("OpenMapped", err)
	}
	rows, cols, err := validateMappedHeader[T](mm, info.Size())
	if err != nil {
		_ = mm.Unmap()
		_ = f.Close()
		return nil, matrixErrorf("OpenMapped", err)
	}

	return newMapped[T](f, mm, rows, cols), nil
}

// validateMappedHeader decodes the header and checks it against T and the file size.
func validateMappedHeader[T Number](mm mmap.MMap, fileSize int64) (rows, cols int, err error) {
	if string(mm[0:8]) != mappedMagic {
		return 0, 0, fmt.Errorf("%w: bad magic", ErrCorruptMapping)
	}
	r := binary.LittleEndian.Uint64(mm[8:16])
	c := binary.LittleEndian.Uint64(mm[16:24])
	e := binary.LittleEndian.Uint64(mm[24:32])
	if e != uint64(elemSize[T]()) {
		return 0, 0, fmt.Errorf("%w: element size mismatch", ErrCorruptMapping)
	}
	if r > math.MaxInt64 || c > math.MaxInt64 {
		return 0, 0, fmt.Errorf("%w: negative dimensions", ErrCorruptMapping)
	}
	hi1, rc := bits.Mul64(r, c)
	hi2, n := bits.Mul64(rc, e)
	if hi1 != 0 || hi2 != 0 || n > math.MaxInt-mappedHeaderSize || r > math.MaxInt || c > math.MaxInt {
		return 0, 0, fmt.Errorf("%w: dimensions overflow", ErrCorruptMapping)
	}
	if uint64(fileSize) != mappedHeaderSize+n {
		return 0, 0, fmt.Errorf("%w: file size mismatch", ErrCorruptMapping)
	}

	return int(r), int(c), nil
}

func newMapped[T Number](f *os.File, mm mmap.MMap, rows, cols int) *Mapped[T] {
	m := &Mapped[T]{file: f, mm: mm, rows: rows, cols: cols}
	if n := rows * cols; n > 0 {
		m.data = unsafe.Slice((*T)(unsafe.Pointer(&mm[mappedHeaderSize])), n)
		m.swap = make([]T, maxInt(rows, cols))
	}

	return m
}

// elemSize returns the in-memory size of T in bytes.
func elemSize[T Number]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Size returns rows*cols.
func (m *Mapped[T]) Size() int { return m.rows * m.cols }

// RowCount returns the number of rows.
func (m *Mapped[T]) RowCount() int { return m.rows }

// ColCount returns the number of columns.
func (m *Mapped[T]) ColCount() int { return m.cols }

// Data returns the mapped element area.
func (m *Mapped[T]) Data() []T { return m.data }

// Swap returns the in-memory scratch buffer.
func (m *Mapped[T]) Swap() []T { return m.swap }

// Flush synchronizes the mapping with the underlying file.
func (m *Mapped[T]) Flush() error {
	if m.mm == nil {
		return nil
	}

	return m.mm.Flush()
}

// Close flushes, unmaps and closes the file. Data() is empty afterwards.
func (m *Mapped[T]) Close() error {
	if m.mm == nil {
		return nil
	}
	err := errors.Join(m.mm.Flush(), m.mm.Unmap(), m.file.Close())
	m.mm, m.file, m.data = nil, nil, nil
	m.rows, m.cols = 0, 0

	return err
}

var _ Container[float64] = (*Mapped[float64])(nil)
