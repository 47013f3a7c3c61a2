//go:build unix

// Package mmap maps a file of fixed-width signed 64-bit integers into memory
// as a shared, writable []int64. The mapping is MAP_SHARED: writes performed
// by cooperating processes that map the same file are visible to each other
// through the common page cache, which is what lets the sorter fan work out
// to child processes without any other IPC.
/*
 * Copyright (c) 2026, the parsort authors. All rights reserved.
 */
package mmap

import (
	"os"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const ElemSize = 8

// Array is a live mapping. Data aliases the mapped region; it becomes invalid
// after Unmap.
type Array struct {
	Data []int64
	raw  []byte
	fh   *os.File
}

// Map opens fname read-write and maps its entire contents. The file size must
// be a positive multiple of ElemSize.
func Map(fname string) (*Array, error) {
	fh, err := os.OpenFile(fname, os.O_RDWR, 0)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	fi, err := fh.Stat()
	if err != nil {
		fh.Close()
		return nil, errors.Wrap(err, "stat")
	}
	size := fi.Size()
	if size == 0 || size%ElemSize != 0 {
		fh.Close()
		return nil, errors.Errorf("%s: size %d is not a positive multiple of %d", fname, size, ElemSize)
	}
	raw, err := unix.Mmap(int(fh.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		fh.Close()
		return nil, errors.Wrap(err, "mmap")
	}
	arr := &Array{
		Data: unsafe.Slice((*int64)(unsafe.Pointer(&raw[0])), size/ElemSize),
		raw:  raw,
		fh:   fh,
	}
	return arr, nil
}

// Sync flushes dirty pages back to the file (MS_SYNC).
func (a *Array) Sync() error {
	return errors.Wrap(unix.Msync(a.raw, unix.MS_SYNC), "msync")
}

// Unmap releases the mapping and closes the file. Data must not be used after.
func (a *Array) Unmap() error {
	a.Data = nil
	err := errors.Wrap(unix.Munmap(a.raw), "munmap")
	a.raw = nil
	if cerr := a.fh.Close(); err == nil {
		err = errors.Wrap(cerr, "close")
	}
	return err
}
