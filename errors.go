package pixconv

import "errors"

// Registry and conversion errors.
var (
	// ErrUnknownFormat is returned by ParseFormat for an unrecognized name.
	ErrUnknownFormat = errors.New("pixconv: unknown format")

	// ErrInvalidFormat is returned when a Format value is out of range.
	ErrInvalidFormat = errors.New("pixconv: invalid format")

	// ErrNilKernel is returned when registering a nil kernel.
	ErrNilKernel = errors.New("pixconv: nil kernel")

	// ErrDuplicate is returned when a (source, destination) pair is already
	// registered.
	ErrDuplicate = errors.New("pixconv: conversion already registered")

	// ErrNoConversion is returned by Lookup when no conversion is registered
	// for the pair.
	ErrNoConversion = errors.New("pixconv: no conversion registered")

	// ErrLayoutMismatch is returned when an alias names formats whose
	// storage layouts differ from the conversion it reuses.
	ErrLayoutMismatch = errors.New("pixconv: formats do not share a layout")

	// ErrChainMismatch is returned by Chain when the first conversion's
	// destination is not the second one's source.
	ErrChainMismatch = errors.New("pixconv: chained formats do not match")

	// ErrBufferTooSmall is returned when a source or destination buffer
	// holds fewer bytes than the requested samples need.
	ErrBufferTooSmall = errors.New("pixconv: buffer too small")

	// ErrNegativeCount is returned for a negative sample count.
	ErrNegativeCount = errors.New("pixconv: negative sample count")

	// ErrFormatMismatch is returned when a Buffer's format does not match
	// what the operation expects.
	ErrFormatMismatch = errors.New("pixconv: buffer format mismatch")

	// ErrEmptyImage is returned by FromImage for an image with no pixels.
	ErrEmptyImage = errors.New("pixconv: empty image")
)
