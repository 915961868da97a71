package raster

import (
	"fmt"
	"iter"
)

// DefaultRecordLength is the number of pixels per data record the
// controller firmware was written against.
const DefaultRecordLength = 35

// Sink receives the framed raster stream from a Packer.
type Sink interface {
	// Record is called with the bits of one data record. The slice is
	// only valid for the duration of the call and may be empty when a
	// row ends right after a length flush.
	Record(bits []byte) error
	// RowEnd is called at every row boundary and once after the last row.
	RowEnd() error
}

// Packer splits a bit stream into length-bounded records and row
// boundaries.
//
// The record cap is driven by a pixel counter that runs over the whole
// image and is never reset at row ends: a record is flushed whenever
// count%recordLength == recordLength-1. The first record of an image is
// therefore one pixel shorter than the ones that follow it, and record
// boundaries drift relative to the start of each row. The controller
// firmware accepts this cadence, so it is kept as is.
type Packer struct {
	width        int
	recordLength int
	sink         Sink

	column int
	count  int
	record []byte
}

// NewPacker returns a packer for rows of width pixels. A recordLength of
// zero selects DefaultRecordLength.
func NewPacker(width, recordLength int, sink Sink) (*Packer, error) {
	if width <= 0 {
		return nil, &ConfigError{Field: "width", Msg: fmt.Sprintf("image width must be positive, got %d pixels", width)}
	}
	if recordLength == 0 {
		recordLength = DefaultRecordLength
	}
	if recordLength < 0 {
		return nil, &ConfigError{Field: "record length", Msg: fmt.Sprintf("must be positive, got %d", recordLength)}
	}
	return &Packer{
		width:        width,
		recordLength: recordLength,
		sink:         sink,
		record:       make([]byte, 0, recordLength),
	}, nil
}

// Push adds one bit to the stream.
func (p *Packer) Push(bit byte) error {
	p.record = append(p.record, bit)
	p.column++
	p.count++

	if p.count%p.recordLength == p.recordLength-1 {
		if err := p.flush(); err != nil {
			return err
		}
	}

	// A row boundary always flushes, even when the length check above
	// has just emptied the record.
	if p.column == p.width {
		if err := p.flush(); err != nil {
			return err
		}
		if err := p.sink.RowEnd(); err != nil {
			return err
		}
		p.column = 0
	}
	return nil
}

// Close flushes any partial record and terminates the raster block.
func (p *Packer) Close() error {
	if len(p.record) > 0 {
		if err := p.flush(); err != nil {
			return err
		}
	}
	return p.sink.RowEnd()
}

// Pack pushes every bit of bits and closes the packer.
func (p *Packer) Pack(bits iter.Seq[byte]) error {
	for bit := range bits {
		if err := p.Push(bit); err != nil {
			return err
		}
	}
	return p.Close()
}

// Count returns the number of pixels pushed so far.
func (p *Packer) Count() int {
	return p.count
}

func (p *Packer) flush() error {
	err := p.sink.Record(p.record)
	p.record = p.record[:0]
	return err
}
