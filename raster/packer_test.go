package raster

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// eventSink records packer output as "D<bits>" and "N" entries.
type eventSink struct {
	events []string
	fail   error
}

func (s *eventSink) Record(bits []byte) error {
	s.events = append(s.events, "D"+string(bits))
	return s.fail
}

func (s *eventSink) RowEnd() error {
	s.events = append(s.events, "N")
	return s.fail
}

func (s *eventSink) rows() []string {
	var rows []string
	var cur strings.Builder
	for _, ev := range s.events {
		if ev == "N" {
			rows = append(rows, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteString(ev[1:])
	}
	return rows
}

func (s *eventSink) recordLengths() []int {
	var lens []int
	for _, ev := range s.events {
		if ev != "N" {
			lens = append(lens, len(ev)-1)
		}
	}
	return lens
}

func testPlane(t *testing.T, width, height int) *Plane {
	t.Helper()
	pix := make([]uint8, width*height)
	for i := range pix {
		x, y := i%width, i/width
		pix[i] = uint8((x*37 + y*91 + x*y) % 256)
	}
	p, err := NewPlane(width, height, pix)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestPackerSmall(t *testing.T) {
	p, err := NewPlane(4, 2, []uint8{10, 200, 10, 200, 200, 10, 200, 10})
	if err != nil {
		t.Fatal(err)
	}
	sink := &eventSink{}
	packer, err := NewPacker(p.Width, 0, sink)
	if err != nil {
		t.Fatal(err)
	}
	if err := packer.Pack(p.Bits(false)); err != nil {
		t.Fatal(err)
	}
	want := []string{"D1010", "N", "D0101", "N", "N"}
	if d := cmp.Diff(want, sink.events); d != "" {
		t.Errorf("events mismatch (-want +got):\n%s", d)
	}
}

func TestPackerCadence(t *testing.T) {
	p := testPlane(t, 40, 3)
	sink := &eventSink{}
	packer, err := NewPacker(p.Width, DefaultRecordLength, sink)
	if err != nil {
		t.Fatal(err)
	}
	if err := packer.Pack(p.Bits(false)); err != nil {
		t.Fatal(err)
	}
	// The pixel counter spans rows, so length flushes fall at 34, 69, 104.
	want := []int{34, 6, 29, 11, 24, 16}
	if d := cmp.Diff(want, sink.recordLengths()); d != "" {
		t.Errorf("record lengths (-want +got):\n%s", d)
	}
}

func TestPackerRowEndAfterLengthFlush(t *testing.T) {
	p := testPlane(t, 34, 1)
	sink := &eventSink{}
	packer, err := NewPacker(p.Width, 0, sink)
	if err != nil {
		t.Fatal(err)
	}
	if err := packer.Pack(p.Bits(false)); err != nil {
		t.Fatal(err)
	}
	if len(sink.events) != 4 {
		t.Fatalf("got %d events, want 4: %q", len(sink.events), sink.events)
	}
	if got := sink.events[1]; got != "D" {
		t.Errorf("row boundary after a length flush emitted %q, want empty record", got)
	}
	if sink.events[2] != "N" || sink.events[3] != "N" {
		t.Errorf("want two row ends, got %q", sink.events[2:])
	}
}

func TestPackerProperties(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1}, {1, 50}, {33, 2}, {34, 3}, {35, 4}, {36, 5}, {70, 2}, {101, 7}, {640, 3},
	}
	for _, sz := range sizes {
		for _, invert := range []bool{false, true} {
			p := testPlane(t, sz.w, sz.h)
			sink := &eventSink{}
			packer, err := NewPacker(p.Width, 0, sink)
			if err != nil {
				t.Fatal(err)
			}
			if err := packer.Pack(p.Bits(invert)); err != nil {
				t.Fatal(err)
			}

			rows := sink.rows()
			if len(rows) != sz.h+1 {
				t.Fatalf("%dx%d: %d row ends, want %d", sz.w, sz.h, len(rows), sz.h+1)
			}
			if rows[sz.h] != "" {
				t.Errorf("%dx%d: data after the last row: %q", sz.w, sz.h, rows[sz.h])
			}
			for y := 0; y < sz.h; y++ {
				var want strings.Builder
				for x := 0; x < sz.w; x++ {
					want.WriteByte(Binarize(p.At(x, y), invert))
				}
				if rows[y] != want.String() {
					t.Errorf("%dx%d row %d: got %q, want %q", sz.w, sz.h, y, rows[y], want.String())
				}
			}

			lens := sink.recordLengths()
			for i, n := range lens {
				if n > DefaultRecordLength {
					t.Errorf("%dx%d: record %d has %d bits", sz.w, sz.h, i, n)
				}
			}
			if sz.w >= 34 && lens[0] != 34 {
				t.Errorf("%dx%d: first record has %d bits, want 34", sz.w, sz.h, lens[0])
			}
			if packer.Count() != sz.w*sz.h {
				t.Errorf("%dx%d: counted %d pixels", sz.w, sz.h, packer.Count())
			}
		}
	}
}

func TestPackerRecordLength(t *testing.T) {
	p := testPlane(t, 20, 2)
	sink := &eventSink{}
	packer, err := NewPacker(p.Width, 8, sink)
	if err != nil {
		t.Fatal(err)
	}
	if err := packer.Pack(p.Bits(false)); err != nil {
		t.Fatal(err)
	}
	want := []int{7, 8, 5, 3, 8, 8, 1}
	if d := cmp.Diff(want, sink.recordLengths()); d != "" {
		t.Errorf("record lengths (-want +got):\n%s", d)
	}
}

func TestPackerSinkError(t *testing.T) {
	boom := errors.New("boom")
	p := testPlane(t, 4, 2)
	packer, err := NewPacker(p.Width, 0, &eventSink{fail: boom})
	if err != nil {
		t.Fatal(err)
	}
	if err := packer.Pack(p.Bits(false)); !errors.Is(err, boom) {
		t.Errorf("got %v, want %v", err, boom)
	}
}

func TestNewPackerErrors(t *testing.T) {
	var ce *ConfigError
	if _, err := NewPacker(0, 0, &eventSink{}); !errors.As(err, &ce) {
		t.Errorf("zero width: got %v", err)
	}
	if _, err := NewPacker(4, -1, &eventSink{}); !errors.As(err, &ce) {
		t.Errorf("negative record length: got %v", err)
	}
}
