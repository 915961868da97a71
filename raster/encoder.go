package raster

import (
	"errors"
	"fmt"
	"io"
)

// Directives understood by the controller's raster mode.
const (
	DirectiveScalePrefix = "G8 P"
	DirectiveFeed        = "G8 X5"
	DirectiveRowReset    = "G8 N0"
	DirectiveDataPrefix  = "G8 D"
	DirectiveHome        = "G0X0Y0"
)

var dataPrefix = []byte(DirectiveDataPrefix)

// Config controls how a plane is encoded.
type Config struct {
	TargetWidthMM float64
	Invert        bool
	// RecordLength is the record cadence; zero means DefaultRecordLength.
	RecordLength int
}

// Validate checks the parts of the configuration that do not depend on
// the image.
func (c Config) Validate() error {
	if err := checkTargetWidth(c.TargetWidthMM); err != nil {
		return err
	}
	if c.RecordLength < 0 {
		return &ConfigError{Field: "record length", Msg: fmt.Sprintf("must be positive, got %d", c.RecordLength)}
	}
	return nil
}

// Stats summarizes one encoding run.
type Stats struct {
	Scale     Scale
	Pixels    int
	Records   int
	RowResets int
	Lines     int
}

// Encoder writes the directive stream for a plane.
type Encoder struct {
	out   *LineWriter
	stats Stats
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{out: NewLineWriter(w)}
}

// Encode writes the complete directive stream for p: the scale and
// positioning header, the packed raster rows and the return to origin.
// Configuration problems are reported before anything is written.
func (e *Encoder) Encode(p *Plane, cfg Config) (Stats, error) {
	if err := cfg.Validate(); err != nil {
		return Stats{}, err
	}
	scale, err := ComputeScale(cfg.TargetWidthMM, p.Width, p.Height)
	if err != nil {
		return Stats{}, err
	}
	packer, err := NewPacker(p.Width, cfg.RecordLength, e)
	if err != nil {
		return Stats{}, err
	}
	e.stats = Stats{Scale: scale}

	if err := e.header(scale); err != nil {
		return e.stats, e.outputError(err)
	}
	if err := packer.Pack(p.Bits(cfg.Invert)); err != nil {
		return e.stats, e.outputError(err)
	}
	if err := e.out.WriteString(DirectiveHome); err != nil {
		return e.stats, e.outputError(err)
	}
	if err := e.out.Flush(); err != nil {
		return e.stats, e.outputError(err)
	}
	e.stats.Pixels = packer.Count()
	e.stats.Lines = e.out.Lines()
	return e.stats, nil
}

func (e *Encoder) header(scale Scale) error {
	if err := e.out.WriteString(fmt.Sprintf("%s%.4f", DirectiveScalePrefix, scale.DotSizeMM)); err != nil {
		return err
	}
	if err := e.out.WriteString(DirectiveFeed); err != nil {
		return err
	}
	return e.out.WriteString(DirectiveRowReset)
}

// Record implements Sink.
func (e *Encoder) Record(bits []byte) error {
	e.stats.Records++
	return e.out.WriteLine(dataPrefix, bits)
}

// RowEnd implements Sink.
func (e *Encoder) RowEnd() error {
	e.stats.RowResets++
	return e.out.WriteString(DirectiveRowReset)
}

func (e *Encoder) outputError(err error) error {
	var oe *OutputError
	if errors.As(err, &oe) {
		return err
	}
	return &OutputError{Err: err}
}

// Encode writes the directive stream for p to w.
func Encode(w io.Writer, p *Plane, cfg Config) (Stats, error) {
	return NewEncoder(w).Encode(p, cfg)
}
