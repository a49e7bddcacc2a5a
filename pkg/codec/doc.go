// Package codec provides the generic single-record I/O protocol and the
// field-access strategies shared by every plot table record type.
//
// The record types themselves live in the phase1 and phase2 packages. Each of
// them declares a fixed encoded size and knows how to encode itself into, and
// decode itself from, a buffer of exactly that size. This package only moves
// one such buffer to or from a stream at a time.
//
// # Record Contract
//
// A record type implements:
//
//	DiskSize() int          // fixed encoded size, never varies at runtime
//	Encode(buf []byte) int  // fills buf[:DiskSize()], returns bytes produced
//	Decode(buf []byte) int  // reads buf[:DiskSize()], returns bytes consumed
//
// There is no framing at this layer: no header, no length prefix, no
// checksum. A table file is nothing more than records laid end to end.
//
// # Usage
//
//	var e phase1.Entry2
//	e.Y, e.Pos, e.Off = y, pos, off
//	if err := codec.WriteEntry(w, &e); err != nil {
//	    return err
//	}
//
//	var got phase1.Entry2
//	if err := codec.ReadEntry(r, &got); err != nil {
//	    if errors.Is(err, io.EOF) {
//	        // no more records
//	    }
//	    return err
//	}
//
// # Field Access
//
// GetY, GetPos, GetMeta and SetMeta are generic over small interfaces so a sort
// or bucketing engine can be parameterised with, for example,
// codec.GetY[*phase1.Entry1] without knowing anything else about the type.
//
// # Error Handling
//
//   - Short reads and writes wrap ErrShortRead / ErrShortWrite; end of file
//     is reported as a short read that also wraps io.EOF.
//   - Metadata of the wrong width wraps ErrMetaSizeMismatch.
//   - Field ranges are not checked on encode. Build with -tags codecassert to
//     make WriteEntry panic on records whose Validate method fails.
//
// # Thread Safety
//
// All functions are stateless. Concurrent use of one stream handle must be
// coordinated by the caller.
package codec
