package writer

import (
	"fmt"

	"github.com/brineflow/cvector/endian"
	"github.com/brineflow/cvector/errs"
	"github.com/brineflow/cvector/section"
)

var wireEngine = endian.GetLittleEndianEngine()

// currentPacketSize estimates the size a packet would have if assembled
// right now: header, per-bytestream length table, and everything currently
// queued in every encoder (§4.2).
func (w *Writer) currentPacketSize() int {
	size := section.DataPacketHeaderSize + len(w.encoders)*2
	for _, enc := range w.encoders {
		size += enc.OutputAvailable()
	}

	return size
}

func (w *Writer) totalOutputAvailable() int {
	total := 0
	for _, enc := range w.encoders {
		total += enc.OutputAvailable()
	}

	return total
}

// packetWrite assembles and commits one standard data packet, draining
// each encoder's queued output proportionally to fit within maxPayload
// (§4.3.1). Returns the physical offset the packet was written at, or 0
// with no error if there was nothing to drain.
func (w *Writer) packetWrite() (int64, error) {
	n := len(w.encoders)

	sumAvail := w.totalOutputAvailable()
	if sumAvail == 0 {
		return 0, nil
	}

	maxPayload := section.DataPacketMax - section.DataPacketHeaderSize - n*2

	counts := make([]int, n)
	if sumAvail < maxPayload {
		for i, enc := range w.encoders {
			counts[i] = enc.OutputAvailable()
		}
	} else {
		for i, enc := range w.encoders {
			counts[i] = (maxPayload - 1) * enc.OutputAvailable() / sumAvail
		}
	}

	scratch := w.dataPacketScratch
	scratch.Reset()

	header := section.NewDataPacketHeader(n)
	scratch.ExtendOrGrow(section.DataPacketHeaderSize)
	header.WriteToSlice(scratch.B[:section.DataPacketHeaderSize], wireEngine)

	for _, c := range counts {
		idx := len(scratch.B)
		scratch.ExtendOrGrow(2)
		wireEngine.PutUint16(scratch.B[idx:idx+2], uint16(c)) //nolint:gosec
	}

	for i, enc := range w.encoders {
		c := counts[i]
		if c == 0 {
			continue
		}
		idx := len(scratch.B)
		scratch.ExtendOrGrow(c)
		read := enc.OutputRead(scratch.B[idx : idx+c])
		if read != c {
			return 0, fmt.Errorf("%w: encoder %d drained %d bytes, expected %d", errs.ErrInternal, i, read, c)
		}
	}

	packetLength := len(scratch.B)
	for packetLength%4 != 0 {
		if packetLength+1 > section.DataPacketMax {
			return 0, fmt.Errorf("%w: zero-padding would exceed DataPacketMax", errs.ErrInternal)
		}
		scratch.ExtendOrGrow(1)
		scratch.B[packetLength] = 0
		packetLength++
	}

	header.PacketLogicalLengthMinus1 = uint16(packetLength - 1) //nolint:gosec
	header.BytestreamCount = uint16(n)                          //nolint:gosec
	header.PacketType = section.PacketTypeData
	header.WriteToSlice(scratch.B[:section.DataPacketHeaderSize], wireEngine)

	if header.PacketLength() != packetLength {
		return 0, fmt.Errorf("%w: header length %d disagrees with assembled length %d", errs.ErrInvalidPacketLayout, header.PacketLength(), packetLength)
	}

	physical, err := w.commitPacket(scratch.B[:packetLength])
	if err != nil {
		return 0, err
	}

	if w.dataPacketsCount == 0 {
		w.dataPhysicalOffset = physical
	}
	w.dataPacketsCount++

	return physical, nil
}

// packetWriteZeroRecords emits a header-only data packet so that write(0)
// still produces at least one data packet for the section (§4.3.2).
func (w *Writer) packetWriteZeroRecords() (int64, error) {
	scratch := w.dataPacketScratch
	scratch.Reset()

	header := section.NewDataPacketHeader(0)
	scratch.ExtendOrGrow(section.DataPacketHeaderSize)
	header.WriteToSlice(scratch.B[:section.DataPacketHeaderSize], wireEngine)

	packetLength := len(scratch.B)
	for packetLength%4 != 0 {
		scratch.ExtendOrGrow(1)
		scratch.B[packetLength] = 0
		packetLength++
	}

	header.PacketLogicalLengthMinus1 = uint16(packetLength - 1) //nolint:gosec
	header.WriteToSlice(scratch.B[:section.DataPacketHeaderSize], wireEngine)

	physical, err := w.commitPacket(scratch.B[:packetLength])
	if err != nil {
		return 0, err
	}

	if w.dataPacketsCount == 0 {
		w.dataPhysicalOffset = physical
	}
	w.dataPacketsCount++

	return physical, nil
}

// packetWriteIndex emits the section's single index packet, pointing at
// the first data packet (§4.3.3).
func (w *Writer) packetWriteIndex() (int64, error) {
	scratch := w.dataPacketScratch
	scratch.Reset()

	header := section.NewIndexPacketHeader(1)
	header.PacketLogicalLengthMinus1 = uint16(section.IndexPacketHeaderSize+section.IndexEntrySize-1) //nolint:gosec

	scratch.ExtendOrGrow(section.IndexPacketHeaderSize)
	header.WriteToSlice(scratch.B[:section.IndexPacketHeaderSize], wireEngine)

	entry := section.IndexEntry{ChunkRecordNumber: 0, ChunkPhysicalOffset: uint64(w.dataPhysicalOffset)} //nolint:gosec
	idx := len(scratch.B)
	scratch.ExtendOrGrow(section.IndexEntrySize)
	entry.WriteToSlice(scratch.B[idx:idx+section.IndexEntrySize], wireEngine)

	packetLength := len(scratch.B) // already a multiple of 4 (16 + 16)

	physical, err := w.commitPacket(scratch.B[:packetLength])
	if err != nil {
		return 0, err
	}

	w.topIndexPhysicalOffset = physical
	w.indexPacketsCount++

	return physical, nil
}

// commitPacket allocates packetLength logical bytes in the host file,
// translates to a physical offset, and writes buf there.
func (w *Writer) commitPacket(buf []byte) (int64, error) {
	file := w.node.File()

	logical, err := file.AllocateSpace(int64(len(buf)), false)
	if err != nil {
		return 0, fmt.Errorf("allocating packet space: %w", err)
	}

	physical := file.LogicalToPhysical(logical)

	if err := file.Seek(logical); err != nil {
		return 0, fmt.Errorf("seeking to packet offset: %w", err)
	}

	if _, err := file.Write(buf); err != nil {
		return 0, fmt.Errorf("writing packet: %w", err)
	}

	return physical, nil
}
