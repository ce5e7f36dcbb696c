package main

import "encoding/binary"

const (
	icoHeaderSize = 6
	icoEntrySize  = 16
)

// encodeICO assembles frames into a multi-image ICO container: a 6-byte
// ICONDIR header, one 16-byte ICONDIRENTRY per frame, then the frame
// payloads packed back to back. Frames must already be sorted ascending by
// width. ICO supports PNG payloads since Windows Vista, so the original
// encoded streams are embedded untouched.
func encodeICO(frames []IconFrame) []byte {
	total := icoHeaderSize + icoEntrySize*len(frames)
	for _, frame := range frames {
		total += len(frame.Data)
	}
	buf := make([]byte, total)

	// ICONDIR header
	binary.LittleEndian.PutUint16(buf[0:], 0)                   // reserved
	binary.LittleEndian.PutUint16(buf[2:], 1)                   // type: ICO
	binary.LittleEndian.PutUint16(buf[4:], uint16(len(frames))) // image count

	offset := icoHeaderSize + icoEntrySize*len(frames)
	for i, frame := range frames {
		// ICO dimensions: 0 means 256 (or larger).
		bw, bh := byte(frame.Width), byte(frame.Height)
		if frame.Width >= 256 {
			bw = 0
		}
		if frame.Height >= 256 {
			bh = 0
		}

		// ICONDIRENTRY
		off := icoHeaderSize + icoEntrySize*i
		buf[off+0] = bw // width
		buf[off+1] = bh // height
		buf[off+2] = 0  // color count (0 for truecolor)
		buf[off+3] = 0  // reserved
		binary.LittleEndian.PutUint16(buf[off+4:], 1)                       // planes
		binary.LittleEndian.PutUint16(buf[off+6:], uint16(frame.BitCount))  // bits per pixel
		binary.LittleEndian.PutUint32(buf[off+8:], uint32(len(frame.Data))) // data size
		binary.LittleEndian.PutUint32(buf[off+12:], uint32(offset))         // data offset

		copy(buf[offset:], frame.Data)
		offset += len(frame.Data)
	}

	return buf
}
