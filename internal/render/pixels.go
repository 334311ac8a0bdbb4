package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
// buf must hold 4 bytes per cell.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	onPx := [4]byte{uint8(rOn >> 8), uint8(gOn >> 8), uint8(bOn >> 8), uint8(aOn >> 8)}
	offPx := [4]byte{uint8(rOff >> 8), uint8(gOff >> 8), uint8(bOff >> 8), uint8(aOff >> 8)}
	for i, c := range cells {
		px := &offPx
		if c != 0 {
			px = &onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}
