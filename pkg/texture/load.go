package texture

import (
	"bytes"
	"encoding/binary"
	"io"
	"os/exec"
)

// LoadFromSubprocess loads a texture by invoking an external process,
// `python3 texload.py "<path>"`, whose stdout emits a 4-byte header
// (int16 width, int16 height, both little-endian) followed by
// width*height mask bytes. If the subprocess fails to run, or reports a
// non-positive width or height, the returned texture is Empty() and every
// sample reads false; the polygon just renders unlit.
func LoadFromSubprocess(path string) *Texture {
	out, err := exec.Command("python3", "texload.py", path).Output()
	if err != nil {
		return Empty()
	}
	return decode(bytes.NewReader(out))
}

func decode(r io.Reader) *Texture {
	var width, height int16
	if err := binary.Read(r, binary.LittleEndian, &width); err != nil {
		return Empty()
	}
	if err := binary.Read(r, binary.LittleEndian, &height); err != nil {
		return Empty()
	}
	if width <= 0 || height <= 0 {
		return Empty()
	}

	data := make([]byte, int(width)*int(height))
	if _, err := io.ReadFull(r, data); err != nil {
		return Empty()
	}

	return NewManaged(int(width), int(height), data)
}
