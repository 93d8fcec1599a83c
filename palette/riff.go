package palette

import (
	"encoding/binary"
	"fmt"
	"io"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/riff"
)

/*
typedef struct tagLOGPALETTE {
  WORD         palVersion;
  WORD         palNumEntries;
  PALETTEENTRY palPalEntry[1];
} LOGPALETTE;

typedef struct tagPALETTEENTRY {
  BYTE peRed;
  BYTE peGreen;
  BYTE peBlue;
  BYTE peFlags;
} PALETTEENTRY;
*/

var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

// ReadFrom loads the first palette data chunk of a RIFF PAL stream.
func ReadFrom(r io.Reader) ([]colorful.Color, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open RIFF stream: %w", err)
	}
	if formType != palType {
		return nil, fmt.Errorf("unsupported RIFF content type: %s", string(formType[:]))
	}

	for {
		id, _, data, err := rd.Next()
		if err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("RIFF stream has no palette data chunk")
			}
			return nil, fmt.Errorf("could not read chunk: %w", err)
		}
		if id != dataType {
			continue
		}
		return readPalette(data)
	}
}

func readPalette(r io.Reader) ([]colorful.Color, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("could not read palette header: %w", err)
	}

	if ver := binary.BigEndian.Uint16(hdr[:2]); ver != 3 {
		return nil, fmt.Errorf("unsupported palette version: %d", ver)
	}

	count := binary.LittleEndian.Uint16(hdr[2:])
	pal := make([]colorful.Color, count)
	var entry [4]byte
	for i := range pal {
		if _, err := io.ReadFull(r, entry[:]); err != nil {
			return pal[:i], fmt.Errorf("could not read color %d/%d: %w", i, count, err)
		}

		pal[i] = colorful.Color{
			R: float64(entry[0]) / 255,
			G: float64(entry[1]) / 255,
			B: float64(entry[2]) / 255,
		}
	}

	return pal, nil
}

// WriteTo writes the palette as a single-chunk RIFF PAL document.
func WriteTo(w io.Writer, pal []colorful.Color) (int64, error) {
	chunk := 4 + len(pal)*4 // palVersion + palNumEntries + 4 bytes per color
	body := 4 + 4 + 4 + chunk

	buf := make([]byte, 0, 8+body)
	buf = append(buf, riffType[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(body))
	buf = append(buf, palType[:]...)
	buf = append(buf, dataType[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(chunk))
	buf = append(buf, 0, 0x03)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(pal)))
	for _, c := range pal {
		r, g, b := c.RGB255()
		buf = append(buf, r, g, b, 0x00)
	}

	n, err := w.Write(buf)
	if err != nil {
		return int64(n), fmt.Errorf("could not write palette: %w", err)
	} else if n != len(buf) {
		return int64(n), fmt.Errorf("wrote only %d/%d bytes", n, len(buf))
	}

	return int64(n), nil
}
