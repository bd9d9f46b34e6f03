package sheet

import (
	"encoding/binary"
	"errors"
	"unicode/utf16"
)

// OLE compound file layout as read by github.com/extrame/ole2.
const (
	oleSectorSize   = 512
	oleHeaderMSAT   = 109
	oleDirEntrySize = 128
	oleEndOfChain   = 0xFFFFFFFE
	oleTypeEmpty    = 0
)

var errBrokenChain = errors.New("broken sector chain")

// oleImage mirrors the allocation tables the ole2 reader builds, so chains
// can be walked before the reader follows them. ole2 exits the process when a
// chain leaves its table.
type oleImage struct {
	data   []byte
	secID  []uint32
	ssecID []uint32
}

// checkOLEChains verifies every chain the BIFF reader will follow: the
// directory, the workbook stream and, for a short workbook, the mini stream.
func checkOLEChains(data []byte) error {
	if len(data) < oleSectorSize {
		return errBrokenChain
	}
	le := binary.LittleEndian
	var (
		cfat      = le.Uint32(data[0x2C:])
		dirStart  = le.Uint32(data[0x30:])
		cutoff    = le.Uint32(data[0x38:])
		sfatStart = le.Uint32(data[0x3C:])
		csfat     = le.Uint32(data[0x40:])
		difStart  = le.Uint32(data[0x44:])
	)

	// Every sector index the tables may reference lies inside the file.
	maxSectors := uint32(len(data)/oleSectorSize) + 1
	if csfat > maxSectors {
		return errBrokenChain
	}

	img := &oleImage{data: data}
	fatSectors := min(cfat, oleHeaderMSAT)
	for i := uint32(0); i < fatSectors; i++ {
		img.secID = append(img.secID, img.values(le.Uint32(data[0x4C+4*i:]), oleSectorSize/4)...)
	}
	for sid := difStart; sid != oleEndOfChain; {
		msat := img.values(sid, oleSectorSize/4)
		for _, fat := range msat[:len(msat)-1] {
			if fatSectors++; fatSectors > maxSectors {
				return errBrokenChain
			}
			img.secID = append(img.secID, img.values(fat, oleSectorSize/4)...)
		}
		sid = msat[len(msat)-1]
	}
	for i := uint32(0); i < csfat; i++ {
		if sfatStart != oleEndOfChain {
			img.ssecID = append(img.ssecID, img.values(sfatStart, oleSectorSize/4-1)...)
		}
	}

	dir, err := img.chain(img.secID, dirStart)
	if err != nil {
		return err
	}
	var book, root []byte
entries:
	for _, sid := range dir {
		sector := img.sector(sid)
		for off := 0; off < oleSectorSize; off += oleDirEntrySize {
			entry := sector[off : off+oleDirEntrySize]
			if entry[66] == oleTypeEmpty {
				break entries
			}
			switch oleEntryName(entry) {
			case "Workbook", "Book":
				book = entry
			case "Root Entry":
				root = entry
			}
		}
	}
	if book == nil {
		return nil
	}

	start, size := le.Uint32(book[116:]), le.Uint32(book[120:])
	if size >= cutoff {
		_, err = img.chain(img.secID, start)
		return err
	}
	if root == nil {
		return errBrokenChain
	}
	if _, err = img.chain(img.secID, le.Uint32(root[116:])); err != nil {
		return err
	}
	_, err = img.chain(img.ssecID, start)
	return err
}

// sector returns sector sid with the reader's uint32 offset arithmetic,
// zero padded past the end of the file.
func (img *oleImage) sector(sid uint32) []byte {
	out := make([]byte, oleSectorSize)
	pos := oleSectorSize + sid*oleSectorSize
	if int64(pos) < int64(len(img.data)) {
		copy(out, img.data[pos:])
	}
	return out
}

func (img *oleImage) values(sid uint32, n int) []uint32 {
	sector := img.sector(sid)
	out := make([]uint32, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(sector[4*i:])
	}
	return out
}

// chain walks table from start and returns the visited sectors. A link
// outside the table fails; a cycle ends the walk.
func (img *oleImage) chain(table []uint32, start uint32) ([]uint32, error) {
	var (
		out  []uint32
		seen = map[uint32]bool{}
	)
	for sid := start; sid != oleEndOfChain && !seen[sid]; sid = table[sid] {
		if sid >= uint32(len(table)) {
			return nil, errBrokenChain
		}
		seen[sid] = true
		out = append(out, sid)
	}
	return out, nil
}

func oleEntryName(entry []byte) string {
	size := int(binary.LittleEndian.Uint16(entry[64:]))
	n := size/2 - 1
	if n <= 0 || n > 32 {
		return ""
	}
	units := make([]uint16, n)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(entry[2*i:])
	}
	return string(utf16.Decode(units))
}
