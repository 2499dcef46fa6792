package blscli

import (
	"crypto/sha256"
	"strings"
)

// Drunken-bishop board dimensions, as used by OpenSSH key fingerprints.
const (
	artWidth  = 17
	artHeight = 9
)

const artSymbols = " .o+=*BOX@%&#/^"

// randomArt renders a visual fingerprint of the digest in the OpenSSH
// drunken-bishop style. The header is centered in the top border.
func randomArt(header string, digest []byte) string {
	var board [artHeight][artWidth]int

	x, y := artWidth/2, artHeight/2
	startX, startY := x, y
	for _, b := range digest {
		for i := 0; i < 4; i++ {
			if b&0x1 != 0 {
				x++
			} else {
				x--
			}
			if b&0x2 != 0 {
				y++
			} else {
				y--
			}
			x = min(max(x, 0), artWidth-1)
			y = min(max(y, 0), artHeight-1)
			if board[y][x] < len(artSymbols)-1 {
				board[y][x]++
			}
			b >>= 2
		}
	}

	var out strings.Builder
	writeBorder(&out, header)
	for row := range board {
		out.WriteByte('|')
		for col, count := range board[row] {
			switch {
			case row == startY && col == startX:
				out.WriteByte('S')
			case row == y && col == x:
				out.WriteByte('E')
			default:
				out.WriteByte(artSymbols[count])
			}
		}
		out.WriteString("|\n")
	}
	writeBorder(&out, "")
	return out.String()
}

func writeBorder(out *strings.Builder, header string) {
	if header == "" {
		out.WriteByte('+')
		out.WriteString(strings.Repeat("-", artWidth))
		out.WriteString("+\n")
		return
	}
	if len(header) > artWidth-2 {
		header = header[:artWidth-2]
	}
	pad := artWidth - len(header) - 2
	out.WriteByte('+')
	out.WriteString(strings.Repeat("-", pad/2))
	out.WriteByte('[')
	out.WriteString(header)
	out.WriteByte(']')
	out.WriteString(strings.Repeat("-", pad-pad/2))
	out.WriteString("+\n")
}

// fingerprintArt renders the random art of a public key encoding under its
// curve assignment name.
func fingerprintArt(variantName string, pubkey []byte) string {
	digest := sha256.Sum256(pubkey)
	return randomArt(variantName, digest[:])
}
