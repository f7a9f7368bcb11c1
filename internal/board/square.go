package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// NewSquare creates a square from file and rank (0-indexed).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// FlipRank returns the square mirrored vertically (a1 <-> a8).
func (sq Square) FlipRank() Square {
	return sq ^ 56
}

// FlipFile returns the square mirrored horizontally (a1 <-> h1).
func (sq Square) FlipFile() Square {
	return sq ^ 7
}

// RelativeRank returns the rank from a given color's perspective.
// For White, rank 0 is the 1st rank; for Black, rank 0 is the 8th rank.
func (sq Square) RelativeRank(c Color) int {
	if c == White {
		return sq.Rank()
	}
	return 7 - sq.Rank()
}

// RelativeTo mirrors the square vertically for Black so that both colors can
// be handled by White-oriented code.
func (sq Square) RelativeTo(c Color) Square {
	if c == White {
		return sq
	}
	return sq.FlipRank()
}

// IsDark returns true for the dark squares (a1 is dark).
func (sq Square) IsDark() bool {
	return (sq.File()+sq.Rank())%2 == 0
}

// Distance returns the Chebyshev distance between two squares (the number of
// king moves between them).
func Distance(a, b Square) int {
	return max(FileDistance(a, b), RankDistance(a, b))
}

// FileDistance returns the distance between the files of two squares.
func FileDistance(a, b Square) int {
	d := a.File() - b.File()
	if d < 0 {
		return -d
	}
	return d
}

// RankDistance returns the distance between the ranks of two squares.
func RankDistance(a, b Square) int {
	d := a.Rank() - b.Rank()
	if d < 0 {
		return -d
	}
	return d
}
