package material

// Imbalance type axis. Slot 0 is a virtual "bishop pair" piece whose count
// is 1 when a side owns two or more bishops, which keeps the pair bonus
// inside the same polynomial as everything else. The king slot is only
// iterated under the antichess rule set.
const (
	pairSlot = iota
	pawnSlot
	knightSlot
	bishopSlot
	rookSlot
	queenSlot
	kingSlot

	slotNb = 7
)

// Polynomial material imbalance coefficients, tuned empirically. The
// matrices are triangular: entries above the diagonal are never read.

var quadraticOurs = [slotNb][slotNb]int{
	//            OUR PIECES
	// pair pawn knight bishop rook queen
	{1667},                            // Bishop pair
	{40, 2},                           // Pawn
	{32, 255, -3},                     // Knight
	{0, 104, 4, 0},                    // Bishop
	{-26, -2, 47, 105, -149},          // Rook
	{-185, 24, 122, 137, -134, 0},     // Queen
}

var quadraticTheirs = [slotNb][slotNb]int{
	//           THEIR PIECES
	// pair pawn knight bishop rook queen
	{0},                               // Bishop pair
	{36, 0},                           // Pawn
	{9, 63, 0},                        // Knight
	{59, 65, 42, 0},                   // Bishop
	{46, 39, 24, -24, 0},              // Rook
	{101, 100, -37, 141, 268, 0},      // Queen
}

// Antichess coefficients extend the axis through the king, the rule variant
// where losing all pieces wins and capturing is compulsory.

var quadraticOursAnti = [slotNb][slotNb]int{
	//            OUR PIECES
	// pair pawn knight bishop rook queen king
	{-62},                                  // Bishop pair
	{-179, 59},                             // Pawn
	{-50, 178, -47},                        // Knight
	{0, -130, -187, 0},                     // Bishop
	{-155, -317, 60, -218, -288},           // Rook
	{89, -259, -60, -179, -32, -76},        // Queen
	{-217, -79, 40, -23, 9, -63, -197},     // King
}

var quadraticTheirsAnti = [slotNb][slotNb]int{
	//           THEIR PIECES
	// pair pawn knight bishop rook queen king
	{0},                                    // Bishop pair
	{110, 0},                               // Pawn
	{9, 60, 0},                             // Knight
	{-53, -143, 33, 0},                     // Bishop
	{73, -298, 3, 41, 0},                   // Rook
	{-141, -370, 56, 45, -79, 0},           // Queen
	{246, -40, -194, 178, -39, 74, 0},      // King
}
