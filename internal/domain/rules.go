package domain

// IsWinningMove reports whether the piece just placed at (row, column)
// completes a line of ToWin for player.
//
// Only the mover can win on a given drop, so the opponent is never checked.
// The vertical scan only looks downward: a freshly dropped piece is always
// the top of its column.
func IsWinningMove(b *Board, row, column int, player PlayerID) bool {
	return checkHorizontal(b, row, player) ||
		checkVertical(b, row, column, player) ||
		checkDiagonal(b, row, column, -1, -1, player) ||
		checkDiagonal(b, row, column, -1, 1, player)
}

// the whole row is scanned, not only the window around the placed cell
func checkHorizontal(b *Board, row int, player PlayerID) bool {
	count := 0
	for c := 0; c < Columns; c++ {
		if b[row][c] == player {
			count++
			if count == ToWin {
				return true
			}
		} else {
			count = 0
		}
	}
	return false
}

func checkVertical(b *Board, row, column int, player PlayerID) bool {
	count := 0
	for r := row; r < Rows; r++ {
		if b[r][column] != player {
			break
		}
		count++
		if count == ToWin {
			return true
		}
	}
	return false
}

// walks both ways along one diagonal axis; the placed cell counts once
func checkDiagonal(b *Board, row, column, deltaRow, deltaCol int, player PlayerID) bool {
	count := 1 +
		b.CountDiskInDirection(row, column, deltaRow, deltaCol, player) +
		b.CountDiskInDirection(row, column, -deltaRow, -deltaCol, player)
	return count >= ToWin
}
