package domain

// Board is indexed [row][col]. Row 0 is the top and row Rows-1 is the
// bottom, so pieces fall towards higher row numbers.
type Board [Rows][Columns]PlayerID

// IsValidMove takes a 0-based column.
func (b *Board) IsValidMove(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// here board[0] represents the top row (0 -> top and 5 -> bottom)
	return b[0][column] == Empty
}

// LowestEmptyRow returns -1 when the column has no room left.
func (b *Board) LowestEmptyRow(column int) int {
	for row := Rows - 1; row >= 0; row-- {
		if b[row][column] == Empty {
			return row
		}
	}
	return -1
}

// DropDisk is the only place a cell gets written, which keeps every column
// a contiguous stack from the bottom.
func (b *Board) DropDisk(column int, player PlayerID) (int, error) {
	if column < 0 || column >= Columns {
		return -1, ErrInvalidColumn
	}

	row := b.LowestEmptyRow(column)
	if row < 0 {
		return -1, ErrColumnFull
	}
	b[row][column] = player
	return row, nil
}

func (b *Board) IsBoardFull() bool {
	for c := 0; c < Columns; c++ {
		if b[0][c] == Empty {
			return false
		}
	}

	return true
}

// ValidMoves lists 0-based columns that still accept a piece.
func (b *Board) ValidMoves() []int {
	validMoves := []int{}
	for col := 0; col < Columns; col++ {
		if b.IsValidMove(col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

// this counts the number of disks in a specific direction, not including
// the starting cell
func (b *Board) CountDiskInDirection(row, column int, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for r >= 0 && r < Rows && c >= 0 && c < Columns && b[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
