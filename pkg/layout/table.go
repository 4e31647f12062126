package layout

// GapWidth is the number of spaces rendered between adjacent columns
const GapWidth = 2

// minColumnFloor is the narrowest a column shrinks to while any wider
// option remains: enough for one character plus a truncation marker.
const minColumnFloor = 4

// Columns computes adaptive table column widths.
//
// Natural widths (the widest cell per column, header included) are used
// as-is when they fit the available width; the remainder is handed to the
// widest column as padding so the total always sums exactly to the budget.
// When the content is too wide, columns shrink proportionally to their
// natural width down to a floor, truncation handling the rest; on ties the
// rightmost column gives up cells first, so earlier columns stay legible.
func Columns(headers []string, rows [][]string, available int) []int {
	n := len(headers)
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	if n == 0 {
		return nil
	}

	natural := make([]int, n)
	for i, h := range headers {
		natural[i] = Measure(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := Measure(cell); w > natural[i] {
				natural[i] = w
			}
		}
	}

	budget := available - GapWidth*(n-1)
	if budget < n {
		// Pathologically narrow terminal: one cell per column is the
		// narrowest layout that still shows every column.
		budget = n
	}

	total := 0
	for _, w := range natural {
		total += w
	}

	widths := make([]int, n)

	if total <= budget {
		// Content fits: pad the widest column out to the exact budget.
		// Padding only, text is never stretched.
		copy(widths, natural)
		widest := 0
		for i, w := range natural {
			if w > natural[widest] {
				widest = i
			}
		}
		widths[widest] += budget - total
		return widths
	}

	shrinkProportional(widths, natural, total, budget)
	return widths
}

// shrinkProportional assigns each column its proportional share of the
// budget, clamped between a floor and its natural width, then corrects the
// rounding drift one cell at a time until the sum is exact.
func shrinkProportional(widths, natural []int, total, budget int) {
	sum := 0
	for i := range widths {
		w := natural[i] * budget / total
		if f := columnFloor(natural[i]); w < f {
			w = f
		}
		if w > natural[i] {
			w = natural[i]
		}
		widths[i] = w
		sum += w
	}

	floor := minColumnFloor
	for sum > budget {
		// Take a cell from the widest column still above its floor;
		// the rightmost column gives first on ties.
		pick := -1
		for i, w := range widths {
			if w <= floor || w <= 1 {
				continue
			}
			if pick == -1 || w >= widths[pick] {
				pick = i
			}
		}
		if pick == -1 {
			if floor <= 1 {
				return
			}
			floor = 1
			continue
		}
		widths[pick]--
		sum--
	}

	for sum < budget {
		// Give a cell back to the column missing the most of its
		// natural width; the leftmost column receives first on ties.
		pick := -1
		for i, w := range widths {
			if w >= natural[i] {
				continue
			}
			if pick == -1 || natural[i]-w > natural[pick]-widths[pick] {
				pick = i
			}
		}
		if pick == -1 {
			return
		}
		widths[pick]++
		sum++
	}
}

func columnFloor(natural int) int {
	if natural < minColumnFloor {
		return natural
	}
	return minColumnFloor
}
