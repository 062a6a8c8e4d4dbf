package tui

import "strings"

// sparkLevels are the eight block heights of a sparkline cell, lowest first.
const sparkLevels = "▁▂▃▄▅▆▇█"

// brailleBlank is the empty braille pattern; dots are OR-ed into it.
const brailleBlank = '⠀'

// Series is a sliding window over the most recent samples of a fraction.
// Samples are clamped to [0,1] on the way in.
type Series struct {
	samples []float64
	limit   int
}

// NewSeries returns a window keeping at most limit samples (at least one).
func NewSeries(limit int) *Series {
	return &Series{limit: max(limit, 1)}
}

// Push appends a sample and drops the oldest ones beyond the limit.
func (s *Series) Push(v float64) {
	s.samples = append(s.samples, clampFraction(v))
	s.trim()
}

// SetLimit changes the window size, keeping the most recent samples.
func (s *Series) SetLimit(limit int) {
	s.limit = max(limit, 1)
	s.trim()
}

func (s *Series) trim() {
	if over := len(s.samples) - s.limit; over > 0 {
		s.samples = append(s.samples[:0], s.samples[over:]...)
	}
}

// Len returns the number of retained samples.
func (s *Series) Len() int { return len(s.samples) }

// Limit returns the window size.
func (s *Series) Limit() int { return s.limit }

// Last returns the newest sample, or 0 when the window is empty.
func (s *Series) Last() float64 {
	if len(s.samples) == 0 {
		return 0
	}
	return s.samples[len(s.samples)-1]
}

// Values returns a copy of the samples, oldest first, or nil when empty.
func (s *Series) Values() []float64 {
	if len(s.samples) == 0 {
		return nil
	}
	return append([]float64(nil), s.samples...)
}

// Clear drops every sample and keeps the limit.
func (s *Series) Clear() { s.samples = s.samples[:0] }

// RenderSparkline draws one block per fraction.
func RenderSparkline(values []float64) string {
	levels := []rune(sparkLevels)
	var b strings.Builder
	for _, v := range values {
		b.WriteRune(levels[min(int(clampFraction(v)*7), 7)])
	}
	return b.String()
}

// brailleDot returns the bit of the dot at column x (0 or 1) and row y
// (0 at the top to 3) of a braille cell. Rows 0-2 use dots 1-3 and 4-6,
// row 3 uses dots 7 and 8.
func brailleDot(x, y int) rune {
	if y == 3 {
		return 0x40 << x
	}
	return 1 << (y + 3*x)
}

// RenderBrailleChart plots one dot per fraction on a width x rows grid of
// braille cells, two dots across and four down per cell. 1 is the top row;
// the newest values sit on the right and the oldest are cut off.
func RenderBrailleChart(values []float64, width, rows int) []string {
	if width <= 0 || rows <= 0 || len(values) == 0 {
		return nil
	}
	dotsAcross, dotsDown := width*2, rows*4
	if len(values) > dotsAcross {
		values = values[len(values)-dotsAcross:]
	}

	cells := make([][]rune, rows)
	for r := range cells {
		cells[r] = []rune(strings.Repeat(string(brailleBlank), width))
	}
	start := dotsAcross - len(values)
	for i, v := range values {
		x := start + i
		y := int((1 - clampFraction(v)) * float64(dotsDown-1))
		cells[y/4][x/2] |= brailleDot(x%2, y%4)
	}

	lines := make([]string, rows)
	for r, row := range cells {
		lines[r] = string(row)
	}
	return lines
}

func clampFraction(v float64) float64 {
	return min(max(v, 0), 1)
}
