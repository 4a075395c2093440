package report

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
)

// Page geometry in millimeters (A4 portrait).
const (
	pageHeight   = 297.0
	marginTop    = 15.0
	marginBottom = 15.0
	marginLeft   = 10.0

	lineHeight   = 6.0
	blockGap     = 4.0
	charsPerLine = 90
	headerHeight = 30.0
)

// Line is one rendered row of a block.
type Line struct {
	Text string
	Bold bool
}

// Block is an indivisible group of lines for one record.
type Block struct {
	Lines []Line
}

// Height estimates the rendered height of the block including the trailing
// separator gap. Long text contributes proportionally via line-wrap
// estimation at a fixed characters-per-line.
func (b Block) Height() float64 {
	var h float64
	for _, line := range b.Lines {
		h += lineHeight * float64(wrapCount(line.Text))
	}
	return h + blockGap
}

// wrapCount counts runes, not bytes, and must stay in lockstep with
// wrapText.
func wrapCount(text string) int {
	n := (utf8.RuneCountInString(text) + charsPerLine - 1) / charsPerLine
	if n < 1 {
		return 1
	}
	return n
}

// UsableHeight is the per-page layout budget below the header.
func UsableHeight() float64 {
	return pageHeight - marginTop - marginBottom - headerHeight
}

// CandidateBlock renders one candidate record.
func CandidateBlock(c *domain.Candidate) Block {
	return Block{Lines: []Line{
		{Text: c.Firstname + " " + c.Lastname, Bold: true},
		{Text: "Education: " + string(c.EducationLevel)},
		{Text: "Experience: " + formatYears(c.YearsExperience) + " years"},
		{Text: "Skills: " + strings.Join(c.Skills, ", ")},
		{Text: "Location: " + c.City + ", " + c.Country},
	}}
}

// CandidateMatchBlock renders one candidate match; the similarity line is
// present only for scored matches.
func CandidateMatchBlock(m *domain.CandidateMatch) Block {
	b := CandidateBlock(&m.Candidate)
	if m.Score != nil {
		b.Lines = append(b.Lines, Line{Text: fmt.Sprintf("Similarity: %.4f", *m.Score)})
	}
	return b
}

// JobAdBlock renders one job ad record.
func JobAdBlock(j *domain.JobAd) Block {
	return Block{Lines: []Line{
		{Text: j.Title, Bold: true},
		{Text: "Description: " + j.Description},
		{Text: fmt.Sprintf("Required level: %s | Job type: %s | Work mode: %s",
			j.RequiredExperienceLevel, j.JobType, j.WorkMode)},
		{Text: "Location: " + j.City + ", " + j.Country},
	}}
}

func formatYears(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
