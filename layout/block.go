package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/redline/model"
	"github.com/tsawler/redline/normalize"
)

// BlockConfig holds configuration for block detection.
type BlockConfig struct {
	// LineTolerance is the maximum Y-distance between two runs that still
	// places them on the same line (default: 5 points)
	LineTolerance float64

	// BlockGap is the minimum vertical gap between consecutive lines that
	// starts a new block (default: 15 points)
	BlockGap float64

	// HeaderY drops every run whose top edge lies above this Y coordinate.
	// Zero disables header filtering.
	HeaderY float64

	// FooterY drops every run whose bottom edge lies below this Y
	// coordinate. Zero disables footer filtering.
	FooterY float64

	// MinBlockWidth is the minimum width for a valid block (default: 10 points)
	MinBlockWidth float64

	// MinBlockHeight is the minimum height for a valid block (default: 5 points)
	MinBlockHeight float64
}

// DefaultBlockConfig returns sensible default configuration
func DefaultBlockConfig() BlockConfig {
	return BlockConfig{
		LineTolerance:  5.0,
		BlockGap:       15.0,
		MinBlockWidth:  10.0,
		MinBlockHeight: 5.0,
	}
}

// BlockDetector groups positioned text runs into text blocks.
type BlockDetector struct {
	config BlockConfig
}

// NewBlockDetector creates a new block detector with default configuration
func NewBlockDetector() *BlockDetector {
	return &BlockDetector{
		config: DefaultBlockConfig(),
	}
}

// NewBlockDetectorWithConfig creates a block detector with custom configuration
func NewBlockDetectorWithConfig(config BlockConfig) *BlockDetector {
	return &BlockDetector{
		config: config,
	}
}

// Detect groups runs into ordered text blocks. Runs with empty text or an
// invalid bounding box are dropped, as are runs inside the configured
// header and footer bands. The returned blocks are in reading order:
// page, then top to bottom, then left to right.
func (d *BlockDetector) Detect(runs []model.TextRun) []model.TextBlock {
	kept := d.filterRuns(runs)
	if len(kept) == 0 {
		return nil
	}

	sortRuns(kept)

	lines := d.groupIntoLines(kept)
	blocks := d.groupLinesIntoBlocks(lines)
	blocks = d.validateBlocks(blocks)
	tagSections(blocks)

	return blocks
}

// filterRuns drops degenerate runs and runs inside the header/footer bands.
func (d *BlockDetector) filterRuns(runs []model.TextRun) []model.TextRun {
	kept := make([]model.TextRun, 0, len(runs))
	for _, r := range runs {
		if strings.TrimSpace(r.Text) == "" || !r.BBox.IsValid() {
			continue
		}
		if d.config.HeaderY > 0 && r.BBox.Top() < d.config.HeaderY {
			continue
		}
		if d.config.FooterY > 0 && r.BBox.Bottom() > d.config.FooterY {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// sortRuns orders runs by page, truncated Y, then X. Truncating Y keeps
// runs of one visual line together even when their baselines wobble by a
// fraction of a point.
func sortRuns(runs []model.TextRun) {
	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].Page != runs[j].Page {
			return runs[i].Page < runs[j].Page
		}
		yi, yj := int(runs[i].BBox.Y), int(runs[j].BBox.Y)
		if yi != yj {
			return yi < yj
		}
		return runs[i].BBox.X < runs[j].BBox.X
	})
}

// line is a horizontal group of runs on one page.
type line struct {
	page int
	runs []model.TextRun
}

func (l *line) top() float64 {
	top := l.runs[0].BBox.Top()
	for _, r := range l.runs[1:] {
		if r.BBox.Top() < top {
			top = r.BBox.Top()
		}
	}
	return top
}

func (l *line) bottom() float64 {
	bottom := l.runs[0].BBox.Bottom()
	for _, r := range l.runs[1:] {
		if r.BBox.Bottom() > bottom {
			bottom = r.BBox.Bottom()
		}
	}
	return bottom
}

// groupIntoLines groups sorted runs into lines: same page and a Y within
// the configured tolerance of the line's first run.
func (d *BlockDetector) groupIntoLines(runs []model.TextRun) []line {
	var lines []line
	var current line

	for _, r := range runs {
		if len(current.runs) == 0 {
			current = line{page: r.Page, runs: []model.TextRun{r}}
			continue
		}

		anchor := current.runs[0]
		if r.Page == current.page && absFloat64(r.BBox.Y-anchor.BBox.Y) <= d.config.LineTolerance {
			current.runs = append(current.runs, r)
			continue
		}

		lines = append(lines, current)
		current = line{page: r.Page, runs: []model.TextRun{r}}
	}

	if len(current.runs) > 0 {
		lines = append(lines, current)
	}

	// Left-to-right within each line.
	for i := range lines {
		sort.SliceStable(lines[i].runs, func(a, b int) bool {
			return lines[i].runs[a].BBox.X < lines[i].runs[b].BBox.X
		})
	}

	return lines
}

// groupLinesIntoBlocks merges consecutive lines into blocks. A page
// change or a vertical gap over the threshold starts a new block.
func (d *BlockDetector) groupLinesIntoBlocks(lines []line) []model.TextBlock {
	if len(lines) == 0 {
		return nil
	}

	var blocks []model.TextBlock
	group := []line{lines[0]}

	for i := 1; i < len(lines); i++ {
		prev, curr := lines[i-1], lines[i]
		gap := curr.top() - prev.bottom()

		if curr.page != prev.page || gap > d.config.BlockGap {
			blocks = append(blocks, d.buildBlock(group))
			group = []line{curr}
			continue
		}
		group = append(group, curr)
	}
	blocks = append(blocks, d.buildBlock(group))

	return blocks
}

// buildBlock assembles one block from its lines: union bbox, text joined
// line by line, and the normalized word stream.
func (d *BlockDetector) buildBlock(group []line) model.TextBlock {
	block := model.TextBlock{Page: group[0].page}

	var textLines []string
	first := true
	for _, ln := range group {
		var parts []string
		for _, r := range ln.runs {
			parts = append(parts, r.Text)
			if first {
				block.BBox = r.BBox
				first = false
			} else {
				block.BBox = block.BBox.Union(r.BBox)
			}
			block.Words = append(block.Words, runWords(r)...)
		}
		textLines = append(textLines, strings.Join(parts, " "))
	}
	block.Text = strings.Join(textLines, "\n")

	return block
}

// validateBlocks drops blocks whose box is under the size minima or whose
// text is empty after assembly.
func (d *BlockDetector) validateBlocks(blocks []model.TextBlock) []model.TextBlock {
	valid := blocks[:0]
	for _, b := range blocks {
		if b.BBox.Width < d.config.MinBlockWidth || b.BBox.Height < d.config.MinBlockHeight {
			continue
		}
		if strings.TrimSpace(b.Text) == "" {
			continue
		}
		valid = append(valid, b)
	}
	return valid
}

// Section marker glyphs. A block opening with one of these sets the
// section state for itself and the blocks that follow it.
const (
	majorMarker = '◆'
	minorMarker = '■'
)

// tagSections assigns section types in document order. Marker blocks
// become titles, subsequent blocks inherit the matching content tag, and
// blocks before the first marker are standalone.
func tagSections(blocks []model.TextBlock) {
	current := model.SectionStandalone

	for i := range blocks {
		trimmed := strings.TrimSpace(blocks[i].Text)
		switch firstRune(trimmed) {
		case majorMarker:
			blocks[i].Section = model.SectionMajorTitle
			current = model.SectionMajorContent
		case minorMarker:
			blocks[i].Section = model.SectionMinorTitle
			current = model.SectionMinorContent
		default:
			blocks[i].Section = current
		}
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func absFloat64(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// runWords splits one run into normalized words carrying the run's box.
func runWords(r model.TextRun) []model.Word {
	var words []model.Word
	for _, tok := range normalize.Tokenize(r.Text) {
		for _, sub := range normalize.Split(tok) {
			norm := normalize.Normalize(sub)
			if norm == "" {
				continue
			}
			words = append(words, model.Word{
				Raw:        sub,
				Normalized: norm,
				Page:       r.Page,
				BBox:       r.BBox,
			})
		}
	}
	return words
}
