package layout

import (
	"testing"

	"github.com/tsawler/redline/model"
)

// makeRun creates a test text run from corner coordinates
func makeRun(text string, page int, x0, y0, x1, y1 float64) model.TextRun {
	return model.TextRun{
		Text: text,
		Page: page,
		BBox: model.NewBBoxFromCorners(x0, y0, x1, y1),
	}
}

func TestBlockDetector_EmptyRuns(t *testing.T) {
	detector := NewBlockDetector()

	if blocks := detector.Detect(nil); len(blocks) != 0 {
		t.Errorf("Expected 0 blocks, got %d", len(blocks))
	}
}

func TestBlockDetector_SingleLine(t *testing.T) {
	detector := NewBlockDetector()
	runs := []model.TextRun{
		makeRun("Hello", 0, 100, 100, 140, 112),
		makeRun("World", 0, 145, 100, 190, 112),
	}

	blocks := detector.Detect(runs)

	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}

	block := blocks[0]
	if block.Text != "Hello World" {
		t.Errorf("Expected 'Hello World', got '%s'", block.Text)
	}

	if len(block.Words) != 2 {
		t.Errorf("Expected 2 words, got %d", len(block.Words))
	}
}

func TestBlockDetector_MultipleLines_SameBlock(t *testing.T) {
	detector := NewBlockDetector()
	// Two lines 2 points apart (< BlockGap) should stay in one block.
	runs := []model.TextRun{
		makeRun("Line one", 0, 100, 100, 160, 112),
		makeRun("Line two", 0, 100, 114, 160, 126),
	}

	blocks := detector.Detect(runs)

	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Text != "Line one\nLine two" {
		t.Errorf("Unexpected block text: %q", blocks[0].Text)
	}
}

func TestBlockDetector_MultipleBlocks_VerticalGap(t *testing.T) {
	detector := NewBlockDetector()
	// 88-point gap (> BlockGap) should split the lines into two blocks.
	runs := []model.TextRun{
		makeRun("First block", 0, 100, 100, 180, 112),
		makeRun("Second block", 0, 100, 200, 190, 212),
	}

	blocks := detector.Detect(runs)

	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(blocks))
	}

	if blocks[0].Text != "First block" || blocks[1].Text != "Second block" {
		t.Errorf("Blocks not in reading order: %q, %q", blocks[0].Text, blocks[1].Text)
	}
}

func TestBlockDetector_PageBoundarySplits(t *testing.T) {
	detector := NewBlockDetector()
	// Same coordinates on different pages never merge.
	runs := []model.TextRun{
		makeRun("Page one", 0, 100, 100, 170, 112),
		makeRun("Page two", 1, 100, 100, 170, 112),
	}

	blocks := detector.Detect(runs)

	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Page != 0 || blocks[1].Page != 1 {
		t.Errorf("Expected pages 0 and 1, got %d and %d", blocks[0].Page, blocks[1].Page)
	}
}

func TestBlockDetector_HeaderFooterBands(t *testing.T) {
	config := DefaultBlockConfig()
	config.HeaderY = 50
	config.FooterY = 750
	detector := NewBlockDetectorWithConfig(config)

	runs := []model.TextRun{
		makeRun("Running header", 0, 100, 20, 200, 32),
		makeRun("Body text here", 0, 100, 300, 200, 312),
		makeRun("Footer note", 0, 100, 760, 200, 772),
	}

	blocks := detector.Detect(runs)

	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Text != "Body text here" {
		t.Errorf("Expected body text only, got %q", blocks[0].Text)
	}
}

func TestBlockDetector_DegenerateRunsDropped(t *testing.T) {
	detector := NewBlockDetector()
	runs := []model.TextRun{
		makeRun("", 0, 100, 100, 160, 112),
		makeRun("   ", 0, 100, 100, 160, 112),
		{Text: "zero area", Page: 0, BBox: model.NewBBox(100, 100, 0, 0)},
		makeRun("Kept content", 0, 100, 300, 200, 312),
	}

	blocks := detector.Detect(runs)

	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Text != "Kept content" {
		t.Errorf("Expected 'Kept content', got %q", blocks[0].Text)
	}
}

func TestBlockDetector_MinimumSize(t *testing.T) {
	detector := NewBlockDetector()
	runs := []model.TextRun{
		makeRun("tiny", 0, 100, 100, 105, 102), // 5x2, under both minima
		makeRun("Normal sized content", 0, 100, 300, 250, 312),
	}

	blocks := detector.Detect(runs)

	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Text != "Normal sized content" {
		t.Errorf("Expected normal block, got %q", blocks[0].Text)
	}
}

func TestBlockDetector_UnionBBox(t *testing.T) {
	detector := NewBlockDetector()
	runs := []model.TextRun{
		makeRun("Line one", 0, 100, 100, 160, 112),
		makeRun("Longer line two", 0, 100, 114, 220, 126),
	}

	blocks := detector.Detect(runs)

	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}

	x0, y0, x1, y1 := blocks[0].BBox.Corners()
	if x0 != 100 || y0 != 100 || x1 != 220 || y1 != 126 {
		t.Errorf("Unexpected union bbox: (%v, %v, %v, %v)", x0, y0, x1, y1)
	}
}

func TestBlockDetector_SectionTagging(t *testing.T) {
	detector := NewBlockDetector()
	runs := []model.TextRun{
		makeRun("앞머리 내용", 0, 100, 100, 200, 112),
		makeRun("◆ 주요 제목", 0, 100, 200, 200, 212),
		makeRun("주요 본문", 0, 100, 300, 200, 312),
		makeRun("■ 소제목", 0, 100, 400, 200, 412),
		makeRun("소 본문", 0, 100, 500, 200, 512),
	}

	blocks := detector.Detect(runs)

	if len(blocks) != 5 {
		t.Fatalf("Expected 5 blocks, got %d", len(blocks))
	}

	want := []model.SectionType{
		model.SectionStandalone,
		model.SectionMajorTitle,
		model.SectionMajorContent,
		model.SectionMinorTitle,
		model.SectionMinorContent,
	}
	for i, w := range want {
		if blocks[i].Section != w {
			t.Errorf("block %d: expected section %q, got %q", i, w, blocks[i].Section)
		}
	}
}

func TestBlockDetector_WordsNormalized(t *testing.T) {
	detector := NewBlockDetector()
	runs := []model.TextRun{
		makeRun("Hello, World! •", 0, 100, 100, 220, 112),
	}

	blocks := detector.Detect(runs)

	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}

	words := blocks[0].Words
	if len(words) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(words))
	}
	if words[0].Normalized != "hello" || words[1].Normalized != "world" {
		t.Errorf("Unexpected normalized words: %q, %q", words[0].Normalized, words[1].Normalized)
	}
	if words[0].Raw != "Hello" {
		t.Errorf("Expected raw 'Hello', got %q", words[0].Raw)
	}
}

func TestWords_ReadingOrder(t *testing.T) {
	runs := []model.TextRun{
		makeRun("second", 0, 100, 200, 150, 212),
		makeRun("third", 1, 100, 100, 150, 112),
		makeRun("first", 0, 100, 100, 150, 112),
	}

	words := Words(runs)

	if len(words) != 3 {
		t.Fatalf("Expected 3 words, got %d", len(words))
	}
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if words[i].Normalized != w {
			t.Errorf("word %d: expected %q, got %q", i, w, words[i].Normalized)
		}
	}
}

func TestWords_CommaSplit(t *testing.T) {
	runs := []model.TextRun{
		makeRun("안녕,하세요", 0, 100, 100, 180, 112),
	}

	words := Words(runs)

	if len(words) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(words))
	}
	if words[0].Normalized != "안녕" || words[1].Normalized != "하세요" {
		t.Errorf("Unexpected words: %q, %q", words[0].Normalized, words[1].Normalized)
	}

	// Sub-words share the source run's box.
	if words[0].BBox != words[1].BBox {
		t.Error("Expected sub-words to keep the source run's bbox")
	}
}

func TestWords_EmptyInput(t *testing.T) {
	if words := Words(nil); words != nil {
		t.Errorf("Expected nil, got %v", words)
	}
}
