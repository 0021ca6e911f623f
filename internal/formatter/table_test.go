package formatter

import (
	"strings"
	"testing"

	"recpipe/internal/models"
)

func TestRenderTable_Alignment(t *testing.T) {
	table := RenderTable(
		[]string{"Headline", "Status"},
		[][]string{
			{"Chip Makers Race to Feed the AI Boom", "Active"},
			{"Short", "Archived"},
		},
	)

	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4", len(lines))
	}

	// Every rendered line is the same display width.
	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width {
			t.Errorf("line %d width = %d, want %d: %q", i, len(line), width, line)
		}
	}

	if !strings.HasPrefix(lines[1], "| ---") {
		t.Errorf("separator row = %q", lines[1])
	}

	if !strings.Contains(lines[2], "Chip Makers Race to Feed the AI Boom") {
		t.Errorf("data row missing headline: %q", lines[2])
	}
}

func TestRenderTable_WideCharacters(t *testing.T) {
	table := RenderTable(
		[]string{"Name", "Role"},
		[][]string{
			{"盧卡斯", "passenger"},
			{"TK-421", "intruder"},
		},
	)

	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")

	// Display-width alignment: every row ends at the same column even though
	// the CJK name has fewer runes than its width.
	for _, line := range lines {
		if !strings.HasSuffix(line, "|") {
			t.Errorf("row not closed: %q", line)
		}
	}
}

func TestRenderTable_RaggedRows(t *testing.T) {
	table := RenderTable([]string{"A", "B"}, [][]string{{"only one cell"}})

	if !strings.Contains(table, "only one cell") {
		t.Errorf("missing cell content: %q", table)
	}

	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	if got := strings.Count(lines[2], "|"); got != 3 {
		t.Errorf("ragged row has %d pipes, want 3: %q", got, lines[2])
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if got := RenderTable(nil, nil); got != "" {
		t.Errorf("empty table = %q, want empty string", got)
	}
}

func TestPairRows(t *testing.T) {
	rows := PairRows([]models.Pair{
		{"headline", "Active"},
		{nil, "Archived"},
		{42, "Active"},
	})

	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}

	if rows[0][0] != "headline" || rows[0][1] != "Active" {
		t.Errorf("rows[0] = %v", rows[0])
	}

	if rows[1][0] != "" {
		t.Errorf("nil value should render empty, got %q", rows[1][0])
	}

	if rows[2][0] != "42" {
		t.Errorf("non-string value should render via Sprintf, got %q", rows[2][0])
	}
}
