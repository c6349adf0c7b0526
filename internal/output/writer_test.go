package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/interaction"
	"github.com/lgbarn/chess-go/internal/testutil"
)

func plainDisplay() *config.DisplayConfig {
	cfg := config.NewDisplayConfig()
	cfg.Color = false
	return cfg
}

func snapshotAfter(t *testing.T, fen string, clicks ...string) interaction.Snapshot {
	t.Helper()
	c, err := interaction.New(interaction.WithStartFEN(fen))
	testutil.AssertNoError(t, err)
	for _, name := range clicks {
		sq := testutil.Sq(name)
		testutil.AssertNoError(t, c.SquareClicked(sq.File, sq.Rank), "click %s", name)
	}
	return c.Snapshot()
}

const initialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// TestTextWriter_InitialBoard verifies the full text layout
func TestTextWriter_InitialBoard(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf, plainDisplay())

	testutil.AssertNoError(t, w.WriteSnapshot(snapshotAfter(t, initialFEN)))

	want := strings.Join([]string{
		"8  r  n  b  q  k  b  n  r ",
		"7  p  p  p  p  p  p  p  p ",
		"6  .  .  .  .  .  .  .  . ",
		"5  .  .  .  .  .  .  .  . ",
		"4  .  .  .  .  .  .  .  . ",
		"3  .  .  .  .  .  .  .  . ",
		"2  P  P  P  P  P  P  P  P ",
		"1  R  N  B  Q  K  B  N  R ",
		"   a  b  c  d  e  f  g  h ",
		"White to move",
		"",
	}, "\n")
	testutil.AssertEqual(t, buf.String(), want)
}

// TestTextWriter_Markers verifies selection and destination markers
func TestTextWriter_Markers(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		clicks []string
		lines  []string
	}{
		{
			name:   "selected pawn",
			fen:    initialFEN,
			clicks: []string{"e2"},
			lines: []string{
				"3  .  .  .  .  *  .  .  . ",
				"2  P  P  P  P [P] P  P  P ",
				"White to move, e2 can go to e3 e4",
			},
		},
		{
			name:   "capture target",
			fen:    "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
			clicks: []string{"e4"},
			lines: []string{
				"5  .  .  . (p) *  .  .  . ",
				"4  .  .  .  . [P] .  .  . ",
			},
		},
		{
			name:   "promotion prompt",
			fen:    testutil.PromotionFEN,
			clicks: []string{"e7", "e8"},
			lines: []string{
				"8  .  .  .  .  *  .  .  . ",
				"White promotes e7-e8: choose q, r, b or n",
			},
		},
		{
			name:  "check",
			fen:   "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1",
			lines: []string{"Black to move (check)"},
		},
		{
			name:  "game over",
			fen:   testutil.StalemateFEN,
			lines: []string{"Game over: stalemate (1/2-1/2)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewTextWriter(&buf, plainDisplay())
			testutil.AssertNoError(t, w.WriteSnapshot(snapshotAfter(t, tt.fen, tt.clicks...)))

			for _, line := range tt.lines {
				testutil.AssertContains(t, buf.String(), line+"\n")
			}
		})
	}
}

// TestTextWriter_Options verifies colour, unicode and coordinate settings
func TestTextWriter_Options(t *testing.T) {
	snap := snapshotAfter(t, initialFEN, "e2")

	var plain, coloured, unicode, bare bytes.Buffer

	NewTextWriter(&plain, plainDisplay()).WriteSnapshot(snap)
	testutil.AssertNotContains(t, plain.String(), "\x1b[")

	NewTextWriter(&coloured, config.NewDisplayConfig()).WriteSnapshot(snap)
	testutil.AssertContains(t, coloured.String(), "\x1b[")

	ucfg := plainDisplay()
	ucfg.Unicode = true
	NewTextWriter(&unicode, ucfg).WriteSnapshot(snap)
	testutil.AssertContains(t, unicode.String(), "♔")
	testutil.AssertContains(t, unicode.String(), "♜")

	bcfg := plainDisplay()
	bcfg.Coordinates = false
	NewTextWriter(&bare, bcfg).WriteSnapshot(snap)
	testutil.AssertTrue(t, strings.HasPrefix(bare.String(), " r  n  b "), "board should start without a rank label")
	testutil.AssertNotContains(t, bare.String(), " a  b  c ")
}

// TestJSONWriter_WriteSnapshot verifies JSON writer outputs correct format
func TestJSONWriter_WriteSnapshot(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	snap := snapshotAfter(t, testutil.PromotionFEN, "e7", "e8")
	testutil.AssertNoError(t, w.WriteSnapshot(snap))

	var got JSONSnapshot
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &got))

	want := JSONSnapshot{
		Board:       "8/4P3/8/8/8/8/k7/4K3",
		ToMove:      "White",
		Phase:       "awaiting-promotion",
		Highlighted: []string{"e8"},
		Promotion: &JSONPromotion{
			From:    "e7",
			To:      "e8",
			Choices: []string{"Queen", "Rook", "Bishop", "Knight"},
		},
		Status: "in progress",
		Result: "*",
	}
	testutil.AssertEqual(t, got, want)
}

// TestJSONWriter_Selection verifies selection fields
func TestJSONWriter_Selection(t *testing.T) {
	js := SnapshotToJSON(snapshotAfter(t, initialFEN, "e2", "e4", "g8"))

	testutil.AssertEqual(t, js.Selected, "g8")
	testutil.AssertEqual(t, js.Highlighted, []string{"f6", "h6"})
	testutil.AssertEqual(t, js.LastMove, "e2e4")
	testutil.AssertEqual(t, js.ToMove, "Black")
}

// TestWriteMessage verifies free text replies in both formats
func TestWriteMessage(t *testing.T) {
	var text, js bytes.Buffer

	testutil.AssertNoError(t, NewTextWriter(&text, plainDisplay()).WriteMessage("illegal move"))
	testutil.AssertEqual(t, text.String(), "illegal move\n")

	testutil.AssertNoError(t, NewJSONWriter(&js).WriteMessage("illegal move"))
	testutil.AssertEqual(t, js.String(), `{"message":"illegal move"}`+"\n")
}

// TestNewSnapshotWriter verifies the display setting picks the writer
func TestNewSnapshotWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := plainDisplay()

	_, isText := NewSnapshotWriter(&buf, cfg).(*TextWriter)
	testutil.AssertTrue(t, isText, "text writer by default")

	cfg.JSON = true
	_, isJSON := NewSnapshotWriter(&buf, cfg).(*JSONWriter)
	testutil.AssertTrue(t, isJSON, "JSON writer when requested")
}
