// Package output draws interaction snapshots for line-oriented front ends,
// either as a text board or as JSON.
package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-go/internal/config"
	"github.com/lgbarn/chess-go/internal/interaction"
)

// SnapshotWriter is the interface for writing board snapshots to output.
type SnapshotWriter interface {
	// WriteSnapshot writes one frame.
	WriteSnapshot(snap interaction.Snapshot) error

	// WriteMessage writes a line of free text, such as a command reply.
	WriteMessage(msg string) error
}

// NewSnapshotWriter returns the writer selected by the display settings.
func NewSnapshotWriter(w io.Writer, cfg *config.DisplayConfig) SnapshotWriter {
	if cfg.JSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes snapshots as a text board followed by a status line.
type TextWriter struct {
	w           io.Writer
	pal         *palette
	unicode     bool
	coordinates bool
}

// NewTextWriter creates a text writer.
func NewTextWriter(w io.Writer, cfg *config.DisplayConfig) *TextWriter {
	return &TextWriter{
		w:           w,
		pal:         newPalette(cfg.Color),
		unicode:     cfg.Unicode,
		coordinates: cfg.Coordinates,
	}
}

// WriteSnapshot writes the board and status line in one write.
func (tw *TextWriter) WriteSnapshot(snap interaction.Snapshot) error {
	var sb strings.Builder
	drawBoard(&sb, &snap, tw.pal, tw.unicode, tw.coordinates)

	line := statusLine(&snap)
	if snap.Phase == interaction.GameOver {
		line = tw.pal.banner.Sprint(line)
	}
	sb.WriteString(line)
	sb.WriteByte('\n')

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// WriteMessage writes msg on its own line.
func (tw *TextWriter) WriteMessage(msg string) error {
	_, err := io.WriteString(tw.w, msg+"\n")
	return err
}

// JSONWriter writes each snapshot as one JSON object per line.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{enc: json.NewEncoder(w)}
}

// WriteSnapshot encodes snap.
func (jw *JSONWriter) WriteSnapshot(snap interaction.Snapshot) error {
	return jw.enc.Encode(SnapshotToJSON(snap))
}

// WriteMessage encodes msg as {"message": msg}.
func (jw *JSONWriter) WriteMessage(msg string) error {
	return jw.enc.Encode(JSONMessage{Message: msg})
}
