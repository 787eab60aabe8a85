package smallvec

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	dumpHeader = color.New(color.FgCyan, color.Bold)
	dumpInline = color.New(color.FgGreen)
	dumpHeap   = color.New(color.FgYellow)
	dumpSlot   = color.New(color.Faint)
)

// Dump outputs the internal state of a vector in human-readable form
// (for debugging purposes).
//
// The header line shows storage mode, size and capacity; one line per slot
// follows, with the unused tail of the active region truncated to the
// terminal width's worth of lines when w is a terminal.
func (v *Vec[T, A]) Dump(w io.Writer) {
	limit := v.Cap()
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if _, rows, err := term.GetSize(int(f.Fd())); err == nil && rows > 2 && limit > rows-2 {
			limit = rows - 2
		}
	}
	mode := dumpInline.Sprint("inline")
	if !v.IsInline() {
		mode = dumpHeap.Sprint("heap")
	}
	dumpHeader.Fprintf(w, "smallvec %s  size=%d cap=%d (inline %d)\n",
		mode, v.Len(), v.Cap(), v.InlineCap())
	r := v.region()
	for i := 0; i < limit; i++ {
		if i < v.n {
			fmt.Fprintf(w, "  [%3d] %v\n", i, r[i])
		} else {
			dumpSlot.Fprintf(w, "  [%3d] ·\n", i)
		}
	}
	if limit < v.Cap() {
		dumpSlot.Fprintf(w, "  … %d more slots\n", v.Cap()-limit)
	}
}
