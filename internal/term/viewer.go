package term

import (
	"errors"
	"fmt"

	"github.com/benbeisheim/boardview-backend/internal/model"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Viewer shows one board in a terminal and cycles through a list of records.
type Viewer struct {
	screen  tcell.Screen
	theme   Theme
	decoder *model.Decoder
	log     *zap.SugaredLogger
	records []string
	current int
	board   *model.Board
	status  string
}

func NewViewer(s tcell.Screen, theme Theme, decoder *model.Decoder, log *zap.SugaredLogger, records []string) (*Viewer, error) {
	if len(records) == 0 {
		return nil, errors.New("viewer needs at least one record")
	}
	v := &Viewer{
		screen:  s,
		theme:   theme,
		decoder: decoder,
		log:     log,
		records: records,
	}
	if err := v.load(0); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Viewer) Board() *model.Board { return v.board }

func (v *Viewer) Status() string { return v.status }

func (v *Viewer) load(i int) error {
	board := model.NewBoard()
	rec, err := v.decoder.Decode(board, v.records[i])
	if err != nil {
		return err
	}
	v.board = board
	v.current = i
	v.status = fmt.Sprintf("%s to move, %d pieces", rec.ActiveSide, board.Count())
	return nil
}

// Draw renders the current board and status line
func (v *Viewer) Draw() {
	v.screen.Clear()
	drawBoard(v.screen, v.board, v.theme)
	drawStatus(v.screen, v.status, v.theme)
	v.screen.Show()
}

// HandleEvent applies one event and reports whether the viewer should exit
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			next := (v.current + 1) % len(v.records)
			if err := v.load(next); err != nil {
				v.log.Warnw("failed to load record", "record", v.records[next], "error", err)
				v.status = err.Error()
			}
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return false
		}
		x, y := ev.Position()
		pos, err := BoardLayout.SquareAt(x, y)
		if err != nil {
			return false
		}
		piece, _ := v.board.PieceAt(pos.X, pos.Y)
		if piece == nil {
			v.status = pos.Notation() + ": empty"
		} else {
			v.status = fmt.Sprintf("%s: %s", pos.Notation(), piece)
		}
	}
	return false
}

// Run is the event loop, it returns once the user quits
func (v *Viewer) Run() {
	v.screen.EnableMouse()
	v.Draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil || v.HandleEvent(ev) {
			return
		}
		v.Draw()
	}
}
