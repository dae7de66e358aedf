package model

import (
	"strings"
	"unicode"

	"github.com/notnil/chess"
	"go.uber.org/zap"
)

const (
	StartingRecord = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	SecondRecord   = "r1bqkb1r/pppp1ppp/2n2n2/4p3/2P5/2N2N2/PP1PPPPP/R1BQKB1R w KQkq - 0 1"

	recordFields = 6
)

var pieceLetters = map[rune]PieceType{
	'P': Pawn,
	'N': Knight,
	'B': Bishop,
	'R': Rook,
	'Q': Queen,
	'K': King,
}

// Record is a six-field position record. Only Placement drives the board;
// the remaining fields are kept verbatim.
type Record struct {
	Placement      string `json:"placement"`
	ActiveSide     string `json:"activeSide"`
	Castling       string `json:"castling"`
	EnPassant      string `json:"enPassant"`
	HalfmoveClock  string `json:"halfmoveClock"`
	FullmoveNumber string `json:"fullmoveNumber"`
}

func (r Record) String() string {
	return strings.Join([]string{r.Placement, r.ActiveSide, r.Castling, r.EnPassant, r.HalfmoveClock, r.FullmoveNumber}, " ")
}

// Ranks splits the placement field into its rank strings.
func (r Record) Ranks() []string {
	return splitFields(r.Placement, "/")
}

func ParseRecord(record string) (Record, error) {
	fields := splitFields(strings.TrimSpace(record), " ")
	if len(fields) != recordFields {
		return Record{}, &InvalidRecordError{Record: record, Fields: len(fields)}
	}
	return Record{
		Placement:      fields[0],
		ActiveSide:     fields[1],
		Castling:       fields[2],
		EnPassant:      fields[3],
		HalfmoveClock:  fields[4],
		FullmoveNumber: fields[5],
	}, nil
}

// splitFields splits on sep and drops trailing empty tokens.
func splitFields(s, sep string) []string {
	parts := strings.Split(s, sep)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// Decoder applies the placement field of a record to a board.
//
// Lowercase letters are placed as white and uppercase as black. Rank
// strings are applied in source order, rank string 0 to row 0.
type Decoder struct {
	Log *zap.SugaredLogger
	// Strict additionally rejects records that are not valid FEN,
	// including ranks that do not add up to eight files.
	Strict bool
}

func NewDecoder(log *zap.SugaredLogger, strict bool) *Decoder {
	return &Decoder{Log: log, Strict: strict}
}

// Decode is shorthand for a permissive decoder that logs nothing.
func Decode(board *Board, record string) (Record, error) {
	return (&Decoder{}).Decode(board, record)
}

// Decode validates the record shape and then places its pieces on board.
// The board is left untouched when an error is returned.
func (d *Decoder) Decode(board *Board, record string) (Record, error) {
	rec, err := ParseRecord(record)
	if err != nil {
		return Record{}, err
	}

	ranks := rec.Ranks()
	if len(ranks) != BoardSize {
		return Record{}, &InvalidRankCountError{Placement: rec.Placement, Ranks: len(ranks)}
	}

	if d.Strict {
		if _, err := chess.FEN(rec.String()); err != nil {
			return Record{}, &InvalidPlacementError{Record: record, Err: err}
		}
	}

	log := d.logger()
	for y, rank := range ranks {
		x := 0
		for _, c := range rank {
			if !unicode.IsLetter(c) {
				if n, ok := digitValue(c); ok {
					x += n
				} else {
					log.Warnw("ignoring character without digit value", "char", string(c), "rank", y)
				}
				continue
			}

			pos := Position{X: x, Y: y}
			x++

			side := SideBlack
			if unicode.IsLower(c) {
				side = SideWhite
			}
			kind, ok := pieceLetters[unicode.ToUpper(c)]
			if !ok {
				log.Warnw("skipping piece", "warning", UnrecognizedPieceLetterWarning{Letter: c, Position: pos}.Error())
				continue
			}
			if err := board.PlacePiece(pos.X, pos.Y, Piece{Type: kind, Side: side}); err != nil {
				log.Warnw("skipping piece", "warning", err.Error())
				continue
			}
			log.Debugw("piece placed", "side", side, "type", kind, "square", pos.Notation())
		}
	}
	return rec, nil
}

// digitValue returns the decimal value of any Unicode decimal digit. Each
// script's digits form a contiguous run starting at zero.
func digitValue(c rune) (int, bool) {
	if !unicode.IsDigit(c) {
		return 0, false
	}
	zero := c
	for unicode.IsDigit(zero - 1) {
		zero--
	}
	return int(c-zero) % 10, true
}

func (d *Decoder) logger() *zap.SugaredLogger {
	if d.Log == nil {
		return zap.NewNop().Sugar()
	}
	return d.Log
}

// EncodePlacement writes the board back as a placement field using the same
// letter case mapping as Decode.
func EncodePlacement(board *Board) string {
	var sb strings.Builder
	for y := 0; y < BoardSize; y++ {
		if y > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for x := 0; x < BoardSize; x++ {
			p := board.grid[x][y].Piece
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			letter := p.Type.Letter()
			if p.Side == SideWhite {
				letter = unicode.ToLower(letter)
			}
			sb.WriteRune(letter)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}
