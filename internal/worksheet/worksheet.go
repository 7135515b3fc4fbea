// Package worksheet holds the state of the spring calculator form: the raw
// text of every input, the last result labels and the force curve currently
// on display. Every edit re-plots, the way a live form would.
package worksheet

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/alexiusacademia/hooke/internal/input"
	"github.com/alexiusacademia/hooke/internal/spring"
)

// Field identifies one text input of the form
type Field int

const (
	Force Field = iota
	Displacement
	SpringConstant
	InitialDisplacement
	FinalDisplacement
)

// Fields lists the inputs in form order
var Fields = []Field{Force, Displacement, SpringConstant, InitialDisplacement, FinalDisplacement}

func (f Field) String() string {
	switch f {
	case Force:
		return "force"
	case Displacement:
		return "displacement"
	case SpringConstant:
		return "k"
	case InitialDisplacement:
		return "x1"
	case FinalDisplacement:
		return "x2"
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// Label is the human-readable caption of the field
func (f Field) Label() string {
	switch f {
	case Force:
		return "Force F (N)"
	case Displacement:
		return "Displacement x (m)"
	case SpringConstant:
		return "Spring constant k (N/m)"
	case InitialDisplacement:
		return "Initial displacement x1 (m)"
	case FinalDisplacement:
		return "Final displacement x2 (m)"
	}
	return f.String()
}

// ErrInvalidInput indicates that a required field does not hold a number.
var ErrInvalidInput = errors.New("worksheet: invalid input")

const (
	msgInvalidK    = "Error: Enter valid numbers for Force and Displacement."
	msgZeroX       = "Error: Displacement cannot be zero."
	msgInvalidWork = "Error: Enter valid numbers for k, x1, and x2."

	// Stiffness plotted when only a displacement is known
	fallbackK = 1.0
)

// Worksheet is the form state. The zero value is not usable, call New.
type Worksheet struct {
	text      map[Field]string
	points    int
	precision int

	kLabel    string
	workLabel string
	curve     spring.ForceCurve
}

// New creates an empty worksheet that plots with the given number of points
// and formats results with the given number of decimals
func New(points, precision int) (*Worksheet, error) {
	if points < 2 {
		return nil, fmt.Errorf("%w: got %d", spring.ErrTooFewPoints, points)
	}
	if precision < 0 {
		precision = 0
	}

	ws := &Worksheet{
		text:      make(map[Field]string, len(Fields)),
		points:    points,
		precision: precision,
	}
	ws.plot(fallbackK, 0)
	return ws, nil
}

// Text returns the raw text of a field
func (ws *Worksheet) Text(f Field) string {
	return ws.text[f]
}

// Set replaces the text of a field and refreshes the plot
func (ws *Worksheet) Set(f Field, text string) {
	ws.text[f] = text
	if f == Displacement || f == SpringConstant || f == Force {
		ws.refresh()
	}
}

// Value parses a field
func (ws *Worksheet) Value(f Field) (float64, error) {
	return input.ParseNumber(f.String(), ws.text[f])
}

// KLabel is the text of the spring constant result line
func (ws *Worksheet) KLabel() string { return ws.kLabel }

// WorkLabel is the text of the work result line
func (ws *Worksheet) WorkLabel() string { return ws.workLabel }

// Curve is the force curve currently on display
func (ws *Worksheet) Curve() spring.ForceCurve { return ws.curve }

// CalculateSpringConstant solves for k from the force and displacement
// fields. On success the result is copied into the k field and the curve is
// redrawn up to |x|.
func (ws *Worksheet) CalculateSpringConstant() (spring.SpringConstantResult, error) {
	vals, err := input.ParseAll(
		input.Field{Name: Force.String(), Text: ws.text[Force]},
		input.Field{Name: Displacement.String(), Text: ws.text[Displacement]},
	)
	if err != nil {
		ws.kLabel = msgInvalidK
		return spring.SpringConstantResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	res, err := spring.SpringConstant(vals[0], vals[1])
	if err != nil {
		ws.kLabel = msgZeroX
		return res, err
	}

	ws.kLabel = fmt.Sprintf("Spring Constant k = %.*f N/m", ws.precision, res.K)
	// Set would re-plot with the rounded k; plot with the exact one instead
	ws.text[SpringConstant] = strconv.FormatFloat(res.K, 'f', ws.precision, 64)
	ws.plot(res.K, math.Abs(res.Displacement))
	return res, nil
}

// CalculateWorkDone integrates the spring force between x1 and x2 and
// redraws the curve up to max(|x1|, |x2|)
func (ws *Worksheet) CalculateWorkDone() (spring.WorkResult, error) {
	vals, err := input.ParseAll(
		input.Field{Name: SpringConstant.String(), Text: ws.text[SpringConstant]},
		input.Field{Name: InitialDisplacement.String(), Text: ws.text[InitialDisplacement]},
		input.Field{Name: FinalDisplacement.String(), Text: ws.text[FinalDisplacement]},
	)
	if err != nil {
		ws.workLabel = msgInvalidWork
		return spring.WorkResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	res := spring.WorkDone(vals[0], vals[1], vals[2])
	ws.workLabel = fmt.Sprintf("Work Done W = %.*f Joules", ws.precision, res.Work)
	ws.plot(res.K, math.Max(math.Abs(res.X1), math.Abs(res.X2)))
	return res, nil
}

// refresh redraws after an edit: with a valid k the curve runs to |x|
// (an unparseable x plots as 0), with only a valid x it uses k = 1,
// otherwise the previous curve stays.
func (ws *Worksheet) refresh() {
	x, xErr := ws.Value(Displacement)
	if k, err := ws.Value(SpringConstant); err == nil {
		ws.plot(k, math.Abs(x))
		return
	}
	if xErr == nil {
		ws.plot(fallbackK, math.Abs(x))
	}
}

func (ws *Worksheet) plot(k, xMax float64) {
	// points is validated in New
	curve, _ := spring.NewForceCurve(k, xMax, ws.points)
	ws.curve = curve
}
