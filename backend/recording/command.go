package recording

import "fmt"

// CommandType identifies the type of a recorded command.
type CommandType uint8

const (
	CmdLine CommandType = iota
	CmdQuad
	CmdCircle
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdLine:   "Line",
	CmdQuad:   "Quad",
	CmdCircle: "Circle",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all recorded commands. Commands
// are typed structs rather than a serialized form so tests and tools can
// inspect them directly.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// LineCommand records a Line driver call.
type LineCommand struct {
	X0, Y0, X1, Y1 float64
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

func (c LineCommand) String() string {
	return fmt.Sprintf("Line(%g, %g, %g, %g)", c.X0, c.Y0, c.X1, c.Y1)
}

// QuadCommand records a Quad driver call. Corners keep the caller's order.
type QuadCommand struct {
	X0, Y0, X1, Y1, X2, Y2, X3, Y3 float64
}

// Type implements Command.
func (QuadCommand) Type() CommandType { return CmdQuad }

func (c QuadCommand) String() string {
	return fmt.Sprintf("Quad(%g, %g, %g, %g, %g, %g, %g, %g)",
		c.X0, c.Y0, c.X1, c.Y1, c.X2, c.Y2, c.X3, c.Y3)
}

// CircleCommand records a Circle driver call.
type CircleCommand struct {
	CX, CY, R float64
}

// Type implements Command.
func (CircleCommand) Type() CommandType { return CmdCircle }

func (c CircleCommand) String() string {
	return fmt.Sprintf("Circle(%g, %g, %g)", c.CX, c.CY, c.R)
}
