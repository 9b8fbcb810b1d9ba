package lib

// Status is the tracked lifecycle state of a launched process.
type Status int

const (
	StatusRunning Status = iota
	StatusSuspended
	StatusTerminated
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "Running"
	case StatusSuspended:
		return "Suspended"
	case StatusTerminated:
		return "Terminated"
	}
	return "Unknown"
}

// CmdLine is one parsed command: an argument vector plus launch options.
// A non-nil Next links the second stage of a two-command pipeline.
type CmdLine struct {
	Args           []string // Args[0] is the program name
	InputRedirect  string   // "<" target, empty when absent
	OutputRedirect string   // ">" target, empty when absent
	Blocking       bool     // foreground command: wait before the next prompt
	Next           *CmdLine // second pipeline stage, nil when no pipe
}

// Name returns the program name, or "" for an empty record.
func (c *CmdLine) Name() string {
	if c == nil || len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

// String renders the command roughly as typed, for logs.
func (c *CmdLine) String() string {
	if c == nil {
		return ""
	}
	out := ""
	for i, a := range c.Args {
		if i > 0 {
			out += " "
		}
		out += a
	}
	if c.InputRedirect != "" {
		out += " < " + c.InputRedirect
	}
	if c.OutputRedirect != "" {
		out += " > " + c.OutputRedirect
	}
	if c.Next != nil {
		out += " | " + c.Next.String()
	}
	if !c.Blocking && c.Next == nil {
		out += " &"
	}
	return out
}
