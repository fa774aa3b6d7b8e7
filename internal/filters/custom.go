package filters

import "strings"

// Custom is hand-written filter syntax. With Manual set, the builder leaves
// its output labels alone, which allows fragments like asplit=3[a][b][c].
type Custom struct {
	base
	Command string
	Manual  bool
}

func NewCustom(command string) *Custom {
	return &Custom{base: newBase(), Command: command}
}

var customCleaner = strings.NewReplacer(
	", ", ",",
	"\n", "",
	"\r", "",
	`"`, "'",
)

// Fragment returns the command flattened to one line. Double quotes become
// single quotes so the expression survives being quoted on a command line.
func (c *Custom) Fragment() string {
	return strings.TrimSpace(customCleaner.Replace(c.Command))
}

func (c *Custom) ManualOutputLabels() bool { return c.Manual }

func (*Custom) Type() string        { return TypeCustom }
func (*Custom) DisplayName() string { return "Custom FFmpeg" }
