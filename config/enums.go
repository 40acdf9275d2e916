package config

//go:generate go tool go-enum --marshal --names --nocase

// Specification of resolved styles output.
// ENUM(yaml, tree)
type OutputFmt int

// Ext returns file extension for output of this format.
func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtTree:
		return ".txt"
	default:
		return ".yaml"
	}
}
