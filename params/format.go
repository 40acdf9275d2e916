package params

//go:generate go tool go-enum --marshal --names --nocase

// Format names an authoring syntax for a parameter document, auto means
// detect from file name and content.
// ENUM(auto, json, yaml, hcl, ion)
type Format int
