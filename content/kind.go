package content

//go:generate go tool go-enum --marshal --names --nocase

// Kind of a content node, names are the ones used in documents.
// ENUM(document, paragraph, table, row, cell, text)
type Kind int
