package version

const (
	// Version of LID
	Version = "v0.0.0"
	// Name of the project
	Name = "LanguageIdentification"
)

// Server header returned by LID
var Server = Name + "/" + Version
