package buildinfo

// Name is the product name shown in window titles and splash footers.
const Name = "geekstat"

// Version and Commit are set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = ""
)

// Short returns a compact identifier for titles and logging.
func Short() string {
	s := Name + " " + Version
	if Commit != "" {
		s += " (" + Commit + ")"
	}
	return s
}
