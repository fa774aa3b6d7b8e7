package chainfile

import "strings"

var nameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	" ", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// FileName converts a chain name into a file name in the chain directory.
// Unsafe characters become dashes or are dropped, and ".toml" is appended
// when missing. Empty names yield "".
func FileName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, ".toml")
	name = strings.Trim(nameReplacer.Replace(name), "-.")
	if name == "" {
		return ""
	}
	return name + ".toml"
}
