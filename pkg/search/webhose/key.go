package webhose

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/bornholm/rango/pkg/search"
	"github.com/pkg/errors"
)

// DefaultKeyFile is the credential file read when no other is configured.
// Relative paths resolve against the process working directory.
const DefaultKeyFile = "search.key"

// LoadAPIKey returns the trimmed first line of the given credential file.
// An empty file is not an error here; the key is checked when it is used.
func LoadAPIKey(filename string) (string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", errors.Wrapf(search.ErrConfiguration, "could not open credential file '%s': %s", filename, err)
	}

	defer file.Close()

	line, err := bufio.NewReader(file).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrapf(search.ErrConfiguration, "could not read credential file '%s': %s", filename, err)
	}

	return strings.TrimSpace(line), nil
}
