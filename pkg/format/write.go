package format

import (
	"os"
	"strings"

	"github.com/arthur-debert/docket/pkg/errors"
	"github.com/arthur-debert/docket/pkg/logging"
)

const (
	htmlHeader = "<html>\n<head><meta charset=\"utf-8\"></head>\n<body>\n"
	htmlFooter = "\n</body>\n</html>\n"
)

// WriteHTML wraps pre-rendered sections in an HTML document shell and
// writes the result to path.
func WriteHTML(path string, sections ...string) error {
	var b strings.Builder
	b.WriteString(htmlHeader)
	b.WriteString(strings.Join(sections, "\n"))
	b.WriteString(htmlFooter)

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write HTML document to %s", path).
			WithDetail("path", path)
	}

	log := logging.GetLogger("format")
	log.Debug().
		Str("path", path).
		Int("sections", len(sections)).
		Msg("HTML document written")
	return nil
}
