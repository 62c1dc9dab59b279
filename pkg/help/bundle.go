package help

import (
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/docket/pkg/content"
	"github.com/arthur-debert/docket/pkg/errors"
	"github.com/arthur-debert/docket/pkg/logging"
)

// LoadBundle reads a YAML documentation bundle mapping topic names to
// loosely-shaped content and attaches each entry to its topic string.
// Attaching merges, so loading a second bundle for the same topic
// extends its documentation rather than replacing it.
func (h *Helper) LoadBundle(r io.Reader) error {
	var raw map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil
		}
		return errors.Wrap(err, errors.ErrDocParse, "cannot parse documentation bundle")
	}

	topics := make([]string, 0, len(raw))
	for topic := range raw {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	for _, topic := range topics {
		if err := h.store.Attach(topic, content.FromValue(raw[topic])); err != nil {
			return err
		}
	}

	log := logging.GetLogger("help")
	log.Debug().
		Int("topics", len(topics)).
		Msg("Documentation bundle loaded")
	return nil
}

// LoadBundleFile loads a YAML documentation bundle from path.
func (h *Helper) LoadBundleFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDocParse, "cannot open documentation bundle %s", path)
	}
	defer func() { _ = f.Close() }()

	if err := h.LoadBundle(f); err != nil {
		return errors.Wrapf(err, errors.ErrDocParse, "in bundle %s", path)
	}
	return nil
}
