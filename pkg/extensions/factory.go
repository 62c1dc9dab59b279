package extensions

import (
	"github.com/arthur-debert/docket/pkg/errors"
	"github.com/arthur-debert/docket/pkg/logging"
	"github.com/arthur-debert/docket/pkg/registry"
)

// Factory builds a Provider. Factories fail when the provider's
// required dependency is not available in the current environment.
type Factory func() (Provider, error)

// factories is the process-wide factory registry. Provider packages
// register themselves through init().
var factories = registry.New[Factory]()

// RegisterFactory registers a provider factory under name.
func RegisterFactory(name string, f Factory) error {
	return factories.Add(name, f)
}

// FactoryNames returns the names of all registered factories, sorted.
func FactoryNames() []string {
	return factories.Names()
}

// HasFactory checks whether a factory is registered under name.
func HasFactory(name string) bool {
	return factories.Has(name)
}

// Enable builds the named provider and appends it to chain. An unknown
// name or a failing factory yields a configuration error naming the
// provider; the chain is left untouched in both cases.
func Enable(chain *Chain, name string) error {
	log := logging.GetLogger("extensions")

	factory, err := factories.Get(name)
	if err != nil {
		return errors.Newf(errors.ErrProviderNotFound, "extension provider %q is not registered", name)
	}

	p, err := factory()
	if err != nil {
		return errors.Wrapf(err, errors.ErrProviderConfig, "extension provider %q cannot be enabled", name).
			WithDetail("provider", name)
	}

	chain.Register(p)
	log.Debug().Str("provider", name).Msg("Extension provider enabled")
	return nil
}
