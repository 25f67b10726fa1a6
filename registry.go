package foodnet

import "github.com/pkg/errors"

// The registries let Load rebuild a Network from its topology document without
// the root package importing the subpackages that define the concrete types.
// Each subpackage registers its types from an init function, keyed by
// TypeString; importing the subpackage is what makes its types loadable.

var (
	layerTypes    = make(map[string]func() Layer)
	costFuncTypes = make(map[string]func() CostFunction)

	defaultInitializer Initializer
)

// RegisterLayer makes a Layer type available to Load under the given name.
// The provided function must return a blank value of the type, ready to have
// its configuration unmarshalled into it.
func RegisterLayer(name string, f func() Layer) error {
	if f == nil || f() == nil {
		return ErrRegisterNilReturn
	} else if _, ok := layerTypes[name]; ok {
		return errors.Errorf("Layer type %q has already been registered", name)
	}

	layerTypes[name] = f
	return nil
}

// RegisterCostFunction makes a CostFunction available to Load under the given
// name.
func RegisterCostFunction(name string, f func() CostFunction) error {
	if f == nil || f() == nil {
		return ErrRegisterNilReturn
	} else if _, ok := costFuncTypes[name]; ok {
		return errors.Errorf("CostFunction type %q has already been registered", name)
	}

	costFuncTypes[name] = f
	return nil
}

// SetDefaultInitializer sets the Initializer used for Adjustable layers when
// neither the layer nor the Network provides one. It is called by the
// "initializers" subpackage.
func SetDefaultInitializer(init Initializer) {
	defaultInitializer = init
}

func layerType(name string) (func() Layer, error) {
	f, ok := layerTypes[name]
	if !ok {
		return nil, errors.Errorf("no Layer registered with type %q (missing import?)", name)
	}

	return f, nil
}

func costFuncType(name string) (func() CostFunction, error) {
	f, ok := costFuncTypes[name]
	if !ok {
		return nil, errors.Errorf("no CostFunction registered with type %q (missing import?)", name)
	}

	return f, nil
}
