package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/integrators"
)

type Registry struct {
	steppers map[string]func() integrators.Stepper
	aliases  map[string]string
	order    []string
}

func NewRegistry() *Registry {
	r := &Registry{
		steppers: make(map[string]func() integrators.Stepper),
		aliases:  make(map[string]string),
	}

	r.Register("euler", func() integrators.Stepper { return integrators.NewEuler() })
	r.Register("heun", func() integrators.Stepper { return integrators.NewHeun() })
	r.Register("rk4", func() integrators.Stepper { return integrators.NewRK4() })

	r.aliases["runge"] = "rk4"
	r.aliases["runge-kutta"] = "rk4"
	r.aliases["improved-euler"] = "heun"

	return r
}

// Register adds or replaces a stepper constructor.
func (r *Registry) Register(name string, fn func() integrators.Stepper) {
	if _, ok := r.steppers[name]; !ok {
		r.order = append(r.order, name)
	}
	r.steppers[name] = fn
}

func (r *Registry) Get(name string) (integrators.Stepper, error) {
	if canonical, ok := r.aliases[name]; ok {
		name = canonical
	}
	fn, ok := r.steppers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", dynamo.ErrUnknownMethod, name, r.Names())
	}
	return fn(), nil
}

// Names lists registered methods in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Aliases lists the alternative spellings accepted by Get.
func (r *Registry) Aliases() []string {
	names := make([]string, 0, len(r.aliases))
	for name := range r.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
