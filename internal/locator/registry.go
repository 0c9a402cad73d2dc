package locator

import (
	"fmt"
	"sort"
)

// Name is the symbolic name of an element inside one registry
type Name string

// Entry binds a Name to its selector
type Entry struct {
	Name     Name
	Selector string
}

// Registry maps symbolic element names to stable selectors for one page or component.
// It is fixed at construction and never touches the browser.
type Registry struct {
	owner     string
	selectors map[Name]string
}

// DataTest returns the attribute selector for a data-test name, e.g. [data-test="nav-cart"]
func DataTest(name string) string {
	return fmt.Sprintf(`[data-test=%q]`, name)
}

// Define is shorthand for an Entry addressed by its data-test attribute
func Define(name Name, dataTest string) Entry {
	return Entry{Name: name, Selector: DataTest(dataTest)}
}

// NewRegistry creates a registry owned by the named page or component.
// It panics on a duplicate or empty name since registries are declared statically.
func NewRegistry(owner string, entries ...Entry) Registry {
	selectors := make(map[Name]string, len(entries))
	for _, e := range entries {
		if e.Name == "" || e.Selector == "" {
			panic(fmt.Sprintf("locator: %s: empty name or selector", owner))
		}
		if _, exists := selectors[e.Name]; exists {
			panic(fmt.Sprintf("locator: %s: duplicate name %q", owner, e.Name))
		}
		selectors[e.Name] = e.Selector
	}

	return Registry{
		owner:     owner,
		selectors: selectors,
	}
}

// Owner returns the name of the page or component owning the registry
func (r Registry) Owner() string {
	return r.owner
}

// Selector returns the selector registered for name.
// Asking for an undeclared name is a programming error and panics.
func (r Registry) Selector(name Name) string {
	selector, ok := r.selectors[name]
	if !ok {
		panic(fmt.Sprintf("locator: %s: unknown name %q", r.owner, name))
	}
	return selector
}

// Has reports whether name is declared in the registry
func (r Registry) Has(name Name) bool {
	_, ok := r.selectors[name]
	return ok
}

// Names returns every declared name in sorted order
func (r Registry) Names() []Name {
	names := make([]Name, 0, len(r.selectors))
	for name := range r.selectors {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Len returns the number of declared names
func (r Registry) Len() int {
	return len(r.selectors)
}
