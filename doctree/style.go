package doctree

import "fmt"

// StyleType discriminates the four style families a JPStyle can belong
// to, mirroring the teacher library's font.Descriptor family of small
// closed enums (see font/flags.go) rather than an open string.
type StyleType string

const (
	StyleParagraph StyleType = "paragraph"
	StyleCharacter StyleType = "character"
	StyleTable     StyleType = "table"
	StyleNumbering StyleType = "numbering"
)

// JPStyle is one named entry in the style registry. Props is the
// style's own property record (*ParagraphProps, *RunProps, ...); BasedOn
// names another style of the same Type whose resolved properties this
// style inherits from and may override.
type JPStyle struct {
	ID        string
	Type      StyleType
	Name      string
	BasedOn   string
	IsDefault bool
	Props     any
}

// StyleRegistry holds the named styles of a document, keyed by ID within
// each StyleType.
type StyleRegistry struct {
	styles map[StyleType]map[string]*JPStyle
}

// NewStyleRegistry creates an empty registry.
func NewStyleRegistry() *StyleRegistry {
	return &StyleRegistry{styles: make(map[StyleType]map[string]*JPStyle)}
}

// StyleCycleError is returned when a style's basedOn chain loops back on
// itself.
type StyleCycleError struct {
	ID string
}

func (e *StyleCycleError) Error() string {
	return fmt.Sprintf("doctree: style %q has a cyclic basedOn chain", e.ID)
}

// StyleNotFoundError is returned when a style ID or a basedOn reference
// does not resolve to a known style.
type StyleNotFoundError struct {
	ID string
}

func (e *StyleNotFoundError) Error() string {
	return fmt.Sprintf("doctree: style %q not found", e.ID)
}

// MultipleDefaultsError is returned by Add when a second default style is
// registered for the same Type.
type MultipleDefaultsError struct {
	Type StyleType
}

func (e *MultipleDefaultsError) Error() string {
	return fmt.Sprintf("doctree: multiple default styles for type %q", e.Type)
}

// Add registers s, returning MultipleDefaultsError if s.IsDefault and a
// default of the same Type is already registered.
func (r *StyleRegistry) Add(s *JPStyle) error {
	bucket, ok := r.styles[s.Type]
	if !ok {
		bucket = make(map[string]*JPStyle)
		r.styles[s.Type] = bucket
	}
	if s.IsDefault {
		for _, existing := range bucket {
			if existing.IsDefault {
				return &MultipleDefaultsError{Type: s.Type}
			}
		}
	}
	bucket[s.ID] = s
	return nil
}

// Get returns the style with the given type and ID.
func (r *StyleRegistry) Get(t StyleType, id string) (*JPStyle, error) {
	bucket, ok := r.styles[t]
	if !ok {
		return nil, &StyleNotFoundError{ID: id}
	}
	s, ok := bucket[id]
	if !ok {
		return nil, &StyleNotFoundError{ID: id}
	}
	return s, nil
}

// Default returns the default style of the given type, if one is
// registered.
func (r *StyleRegistry) Default(t StyleType) (*JPStyle, bool) {
	for _, s := range r.styles[t] {
		if s.IsDefault {
			return s, true
		}
	}
	return nil, false
}

// Merger combines a style's own Props with an inherited base Props
// record of the same concrete type, returning the merged record. Each
// concrete Props type (ParagraphProps, RunProps, ...) supplies its own
// Merger; fields left at their zero value in the override are expected
// to fall back to the base.
type Merger interface {
	MergeOnto(base any) any
}

// Resolve walks s's basedOn chain to the root, merging properties from
// least to most specific (root default first, s's own Props last), and
// returns the fully resolved property record. A cycle in the basedOn
// chain reports StyleCycleError instead of looping forever.
func (r *StyleRegistry) Resolve(t StyleType, id string) (any, error) {
	chain, err := r.resolveChain(t, id, make(map[string]bool))
	if err != nil {
		return nil, err
	}
	var resolved any
	for i := len(chain) - 1; i >= 0; i-- {
		if m, ok := chain[i].Props.(Merger); ok {
			resolved = m.MergeOnto(resolved)
		} else if chain[i].Props != nil {
			resolved = chain[i].Props
		}
	}
	return resolved, nil
}

// resolveChain returns the style chain from id up to (and including) its
// ultimate ancestor, ordered closest-first.
func (r *StyleRegistry) resolveChain(t StyleType, id string, visited map[string]bool) ([]*JPStyle, error) {
	if visited[id] {
		return nil, &StyleCycleError{ID: id}
	}
	visited[id] = true

	s, err := r.Get(t, id)
	if err != nil {
		return nil, err
	}
	chain := []*JPStyle{s}
	if s.BasedOn == "" {
		return chain, nil
	}
	rest, err := r.resolveChain(t, s.BasedOn, visited)
	if err != nil {
		return nil, err
	}
	return append(chain, rest...), nil
}
