// Package suite loads declarative check definitions from YAML or JSON
// files, builds matcher predicates from them, and evaluates them
// against named values.
package suite

// Definition describes a single declarative check. Leaf kinds carry
// an expected payload; combinator kinds compose their children.
type Definition struct {
	// Name is the human-readable check name.
	Name string `json:"name" yaml:"name"`

	// Target is the name of the value the check applies to.
	Target string `json:"target" yaml:"target"`

	// Kind selects the predicate (e.g., "equal_to", "contains",
	// "close_to", "all_of").
	Kind string `json:"kind" yaml:"kind"`

	// Expected is the expected payload for single-value kinds.
	Expected any `json:"expected,omitempty" yaml:"expected,omitempty"`

	// Values holds the declared collection for the "in" kind.
	Values []any `json:"values,omitempty" yaml:"values,omitempty"`

	// Tolerance is the inclusive bound for the "close_to" kind.
	Tolerance float64 `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`

	// Children holds nested definitions for combinator kinds
	// ("is", "not", "every_item", "all_of", "any_of").
	Children []Definition `json:"children,omitempty" yaml:"children,omitempty"`
}

// Result pairs a check definition with its evaluation outcome.
type Result struct {
	// Name is the check name.
	Name string `json:"name"`

	// Target is the name of the value that was checked.
	Target string `json:"target"`

	// Kind is the predicate kind that was evaluated.
	Kind string `json:"kind"`

	// Passed indicates whether the check succeeded.
	Passed bool `json:"passed"`

	// Message holds the mismatch diagnostic, empty on success.
	Message string `json:"message,omitempty"`

	// Error holds the evaluation or build error text, if any.
	Error string `json:"error,omitempty"`
}
