package suite

import (
	"fmt"

	"digital.vasic.matchers/pkg/matcher"
)

// Build maps a definition onto a matcher predicate. Unknown kinds and
// malformed payloads are rejected here, at construction, so that they
// never surface as a runtime mismatch.
func Build(def Definition) (matcher.Predicate, error) {
	switch def.Kind {
	case "equal_to":
		return matcher.EqualTo(def.Expected), nil
	case "nil":
		return matcher.Nil(), nil
	case "contains":
		return matcher.Contains(def.Expected), nil
	case "has_key":
		return matcher.HasKey(def.Expected), nil
	case "in":
		if len(def.Values) == 0 {
			return nil, fmt.Errorf("check %q: kind \"in\" requires values", def.Name)
		}
		return matcher.In(def.Values), nil
	case "starts_with":
		s, err := expectText(def)
		if err != nil {
			return nil, err
		}
		return matcher.StartsWith(s), nil
	case "ends_with":
		s, err := expectText(def)
		if err != nil {
			return nil, err
		}
		return matcher.EndsWith(s), nil
	case "matches_pattern":
		s, err := expectText(def)
		if err != nil {
			return nil, err
		}
		return matcher.MatchesPattern(s), nil
	case "equal_ignoring_case":
		s, err := expectText(def)
		if err != nil {
			return nil, err
		}
		return matcher.EqualToIgnoringCase(s), nil
	case "equal_ignoring_whitespace":
		s, err := expectText(def)
		if err != nil {
			return nil, err
		}
		return matcher.EqualToIgnoringWhiteSpace(s), nil
	case "close_to":
		center, ok := toFloat64(def.Expected)
		if !ok {
			return nil, fmt.Errorf(
				"check %q: kind \"close_to\" requires a numeric expected value",
				def.Name,
			)
		}
		return matcher.CloseTo(center, def.Tolerance), nil
	case "is", "not", "every_item":
		inner, err := singleChild(def)
		if err != nil {
			return nil, err
		}
		switch def.Kind {
		case "is":
			return matcher.Is(inner), nil
		case "not":
			return matcher.Not(inner), nil
		default:
			return matcher.EveryItem(inner), nil
		}
	case "all_of", "any_of":
		return foldChildren(def)
	default:
		return nil, fmt.Errorf("check %q: unknown kind %q", def.Name, def.Kind)
	}
}

// expectText requires a string expected payload.
func expectText(def Definition) (string, error) {
	s, ok := def.Expected.(string)
	if !ok {
		return "", fmt.Errorf(
			"check %q: kind %q requires a string expected value",
			def.Name, def.Kind,
		)
	}
	return s, nil
}

// singleChild requires exactly one nested definition.
func singleChild(def Definition) (matcher.Predicate, error) {
	if len(def.Children) != 1 {
		return nil, fmt.Errorf(
			"check %q: kind %q requires exactly one child, got %d",
			def.Name, def.Kind, len(def.Children),
		)
	}
	return Build(def.Children[0])
}

// foldChildren nests pairwise combinators over two or more children.
func foldChildren(def Definition) (matcher.Predicate, error) {
	if len(def.Children) < 2 {
		return nil, fmt.Errorf(
			"check %q: kind %q requires at least two children, got %d",
			def.Name, def.Kind, len(def.Children),
		)
	}

	acc, err := Build(def.Children[0])
	if err != nil {
		return nil, err
	}
	for _, child := range def.Children[1:] {
		next, err := Build(child)
		if err != nil {
			return nil, err
		}
		if def.Kind == "all_of" {
			acc = matcher.AllOf(acc, next)
		} else {
			acc = matcher.AnyOf(acc, next)
		}
	}
	return acc, nil
}

// toFloat64 converts YAML/JSON numeric payloads to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
