package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/magroulette/archive"
)

// Filter is a compiled expression evaluated against search documents
type Filter struct {
	program    *vm.Program
	expression string
}

// Compile compiles a boolean expression. Variables available to the
// expression are Identifier, Title, Year, Creator, Description,
// Collections and Subjects, plus the helpers titleHas, creatorHas,
// hasCollection and hasSubject.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(newEnv(archive.Magazine{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     err.Error(),
			Err:        err,
		}
	}

	return &Filter{
		program:    program,
		expression: expression,
	}, nil
}

// Match evaluates the filter against one record
func (f *Filter) Match(m archive.Magazine) (bool, error) {
	result, err := expr.Run(f.program, newEnv(m))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Identifier: m.Identifier,
			Err:        err,
		}
	}

	matched, _ := result.(bool)
	return matched, nil
}

// Apply returns the records that match. Records the expression cannot be
// evaluated against are excluded and reported in errs.
func (f *Filter) Apply(records []archive.Magazine) (matched []archive.Magazine, errs []error) {
	matched = make([]archive.Magazine, 0, len(records))
	for _, m := range records {
		ok, err := f.Match(m)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			matched = append(matched, m)
		}
	}
	return matched, errs
}

// String returns the original expression
func (f *Filter) String() string {
	return f.expression
}

// newEnv builds the evaluation environment for a record
func newEnv(m archive.Magazine) map[string]any {
	title := m.Title.String()
	creator := m.Creator.String()

	return map[string]any{
		"Identifier":  m.Identifier,
		"Title":       title,
		"Year":        m.YearNumber(),
		"Creator":     creator,
		"Description": m.Description.String(),
		"Collections": []string(m.Collection),
		"Subjects":    []string(m.Subject),

		"titleHas": func(substr string) bool {
			return containsFold(title, substr)
		},
		"creatorHas": func(substr string) bool {
			return containsFold(creator, substr)
		},
		"hasCollection": func(name string) bool {
			return m.Collection.Contains(name)
		},
		"hasSubject": func(subject string) bool {
			for _, s := range m.Subject {
				if containsFold(s, subject) {
					return true
				}
			}
			return false
		},
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
