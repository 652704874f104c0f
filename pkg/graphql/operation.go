package graphql

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Operation is a single named query or mutation together with the fragments it spreads.
type Operation struct {
	name      string
	kind      ast.Operation
	document  string
	variables ast.VariableDefinitionList
}

// MustParse builds an Operation from a document holding exactly one operation.
// Fragment documents are appended to the operation document. It panics when the
// document does not parse or spreads a fragment nobody defines, so broken
// documents fail at package init rather than at request time.
func MustParse(document string, fragments ...string) *Operation {
	op, err := Parse(document, fragments...)
	if err != nil {
		panic(err)
	}
	return op
}

func Parse(document string, fragments ...string) (*Operation, error) {
	full := strings.TrimSpace(strings.Join(append([]string{document}, fragments...), "\n"))

	doc, err := parser.ParseQuery(&ast.Source{Name: "operation", Input: full})
	if err != nil {
		return nil, errors.Wrap(err, "graphql: parse document")
	}
	if len(doc.Operations) != 1 {
		return nil, errors.Errorf("graphql: expected exactly one operation, got %d", len(doc.Operations))
	}
	def := doc.Operations[0]
	if def.Name == "" {
		return nil, errors.New("graphql: operation must be named")
	}

	defined := make(map[string]*ast.FragmentDefinition, len(doc.Fragments))
	for _, f := range doc.Fragments {
		if _, dup := defined[f.Name]; dup {
			return nil, errors.Errorf("graphql: %s: fragment %q defined twice", def.Name, f.Name)
		}
		defined[f.Name] = f
	}
	if err := checkSpreads(def.Name, def.SelectionSet, defined, map[string]bool{}); err != nil {
		return nil, err
	}

	return &Operation{
		name:      def.Name,
		kind:      def.Operation,
		document:  full,
		variables: def.VariableDefinitions,
	}, nil
}

func checkSpreads(opName string, set ast.SelectionSet, defined map[string]*ast.FragmentDefinition, visiting map[string]bool) error {
	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.Field:
			if err := checkSpreads(opName, s.SelectionSet, defined, visiting); err != nil {
				return err
			}
		case *ast.InlineFragment:
			if err := checkSpreads(opName, s.SelectionSet, defined, visiting); err != nil {
				return err
			}
		case *ast.FragmentSpread:
			frag, ok := defined[s.Name]
			if !ok {
				return errors.Errorf("graphql: %s: undefined fragment %q", opName, s.Name)
			}
			if visiting[s.Name] {
				return errors.Errorf("graphql: %s: fragment %q spreads itself", opName, s.Name)
			}
			visiting[s.Name] = true
			if err := checkSpreads(opName, frag.SelectionSet, defined, visiting); err != nil {
				return err
			}
			delete(visiting, s.Name)
		}
	}
	return nil
}

func (o *Operation) Name() string {
	return o.name
}

func (o *Operation) Document() string {
	return o.document
}

func (o *Operation) IsMutation() bool {
	return o.kind == ast.Mutation
}

// missingVariables lists non-null variables without default that are absent from vars.
func (o *Operation) missingVariables(vars map[string]any) []string {
	var missing []string
	for _, v := range o.variables {
		if v.Type == nil || !v.Type.NonNull || v.DefaultValue != nil {
			continue
		}
		if val, ok := vars[v.Variable]; !ok || val == nil {
			missing = append(missing, v.Variable)
		}
	}
	return missing
}
