package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	// ErrSchemaInvalid reports a schema that failed to compile.
	ErrSchemaInvalid = errors.New("slackfmt: schema invalid")
	// ErrSchemaValidation is matched by every PayloadValidationError.
	ErrSchemaValidation = errors.New("slackfmt: payload does not match schema")
)

// ValidationIssue is one schema failure at a JSON pointer into the payload.
type ValidationIssue struct {
	Location string
	Message  string
}

func (i ValidationIssue) String() string {
	location := "#" + strings.TrimPrefix(strings.TrimSpace(i.Location), "#")
	if i.Message == "" {
		return location
	}
	return location + ": " + i.Message
}

// PayloadValidationError lists the issues found in a rejected payload.
type PayloadValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	switch {
	case len(e.Issues) > 0:
		parts := make([]string, len(e.Issues))
		for i, issue := range e.Issues {
			parts[i] = issue.String()
		}
		return strings.Join(parts, "; ")
	case e.Cause != nil:
		return e.Cause.Error()
	default:
		return ErrSchemaValidation.Error()
	}
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrSchemaValidation
}

// Issues returns the issues carried by err. Errors that are not schema
// failures yield a single location-less issue.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadValidationError
	if errors.As(err, &payloadErr) {
		return payloadErr.Issues
	}
	var schemaErr *jsonschema.ValidationError
	if errors.As(err, &schemaErr) {
		return leafIssues(schemaErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

// ValidateDocument checks that payload, a decoded JSON value, has the shape
// of a rich text document.
func ValidateDocument(payload any) error {
	return documentSchema.validate(payload)
}

// ValidateLayout checks that payload has the shape of one layout block.
func ValidateLayout(payload any) error {
	return layoutSchema.validate(payload)
}

// ValidateLayouts checks that payload is a block list, a {"blocks": [...]}
// message or a single block.
func ValidateLayouts(payload any) error {
	return layoutsSchema.validate(payload)
}

// ValidatePayload validates payload against an ad hoc schema. An empty
// schema accepts everything.
func ValidatePayload(schema map[string]any, payload any) error {
	if len(schema) == 0 {
		return nil
	}
	compiled, err := compile(schema)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return check(compiled, payload)
}

// lazySchema compiles its definition on first use.
type lazySchema struct {
	build func() map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

func (s *lazySchema) validate(payload any) error {
	s.once.Do(func() {
		s.compiled, s.err = compile(s.build())
	})
	if s.err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaInvalid, s.err)
	}
	return check(s.compiled, payload)
}

func check(schema *jsonschema.Schema, payload any) error {
	err := schema.Validate(payload)
	if err == nil {
		return nil
	}
	return &PayloadValidationError{Issues: Issues(err), Cause: err}
}

func compile(schema map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}

// leafIssues flattens the cause tree to its leaves, dropping duplicates that
// anyOf branches report for the same location.
func leafIssues(root *jsonschema.ValidationError) []ValidationIssue {
	issues := []ValidationIssue{}
	seen := map[ValidationIssue]struct{}{}

	stack := []*jsonschema.ValidationError{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == nil {
			continue
		}
		if len(node.Causes) > 0 {
			for i := len(node.Causes) - 1; i >= 0; i-- {
				stack = append(stack, node.Causes[i])
			}
			continue
		}
		issue := ValidationIssue{
			Location: strings.TrimSpace(node.InstanceLocation),
			Message:  strings.TrimSpace(node.Message),
		}
		if _, dup := seen[issue]; dup {
			continue
		}
		seen[issue] = struct{}{}
		issues = append(issues, issue)
	}
	return issues
}
