package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/skiff-sh/scaffold/pkg/except"
)

//go:embed schema/definition.schema.json
var schemaBytes []byte

var printer = message.NewPrinter(language.English)

// ValidationResult the outcome of validating a definition against the schema.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// Err nil if the result is valid, otherwise an error wrapping
// except.ErrInvalid that lists every issue.
func (v *ValidationResult) Err() error {
	if v.Valid {
		return nil
	}

	msgs := make([]string, 0, len(v.Issues))
	for _, iss := range v.Issues {
		msgs = append(msgs, iss.String())
	}

	return fmt.Errorf("%w definition: %s", except.ErrInvalid, strings.Join(msgs, "; "))
}

type ValidationIssue struct {
	// Path JSON pointer into the definition, e.g. "/files/0/path".
	Path    string
	Message string
	Keyword string
}

func (v ValidationIssue) String() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling schema JSON: %w", err)
	}

	c := jsonschema.NewCompiler()
	err = c.AddResource("definition.schema.json", doc)
	if err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}

	return c.Compile("definition.schema.json")
})

// Validate checks raw YAML (or JSON) against the definition schema. The error
// return is reserved for unparsable input and schema failures; schema
// violations are reported through the result.
func Validate(data []byte) (*ValidationResult, error) {
	sch, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var raw any
	err = yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	// Round trip through encoding/json so numbers and maps are in the shape
	// the validator expects.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = sch.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &ValidationResult{Issues: extractIssues(ve)}, nil
}

// ValidateFile reads and validates the definition at fp.
func ValidateFile(fp string) (*ValidationResult, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, err
	}
	return Validate(b)
}

func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectIssues(ve, &issues)
	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}

	seen := make(map[string]struct{}, len(issues))
	out := make([]ValidationIssue, 0, len(issues))
	for _, v := range issues {
		key := v.Path + "|" + v.Keyword + "|" + v.Message
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}

// collectIssues walks the error tree down to the leaves, which carry the
// property level detail.
func collectIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) > 0 {
		for _, c := range ve.Causes {
			collectIssues(c, issues)
		}
		return
	}

	p := ""
	if len(ve.InstanceLocation) > 0 {
		p = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	keyword := ""
	msg := ""
	if ve.ErrorKind != nil {
		if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
			keyword = kw[len(kw)-1]
		}
		msg = ve.ErrorKind.LocalizedString(printer)
	}

	switch keyword {
	case "", "allOf", "oneOf", "$ref":
		return
	}

	*issues = append(*issues, ValidationIssue{
		Path:    p,
		Message: msg,
		Keyword: keyword,
	})
}
