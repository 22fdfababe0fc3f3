package suggest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// ruleFile is the on-disk shape of a rule table, shared by YAML and CUE.
type ruleFile struct {
	Default  string `yaml:"default,omitempty" json:"default,omitempty"`
	Fallback string `yaml:"fallback,omitempty" json:"fallback,omitempty"`
	Rules    []Rule `yaml:"rules" json:"rules"`
}

// ruleFileSchema closes the CUE rule file so typos are rejected, matching
// the strict YAML decoder.
const ruleFileSchema = `
#RuleFile: {
	default?:  string & !=""
	fallback?: string & !=""
	rules: [...{
		keyword:    string & !=""
		suggestion: string & !=""
	}] & [_, ...]
}
`

// LoadTable reads a rule table from a .yaml/.yml or .cue file.
//
// Keywords are lower-cased on load. Missing default or fallback messages
// are taken from DefaultTable.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read rules file: %w", err)
	}

	var f ruleFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		f, err = parseYAML(data)
	case ".cue":
		f, err = parseCUE(path, data)
	default:
		return Table{}, fmt.Errorf("unsupported rules file extension %q (want .yaml, .yml or .cue)", ext)
	}
	if err != nil {
		return Table{}, err
	}

	t := f.table()
	if err := t.Validate(); err != nil {
		return Table{}, fmt.Errorf("invalid rules file: %w", err)
	}
	return t, nil
}

func parseYAML(data []byte) (ruleFile, error) {
	var f ruleFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&f); err != nil {
		return ruleFile{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return f, nil
}

func parseCUE(path string, data []byte) (ruleFile, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(ruleFileSchema)
	if err := schema.Err(); err != nil {
		return ruleFile{}, fmt.Errorf("compiling rule schema: %w", err)
	}

	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return ruleFile{}, fmt.Errorf("failed to parse CUE: %w", err)
	}

	v = schema.LookupPath(cue.ParsePath("#RuleFile")).Unify(v)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return ruleFile{}, fmt.Errorf("invalid rules file: %w", err)
	}

	var f ruleFile
	if err := v.Decode(&f); err != nil {
		return ruleFile{}, fmt.Errorf("decoding CUE rules: %w", err)
	}
	return f, nil
}

func (f ruleFile) table() Table {
	def := DefaultTable()
	t := Table{
		Rules:    make([]Rule, len(f.Rules)),
		Default:  f.Default,
		Fallback: f.Fallback,
	}
	for i, r := range f.Rules {
		t.Rules[i] = Rule{
			Keyword:    strings.ToLower(strings.TrimSpace(r.Keyword)),
			Suggestion: strings.TrimSpace(r.Suggestion),
		}
	}
	if t.Default == "" {
		t.Default = def.Default
	}
	if t.Fallback == "" {
		t.Fallback = def.Fallback
	}
	return t
}
