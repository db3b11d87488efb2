// Package contracts validates response bodies against the API's JSON shapes.
package contracts

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const baseURL = "https://finqa.local/schemas/"

// Schema names an embedded response contract.
type Schema string

const (
	User            Schema = "user"
	UserList        Schema = "user_list"
	Login           Schema = "login"
	Account         Schema = "account"
	AccountList     Schema = "account_list"
	Balance         Schema = "balance"
	Category        Schema = "category"
	CategoryList    Schema = "category_list"
	Transaction     Schema = "transaction"
	TransactionList Schema = "transaction_list"
	Error           Schema = "error"
	TokenError      Schema = "token_error"
)

// All lists every contract.
var All = []Schema{
	User, UserList, Login,
	Account, AccountList, Balance,
	Category, CategoryList,
	Transaction, TransactionList,
	Error, TokenError,
}

// Result is the outcome of one validation. Errors holds every violation,
// formatted as "<instance location>: <message>".
type Result struct {
	OK     bool
	Errors []string
}

func (r Result) String() string {
	if r.OK {
		return "ok"
	}
	return strings.Join(r.Errors, "\n")
}

var compiled = sync.OnceValues(compileAll)

func compileAll() (map[Schema]*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		data, err := schemaFS.ReadFile("schemas/" + e.Name())
		if err != nil {
			return nil, err
		}
		if err := c.AddResource(baseURL+e.Name(), bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", e.Name(), err)
		}
	}

	out := make(map[Schema]*jsonschema.Schema, len(All))
	for _, name := range All {
		sch, err := c.Compile(baseURL + string(name) + ".json")
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		out[name] = sch
	}
	return out, nil
}

// Validate checks body against the named contract and collects every
// violation.
func Validate(name Schema, body []byte) Result {
	schemas, err := compiled()
	if err != nil {
		return Result{Errors: []string{err.Error()}}
	}
	sch, ok := schemas[name]
	if !ok {
		return Result{Errors: []string{fmt.Sprintf("unknown contract %q", name)}}
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return Result{Errors: []string{"body is not valid JSON: " + err.Error()}}
	}

	err = sch.Validate(doc)
	if err == nil {
		return Result{OK: true}
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return Result{Errors: []string{err.Error()}}
	}
	return Result{Errors: violations(verr)}
}

// violations flattens the cause tree to its leaves.
func violations(root *jsonschema.ValidationError) []string {
	seen := map[string]bool{}
	var out []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			msg := loc + ": " + e.Message
			if !seen[msg] {
				seen[msg] = true
				out = append(out, msg)
			}
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(root)
	sort.Strings(out)
	return out
}
