/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package columns

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/rulego/rollwin/types"
	"github.com/rulego/rollwin/utils/cast"
)

// Derivation is a compiled column expression. It turns heterogeneous
// map rows into a numeric input column, e.g. "temperature * 1.8 + 32".
type Derivation struct {
	source  string
	program *vm.Program
}

// NewDerivation compiles the expression once for reuse across rows
func NewDerivation(expression string) (*Derivation, error) {
	options := []expr.Option{
		expr.AllowUndefinedVariables(),
		expr.AsFloat64(),
	}
	program, err := expr.Compile(expression, options...)
	if err != nil {
		return nil, fmt.Errorf("compile column expression %q: %w", expression, err)
	}
	return &Derivation{source: expression, program: program}, nil
}

// Eval evaluates the expression against one row
func (d *Derivation) Eval(row map[string]interface{}) (float64, error) {
	result, err := expr.Run(d.program, row)
	if err != nil {
		return 0, fmt.Errorf("evaluate column expression %q: %w", d.source, err)
	}
	v, ok := result.(float64)
	if !ok {
		return 0, fmt.Errorf("column expression %q returned non-numeric %T", d.source, result)
	}
	return v, nil
}

// Column evaluates the expression over every row and returns the
// resulting float64 input column
func (d *Derivation) Column(rows []map[string]interface{}) ([]float64, error) {
	out := make([]float64, len(rows))
	for i, row := range rows {
		v, err := d.Eval(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// Derive compiles expression and evaluates it over rows in one step
func Derive(rows []map[string]interface{}, expression string) ([]float64, error) {
	d, err := NewDerivation(expression)
	if err != nil {
		return nil, err
	}
	return d.Column(rows)
}

// Float64 extracts field from every row as a float64 column
func Float64(rows []map[string]interface{}, field string) ([]float64, error) {
	out := make([]float64, len(rows))
	for i, row := range rows {
		v, exists := row[field]
		if !exists {
			return nil, fmt.Errorf("row %d: field %q not found", i, field)
		}
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("row %d: field %q: %w", i, field, err)
		}
		out[i] = f
	}
	return out, nil
}

// Int64 extracts field from every row as an int64 column
func Int64(rows []map[string]interface{}, field string) ([]int64, error) {
	out := make([]int64, len(rows))
	for i, row := range rows {
		v, exists := row[field]
		if !exists {
			return nil, fmt.Errorf("row %d: field %q not found", i, field)
		}
		n, err := cast.ToInt64E(v)
		if err != nil {
			return nil, fmt.Errorf("row %d: field %q: %w", i, field, err)
		}
		out[i] = n
	}
	return out, nil
}

// Timestamps extracts field from every row as a wrapped timestamp
// column. Accepts time.Time values, RFC3339 strings and epoch numbers.
func Timestamps(rows []map[string]interface{}, field string) ([]types.Timestamp, error) {
	out := make([]types.Timestamp, len(rows))
	for i, row := range rows {
		v, exists := row[field]
		if !exists {
			return nil, fmt.Errorf("row %d: field %q not found", i, field)
		}
		at, err := cast.ToTimeE(v)
		if err != nil {
			return nil, fmt.Errorf("row %d: field %q: %w", i, field, err)
		}
		out[i] = types.TimestampOf(at)
	}
	return out, nil
}
