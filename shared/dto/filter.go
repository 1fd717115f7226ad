package dto

import (
	"fmt"
	"maps"
	"strings"
)

// FilterOperator compares a column with a single named argument.
type FilterOperator string

const (
	FilterOperatorEq        FilterOperator = "eq"
	FilterOperatorLike      FilterOperator = "like"
	FilterOperatorLessEq    FilterOperator = "less_eq"
	FilterOperatorGreaterEq FilterOperator = "greater_eq"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[FilterOperator]string{
	FilterOperatorEq:        "=",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreaterEq: ">=",
}

// likeEscaper makes user input match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Clause is anything that renders to a named-parameter SQL condition.
type Clause interface {
	GetWhereClause() (string, map[string]any)
}

// Filter is a single column condition. ArgName defaults to Field and must be unique
// within one query.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator FilterOperator
	Table    string
}

// GetWhereClause renders the condition. Like is a case-insensitive substring match.
// An unknown operator renders nothing.
func (f Filter) GetWhereClause() (string, map[string]any) {
	column := f.Field
	if f.Table != "" {
		column = f.Table + "." + f.Field
	}

	argName := f.ArgName
	if argName == "" {
		argName = f.Field
	}

	if f.Operator == FilterOperatorLike {
		pattern := "%" + likeEscaper.Replace(fmt.Sprint(f.Value)) + "%"

		return fmt.Sprintf("%s ILIKE :%s", column, argName), map[string]any{argName: pattern}
	}

	op, ok := comparisons[f.Operator]
	if !ok {
		return "", map[string]any{}
	}

	return fmt.Sprintf("%s %s :%s", column, op, argName), map[string]any{argName: f.Value}
}

// FilterGroup joins its clauses with Operator. Empty clauses are skipped, so an empty
// group renders nothing.
type FilterGroup struct {
	Filters  []Clause
	Operator string
}

func (g FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	parts := make([]string, 0, len(g.Filters))

	for _, filter := range g.Filters {
		where, arg := filter.GetWhereClause()
		if where == "" {
			continue
		}

		parts = append(parts, where)
		maps.Copy(args, arg)
	}

	if len(parts) == 0 {
		return "", args
	}

	operator := g.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return "(" + strings.Join(parts, " "+operator+" ") + ")", args
}
