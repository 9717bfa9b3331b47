package repository

import (
	"fmt"
	"strings"
)

// FieldUpdate is one column assignment of a partial update. Columns are
// checked against the repository's mutable column set before use.
type FieldUpdate struct {
	Column string
	Value  any
}

// updateBuilder assembles a parameterised UPDATE statement.
type updateBuilder struct {
	table string
	sets  []string
	where []string
	args  []any
}

func newUpdate(table string) *updateBuilder {
	return &updateBuilder{table: table}
}

func (b *updateBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *updateBuilder) Set(column string, v any) *updateBuilder {
	b.sets = append(b.sets, column+" = "+b.arg(v))
	return b
}

// Where adds a predicate; cond holds one %s verb for the placeholder.
func (b *updateBuilder) Where(cond string, v any) *updateBuilder {
	b.where = append(b.where, fmt.Sprintf(cond, b.arg(v)))
	return b
}

func (b *updateBuilder) SQL(returning string) string {
	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(b.table)
	sb.WriteString(" SET ")
	sb.WriteString(strings.Join(b.sets, ", "))
	if len(b.where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.where, " AND "))
	}
	if returning != "" {
		sb.WriteString(" RETURNING ")
		sb.WriteString(returning)
	}
	return sb.String()
}

func (b *updateBuilder) Args() []any {
	return b.args
}

func applyUpdates(b *updateBuilder, mutable map[string]bool, updates []FieldUpdate) error {
	if len(updates) == 0 {
		return fmt.Errorf("no fields to update")
	}
	for _, u := range updates {
		if !mutable[u.Column] {
			return fmt.Errorf("column %q is not writable on %s", u.Column, b.table)
		}
		b.Set(u.Column, u.Value)
	}
	return nil
}
