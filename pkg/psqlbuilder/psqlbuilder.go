// Package psqlbuilder wraps squirrel with the postgres placeholder format so
// repositories do not repeat PlaceholderFormat on every query.
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select starts a postgres SELECT builder.
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert starts a postgres INSERT builder.
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update starts a postgres UPDATE builder.
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete starts a postgres DELETE builder.
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
