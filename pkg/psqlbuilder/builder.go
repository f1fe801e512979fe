// Package psqlbuilder squirrel-билдеры с плейсхолдерами PostgreSQL ($1, $2, ...)
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select начинает SELECT запрос
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert начинает INSERT запрос
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update начинает UPDATE запрос
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete начинает DELETE запрос
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
