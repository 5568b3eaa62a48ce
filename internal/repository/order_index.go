package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// nextOrderIndexExpr builds the order_index value for an insert: the
// explicit value when supplied, otherwise max(order_index)+1 computed
// inside the same statement (0 for an empty table). Keeping the
// computation in the insert avoids two concurrent creates reading the
// same stale maximum. The table name is an internal constant, never
// caller input.
func nextOrderIndexExpr(table string, explicit *int) clause.Expr {
	return gorm.Expr(
		"COALESCE(?, (SELECT COALESCE(MAX(order_index), -1) + 1 FROM "+table+"))",
		explicit,
	)
}
