package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SQLSTATE codes of the constraints on the locations table.
const (
	sqlStateNotNull = "23502"
	sqlStateCheck   = "23514"
)

// sqlState returns the SQLSTATE of a driver error, or "" when err does not
// carry one. pgx errors expose it through SQLState.
func sqlState(err error) string {
	var coded interface{ SQLState() string }
	if errors.As(err, &coded) {
		return coded.SQLState()
	}

	return ""
}

func isNotNullConstraintViolation(err error) bool {
	if sqlState(err) == sqlStateNotNull {
		return true
	}
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "null value") || strings.Contains(msg, sqlStateNotNull)
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) || sqlState(err) == sqlStateCheck {
		return true
	}

	return strings.Contains(err.Error(), sqlStateCheck)
}
