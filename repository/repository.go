// Package repository holds what the postgres and sqlite stores share.
package repository

import (
	"errors"
	"strings"
)

// ErrDuplicate is returned when an insert or update hits a unique constraint.
var ErrDuplicate = errors.New("duplicate key")

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePrefix turns a user prefix into a LIKE pattern matching it literally.
// Queries using it must declare ESCAPE '\'.
func LikePrefix(prefix string) string {
	return likeEscaper.Replace(prefix) + "%"
}
