// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)

// StatusChange is the predicate function for statuschange builders.
type StatusChange func(*sql.Selector)

// Upvote is the predicate function for upvote builders.
type Upvote func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
