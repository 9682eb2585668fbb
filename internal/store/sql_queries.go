package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/streama/models"
	sq "github.com/Masterminds/squirrel"
)

const usersTable = "users"

// userColumns is the projection returned by every lookup and RETURNING
// clause. The password hash is appended only on request.
var userColumns = []string{
	"id",
	"email",
	"first_name",
	"last_name",
	"phone",
	"bio",
	"avatar",
	"role",
	"tmdb_key",
	"trakt_key",
	"last_login_at",
	"preferences",
	"created_at",
	"updated_at",
	"deleted_at",
}

const passwordColumn = "password"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func selectColumns(withPassword bool) []string {
	if !withPassword {
		return userColumns
	}
	cols := make([]string, 0, len(userColumns)+1)
	cols = append(cols, userColumns...)
	return append(cols, passwordColumn)
}

func returningUser() string {
	return "RETURNING " + strings.Join(userColumns, ", ")
}

func notDeleted() sq.Eq {
	return sq.Eq{"deleted_at": nil}
}

// buildFindUserQuery selects a single user by column = value.
func buildFindUserQuery(column string, value any, opts models.FindOptions) (string, []any, error) {
	q := psql.Select(selectColumns(opts.WithPassword)...).
		From(usersTable).
		Where(sq.Eq{column: value})

	if !opts.WithDeleted {
		q = q.Where(notDeleted())
	}

	return toSQL(q.Limit(1))
}

func buildFindAllUsersQuery() (string, []any, error) {
	return toSQL(psql.Select(userColumns...).
		From(usersTable).
		Where(notDeleted()).
		OrderBy("created_at ASC"))
}

// buildCreateUserQuery expects user.Password to be hashed already.
func buildCreateUserQuery(user models.User) (string, []any, error) {
	return toSQL(psql.Insert(usersTable).
		Columns(
			"id",
			"email",
			passwordColumn,
			"first_name",
			"last_name",
			"phone",
			"bio",
			"avatar",
			"role",
			"tmdb_key",
			"trakt_key",
			"preferences",
		).
		Values(
			user.ID,
			user.Email,
			user.Password,
			user.FirstName,
			user.LastName,
			user.Phone,
			user.Bio,
			user.Avatar,
			user.Role,
			user.TMDBKey,
			user.TraktKey,
			user.Preferences,
		).
		Suffix(returningUser()))
}

// buildSaveUserQuery writes every mutable column. The password column is
// included only when user.Password is set.
func buildSaveUserQuery(user models.User) (string, []any, error) {
	set := sq.Eq{
		"email":         user.Email,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"phone":         user.Phone,
		"bio":           user.Bio,
		"avatar":        user.Avatar,
		"role":          user.Role,
		"tmdb_key":      user.TMDBKey,
		"trakt_key":     user.TraktKey,
		"last_login_at": user.LastLoginAt,
		"preferences":   user.Preferences,
		"deleted_at":    user.DeletedAt,
		"updated_at":    sq.Expr("NOW()"),
	}
	if user.Password != "" {
		set[passwordColumn] = user.Password
	}

	return toSQL(psql.Update(usersTable).
		SetMap(set).
		Where(sq.Eq{"id": user.ID}).
		Suffix(returningUser()))
}

func buildUpdateLastLoginQuery(id string, at time.Time) (string, []any, error) {
	return toSQL(psql.Update(usersTable).
		Set("last_login_at", at).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Where(notDeleted()))
}

func buildSoftDeleteUserQuery(id string) (string, []any, error) {
	return toSQL(psql.Update(usersTable).
		Set("deleted_at", sq.Expr("NOW()")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Where(notDeleted()))
}

func buildRecoverUserQuery(id string) (string, []any, error) {
	return toSQL(psql.Update(usersTable).
		Set("deleted_at", nil).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Where(sq.NotEq{"deleted_at": nil}).
		Suffix(returningUser()))
}

func buildHardDeleteUserQuery(id string) (string, []any, error) {
	return toSQL(psql.Delete(usersTable).Where(sq.Eq{"id": id}))
}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
