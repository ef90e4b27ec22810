package repository

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// psql builds statements with ? placeholders, which gorm rebinds for the active dialect
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// ownerMembersQuery selects the membership edges of every workspace owned by ownerID,
// excluding the owner's own edges.
func ownerMembersQuery(columns string, ownerID uuid.UUID) sq.SelectBuilder {
	return psql.Select(columns).
		From("user_workspace uw").
		Join("workspaces w ON w.id = uw.workspace_id").
		Where(sq.Eq{"w.owner_id": ownerID}).
		Where(sq.NotEq{"uw.user_id": ownerID})
}
