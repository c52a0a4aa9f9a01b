package postgres

import (
	"context"
	"fmt"
	"recipe/pkg/domain"
	"recipe/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

// CreateUser inserts a user. A zero ID is replaced with a random UUID.
func (p *PgSQL) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}

	var result PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrAlreadyExists
		}

		return nil, fmt.Errorf("could not store user into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.userBy(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.userBy(ctx, goqu.I("email").Eq(email))
}

func (p *PgSQL) userBy(ctx context.Context, where goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateUser sets the non-nil fields of updates and bumps updated_at.
func (p *PgSQL) UpdateUser(ctx context.Context, id domain.UserID, updates storage.UserUpdates) (*domain.User, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.PasswordHash != nil {
		rec["password"] = *updates.PasswordHash
	}
	if updates.IsActive != nil {
		rec["is_active"] = *updates.IsActive
	}
	if updates.IsStaff != nil {
		rec["is_staff"] = *updates.IsStaff
	}

	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update user in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Users(ctx context.Context, limit, offset uint) ([]domain.User, error) {
	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Order(goqu.I("email").Asc()).
		Limit(limit).
		Offset(offset).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch users from pg: %w", err)
	}

	return pgUsersToDomain(rows), nil
}
