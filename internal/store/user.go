package store

import (
	"context"

	"nsleadprovider/internal/database"
	"nsleadprovider/internal/model"
)

const userColumns = `id, email, password_hash, role, created_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.Querier, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrap("GetUserByID", err)
	}
	return u, nil
}

// GetUserByEmail 以 email 精確比對 (大小寫敏感)
func GetUserByEmail(ctx context.Context, db database.Querier, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrap("GetUserByEmail", err)
	}
	return u, nil
}

// CreateUser 新增使用者並回填 id 與 created_at；email 重複時回傳 ErrDuplicate
func CreateUser(ctx context.Context, db database.Querier, u *model.User) (*model.User, error) {
	if u.Role == "" {
		u.Role = model.RoleUser
	}
	row := db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, role)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		u.Email,
		u.PasswordHash,
		u.Role,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, wrap("CreateUser", err)
	}
	return u, nil
}

// UpdateUserRole 供管理指令變更角色，查無 email 時回傳 ErrNotFound
func UpdateUserRole(ctx context.Context, db database.Querier, email string, role model.Role) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET role = $1 WHERE email = $2`,
		role,
		email,
	)
	if err != nil {
		return wrap("UpdateUserRole", err)
	}
	if tag.RowsAffected() == 0 {
		return wrap("UpdateUserRole", ErrNotFound)
	}
	return nil
}
