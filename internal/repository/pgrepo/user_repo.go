package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/repository/repoargs"
	"github.com/fsdevblog/groph-eats/pkg/uow"
)

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, created_at, updated_at, uuid, username, encrypted_password,
	role, merchant_id, influencer_id`

// CreateUser создает юзера в базе данных. В случае конфликта юзернейма возвращает ошибку domain.ErrDuplicateKey,
// во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		INSERT INTO users (username, encrypted_password, role, merchant_id, influencer_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		user.Username, user.Password, user.Role, user.MerchantID, user.InfluencerID,
	)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return dbUser, nil
}

// FindUserByUsername ищет юзера по его юзернейму. Возвращает ошибку domain.ErrRecordNotFound если запись не найдена,
// во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE username = $1`, username)

	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by username %s", username)
	}
	return dbUser, nil
}

// AttachMerchant привязывает юзера к мерчанту как владельца.
func (u *UserRepository) AttachMerchant(ctx context.Context, userID, merchantID int64) error {
	tag, err := u.db.Exec(ctx, `
		UPDATE users SET merchant_id = $2, updated_at = now() WHERE id = $1`, userID, merchantID)
	if err != nil {
		return convertErr(err, "attaching merchant %d to user %d", merchantID, userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "attaching merchant %d to user %d", merchantID, userID)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var m domain.User
	err := row.Scan(
		&m.ID, &m.CreatedAt, &m.UpdatedAt, &m.UUID, &m.Username, &m.Password,
		&m.Role, &m.MerchantID, &m.InfluencerID,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}
