package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"cargotrail/contexts/identity-access/auth-service/domain/entities"
	domainerrors "cargotrail/contexts/identity-access/auth-service/domain/errors"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Models lists the gorm models this adapter owns, for schema migration.
func Models() []any {
	return []any{&userModel{}}
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (entities.User, bool, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, false, nil
		}
		return entities.User{}, false, r.storeErr(err)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) CreateUser(ctx context.Context, user entities.User) (entities.User, error) {
	row := userModelFromEntity(user)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.User{}, domainerrors.ErrUsernameTaken
		}
		return entities.User{}, r.storeErr(err)
	}
	return row.toEntity(), nil
}

type userModel struct {
	ID           uint   `gorm:"column:id;primaryKey"`
	Username     string `gorm:"column:username;type:varchar(50);uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password;type:varchar(100);not null"`
	Role         string `gorm:"column:role;type:varchar(20);not null"`
}

func (userModel) TableName() string {
	return "users"
}

func userModelFromEntity(user entities.User) userModel {
	return userModel{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
	}
}

func (m userModel) toEntity() entities.User {
	return entities.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
	}
}

// SystemClock satisfies the clock port with wall time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// storeErr folds context expiry into the unavailable sentinel and logs
// anything else. Cancellations are normal under client disconnect, so only
// genuinely unexpected store failures reach the log.
func (r *Repository) storeErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domainerrors.ErrStoreUnavailable
	}
	r.logger.Error("auth store operation failed",
		"event", "auth_store_failed",
		"module", "identity-access/auth-service",
		"layer", "adapters",
		"error", err,
	)
	return err
}
