// Package store 基于 gorm 的持久化层。短码与别名的唯一性由数据库唯一索引保证。
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shorturl-analytics/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

// Store 实现链接、点击与用户的读写
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

// New 创建存储实例
func New(db *gorm.DB, log *zap.Logger) *Store {
	return &Store{db: db, log: log.Named("store")}
}

// --- Link ---

// CreateLink 插入链接，短码或别名冲突时返回 ErrDuplicate
func (s *Store) CreateLink(ctx context.Context, link *model.Link) error {
	if err := s.db.WithContext(ctx).Omit("Clicks").Create(link).Error; err != nil {
		if isDuplicateErr(err) {
			return ErrDuplicate
		}
		s.log.Error("保存链接失败", zap.String("short_code", link.ShortCode), zap.Error(err))
		return fmt.Errorf("save link: %w", err)
	}
	return nil
}

// CodeExists 查询短码是否已被占用，仅作为快速预检
func (s *Store) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Link{}).Where("short_code = ?", code).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check short code: %w", err)
	}
	return count > 0, nil
}

// FindLinkByCode 按短码查询，withClicks 为 true 时一并加载点击记录
func (s *Store) FindLinkByCode(ctx context.Context, code string, withClicks bool) (*model.Link, error) {
	var link model.Link
	q := s.db.WithContext(ctx)
	if withClicks {
		q = q.Preload("Clicks", orderClicks)
	}
	if err := q.Where("short_code = ?", code).First(&link).Error; err != nil {
		return nil, translateNotFound(err, "find link by code")
	}
	return &link, nil
}

// FindLinkByID 按主键查询并加载点击记录
func (s *Store) FindLinkByID(ctx context.Context, id uint) (*model.Link, error) {
	var link model.Link
	err := s.db.WithContext(ctx).Preload("Clicks", orderClicks).First(&link, id).Error
	if err != nil {
		return nil, translateNotFound(err, "find link by id")
	}
	return &link, nil
}

// ListLinksByOwner 返回用户的链接，最新创建的在前
func (s *Store) ListLinksByOwner(ctx context.Context, ownerID uint) ([]model.Link, error) {
	var links []model.Link
	err := s.db.WithContext(ctx).
		Preload("Clicks", orderClicks).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").Order("id DESC").
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	return links, nil
}

// DeleteLink 在同一事务中删除链接及其点击记录
func (s *Store) DeleteLink(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("link_id = ?", id).Delete(&model.Click{}).Error; err != nil {
			return fmt.Errorf("delete clicks: %w", err)
		}
		res := tx.Delete(&model.Link{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete link: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// AppendClick 为短码追加一条点击记录，短码不存在时不写入任何数据
func (s *Store) AppendClick(ctx context.Context, code string, click *model.Click) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var link model.Link
		if err := tx.Select("id").Where("short_code = ?", code).First(&link).Error; err != nil {
			return translateNotFound(err, "find link for click")
		}
		click.LinkID = link.ID
		if err := tx.Create(click).Error; err != nil {
			return fmt.Errorf("append click: %w", err)
		}
		return nil
	})
}

// --- User ---

// CreateUser 插入用户，邮箱重复时返回 ErrDuplicate
func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateErr(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateNotFound(err, "find user by email")
	}
	return &user, nil
}

func (s *Store) FindUserByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translateNotFound(err, "find user by id")
	}
	return &user, nil
}

// Ping 检查数据库连接
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func orderClicks(db *gorm.DB) *gorm.DB {
	return db.Order("clicked_at ASC").Order("id ASC")
}

func translateNotFound(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isDuplicateErr 优先使用 gorm 翻译后的错误，旧驱动退化为匹配错误信息
func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint")
}
