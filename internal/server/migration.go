package server

import (
	"context"
	"os"

	"civistash/internal/model"
	"civistash/internal/repository"
	"civistash/pkg/log"
	"civistash/pkg/sid"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MigrateServer struct {
	db          *gorm.DB
	log         *log.Logger
	userRepo    repository.UserRepository
	settingRepo repository.SettingRepository
	sid         *sid.Sid
}

func NewMigrateServer(
	db *gorm.DB,
	log *log.Logger,
	userRepo repository.UserRepository,
	settingRepo repository.SettingRepository,
	sid *sid.Sid,
) *MigrateServer {
	return &MigrateServer{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		settingRepo: settingRepo,
		sid:         sid,
	}
}

func (m *MigrateServer) Start(ctx context.Context) error {
	if err := m.db.AutoMigrate(
		&model.User{},
		&model.Setting{},
		// 模型快照相关表
		&model.CivitaiModel{},
		&model.ModelVersion{},
		// 资源任务注册表
		&model.ModelFile{},
		&model.ModelImage{},
	); err != nil {
		m.log.Error("migrate error", zap.Error(err))
		return err
	}
	m.log.Info("AutoMigrate success")

	// 创建默认用户
	if err := m.createDefaultUser(ctx); err != nil {
		m.log.Error("create default user error", zap.Error(err))
		return err
	}

	// 初始化默认设置项
	if err := m.seedDefaultSettings(ctx); err != nil {
		m.log.Error("seed default settings error", zap.Error(err))
		return err
	}

	os.Exit(0)
	return nil
}

// createDefaultUser 创建默认管理员用户
func (m *MigrateServer) createDefaultUser(ctx context.Context) error {
	defaultUsername := "admin"
	defaultEmail := "civistash@gmail.com"
	defaultPassword := "Ab123456"
	defaultNickname := "Civistash Admin"

	existingUser, err := m.userRepo.GetByEmail(ctx, defaultEmail)
	if err != nil {
		m.log.Error("check default user error", zap.Error(err))
		return err
	}
	if existingUser != nil {
		m.log.Info("default user already exists", zap.String("email", defaultEmail))
		return nil
	}

	existingUser, err = m.userRepo.GetByUsername(ctx, defaultUsername)
	if err != nil {
		m.log.Error("check default username error", zap.Error(err))
		return err
	}
	if existingUser != nil {
		m.log.Info("default username already exists", zap.String("username", defaultUsername))
		return nil
	}

	userId, err := m.sid.GenString()
	if err != nil {
		m.log.Error("generate user id error", zap.Error(err))
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		m.log.Error("hash password error", zap.Error(err))
		return err
	}

	user := &model.User{
		UserId:   userId,
		Username: defaultUsername,
		Email:    defaultEmail,
		Password: string(hashedPassword),
		Nickname: defaultNickname,
	}

	if err := m.userRepo.Create(ctx, user); err != nil {
		m.log.Error("create default user error", zap.Error(err))
		return err
	}

	m.log.Info("default user created successfully",
		zap.String("username", defaultUsername),
		zap.String("email", defaultEmail),
		zap.String("userId", userId))
	return nil
}

// seedDefaultSettings 给尚不存在的设置项写入空占位，避免前端拿到缺字段
func (m *MigrateServer) seedDefaultSettings(ctx context.Context) error {
	for _, key := range []string{model.SettingKeyApiToken, model.SettingKeySaveRoot} {
		existing, err := m.settingRepo.Get(ctx, key)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := m.settingRepo.Set(ctx, key, ""); err != nil {
			return err
		}
		m.log.Info("default setting seeded", zap.String("key", key))
	}
	return nil
}

func (m *MigrateServer) Stop(ctx context.Context) error {
	m.log.Info("AutoMigrate stop")
	return nil
}
