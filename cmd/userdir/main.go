package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/patric-chuzhbe/userdir/internal/auth"
	"github.com/patric-chuzhbe/userdir/internal/config"
	"github.com/patric-chuzhbe/userdir/internal/db/memorystorage"
	"github.com/patric-chuzhbe/userdir/internal/hasher"
	"github.com/patric-chuzhbe/userdir/internal/logger"
	"github.com/patric-chuzhbe/userdir/internal/manager"
	"github.com/patric-chuzhbe/userdir/internal/user"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Unable to initialize the config: %v", err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("Unable to initialize the logger: %v", err)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			log.Printf("Unable to sync the logger: %v", err)
		}
	}()

	if err := run(cfg); err != nil {
		logger.Log.Fatalw("application error", zap.Error(err))
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	theStorage, err := memorystorage.New()
	if err != nil {
		return err
	}
	defer func() {
		if err := theStorage.Close(); err != nil {
			logger.Log.Errorw("unable to close the storage", zap.Error(err))
		}
	}()

	theManager := manager.New(theStorage)
	passwordHasher := hasher.NewBcrypt()
	theAuth := auth.New(theStorage, passwordHasher, []byte(cfg.JWTSecret), auth.DefaultTokenTTL)

	alice := user.New("Alice", "alice@example.com")
	if err := alice.SetPassword(passwordHasher, "correct horse battery staple"); err != nil {
		return err
	}

	alice, err = theManager.CreateUser(ctx, alice)
	if err != nil {
		return err
	}
	logger.Log.Infow("user created", "user", alice.String())

	authenticated, err := theAuth.Authenticate(ctx, alice.Email, "correct horse battery staple")
	if err != nil {
		return err
	}

	token, err := theAuth.BuildToken(authenticated.ID)
	if err != nil {
		return err
	}

	claims, err := theAuth.ParseToken(token)
	if err != nil {
		return err
	}
	logger.Log.Infow("session token verified", "userID", claims.UserID)

	cached, err := theManager.GetUserCached(ctx, alice.ID)
	if err != nil {
		return err
	}
	logger.Log.Infow("cached read", "user", cached.String())

	cached.Name = "Alice Cooper"
	if _, err := theManager.UpdateUser(ctx, *cached); err != nil {
		return err
	}

	renamed, err := theManager.GetUserCached(ctx, alice.ID)
	if err != nil {
		return err
	}
	logger.Log.Infow("read after update", "user", renamed.String())

	logger.Log.Infow("user directory demo finished", "port", cfg.Port, "maxConnections", cfg.MaxConnections)

	return nil
}
