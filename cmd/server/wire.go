// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"github.com/wflore19/portfolio-backend/internal/app"
	"github.com/wflore19/portfolio-backend/internal/auth"
	"github.com/wflore19/portfolio-backend/internal/avatar"
	"github.com/wflore19/portfolio-backend/internal/config"
	"github.com/wflore19/portfolio-backend/internal/feed"
	"github.com/wflore19/portfolio-backend/internal/guestbook"
	"github.com/wflore19/portfolio-backend/internal/platform/database"
	"github.com/wflore19/portfolio-backend/internal/platform/logger"
	"github.com/wflore19/portfolio-backend/internal/project"
	"github.com/wflore19/portfolio-backend/internal/shared"
	"github.com/wflore19/portfolio-backend/internal/storage"
	"github.com/wflore19/portfolio-backend/internal/user"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,
		database.NewGORM,
		provideCleanup,

		// Core User Services
		user.NewGORMRepository,
		user.NewService,
		wire.Bind(new(shared.Service), new(*user.ServiceImplementation)),

		// Identity Provider and Session Layer
		auth.NewGoogleProvider,
		wire.Bind(new(auth.Provider), new(*auth.GoogleProvider)),
		auth.NewIdentityResolver,
		auth.NewSessionManager,

		// Object Storage and Avatar Import
		storage.NewSpacesClient,
		wire.Bind(new(storage.ObjectStore), new(*storage.SpacesClient)),
		avatar.NewImporter,
		wire.Bind(new(auth.AvatarImporter), new(*avatar.Importer)),

		// Handlers
		auth.NewHandler,
		user.NewHandler,

		// Content Modules
		guestbook.NewGORMRepository,
		guestbook.NewService,
		guestbook.NewHandler,
		feed.NewGORMRepository,
		feed.NewService,
		feed.NewHandler,
		project.NewGORMRepository,
		project.NewHandler,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}
