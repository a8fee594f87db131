package config

import (
	"resume-parser-api/internal/domain"
	"resume-parser-api/internal/repository"
	"resume-parser-api/internal/service"
	"resume-parser-api/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	SupabaseClient    domain.SupabaseClient
	ProfileRepository domain.ProfileRepository
	Storage           domain.ObjectStorage
	Completer         domain.Completer
	ProfileService    domain.ProfileService
	ResumeService     domain.ResumeService
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// Initialize Supabase client
	supabaseClient := repository.NewSupabaseClient(config, appLogger)
	if err := supabaseClient.Initialize(); err != nil {
		return nil, err
	}

	// Initialize repositories
	profileRepo := repository.NewSupabaseProfileRepository(supabaseClient, appLogger)

	// External collaborators
	storage := service.NewStorageService(config)
	completer, err := service.NewGeminiCompleter(config)
	if err != nil {
		return nil, err
	}

	// Services
	profileService := service.NewProfileService(profileRepo, appLogger)
	resumeService := service.NewResumeService(
		service.NewResumeTextExtractor(appLogger),
		completer,
		storage,
		profileService,
		config,
		appLogger,
	)

	return &Container{
		Config:            config,
		Logger:            appLogger,
		SupabaseClient:    supabaseClient,
		ProfileRepository: profileRepo,
		Storage:           storage,
		Completer:         completer,
		ProfileService:    profileService,
		ResumeService:     resumeService,
	}, nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetProfileService returns the profile service instance
func (c *Container) GetProfileService() domain.ProfileService {
	return c.ProfileService
}

// GetResumeService returns the resume service instance
func (c *Container) GetResumeService() domain.ResumeService {
	return c.ResumeService
}
