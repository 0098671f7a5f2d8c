package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventhive/server/internal/config"
	"github.com/eventhive/server/internal/models"
	"github.com/eventhive/server/internal/services"
	"github.com/eventhive/server/internal/uploads"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	Cloudinary    *cloudinary.Cloudinary
	MongoDBClient *mongo.Client
	EventService  *services.EventService
	UploadStore   *uploads.Store
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	cld *cloudinary.Cloudinary,
	mongoDBClient *mongo.Client,
) (*Container, error) {
	store, err := uploads.NewStore(cfg.UploadDir, cfg.Domain, cld)
	if err != nil {
		return nil, err
	}

	repo := models.MongodbNewRepo(mongoDBClient, cfg.MongoDBName)
	eventService := services.NewEventService(repo)

	return &Container{
		Logger:        logger,
		Config:        cfg,
		Cloudinary:    cld,
		MongoDBClient: mongoDBClient,
		EventService:  eventService,
		UploadStore:   store,
	}, nil
}
