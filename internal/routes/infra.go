package routes

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/trainer-marketplace/internal/audit"
	"github.com/BruksfildServices01/trainer-marketplace/internal/avatar"
	"github.com/BruksfildServices01/trainer-marketplace/internal/config"
	dbpkg "github.com/BruksfildServices01/trainer-marketplace/internal/db"
	bookingdomain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/booking"
	messagedomain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/message"
	trainerdomain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/trainer"
	userdomain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/user"
	infraRepo "github.com/BruksfildServices01/trainer-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/trainer-marketplace/internal/lock"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
	"github.com/BruksfildServices01/trainer-marketplace/internal/mq"
	"github.com/BruksfildServices01/trainer-marketplace/internal/storage"
)

// Infra holds the process-wide singletons the handlers are built from.
type Infra struct {
	// DB is nil unless STORAGE_DRIVER=postgres.
	DB *gorm.DB

	Users    userdomain.Repository
	Trainers trainerdomain.Repository
	Bookings bookingdomain.Repository
	Messages messagedomain.Repository

	Audit   *audit.Dispatcher
	Avatars avatar.Store

	closers []func() error
}

// NewInfra wires storage, locking and audit sinks from cfg.
func NewInfra(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Infra, error) {
	in := &Infra{}

	// ======================================================
	// LOCKING
	// ======================================================
	var locker lock.Locker = lock.NewLocal()
	if cfg.RedisURL != "" {
		r, err := lock.Dial(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		in.closers = append(in.closers, r.Close)
		locker = r
	}

	// ======================================================
	// STORAGE
	// ======================================================
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		in.DB = dbpkg.NewDB(cfg)
		in.Users = infraRepo.NewUserGormRepository(in.DB)
		in.Trainers = infraRepo.NewTrainerGormRepository(in.DB)
		in.Bookings = infraRepo.NewBookingGormRepository(in.DB)
		in.Messages = infraRepo.NewMessageGormRepository(in.DB)
		in.Avatars = avatar.NewLocalStore(cfg.AvatarDir, cfg.AvatarBaseURL)

	case config.StorageS3:
		client := storage.NewS3Client(cfg)
		in.Users = infraRepo.NewUserCollectionRepository(
			storage.NewS3Object[models.User](client, cfg.S3Bucket, cfg.S3Prefix, "users"), locker)
		in.Trainers = infraRepo.NewTrainerCollectionRepository(
			storage.NewS3Object[models.Trainer](client, cfg.S3Bucket, cfg.S3Prefix, "trainers"), locker)
		in.Bookings = infraRepo.NewBookingCollectionRepository(
			storage.NewS3Object[models.Booking](client, cfg.S3Bucket, cfg.S3Prefix, "bookings"), locker)
		in.Messages = infraRepo.NewMessageCollectionRepository(
			storage.NewS3Object[models.Message](client, cfg.S3Bucket, cfg.S3Prefix, "messages"), locker)
		in.Avatars = avatar.NewS3Store(client, cfg.S3Bucket, cfg.S3Prefix, cfg.AvatarBaseURL)

	default:
		in.Users = infraRepo.NewUserCollectionRepository(
			storage.NewJSONFile[models.User](cfg.DataDir, "users"), locker)
		in.Trainers = infraRepo.NewTrainerCollectionRepository(
			storage.NewJSONFile[models.Trainer](cfg.DataDir, "trainers"), locker)
		in.Bookings = infraRepo.NewBookingCollectionRepository(
			storage.NewJSONFile[models.Booking](cfg.DataDir, "bookings"), locker)
		in.Messages = infraRepo.NewMessageCollectionRepository(
			storage.NewJSONFile[models.Message](cfg.DataDir, "messages"), locker)
		in.Avatars = avatar.NewLocalStore(cfg.AvatarDir, cfg.AvatarBaseURL)
	}

	// ======================================================
	// AUDIT
	// ======================================================
	sinks := []audit.Sink{audit.NewLogSink(log)}
	if in.DB != nil {
		sinks = append(sinks, audit.NewGormSink(in.DB))
	}
	if cfg.AMQPURL != "" {
		pub, err := mq.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			in.Close()
			return nil, err
		}
		in.closers = append(in.closers, pub.Close)
		sinks = append(sinks, audit.NewPublisherSink(pub))
	}
	in.Audit = audit.NewDispatcher(sinks...)

	return in, nil
}

// Close drains pending audit events before closing the connections they may
// be written to.
func (in *Infra) Close() {
	if in.Audit != nil {
		in.Audit.Close()
	}
	for i := len(in.closers) - 1; i >= 0; i-- {
		if err := in.closers[i](); err != nil {
			slog.Warn("close failed", "error", err)
		}
	}
	in.closers = nil
}
