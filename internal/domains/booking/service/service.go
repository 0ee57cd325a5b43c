package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"
	"time"

	"adscape/config"
	"adscape/infras/kafka"
	"adscape/infras/otel"
	"adscape/infras/postgres"
	advertiserModel "adscape/internal/domains/advertiser/model"
	advertiserRepo "adscape/internal/domains/advertiser/repository"
	assetRepo "adscape/internal/domains/asset/repository"
	assetService "adscape/internal/domains/asset/service"
	billboardModel "adscape/internal/domains/billboard/model"
	billboardRepo "adscape/internal/domains/billboard/repository"
	"adscape/internal/domains/booking/model"
	"adscape/internal/domains/booking/model/dto"
	"adscape/internal/domains/booking/repository"
	"adscape/shared"
	"adscape/shared/cache"
	"adscape/shared/constant"
	gDto "adscape/shared/dto"
	"adscape/shared/failure"
	"adscape/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	errBookingNotFound    = "booking not found"
	errAdvertiserNotFound = "advertiser not found"
	errBillboardNotFound  = "billboard not found"
	errBillboardBooked    = "billboard is already booked"
)

// Booking coordinates the ledger, the inventory and the asset store. Every write runs as one transaction.
type Booking interface {
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	CancelBooking(ctx context.Context, id string) error
	ApproveBooking(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo           repository.Booking
	billboardRepo  billboardRepo.Billboard
	advertiserRepo advertiserRepo.Advertiser
	assetRepo      assetRepo.Asset
	storage        assetService.Storage
	transactor     postgres.Transactor
	kafka          kafka.Client
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(
	repo repository.Booking,
	billboardRepo billboardRepo.Billboard,
	advertiserRepo advertiserRepo.Advertiser,
	assetRepo assetRepo.Asset,
	storage assetService.Storage,
	transactor postgres.Transactor,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:           repo,
		billboardRepo:  billboardRepo,
		advertiserRepo: advertiserRepo,
		assetRepo:      assetRepo,
		storage:        storage,
		transactor:     transactor,
		kafka:          kafka,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

func (s *serviceImpl) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CreateBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start, end, err := req.DateRange()
	if err != nil {
		return res, err
	}

	if err = s.checkParties(ctx, req.AdvertiserID, req.BillboardID); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	assetRef := req.AssetReference()
	uploaded := false

	if req.HasUpload() {
		url, uploadErr := s.storage.Upload(ctx, req.AdImageFile, req.AdImage)
		if uploadErr != nil {
			return res, failure.StorageFailure(uploadErr) // nolint:wrapcheck
		}

		assetRef = &url
		uploaded = true
	}

	status := model.StatusPending
	if s.cfg.Booking.AutoSchedule {
		status = model.StatusScheduled
	}

	booking := req.ToModel(user, status, start, end)

	scope.SetAttributes(map[string]any{
		"booking_id":   booking.ID,
		"billboard_id": booking.BillboardID,
	})

	txCtx, cancel := s.transactionContext(ctx)
	defer cancel()

	err = s.transactor.WithTransaction(txCtx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := s.reserveBillboard(ctx, tx, booking.BillboardID); err != nil {
			return err
		}

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return err //nolint:wrapcheck
		}

		return s.assetRepo.AttachTx(ctx, tx, booking.ID, assetRef, user) //nolint:wrapcheck
	})
	if err != nil {
		if uploaded {
			s.discard(context.WithoutCancel(ctx), *assetRef)
		}

		log.Error().Err(err).Str("billboard_id", booking.BillboardID).Msg("failed to create booking")

		return res, mapTransactionError(err)
	}

	log.Info().Str("booking_id", booking.ID).Str("billboard_id", booking.BillboardID).Str("status", status).Msg("booking created")

	s.afterCommit(ctx, model.EventCreated, booking, true)

	return dto.CreateBookingResponse{ID: booking.ID, Status: booking.Status, AssetRef: assetRef}, nil
}

// reserveBillboard flips availability to false. The conditional write makes concurrent callers queue on the row.
func (s *serviceImpl) reserveBillboard(ctx context.Context, tx *sqlx.Tx, billboardID string) error {
	changed, err := s.billboardRepo.SetAvailabilityTx(ctx, tx, billboardID, false)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if changed {
		return nil
	}

	exist, err := s.billboardRepo.ExistTx(ctx, tx, billboardID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !exist {
		return failure.NotFound(errBillboardNotFound) // nolint:wrapcheck
	}

	return failure.Conflict(errBillboardBooked) // nolint:wrapcheck
}

func (s *serviceImpl) checkParties(ctx context.Context, advertiserID, billboardID string) error {
	if !shared.IsValidID(advertiserID) {
		return failure.NotFound(errAdvertiserNotFound) // nolint:wrapcheck
	}

	if !shared.IsValidID(billboardID) {
		return failure.NotFound(errBillboardNotFound) // nolint:wrapcheck
	}

	exist, err := s.advertiserRepo.Exist(ctx, shared.FilterByID(advertiserID, advertiserModel.FieldID, advertiserModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check advertiser existence")

		return failure.StorageFailure(err) // nolint:wrapcheck
	}

	if !exist {
		return failure.NotFound(errAdvertiserNotFound) // nolint:wrapcheck
	}

	exist, err = s.billboardRepo.Exist(ctx, shared.FilterByID(billboardID, billboardModel.FieldID, billboardModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check billboard existence")

		return failure.StorageFailure(err) // nolint:wrapcheck
	}

	if !exist {
		return failure.NotFound(errBillboardNotFound) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) CancelBooking(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CancelBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsValidID(id) {
		return failure.NotFound(errBookingNotFound) // nolint:wrapcheck
	}

	scope.SetAttribute("booking_id", id)

	var (
		booking model.Booking
		fileRef *string
	)

	now := timezone.Now()

	txCtx, cancel := s.transactionContext(ctx)
	defer cancel()

	err = s.transactor.WithTransaction(txCtx, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error

		booking, err = s.repo.GetForUpdateTx(ctx, tx, id)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if !booking.Active() {
			return failure.NotFound(errBookingNotFound) // nolint:wrapcheck
		}

		released, err := s.billboardRepo.SetAvailabilityTx(ctx, tx, booking.BillboardID, true)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if !released {
			log.Warn().Str("booking_id", id).Str("billboard_id", booking.BillboardID).Msg("billboard was already available while its booking was active")
		}

		fileRef, err = s.assetRepo.GetTx(ctx, tx, id)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if fileRef != nil {
			inUse, err := s.assetRepo.SharedTx(ctx, tx, *fileRef, id)
			if err != nil {
				return err //nolint:wrapcheck
			}

			// Another booking still shows this creative, so the blob outlives this one.
			if inUse {
				log.Info().Str("booking_id", id).Str("url", *fileRef).Msg("creative still referenced, keeping blob")

				fileRef = nil
			}
		}

		if err = s.assetRepo.RemoveTx(ctx, tx, id); err != nil {
			return err //nolint:wrapcheck
		}

		err = s.repo.MarkCancelledTx(ctx, tx, id, now)
		if errors.Is(err, repository.ErrNotActive) {
			return failure.NotFound(errBookingNotFound) // nolint:wrapcheck
		}

		return err //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to cancel booking")

		return mapTransactionError(err)
	}

	log.Info().Str("booking_id", id).Str("billboard_id", booking.BillboardID).Msg("booking cancelled")

	if fileRef != nil {
		s.discard(context.WithoutCancel(ctx), *fileRef)
	}

	booking.Status = model.StatusCancelled
	booking.CancelledAt = &now

	s.afterCommit(ctx, model.EventCancelled, booking, true)

	return nil
}

// ApproveBooking moves a Pending booking to Scheduled.
func (s *serviceImpl) ApproveBooking(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ApproveBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsValidID(id) {
		return failure.NotFound(errBookingNotFound) // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	changed, err := s.repo.TransitionStatus(ctx, id, model.StatusPending, model.StatusScheduled)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to approve booking")

		return failure.StorageFailure(err) // nolint:wrapcheck
	}

	if !changed {
		booking, err := s.repo.Get(ctx, filter)
		if err != nil {
			return failure.StorageFailure(err) // nolint:wrapcheck
		}

		if booking.ID == constant.Empty {
			return failure.NotFound(errBookingNotFound) // nolint:wrapcheck
		}

		return failure.Conflict(fmt.Sprintf("booking is %s, only %s bookings can be approved", booking.Status, model.StatusPending)) // nolint:wrapcheck
	}

	log.Info().Str("booking_id", id).Msg("booking scheduled")

	booking := model.Booking{ID: id, Status: model.StatusScheduled}

	if s.cfg.Kafka.Enable {
		stored, getErr := s.repo.Get(ctx, filter)
		if getErr != nil {
			log.Warn().Err(getErr).Str("booking_id", id).Msg("failed to load approved booking for its event")
		} else if stored.ID != constant.Empty {
			booking = stored
		}
	}

	s.afterCommit(ctx, model.EventScheduled, booking, false)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.IsValidID(id) {
		return res, failure.NotFound(errBookingNotFound) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(model.CacheKeyGet, id)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(errBookingNotFound) // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheKeyGetAll, req, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	if req.SortBy == constant.Empty {
		req.SortBy = constant.FieldCreatedAt
		req.SortDir = gDto.SortDirDesc
	}

	bookings, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) transactionContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.Booking.TransactionTimeoutSeconds <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, time.Duration(s.cfg.Booking.TransactionTimeoutSeconds)*time.Second)
}

// discard is the compensating undo for an uploaded creative. Failures only leave an orphaned blob.
func (s *serviceImpl) discard(ctx context.Context, url string) {
	if err := s.storage.Discard(ctx, url); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("failed to discard creative, blob is orphaned")
	}
}

// afterCommit invalidates every projection the transition touched and publishes its event.
func (s *serviceImpl) afterCommit(ctx context.Context, eventType string, booking model.Booking, inventoryChanged bool) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(model.CacheKeyGet, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, model.CacheKeyGetAll)
		shared.InvalidateCaches(c, s.cache, model.CacheKeyCount)
		shared.InvalidateCaches(c, s.cache, model.CacheKeyBroadcast)

		if inventoryChanged {
			if err := s.cache.Delete(c, shared.BuildCacheKey(billboardModel.CacheKeyGet, booking.BillboardID)); err != nil {
				log.Error().Err(err).Msg("failed to delete billboard from cache")
			}

			shared.InvalidateCaches(c, s.cache, billboardModel.CacheKeyGetAll)
		}

		if !s.cfg.Kafka.Enable {
			return
		}

		event := model.NewEvent(eventType, booking, timezone.Now())

		err := s.kafka.Publish(c, s.cfg.Kafka.Topics.BookingEvents, kafka.Message{Key: booking.ID, Value: event})
		if err != nil {
			log.Error().Err(err).Str("event", eventType).Str("booking_id", booking.ID).Msg("failed to publish booking event")
		}
	}()
}

// mapTransactionError lets domain failures through and reports everything else as a rolled back storage failure.
func mapTransactionError(err error) error {
	if failure.IsFailure(err) {
		return err
	}

	switch postgres.ErrorCode(err) {
	case constant.PqErrorCodeFkViolation:
		return failure.NotFound("advertiser or billboard not found") // nolint:wrapcheck
	case constant.PqErrorCodeUniqueViolation:
		return failure.Conflict(errBillboardBooked) // nolint:wrapcheck
	case constant.PqErrorCodeCheckViolation:
		return failure.BadRequestFromString("invalid range: start_date must not be after end_date") // nolint:wrapcheck
	}

	return failure.StorageFailure(err) // nolint:wrapcheck
}
