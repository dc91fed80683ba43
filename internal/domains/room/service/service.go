package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"path"

	"studyroom/config"
	"studyroom/infras/otel"
	"studyroom/infras/s3"
	"studyroom/internal/domains/room/model"
	"studyroom/internal/domains/room/model/dto"
	"studyroom/internal/domains/room/repository"
	"studyroom/shared"
	"studyroom/shared/cache"
	"studyroom/shared/constant"
	gDto "studyroom/shared/dto"
	"studyroom/shared/failure"
	gRepo "studyroom/shared/repository"
	"studyroom/shared/timezone"
	"studyroom/shared/wallclock"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
)

var (
	ErrRoomNotFound    = failure.NotFound("Room not found.")
	ErrRoomNumberTaken = failure.Conflict("Room number already exists.")
)

type Room interface {
	Create(ctx context.Context, form dto.RoomForm) (dto.RoomResponse, error)
	Update(ctx context.Context, id string, form dto.RoomForm) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Delete(ctx context.Context, id string) error
	Available(ctx context.Context, filter dto.AvailabilityFilter) ([]dto.RoomResponse, error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, form dto.RoomForm) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	imageURL, objectName, err := s.uploadImage(ctx, form)
	if err != nil {
		return res, err
	}

	room := form.ToModel(user, imageURL, timezone.Now())

	if err = s.save(ctx, room, objectName); err != nil {
		return res, err
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, form dto.RoomForm) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if current.ID == constant.Empty {
		return ErrRoomNotFound
	}

	imageURL, objectName, err := s.uploadImage(ctx, form)
	if err != nil {
		return err
	}

	previousImage := current.Image
	form.Apply(&current, user, imageURL, timezone.Now())

	if err = s.save(ctx, current, objectName); err != nil {
		return err
	}

	if imageURL != constant.Empty && previousImage != constant.Empty {
		s.deleteImage(ctx, previousImage)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room cache")
		}
	}()

	return nil
}

// save upserts the room and drops the freshly uploaded photo when the write fails.
func (s *serviceImpl) save(ctx context.Context, room model.Room, uploadedObject string) error {
	err := s.repo.Upsert(ctx, room)
	if err != nil {
		log.Error().Err(err).Str("room_number", room.RoomNumber).Msg("failed to save room")

		if uploadedObject != constant.Empty {
			if delErr := s.s3.Delete(ctx, model.EntityName, uploadedObject); delErr != nil {
				log.Error().Err(delErr).Str("object", uploadedObject).Msg("failed to clean up room photo")
			}
		}

		if gRepo.IsViolation(err, constant.PqErrorCodeUniqueViolation) {
			return ErrRoomNumberTaken
		}

		return fmt.Errorf("failed to save room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

func (s *serviceImpl) uploadImage(ctx context.Context, form dto.RoomForm) (url, objectName string, err error) {
	if form.Image == nil || form.ImageFile == nil {
		return constant.Empty, constant.Empty, nil
	}

	objectName = uuid.NewString() + path.Ext(form.Image.Filename)
	contentType := form.Image.Header.Get(constant.RequestHeaderContentType)

	url, err = s.s3.Upload(ctx, model.EntityName, objectName, contentType, form.ImageFile, form.Image.Size)
	if errors.Is(err, s3.ErrNotConfigured) {
		log.Warn().Msg("room photo ignored, object storage is not configured")

		return constant.Empty, constant.Empty, nil
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to upload room photo")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	return url, objectName, nil
}

func (s *serviceImpl) deleteImage(ctx context.Context, imageURL string) {
	objectName := s.s3.ObjectNameFromURL(model.EntityName, imageURL)
	if objectName == constant.Empty {
		return
	}

	if err := s.s3.Delete(ctx, model.EntityName, objectName); err != nil {
		log.Error().Err(err).Str("object", objectName).Msg("failed to delete room photo")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for room count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, ErrRoomNotFound
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

// Delete removes the room together with its bookings and photo.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	room, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldImage)
	if err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return ErrRoomNotFound
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	if room.Image != constant.Empty {
		s.deleteImage(ctx, room.Image)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

// Available is never cached: it depends on live bookings.
func (s *serviceImpl) Available(ctx context.Context, filter dto.AvailabilityFilter) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Available")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = timezone.ParseDay(filter.Date); err != nil {
		return nil, failure.InvalidDate
	}

	start, startErr := wallclock.MinutesOfDay(filter.Start)
	end, endErr := wallclock.MinutesOfDay(filter.End)

	if startErr != nil || endErr != nil {
		return nil, failure.InvalidTimeRange
	}

	if end <= start {
		return nil, failure.EndBeforeStart
	}

	rooms, err := s.repo.Available(ctx, filter.Date, start, end, max(filter.MinCapacity, 0))
	if err != nil {
		log.Error().Err(err).Str("date", filter.Date).Msg("failed to list available rooms")

		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}

	res = make([]dto.RoomResponse, len(rooms))
	for i, room := range rooms {
		res[i].FromModel(room)
	}

	return res, nil
}
