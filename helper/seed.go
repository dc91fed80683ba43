package helper

import (
	"context"
	"errors"
	"fmt"

	roomDto "studyroom/internal/domains/room/model/dto"
	roomService "studyroom/internal/domains/room/service"
	staffDto "studyroom/internal/domains/staff/model/dto"
	staffService "studyroom/internal/domains/staff/service"
	"studyroom/shared/constant"
	"studyroom/shared/validator"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

const seedActor = "seed"

// SeedFile is the layout of seed.toml.
type SeedFile struct {
	Staff []staffDto.ProvisionRequest `toml:"staff"`
	Rooms []SeedRoom                  `toml:"rooms"`
}

type SeedRoom struct {
	RoomNumber string `toml:"room_number"`
	Capacity   int    `toml:"capacity"`
	Type       string `toml:"type"`
	Status     string `toml:"status"`
}

// Seeder provisions staff accounts and the initial rooms from a seed file.
type Seeder struct {
	staff staffService.Staff
	rooms roomService.Room
}

func NewSeeder(staff staffService.Staff, rooms roomService.Room) *Seeder {
	return &Seeder{
		staff: staff,
		rooms: rooms,
	}
}

func LoadSeedFile(path string) (SeedFile, error) {
	var file SeedFile

	if _, err := toml.DecodeFile(path, &file); err != nil {
		return file, fmt.Errorf("failed to decode seed file %s: %w", path, err)
	}

	return file, nil
}

// Seed provisions every staff account and creates the rooms that do not exist yet.
// Re-running it resets staff passwords and skips existing room numbers.
func (s *Seeder) Seed(ctx context.Context, file SeedFile) error {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, seedActor)

	for _, account := range file.Staff {
		if err := s.staff.Provision(ctx, account); err != nil {
			return fmt.Errorf("failed to provision staff %q: %w", account.Username, err)
		}

		log.Info().Str("username", account.Username).Msg("staff account provisioned")
	}

	for _, room := range file.Rooms {
		form := roomDto.RoomForm{
			RoomNumber: room.RoomNumber,
			Capacity:   room.Capacity,
			Type:       room.Type,
			Status:     room.Status,
		}

		if err := validator.ValidateStruct(&form); err != nil {
			return fmt.Errorf("invalid room %q: %w", room.RoomNumber, err)
		}

		if _, err := s.rooms.Create(ctx, form); err != nil {
			if errors.Is(err, roomService.ErrRoomNumberTaken) {
				log.Info().Str("room_number", room.RoomNumber).Msg("room already exists, skipped")

				continue
			}

			return fmt.Errorf("failed to create room %q: %w", room.RoomNumber, err)
		}

		log.Info().Str("room_number", room.RoomNumber).Msg("room created")
	}

	return nil
}
