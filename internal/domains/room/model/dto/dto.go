package dto

import (
	"mime/multipart"
	"time"

	"studyroom/internal/domains/room/model"
	"studyroom/shared"
	"studyroom/shared/constant"
	gDto "studyroom/shared/dto"
	gModel "studyroom/shared/model"

	"github.com/google/uuid"
)

// RoomForm is the add-room and edit-room form. Status may be left empty.
type RoomForm struct {
	RoomNumber string                `json:"room_number" validate:"required,max=50"`
	Capacity   int                   `json:"capacity"    validate:"gt=0"`
	Type       string                `json:"type"        validate:"required,max=50"`
	Status     string                `json:"status"      validate:"omitempty,max=100"`
	Image      *multipart.FileHeader `json:"-"           validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
}

// ToModel builds a new room. An empty status defaults to Available.
func (f *RoomForm) ToModel(user, imageURL string, now time.Time) model.Room {
	room := model.Room{
		ID:       uuid.NewString(),
		Metadata: gModel.NewMetadata(user, now),
	}

	f.Apply(&room, user, imageURL, now)

	if room.Status == constant.Empty {
		room.Status = model.StatusAvailable
	}

	return room
}

// Apply copies the form onto an existing room, keeping its status and image when the form leaves them out.
func (f *RoomForm) Apply(room *model.Room, user, imageURL string, now time.Time) {
	room.RoomNumber = f.RoomNumber
	room.Capacity = f.Capacity
	room.Type = f.Type

	if f.Status != constant.Empty {
		room.Status = f.Status
	}

	if imageURL != constant.Empty {
		room.Image = imageURL
	}

	room.ModifiedAt = now
	room.ModifiedBy = user
}

type RoomResponse struct {
	ID         string `json:"id"`
	RoomNumber string `json:"room_number"`
	Capacity   int    `json:"capacity"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	Image      string `json:"image,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.Capacity = model.Capacity
	r.Type = model.Type
	r.Status = model.Status
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// AvailabilityFilter selects rooms with enough seats and no booking overlapping [Start, End) on Date.
type AvailabilityFilter struct {
	Date        string `json:"date"         validate:"required,day"`
	Start       string `json:"start_time"   validate:"required,clock"`
	End         string `json:"end_time"     validate:"required,clock"`
	MinCapacity int    `json:"min_capacity" validate:"gte=0"`
}
