package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"studyroom/infras/otel/mocks"
	staffMocks "studyroom/internal/domains/staff/mocks"
	"studyroom/internal/domains/staff/model"
	"studyroom/internal/domains/staff/model/dto"
	"studyroom/internal/domains/staff/service"
	"studyroom/shared/failure"
	"studyroom/shared/password"
)

func TestStaffService_Provision(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.ProvisionRequest
		setupMock func(repo *staffMocks.MockStaff)
		wantErr   string
		wantCode  int
	}{
		{
			name: "hashes password and upserts by username",
			req:  dto.ProvisionRequest{Username: "  librarian ", Password: "s3cretpass"},
			setupMock: func(repo *staffMocks.MockStaff) {
				repo.EXPECT().Upsert(gomock.Any(), gomock.Cond(func(s model.Staff) bool {
					return s.Username == "librarian" &&
						s.ID != "" &&
						s.CreatedBy == "seed" &&
						password.Verify("s3cretpass", s.PasswordHash) == nil
				})).Return(nil)
			},
		},
		{
			name:      "short password is rejected",
			req:       dto.ProvisionRequest{Username: "librarian", Password: "short"},
			setupMock: func(*staffMocks.MockStaff) {},
			wantErr:   "Password must be at least 8",
			wantCode:  400,
		},
		{
			name:      "missing username is rejected",
			req:       dto.ProvisionRequest{Username: "   ", Password: "s3cretpass"},
			setupMock: func(*staffMocks.MockStaff) {},
			wantErr:   "Username is required",
			wantCode:  400,
		},
		{
			name: "store failure",
			req:  dto.ProvisionRequest{Username: "librarian", Password: "s3cretpass"},
			setupMock: func(repo *staffMocks.MockStaff) {
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr:  "failed to provision staff account",
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := staffMocks.NewMockStaff(ctrl)
			tt.setupMock(repo)

			svc := service.New(repo, mocks.NewOtel())

			err := svc.Provision(context.Background(), tt.req)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.ErrorContains(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
