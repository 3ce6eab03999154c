package department_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"go-arquivo/internal/department"
	departmenterrors "go-arquivo/internal/department/errors"
	departmentMock "go-arquivo/internal/department/mock"
)

func TestDepartmentService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := departmentMock.NewMockRepository(ctrl)
		svc := department.NewService(repo, nil)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dept *department.Department) error {
				assert.Equal(t, "Recursos Humanos", dept.Name)
				assert.True(t, dept.Active)
				return nil
			})

		resp, err := svc.Create(context.Background(), department.CreateDepartmentRequest{
			Name: "Recursos Humanos",
			Code: "RH",
		})

		assert.NoError(t, err)
		assert.Equal(t, "RH", resp.Code)
		assert.True(t, resp.Active)
	})

	t.Run("duplicate name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := departmentMock.NewMockRepository(ctrl)
		svc := department.NewService(repo, nil)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505"})

		_, err := svc.Create(context.Background(), department.CreateDepartmentRequest{
			Name: "Recursos Humanos",
		})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentAlreadyExists)
	})
}

func TestDepartmentService_GetOptions(t *testing.T) {
	t.Run("cache hit skips the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := departmentMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := department.NewService(repo, rdb)

		cached := []department.DepartmentResponse{{Name: "Financeiro", Active: true}}
		jsonResp, err := json.Marshal(cached)
		assert.NoError(t, err)
		redisMock.ExpectGet(department.OptionsKey).SetVal(string(jsonResp))

		repo.EXPECT().FindActive(gomock.Any()).Times(0)

		resp, err := svc.GetOptions(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
	})

	t.Run("cache miss loads active departments and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := departmentMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := department.NewService(repo, rdb)

		redisMock.ExpectGet(department.OptionsKey).RedisNil()
		repo.EXPECT().
			FindActive(gomock.Any()).
			Return([]department.Department{
				{ID: uuid.New(), Name: "Financeiro", Code: "FIN", Active: true},
			}, nil)
		redisMock.ExpectSet(department.OptionsKey, gomock.Any(), 1*time.Hour).SetVal("OK")

		resp, err := svc.GetOptions(context.Background())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Financeiro", resp[0].Name)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := departmentMock.NewMockRepository(ctrl)
	svc := department.NewService(repo, nil)

	deptID := uuid.New()
	inactive := false

	repo.EXPECT().
		FindByID(gomock.Any(), deptID.String()).
		Return(&department.Department{ID: deptID, Name: "Financeiro", Active: true}, nil)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dept *department.Department) error {
			assert.Equal(t, "Contabilidade", dept.Name)
			assert.False(t, dept.Active)
			return nil
		})

	resp, err := svc.Update(context.Background(), deptID.String(), department.UpdateDepartmentRequest{
		Name:   "Contabilidade",
		Active: &inactive,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Contabilidade", resp.Name)
	assert.False(t, resp.Active)
}

func TestDepartmentService_Deactivate(t *testing.T) {
	t.Run("unknown department", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := departmentMock.NewMockRepository(ctrl)
		svc := department.NewService(repo, nil)

		repo.EXPECT().
			Deactivate(gomock.Any(), gomock.Any()).
			Return(gorm.ErrRecordNotFound)

		err := svc.Deactivate(context.Background(), uuid.NewString())

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})

	t.Run("success invalidates options cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := departmentMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		svc := department.NewService(repo, rdb)

		deptID := uuid.NewString()
		repo.EXPECT().Deactivate(gomock.Any(), deptID).Return(nil)
		redisMock.ExpectDel(department.OptionsKey).SetVal(1)

		err := svc.Deactivate(context.Background(), deptID)

		assert.NoError(t, err)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}
