package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/application/usecases/commands"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/bom"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPruningBomRepository struct{ mock.Mock }

func (m *MockPruningBomRepository) Add(ctx context.Context, template *bom.Template) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}
func (m *MockPruningBomRepository) Get(ctx context.Context, id kernel.UUID) (*bom.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bom.Template), args.Error(1)
}
func (m *MockPruningBomRepository) FindDefaultForProduct(
	ctx context.Context,
	productID kernel.UUID,
) (*bom.Template, bool, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*bom.Template), args.Bool(1), args.Error(2)
}
func (m *MockPruningBomRepository) RemoveUnreferencedSnapshots(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockSnapshotPruningUoW struct{ mock.Mock }

func (m *MockSnapshotPruningUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSnapshotPruningUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSnapshotPruningUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSnapshotPruningUoW) BomTemplateRepository() ports.BomTemplateRepository {
	args := m.Called()
	return args.Get(0).(ports.BomTemplateRepository)
}

type MockSnapshotPruningUoWFactory struct{ mock.Mock }

func (m *MockSnapshotPruningUoWFactory) Create() commands.SnapshotPruningUoW {
	args := m.Called()
	return args.Get(0).(commands.SnapshotPruningUoW)
}

func TestPruneSnapshotsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewPruneSnapshotsCommand()

	repo := new(MockPruningBomRepository)
	uow := new(MockSnapshotPruningUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BomTemplateRepository").Return(repo).Once(),
		repo.On("RemoveUnreferencedSnapshots", mock.Anything).Return(3, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSnapshotPruningUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPruneSnapshotsCommandHandler(factory)
	removed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 3, removed)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPruneSnapshotsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PruneSnapshotsCommand{} // not constructed properly
	factory := new(MockSnapshotPruningUoWFactory)
	h := commands.NewPruneSnapshotsCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestPruneSnapshotsCommandHandler_Handle_RemoveError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewPruneSnapshotsCommand()

	repo := new(MockPruningBomRepository)
	uow := new(MockSnapshotPruningUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BomTemplateRepository").Return(repo).Once(),
		repo.On("RemoveUnreferencedSnapshots", mock.Anything).Return(0, errors.New("delete failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSnapshotPruningUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPruneSnapshotsCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}
