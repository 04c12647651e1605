//go:build unit

package commands_test

import (
	"context"
	"testing"

	reqdto "hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/tests/common/builder"
	"hotel-reservation/tests/common/memstore"
	"hotel-reservation/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type RoomCommandsTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memstore.Store
	cmds  commands.RoomCommands
}

func TestRoomCommandsSuite(t *testing.T) {
	suite.Run(t, new(RoomCommandsTestSuite))
}

func (s *RoomCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.cmds = commands.NewRoomCommands(s.store)
}

func intptr(i int) *int { return &i }

func (s *RoomCommandsTestSuite) TestCreate() {
	created, err := s.cmds.Create(s.ctx, builder.NewRoomBuilder().WithNumber(301).BuildCreateRequestDTO())
	s.Require().NoError(err)
	s.Equal(301, created.Number())
	s.False(created.CreatedAt().IsZero())

	_, ok := s.store.Room(created.ID())
	s.True(ok)

	s.Run("duplicate number", func() {
		_, err := s.cmds.Create(s.ctx, builder.NewRoomBuilder().WithNumber(301).BuildCreateRequestDTO())
		testutil.RequireMarked(s.T(), err, errs.ErrRoomNumberTaken)
	})

	s.Run("invalid attributes", func() {
		req := builder.NewRoomBuilder().WithNumber(302).BuildCreateRequestDTO()
		req.Type = "   "
		_, err := s.cmds.Create(s.ctx, req)
		testutil.RequireMarked(s.T(), err, errs.ErrInvalidArgument)
	})
}

func (s *RoomCommandsTestSuite) TestUpdate() {
	rm := s.store.AddRoom(builder.NewRoomBuilder().WithNumber(101).WithPricePerNight(100).BuildDomain())
	s.store.AddRoom(builder.NewRoomBuilder().WithNumber(102).BuildDomain())

	s.Run("partial update keeps omitted fields", func() {
		updated, err := s.cmds.Update(s.ctx, rm.ID(), reqdto.UpdateRoomRequest{PricePerNight: intptr(150)})
		s.Require().NoError(err)

		s.Equal(150, updated.PricePerNight())
		s.Equal(101, updated.Number())
		s.Equal(rm.Type(), updated.Type())
		s.Equal(rm.Content(), updated.Content())
	})

	s.Run("content is replaced as a whole", func() {
		updated, err := s.cmds.Update(s.ctx, rm.ID(), reqdto.UpdateRoomRequest{Content: &reqdto.RoomContentRequest{Beds: 2}})
		s.Require().NoError(err)
		s.Equal(2, updated.Content().Beds)
		s.Equal(0, updated.Content().Chairs)
	})

	s.Run("number taken by another room", func() {
		_, err := s.cmds.Update(s.ctx, rm.ID(), reqdto.UpdateRoomRequest{Number: intptr(102)})
		testutil.RequireMarked(s.T(), err, errs.ErrRoomNumberTaken)
	})

	s.Run("not found", func() {
		_, err := s.cmds.Update(s.ctx, uuid.New(), reqdto.UpdateRoomRequest{Number: intptr(999)})
		testutil.RequireMarked(s.T(), err, errs.ErrRoomNotFound)
	})
}

func (s *RoomCommandsTestSuite) TestDelete() {
	u, err := builder.NewUserBuilder().BuildDomain()
	s.Require().NoError(err)
	s.store.AddUser(u)

	free := s.store.AddRoom(builder.NewRoomBuilder().WithNumber(201).BuildDomain())
	booked := s.store.AddRoom(builder.NewRoomBuilder().WithNumber(202).BuildDomain())
	s.store.AddReservation(builder.NewReservationBuilder().WithRoomID(booked.ID()).WithUserID(u.ID()).BuildDomain())

	s.Require().NoError(s.cmds.Delete(s.ctx, free.ID()))
	_, ok := s.store.Room(free.ID())
	s.False(ok)

	err = s.cmds.Delete(s.ctx, booked.ID())
	testutil.RequireMarked(s.T(), err, errs.ErrRoomHasReservations)
	_, ok = s.store.Room(booked.ID())
	s.True(ok)

	err = s.cmds.Delete(s.ctx, uuid.New())
	testutil.RequireMarked(s.T(), err, errs.ErrRoomNotFound)
}
