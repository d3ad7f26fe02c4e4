package perception_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-perception/internal/errors"
	"github.com/KirkDiggler/rpg-perception/internal/orchestrators/perception"
	percept "github.com/KirkDiggler/rpg-perception/internal/perception"
	"github.com/KirkDiggler/rpg-perception/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-perception/internal/repositories/worlds"
	worldsmock "github.com/KirkDiggler/rpg-perception/internal/repositories/worlds/mock"
	"github.com/KirkDiggler/rpg-perception/internal/testutils"
	"github.com/KirkDiggler/rpg-perception/internal/testutils/mocks"
	"github.com/KirkDiggler/rpg-perception/internal/world"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *worldsmock.MockRepository
	orchestrator perception.Service
	ctx          context.Context
	def          *world.Definition
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = worldsmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()
	s.def = testutils.CreateTestWorld()

	var err error
	s.orchestrator, err = perception.NewOrchestrator(&perception.Config{
		WorldRepo:   s.mockRepo,
		IDGenerator: idgen.NewSequential("req"),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewOrchestrator() {
	testCases := []struct {
		name    string
		cfg     *perception.Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  &perception.Config{WorldRepo: s.mockRepo, IDGenerator: idgen.NewSequential("")},
		},
		{name: "nil config", wantErr: true},
		{name: "missing repo", cfg: &perception.Config{IDGenerator: idgen.NewSequential("")}, wantErr: true},
		{name: "missing id generator", cfg: &perception.Config{WorldRepo: s.mockRepo}, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := perception.NewOrchestrator(tc.cfg)
			if tc.wantErr {
				s.Require().Error(err)
				s.True(errors.IsInvalidArgument(err))
				return
			}
			s.Require().NoError(err)
			s.NotNil(svc)
		})
	}
}

func (s *OrchestratorTestSuite) TestSaveWorld() {
	mocks.ExpectWorldSave(s.ctx, s.mockRepo, s.def, 4)

	out, err := s.orchestrator.SaveWorld(s.ctx, &perception.SaveWorldInput{Definition: s.def})
	s.Require().NoError(err)
	s.Equal(testutils.TestWorldID, out.WorldID)
	s.Equal(int64(4), out.Revision)
}

func (s *OrchestratorTestSuite) TestSaveWorldRejectsInvalidWorld() {
	s.def.Portals[0].B = "nowhere"

	_, err := s.orchestrator.SaveWorld(s.ctx, &perception.SaveWorldInput{Definition: s.def})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSaveWorldRepositoryFailure() {
	s.mockRepo.EXPECT().
		Put(s.ctx, worlds.PutInput{Definition: s.def}).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.orchestrator.SaveWorld(s.ctx, &perception.SaveWorldInput{Definition: s.def})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestGetWorld() {
	mocks.ExpectWorldLoad(s.ctx, s.mockRepo, s.def, 2)

	out, err := s.orchestrator.GetWorld(s.ctx, &perception.GetWorldInput{WorldID: testutils.TestWorldID})
	s.Require().NoError(err)
	s.Equal(s.def, out.Definition)
	s.Equal(int64(2), out.Revision)
}

func (s *OrchestratorTestSuite) TestGetWorldNotFound() {
	s.mockRepo.EXPECT().
		Get(s.ctx, worlds.GetInput{WorldID: "nowhere"}).
		Return(nil, errors.NotFound("world nowhere not found"))

	_, err := s.orchestrator.GetWorld(s.ctx, &perception.GetWorldInput{WorldID: "nowhere"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestDeleteAndListWorlds() {
	s.mockRepo.EXPECT().
		Delete(s.ctx, worlds.DeleteInput{WorldID: testutils.TestWorldID}).
		Return(&worlds.DeleteOutput{}, nil)
	s.mockRepo.EXPECT().
		List(s.ctx, worlds.ListInput{}).
		Return(&worlds.ListOutput{WorldIDs: []string{"mordor"}}, nil)

	_, err := s.orchestrator.DeleteWorld(s.ctx, &perception.DeleteWorldInput{WorldID: testutils.TestWorldID})
	s.Require().NoError(err)

	list, err := s.orchestrator.ListWorlds(s.ctx, &perception.ListWorldsInput{})
	s.Require().NoError(err)
	s.Equal([]string{"mordor"}, list.WorldIDs)
}

func (s *OrchestratorTestSuite) TestDescribeRoom() {
	mocks.ExpectWorldLoad(s.ctx, s.mockRepo, s.def, 1).Times(2)

	input := &perception.DescribeRoomInput{WorldID: testutils.TestWorldID, ObserverID: testutils.TestObserverID}
	out, err := s.orchestrator.DescribeRoom(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(testutils.TestTavernText, out.Text)
	s.Equal(3, out.Tally.Total)
	s.Equal(int64(1), out.Revision)
	s.Contains(out.Zones, percept.ZoneRightWall)

	again, err := s.orchestrator.DescribeRoom(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(out, again)
}

func (s *OrchestratorTestSuite) TestDescribeRoomPicksUpNewRevision() {
	mocks.ExpectWorldLoad(s.ctx, s.mockRepo, s.def, 1)

	input := &perception.DescribeRoomInput{WorldID: testutils.TestWorldID, ObserverID: testutils.TestObserverID}
	_, err := s.orchestrator.DescribeRoom(s.ctx, input)
	s.Require().NoError(err)

	moved := testutils.CreateTestWorld()
	moved.Characters[1].Room = "back-room"
	mocks.ExpectWorldLoad(s.ctx, s.mockRepo, moved, 2)

	out, err := s.orchestrator.DescribeRoom(s.ctx, input)
	s.Require().NoError(err)
	s.NotContains(out.Zones, percept.ZoneCharacters)
	s.Equal(int64(2), out.Revision)
}

func (s *OrchestratorTestSuite) TestDescribeRoomValidation() {
	_, err := s.orchestrator.DescribeRoom(s.ctx, &perception.DescribeRoomInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Contains(fields, "world_id")
	s.Contains(fields, "observer_id")

	_, err = s.orchestrator.DescribeRoom(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDescribeRoomUnknownObserver() {
	mocks.ExpectWorldLoad(s.ctx, s.mockRepo, s.def, 1)

	_, err := s.orchestrator.DescribeRoom(s.ctx, &perception.DescribeRoomInput{
		WorldID:    testutils.TestWorldID,
		ObserverID: "gollum",
	})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestDescribeRoomCorruptStoredWorld() {
	s.def.Groups = []world.GroupDef{{ID: "ghosts", Leader: "nobody"}}
	mocks.ExpectWorldLoad(s.ctx, s.mockRepo, s.def, 1)

	_, err := s.orchestrator.DescribeRoom(s.ctx, &perception.DescribeRoomInput{
		WorldID:    testutils.TestWorldID,
		ObserverID: testutils.TestObserverID,
	})
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestNarrateAction() {
	mocks.ExpectWorldLoad(s.ctx, s.mockRepo, s.def, 1)

	out, err := s.orchestrator.NarrateAction(s.ctx, &perception.NarrateActionInput{
		WorldID:     testutils.TestWorldID,
		Template:    "%a [swings] %pa club at %d, who [d:ducks].",
		AttackerID:  testutils.TestAttackerID,
		DefendantID: testutils.TestDefenderID,
	})
	s.Require().NoError(err)

	s.Equal("You swing your club at Strider, who ducks.", out.Attacker)
	s.Equal("Bill Ferny swings his club at you, who duck.", out.Defendant)
	s.Equal(map[string]string{
		testutils.TestObserverID: "Bill Ferny swings his club at Strider, who ducks.",
		"sam":                    "Bill Ferny swings his club at Strider, who ducks.",
	}, out.Bystanders)
}

func (s *OrchestratorTestSuite) TestNarrateActionBadTemplate() {
	mocks.ExpectWorldLoad(s.ctx, s.mockRepo, s.def, 1)

	_, err := s.orchestrator.NarrateAction(s.ctx, &perception.NarrateActionInput{
		WorldID:     testutils.TestWorldID,
		Template:    "%z",
		AttackerID:  testutils.TestAttackerID,
		DefendantID: testutils.TestDefenderID,
	})
	s.True(errors.IsInvalidArgument(err))
}
