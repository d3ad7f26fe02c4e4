package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-perception/internal/errors"
	"github.com/KirkDiggler/rpg-perception/internal/handlers/perception/v1alpha1"
	"github.com/KirkDiggler/rpg-perception/internal/orchestrators/perception"
	perceptionmock "github.com/KirkDiggler/rpg-perception/internal/orchestrators/perception/mock"
	percept "github.com/KirkDiggler/rpg-perception/internal/perception"
	"github.com/KirkDiggler/rpg-perception/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *perceptionmock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = perceptionmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{PerceptionService: s.mockService})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) mustStruct(v interface{}) *structpb.Struct {
	st, err := v1alpha1.EncodeStruct(v)
	s.Require().NoError(err)
	return st
}

func (s *HandlerTestSuite) requireCode(err error, code codes.Code) {
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(code, st.Code())
}

func (s *HandlerTestSuite) TestNewHandler() {
	_, err := v1alpha1.NewHandler(nil)
	s.Error(err)

	_, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Error(err)
}

func (s *HandlerTestSuite) TestSaveWorld() {
	def := testutils.CreateTestWorld()

	s.mockService.EXPECT().
		SaveWorld(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *perception.SaveWorldInput) (*perception.SaveWorldOutput, error) {
			s.Equal(def, input.Definition)
			return &perception.SaveWorldOutput{WorldID: def.ID, Revision: 3}, nil
		})

	resp, err := s.handler.SaveWorld(s.ctx, s.mustStruct(map[string]interface{}{"world": def}))
	s.Require().NoError(err)

	var out v1alpha1.SaveWorldResponse
	s.Require().NoError(v1alpha1.DecodeStruct(resp, &out))
	s.Equal(testutils.TestWorldID, out.WorldID)
	s.Equal(int64(3), out.Revision)
}

func (s *HandlerTestSuite) TestSaveWorldRejectsBadDocuments() {
	testCases := []struct {
		name string
		req  interface{}
	}{
		{name: "missing world", req: map[string]interface{}{}},
		{name: "null world", req: map[string]interface{}{"world": nil}},
		{
			name: "schema violation",
			req: map[string]interface{}{"world": map[string]interface{}{
				"id":    "shire",
				"rooms": []interface{}{map[string]interface{}{"id": "bag-end", "size": 3}},
			}},
		},
		{
			name: "no rooms",
			req:  map[string]interface{}{"world": map[string]interface{}{"id": "shire", "rooms": []interface{}{}}},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.handler.SaveWorld(s.ctx, s.mustStruct(tc.req))
			s.requireCode(err, codes.InvalidArgument)
		})
	}
}

func (s *HandlerTestSuite) TestSaveWorldValidationDetails() {
	s.mockService.EXPECT().
		SaveWorld(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidArgument("bad world").WithMeta("world_id", "shire"))

	req := map[string]interface{}{"world": map[string]interface{}{
		"id":    "shire",
		"rooms": []interface{}{map[string]interface{}{"id": "bag-end"}},
	}}
	_, err := s.handler.SaveWorld(s.ctx, s.mustStruct(req))
	s.requireCode(err, codes.InvalidArgument)

	back := errors.FromGRPCError(err)
	s.Equal("shire", errors.GetMeta(back)["world_id"])
}

func (s *HandlerTestSuite) TestGetWorld() {
	def := testutils.CreateTestWorld()
	updated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s.mockService.EXPECT().
		GetWorld(s.ctx, &perception.GetWorldInput{WorldID: def.ID}).
		Return(&perception.GetWorldOutput{Definition: def, Revision: 7, UpdatedAt: updated}, nil)

	resp, err := s.handler.GetWorld(s.ctx, s.mustStruct(v1alpha1.WorldRequest{WorldID: def.ID}))
	s.Require().NoError(err)

	fields := resp.GetFields()
	s.Equal(float64(7), fields["revision"].GetNumberValue())
	s.Equal(updated.Format(time.RFC3339), fields["updated_at"].GetStringValue())
	s.Equal(def.ID, fields["world"].GetStructValue().GetFields()["id"].GetStringValue())
}

func (s *HandlerTestSuite) TestGetWorldNotFound() {
	s.mockService.EXPECT().
		GetWorld(s.ctx, &perception.GetWorldInput{WorldID: "mordor"}).
		Return(nil, errors.NotFound("world mordor not found"))

	_, err := s.handler.GetWorld(s.ctx, s.mustStruct(v1alpha1.WorldRequest{WorldID: "mordor"}))
	s.requireCode(err, codes.NotFound)
}

func (s *HandlerTestSuite) TestDeleteAndList() {
	s.mockService.EXPECT().
		DeleteWorld(s.ctx, &perception.DeleteWorldInput{WorldID: "shire"}).
		Return(&perception.DeleteWorldOutput{}, nil)
	s.mockService.EXPECT().
		ListWorlds(s.ctx, &perception.ListWorldsInput{}).
		Return(&perception.ListWorldsOutput{}, nil)

	_, err := s.handler.DeleteWorld(s.ctx, s.mustStruct(v1alpha1.WorldRequest{WorldID: "shire"}))
	s.Require().NoError(err)

	resp, err := s.handler.ListWorlds(s.ctx, &structpb.Struct{})
	s.Require().NoError(err)
	s.NotNil(resp.GetFields()["world_ids"].GetListValue())
}

func (s *HandlerTestSuite) TestDescribeRoom() {
	s.mockService.EXPECT().
		DescribeRoom(s.ctx, &perception.DescribeRoomInput{
			WorldID:    testutils.TestWorldID,
			ObserverID: testutils.TestObserverID,
		}).
		Return(&perception.DescribeRoomOutput{
			Text: testutils.TestTavernText,
			Zones: map[percept.Zone][]percept.Phrase{
				percept.ZoneCharacters: {{Text: "Sam", Count: 1}},
			},
			Tally:    percept.Tally{Total: 3},
			Revision: 1,
		}, nil)

	resp, err := s.handler.DescribeRoom(s.ctx, s.mustStruct(v1alpha1.DescribeRoomRequest{
		WorldID:    testutils.TestWorldID,
		ObserverID: testutils.TestObserverID,
	}))
	s.Require().NoError(err)

	var out v1alpha1.DescribeRoomResponse
	s.Require().NoError(v1alpha1.DecodeStruct(resp, &out))
	s.Equal(testutils.TestTavernText, out.Text)
	s.Equal([]percept.Phrase{{Text: "Sam", Count: 1}}, out.Zones[percept.ZoneCharacters])
	s.Equal(3, out.Tally.Total)
}

func (s *HandlerTestSuite) TestDescribeRoomMalformedRequest() {
	req, err := structpb.NewStruct(map[string]interface{}{"world_id": 12})
	s.Require().NoError(err)

	_, err = s.handler.DescribeRoom(s.ctx, req)
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestNarrateAction() {
	input := &perception.NarrateActionInput{
		WorldID:     testutils.TestWorldID,
		Template:    "%a [hits] %d.",
		AttackerID:  testutils.TestAttackerID,
		DefendantID: testutils.TestDefenderID,
	}
	s.mockService.EXPECT().
		NarrateAction(s.ctx, input).
		Return(&perception.NarrateActionOutput{
			Attacker:   "You hit Strider.",
			Defendant:  "Bill Ferny hits you.",
			Bystanders: map[string]string{"frodo": "Bill Ferny hits Strider."},
		}, nil)

	resp, err := s.handler.NarrateAction(s.ctx, s.mustStruct(v1alpha1.NarrateActionRequest{
		WorldID:     input.WorldID,
		Template:    input.Template,
		AttackerID:  input.AttackerID,
		DefendantID: input.DefendantID,
	}))
	s.Require().NoError(err)

	var out v1alpha1.NarrateActionResponse
	s.Require().NoError(v1alpha1.DecodeStruct(resp, &out))
	s.Equal("You hit Strider.", out.Attacker)
	s.Equal("Bill Ferny hits you.", out.Defendant)
	s.Equal("Bill Ferny hits Strider.", out.Bystanders["frodo"])
}

func (s *HandlerTestSuite) TestServiceOverGRPC() {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	v1alpha1.RegisterPerceptionServiceServer(srv, s.handler)
	go func() { _ = srv.Serve(lis) }()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	s.mockService.EXPECT().
		ListWorlds(gomock.Any(), &perception.ListWorldsInput{}).
		Return(&perception.ListWorldsOutput{WorldIDs: []string{"shire"}}, nil)
	s.mockService.EXPECT().
		DescribeRoom(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("character gollum not found"))

	client := v1alpha1.NewPerceptionServiceClient(conn)

	resp, err := client.ListWorlds(s.ctx, &structpb.Struct{})
	s.Require().NoError(err)
	var list v1alpha1.ListWorldsResponse
	s.Require().NoError(v1alpha1.DecodeStruct(resp, &list))
	s.Equal([]string{"shire"}, list.WorldIDs)

	_, err = client.DescribeRoom(s.ctx, s.mustStruct(v1alpha1.DescribeRoomRequest{WorldID: "shire", ObserverID: "gollum"}))
	s.requireCode(err, codes.NotFound)
}
