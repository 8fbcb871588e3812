//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"tee-sheet/internal/domain/teetime"
	"tee-sheet/internal/handler/api"
	resdto "tee-sheet/internal/handler/dto/response"
	"tee-sheet/internal/usecase/commands"
	"tee-sheet/internal/usecase/queries"
	"tee-sheet/tests/common/builder"
	"tee-sheet/tests/common/httptest"
	"tee-sheet/tests/common/testutil"
	commandsmock "tee-sheet/tests/mock/commands"
	queriesmock "tee-sheet/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TeeTimeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTeeTimeCommands
	mockQueries  *queriesmock.MockTeeTimeQueries
	handler      *api.TeeTimeHandler
}

func (s *TeeTimeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTeeTimeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTeeTimeQueries(s.mockCtrl)
	s.handler = api.NewTeeTimeHandler(s.mockCommands, s.mockQueries)

	// Setup routes
	s.router.GET("/teetimes", s.handler.ListByDate)
	s.router.GET("/teetimes/user/:userId", s.handler.ListByUser)
	s.router.POST("/teetimes", s.handler.Create)
	s.router.POST("/teetimes/reset", s.handler.ResetBookings)
	s.router.PATCH("/teetimes/:id/book", s.handler.Book)
	s.router.PATCH("/teetimes/:id/cancel", s.handler.Cancel)
	s.router.PATCH("/teetimes/:id", s.handler.Update)
}

func (s *TeeTimeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTeeTimeHandlerSuite(t *testing.T) {
	suite.Run(t, new(TeeTimeHandlerTestSuite))
}

// ================================================================================
// TestListByDate
// ================================================================================

func (s *TeeTimeHandlerTestSuite) TestListByDate() {
	s.Run("success: returns 200 OK with the day's slots", func() {
		views := builder.NewSlotBuilder().BuildViewQuery()
		date, _ := teetime.ParseDate("2026-06-15")

		s.mockQueries.EXPECT().ListByDate(gomock.Any(), date).
			Return([]*queries.SlotView{views}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/teetimes?date=2026-06-15", nil)

		var body []resdto.TeeSlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("2026-06-15", body[0].Date)
		s.Equal("8:00 AM", body[0].Time)
		s.InDelta(65.0, body[0].Price, 0.001)
	})

	s.Run("response carries index-aligned player arrays", func() {
		view := builder.NewSlotBuilder().
			WithPlayer("member-1", "Alice", "member", "riding", "18").
			WithPlayer("member-1", "Guest of Alice", "guest", "walking", "9").
			BuildViewQuery()
		date, _ := teetime.ParseDate("2026-06-15")

		s.mockQueries.EXPECT().ListByDate(gomock.Any(), date).
			Return([]*queries.SlotView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/teetimes?date=2026-06-15", nil)

		var body []resdto.TeeSlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal([]string{"member-1", "member-1"}, body[0].BookedBy)
		s.Equal([]string{"Alice", "Guest of Alice"}, body[0].PlayerNames)
		s.Equal([]string{"member", "guest"}, body[0].PlayerTypes)
		s.Equal([]string{"riding", "walking"}, body[0].TransportModes)
		s.Equal([]string{"18", "9"}, body[0].HolesPlaying)
	})

	s.Run("error: 400 on missing or malformed date", func() {
		for _, path := range []string{"/teetimes", "/teetimes?date=06/15/2026"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid or missing date")
		}
	})

	s.Run("error: 500 on query failure", func() {
		date, _ := teetime.ParseDate("2026-06-15")
		s.mockQueries.EXPECT().ListByDate(gomock.Any(), date).
			Return(nil, errors.New("database down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/teetimes?date=2026-06-15", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestListByUser
// ================================================================================

func (s *TeeTimeHandlerTestSuite) TestListByUser() {
	s.Run("success: returns 200 OK with the user's slots", func() {
		view := builder.NewSlotBuilder().
			WithPlayer("member-1", "Alice", "member", "riding", "18").
			BuildViewQuery()

		s.mockQueries.EXPECT().ListByUser(gomock.Any(), "member-1").
			Return([]*queries.SlotView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/teetimes/user/member-1", nil)

		var body []resdto.TeeSlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Contains(body[0].BookedBy, "member-1")
	})

	s.Run("success: unknown user yields an empty list", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), "nobody").
			Return([]*queries.SlotView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/teetimes/user/nobody", nil)

		var body []resdto.TeeSlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})
}

// ================================================================================
// TestBook
// ================================================================================

func (s *TeeTimeHandlerTestSuite) TestBook() {
	slotID := uuid.New()
	url := "/teetimes/" + slotID.String() + "/book"
	reqBody := builder.NewSlotBuilder().BuildBookRequestDTO()

	s.Run("success: returns 200 OK with the updated slot", func() {
		view := builder.NewSlotBuilder().
			WithPlayer("member-42", "Alice", "member", "riding", "18").
			BuildViewQuery()

		s.mockCommands.EXPECT().Book(gomock.Any(), slotID, "member-42", gomock.Len(1)).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody)

		var body resdto.TeeSlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]string{"member-42"}, body.BookedBy)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: userId (required)", mutate: testutil.Field("userId", nil)},
			{name: "missing field: players (required)", mutate: testutil.Field("players", nil)},
			{name: "empty players list", mutate: testutil.Field("players", []any{})},
			{name: "invalid player type", mutate: testutil.Field("players", []any{map[string]any{"type": "vip"}})},
			{name: "invalid transport mode", mutate: testutil.Field("players", []any{map[string]any{"transportMode": "cart"}})},
			{name: "invalid holes option", mutate: testutil.Field("players", []any{map[string]any{"holesPlaying": "27"}})},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 on malformed slot id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/teetimes/not-a-uuid/book", reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid slot ID format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "slot not found",
				commandsError:  commands.ErrSlotNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Tee time not found",
			},
			{
				name:           "already booked",
				commandsError:  teetime.ErrAlreadyBooked,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				name:           "capacity exceeded",
				commandsError:  &teetime.CapacityError{Available: 1},
				expectedStatus: http.StatusConflict,
				expectedMsg:    "only 1 spot available",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), slotID, "member-42", gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *TeeTimeHandlerTestSuite) TestCancel() {
	slotID := uuid.New()
	url := "/teetimes/" + slotID.String() + "/cancel"
	reqBody := builder.NewSlotBuilder().BuildCancelRequestDTO()

	s.Run("success: returns 200 OK with the updated slot", func() {
		view := builder.NewSlotBuilder().BuildViewQuery()

		s.mockCommands.EXPECT().Cancel(gomock.Any(), slotID, "member-42").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody)

		var body resdto.TeeSlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.BookedBy)
	})

	s.Run("error: 400 when userId is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("userId", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "slot not found",
				commandsError:  commands.ErrSlotNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Tee time not found",
			},
			{
				name:           "not booked",
				commandsError:  teetime.ErrNotBooked,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not booked",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), slotID, "member-42").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *TeeTimeHandlerTestSuite) TestCreate() {
	url := "/teetimes"
	reqBody := builder.NewSlotBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created", func() {
		view := builder.NewSlotBuilder().BuildViewQuery()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.TeeSlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("8:00 AM", body.Time)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: date (required)", mutate: testutil.Field("date", nil)},
			{name: "missing field: time (required)", mutate: testutil.Field("time", nil)},
			{name: "malformed date", mutate: testutil.Field("date", "June 15")},
			{name: "malformed time", mutate: testutil.Field("time", "08:00")},
			{name: "zero maxPlayers", mutate: testutil.Field("maxPlayers", 0)},
			{name: "negative priceCents", mutate: testutil.Field("priceCents", -100)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 on duplicate date and time", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDuplicateSlot).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *TeeTimeHandlerTestSuite) TestUpdate() {
	slotID := uuid.New()
	url := "/teetimes/" + slotID.String()
	reqBody := builder.NewSlotBuilder().BuildUpdateRequestDTO()

	s.Run("success: returns 200 OK", func() {
		view := builder.NewSlotBuilder().BuildViewQuery()
		s.mockCommands.EXPECT().Update(gomock.Any(), slotID, gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 when shrinking below occupancy", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), slotID, gomock.Any()).
			Return(nil, teetime.ErrCapacityBelowBooked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 404 when slot does not exist", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), slotID, gomock.Any()).
			Return(nil, commands.ErrSlotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Tee time not found")
	})
}

// ================================================================================
// TestResetBookings
// ================================================================================

func (s *TeeTimeHandlerTestSuite) TestResetBookings() {
	url := "/teetimes/reset"

	s.Run("success: returns the cleared count", func() {
		s.mockCommands.EXPECT().ResetAllBookings(gomock.Any()).
			Return(int64(17), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var body resdto.ResetResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(17), body.ClearedBookings)
	})

	s.Run("error: 500 on failure", func() {
		s.mockCommands.EXPECT().ResetAllBookings(gomock.Any()).
			Return(int64(0), errors.New("database down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
