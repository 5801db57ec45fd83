package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"budget-api/internal/domain/snapshot"
	"budget-api/internal/handler/api"
	"budget-api/internal/usecase"
	"budget-api/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// stubMonthlyUseCase records the last call and returns canned results.
type stubMonthlyUseCase struct {
	view      *readmodel.MonthView
	item      *snapshot.Item
	copied    []snapshot.Item
	err       error
	lastMonth string
	lastPatch usecase.ItemPatch
	lastFrom  string
	lastTo    string
}

func (s *stubMonthlyUseCase) GetOrCreateMonth(_ context.Context, _ uuid.UUID, monthKey string) (*readmodel.MonthView, error) {
	s.lastMonth = monthKey
	return s.view, s.err
}

func (s *stubMonthlyUseCase) GetExistingMonth(_ context.Context, _ uuid.UUID, monthKey string) (*readmodel.MonthView, error) {
	s.lastMonth = monthKey
	return s.view, s.err
}

func (s *stubMonthlyUseCase) PatchItem(_ context.Context, _, _, _ uuid.UUID, p usecase.ItemPatch) (*snapshot.Item, error) {
	s.lastPatch = p
	return s.item, s.err
}

func (s *stubMonthlyUseCase) CopyMonth(_ context.Context, _ uuid.UUID, fromMonth, toMonth string) ([]snapshot.Item, error) {
	s.lastFrom = fromMonth
	s.lastTo = toMonth
	return s.copied, s.err
}

type MonthlyHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	stub   *stubMonthlyUseCase
}

func (s *MonthlyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.stub = &stubMonthlyUseCase{}
	handler := api.NewMonthlyExpenseHandler(s.stub)

	authed := s.router.Group("", func(c *gin.Context) {
		c.Set("user_id", uuid.New())
	})
	authed.GET("/api/monthly-expenses/:month", handler.GetMonth)
	authed.GET("/api/monthly-expenses/:month/existing", handler.GetExistingMonth)
	authed.PATCH("/api/monthly-expenses/:snapshotId", handler.PatchItem)
	authed.POST("/api/monthly-expenses/copy", handler.CopyMonth)
}

func TestMonthlyHandlerSuite(t *testing.T) {
	suite.Run(t, new(MonthlyHandlerTestSuite))
}

func (s *MonthlyHandlerTestSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *MonthlyHandlerTestSuite) TestGetMonth() {
	s.Run("returns items and totals", func() {
		s.stub.view = &readmodel.MonthView{
			Items: []snapshot.Item{
				{ID: uuid.New(), TemplateID: uuid.New(), Description: "rent", Amount: 1200, Included: true, IsRecurring: true},
			},
			Totals: snapshot.Totals{Total: 1200, Recurring: 1200},
		}
		s.stub.err = nil

		rec := s.perform(http.MethodGet, "/api/monthly-expenses/2025-03", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("2025-03", s.stub.lastMonth)

		var resp struct {
			Items  []snapshot.Item `json:"items"`
			Totals snapshot.Totals `json:"totals"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Len(resp.Items, 1)
		s.Equal(1200.0, resp.Totals.Total)
	})

	s.Run("400 on malformed month key", func() {
		s.stub.view = nil
		s.stub.err = usecase.ErrInvalidMonth

		rec := s.perform(http.MethodGet, "/api/monthly-expenses/2025-3", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *MonthlyHandlerTestSuite) TestGetExistingMonth() {
	s.Run("404 when the month was never materialized", func() {
		s.stub.view = nil
		s.stub.err = usecase.ErrMonthNotFound

		rec := s.perform(http.MethodGet, "/api/monthly-expenses/2025-03/existing", nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *MonthlyHandlerTestSuite) TestPatchItem() {
	snapID := uuid.New()
	templateID := uuid.New()

	s.Run("explicit null clears the override", func() {
		s.stub.item = &snapshot.Item{ID: uuid.New(), TemplateID: templateID, Included: true}
		s.stub.err = nil

		body := map[string]any{
			"templateId": templateID,
			"data":       map[string]any{"amountOverride": nil},
		}
		rec := s.perform(http.MethodPatch, "/api/monthly-expenses/"+snapID.String(), body)

		s.Equal(http.StatusOK, rec.Code)
		s.True(s.stub.lastPatch.AmountOverride.Set)
		s.Nil(s.stub.lastPatch.AmountOverride.Value)
	})

	s.Run("absent override is not a clear", func() {
		s.stub.item = &snapshot.Item{ID: uuid.New(), TemplateID: templateID}
		s.stub.err = nil

		body := map[string]any{
			"templateId": templateID,
			"data":       map[string]any{"included": false},
		}
		rec := s.perform(http.MethodPatch, "/api/monthly-expenses/"+snapID.String(), body)

		s.Equal(http.StatusOK, rec.Code)
		s.False(s.stub.lastPatch.AmountOverride.Set)
		s.Require().NotNil(s.stub.lastPatch.Included)
		s.False(*s.stub.lastPatch.Included)
	})

	s.Run("numeric override is passed through", func() {
		s.stub.item = &snapshot.Item{ID: uuid.New(), TemplateID: templateID}
		s.stub.err = nil

		body := map[string]any{
			"templateId": templateID,
			"data":       map[string]any{"amountOverride": 950.5},
		}
		rec := s.perform(http.MethodPatch, "/api/monthly-expenses/"+snapID.String(), body)

		s.Equal(http.StatusOK, rec.Code)
		s.True(s.stub.lastPatch.AmountOverride.Set)
		s.Require().NotNil(s.stub.lastPatch.AmountOverride.Value)
		s.Equal(950.5, *s.stub.lastPatch.AmountOverride.Value)
	})

	s.Run("400 on malformed snapshot id", func() {
		rec := s.perform(http.MethodPatch, "/api/monthly-expenses/not-a-uuid", map[string]any{"templateId": templateID})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("404 when the item is missing", func() {
		s.stub.item = nil
		s.stub.err = usecase.ErrItemNotFound

		body := map[string]any{"templateId": templateID}
		rec := s.perform(http.MethodPatch, "/api/monthly-expenses/"+snapID.String(), body)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *MonthlyHandlerTestSuite) TestCopyMonth() {
	s.Run("returns the destination items", func() {
		s.stub.copied = []snapshot.Item{{ID: uuid.New(), Description: "rent", Amount: 1200, Included: true}}
		s.stub.err = nil

		body := map[string]any{"fromMonth": "2025-03", "toMonth": "2025-04"}
		rec := s.perform(http.MethodPost, "/api/monthly-expenses/copy", body)

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("2025-03", s.stub.lastFrom)
		s.Equal("2025-04", s.stub.lastTo)

		var resp struct {
			Success bool            `json:"success"`
			ToMonth string          `json:"toMonth"`
			Items   []snapshot.Item `json:"items"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.True(resp.Success)
		s.Equal("2025-04", resp.ToMonth)
		s.Len(resp.Items, 1)
	})

	s.Run("404 when the source month has no snapshot", func() {
		s.stub.copied = nil
		s.stub.err = usecase.ErrSourceMonthNotFound

		body := map[string]any{"fromMonth": "2025-03", "toMonth": "2025-04"}
		rec := s.perform(http.MethodPost, "/api/monthly-expenses/copy", body)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("400 when a month is missing from the body", func() {
		rec := s.perform(http.MethodPost, "/api/monthly-expenses/copy", map[string]any{"fromMonth": "2025-03"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
