package httptransport

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	contracts "nidx/contracts/nid"
	"nidx/internal/platform/metrics"
	"nidx/internal/platform/token"
	"nidx/internal/transport/http/mocks"
	"nidx/pkg/nid"
	"nidx/pkg/secrets"
)

const testAdminToken = "test-admin-token"

type HandlerSuite struct {
	suite.Suite
	logger *slog.Logger
	tokens *token.Service
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupSuite() {
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.tokens = token.NewService("test-signing-key", "nidx-test", time.Minute)
}

// newRouter builds a full router around a mocked service so middleware
// behavior is covered too.
func (s *HandlerSuite) newRouter(t *testing.T) (*mocks.MockService, http.Handler) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockService(ctrl)

	adminHash, err := secrets.Hash(testAdminToken)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	h := NewHandler(mockService, s.tokens, s.logger, 10)
	router := NewRouter(h, s.tokens, m, reg, s.logger, RouterConfig{
		RequestTimeout: 5 * time.Second,
		AdminTokenHash: adminHash,
	})
	return mockService, router
}

func (s *HandlerSuite) doJSON(router http.Handler, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) TestHandleDecode() {
	s.T().Run("valid code - 200", func(t *testing.T) {
		mockService, router := s.newRouter(t)
		expected := &contracts.DecodeResult{
			Country:    "albania",
			Year:       1990,
			Month:      1,
			Day:        1,
			Birthday:   "1990-01-01",
			Sex:        "M",
			IsNational: true,
		}
		mockService.EXPECT().Decode(gomock.Any(), "albania", "J00101999W").Return(expected, nil)

		rec := s.doJSON(router, http.MethodPost, "/v1/decode", `{"country":"Albania","code":"J00101999W"}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got contracts.DecodeResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, *expected, got)
	})

	s.T().Run("checksum failure - 422", func(t *testing.T) {
		mockService, router := s.newRouter(t)
		mockService.EXPECT().Decode(gomock.Any(), "albania", "J00101999A").
			Return(nil, &nid.Error{Kind: nid.KindChecksum, Code: nid.CodeChecksumMismatch, Message: "checksum validation failed"})

		rec := s.doJSON(router, http.MethodPost, "/v1/decode", `{"country":"albania","code":"J00101999A"}`, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "checksum_mismatch")
	})

	s.T().Run("format failure - 422", func(t *testing.T) {
		mockService, router := s.newRouter(t)
		mockService.EXPECT().Decode(gomock.Any(), "albania", "invalid").
			Return(nil, &nid.Error{Kind: nid.KindFormat, Code: nid.CodeInvalidLength, Message: "code must be exactly 10 characters"})

		rec := s.doJSON(router, http.MethodPost, "/v1/decode", `{"country":"albania","code":"invalid"}`, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid_format")
	})

	s.T().Run("unknown country - 404", func(t *testing.T) {
		mockService, router := s.newRouter(t)
		mockService.EXPECT().Decode(gomock.Any(), "narnia", "x").
			Return(nil, nid.ErrUnknownCountry)

		rec := s.doJSON(router, http.MethodPost, "/v1/decode", `{"country":"narnia","code":"x"}`, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown_country")
	})

	s.T().Run("bad json - 400", func(t *testing.T) {
		mockService, router := s.newRouter(t)
		mockService.EXPECT().Decode(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		rec := s.doJSON(router, http.MethodPost, "/v1/decode", `{bad-json`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	s.T().Run("missing country - 400", func(t *testing.T) {
		mockService, router := s.newRouter(t)
		mockService.EXPECT().Decode(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		rec := s.doJSON(router, http.MethodPost, "/v1/decode", `{"code":"J00101999W"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerSuite) TestHandleValidate() {
	s.T().Run("returns bare verdict", func(t *testing.T) {
		mockService, router := s.newRouter(t)
		mockService.EXPECT().Validate(gomock.Any(), "kosovo", "1234567890").Return(false)

		rec := s.doJSON(router, http.MethodPost, "/v1/validate", `{"country":"kosovo","code":"1234567890"}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"valid":false}`, rec.Body.String())
	})
}

func (s *HandlerSuite) TestHandleValidateBatch() {
	authHeader := func(t *testing.T) http.Header {
		tok, err := s.tokens.Issue("test-client", time.Now())
		require.NoError(t, err)
		return http.Header{"Authorization": []string{"Bearer " + tok}}
	}

	s.T().Run("requires a bearer token - 401", func(t *testing.T) {
		mockService, router := s.newRouter(t)
		mockService.EXPECT().ValidateBatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		rec := s.doJSON(router, http.MethodPost, "/v1/validate/batch", `{"country":"albania","codes":["J00101999W"]}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	s.T().Run("rejects a garbage token - 401", func(t *testing.T) {
		mockService, router := s.newRouter(t)
		mockService.EXPECT().ValidateBatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		rec := s.doJSON(router, http.MethodPost, "/v1/validate/batch", `{"country":"albania","codes":["J00101999W"]}`,
			http.Header{"Authorization": []string{"Bearer not-a-token"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	s.T().Run("validates a batch - 200", func(t *testing.T) {
		mockService, router := s.newRouter(t)
		mockService.EXPECT().ValidateBatch(gomock.Any(), "albania", []string{"J00101999W", "invalid"}).
			Return([]contracts.BatchItem{
				{Code: "J00101999W", Valid: true},
				{Code: "invalid", Valid: false, ErrorKind: "format"},
			}, nil)

		rec := s.doJSON(router, http.MethodPost, "/v1/validate/batch", `{"country":"albania","codes":["J00101999W","invalid"]}`, authHeader(t))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"error_kind":"format"`)
	})

	s.T().Run("oversized batch - 400", func(t *testing.T) {
		mockService, router := s.newRouter(t)
		mockService.EXPECT().ValidateBatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		codes := make([]string, 11)
		for i := range codes {
			codes[i] = "J00101999W"
		}
		body, err := json.Marshal(map[string]any{"country": "albania", "codes": codes})
		require.NoError(t, err)

		rec := s.doJSON(router, http.MethodPost, "/v1/validate/batch", string(body), authHeader(t))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	s.T().Run("empty codes - 400", func(t *testing.T) {
		mockService, router := s.newRouter(t)
		mockService.EXPECT().ValidateBatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		rec := s.doJSON(router, http.MethodPost, "/v1/validate/batch", `{"country":"albania","codes":[]}`, authHeader(t))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerSuite) TestHandleCountries() {
	s.T().Run("lists modules and capabilities", func(t *testing.T) {
		_, router := s.newRouter(t)

		rec := s.doJSON(router, http.MethodGet, "/v1/countries", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			Countries []contracts.CountryInfo `json:"countries"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got.Countries, 2)
		assert.Equal(t, contracts.CountryInfo{Country: "albania", CanDecode: true}, got.Countries[0])
		assert.Equal(t, contracts.CountryInfo{Country: "kosovo", CanDecode: false}, got.Countries[1])
	})
}

func (s *HandlerSuite) TestHandleIssueToken() {
	s.T().Run("requires the admin token - 401", func(t *testing.T) {
		_, router := s.newRouter(t)

		rec := s.doJSON(router, http.MethodPost, "/admin/tokens", `{"subject":"batch-client"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	s.T().Run("issues a working token - 201", func(t *testing.T) {
		_, router := s.newRouter(t)

		rec := s.doJSON(router, http.MethodPost, "/admin/tokens", `{"subject":"batch-client"}`,
			http.Header{"X-Admin-Token": []string{testAdminToken}})

		require.Equal(t, http.StatusCreated, rec.Code)
		var got map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

		subject, err := s.tokens.ValidateToken(got["token"])
		require.NoError(t, err)
		assert.Equal(t, "batch-client", subject)
	})
}

func (s *HandlerSuite) TestMiddleware() {
	s.T().Run("request id is echoed", func(t *testing.T) {
		_, router := s.newRouter(t)

		rec := s.doJSON(router, http.MethodGet, "/healthz", "", http.Header{"X-Request-Id": []string{"req-123"}})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
	})

	s.T().Run("wrong content type - 415", func(t *testing.T) {
		_, router := s.newRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/validate", strings.NewReader("country=albania"))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	s.T().Run("metrics endpoint is exposed", func(t *testing.T) {
		_, router := s.newRouter(t)

		rec := s.doJSON(router, http.MethodGet, "/metrics", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
