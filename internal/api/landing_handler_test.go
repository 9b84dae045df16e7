package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/phrazzld/launchpad/internal/api/shared"
	"github.com/phrazzld/launchpad/internal/landing"
	"github.com/phrazzld/launchpad/internal/mocks"
	"github.com/phrazzld/launchpad/internal/service/auth"
	"github.com/phrazzld/launchpad/internal/session"
)

func newTestTracerProvider(t *testing.T) (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})

	return provider, recorder
}

// signedInTokens accepts exactly the "valid" token.
func signedInTokens(userID uuid.UUID) *mocks.MockJWTService {
	return &mocks.MockJWTService{
		ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
			if token != "valid" {
				return nil, auth.ErrInvalidToken
			}
			return &auth.Claims{UserID: userID}, nil
		},
	}
}

func newTestHandler(t *testing.T, tokens auth.JWTService) (*LandingHandler, *tracetest.SpanRecorder) {
	t.Helper()
	provider, recorder := newTestTracerProvider(t)
	resolver := session.NewResolver(tokens, session.CookiePolicy{})
	return NewLandingHandler(resolver, WithTracerProvider(provider)), recorder
}

func ctaRequest(source, cookie string) *http.Request {
	form := url.Values{"source": {source}}
	req := httptest.NewRequest(http.MethodPost, "/start", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.DefaultCookieName, Value: cookie})
	}
	return req
}

func TestLandingHandler_Start(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name        string
		source      string
		cookie      string
		wantRoute   string
		wantCleared bool
	}{
		{name: "signed-in user clicks hero button", source: "hero", cookie: "valid", wantRoute: "/dashboard"},
		{name: "anonymous user clicks feature card", source: "feature:award", wantRoute: "/login"},
		{name: "invalid session clicks hero button", source: "hero", cookie: "forged", wantRoute: "/login", wantCleared: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler, recorder := newTestHandler(t, signedInTokens(userID))
			rec := httptest.NewRecorder()

			handler.Start(rec, ctaRequest(tt.source, tt.cookie))

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.wantRoute, rec.Header().Get("Location"))
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

			cookies := rec.Result().Cookies()
			if tt.wantCleared {
				require.Len(t, cookies, 1)
				assert.Equal(t, session.DefaultCookieName, cookies[0].Name)
				assert.Equal(t, -1, cookies[0].MaxAge)
			} else {
				assert.Empty(t, cookies)
			}

			spans := recorder.Ended()
			require.Len(t, spans, 1)
			assert.Equal(t, "landing.activate", spans[0].Name())
			attrs := map[string]string{}
			for _, kv := range spans[0].Attributes() {
				attrs[string(kv.Key)] = kv.Value.Emit()
			}
			assert.Equal(t, tt.wantRoute, attrs["landing.route"])
			assert.Equal(t, tt.source, attrs["landing.source"])
		})
	}
}

func TestLandingHandler_Start_EveryFeatureCardRoutesAnonymousToLogin(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t, &mocks.MockJWTService{})

	for _, f := range landing.Features() {
		rec := httptest.NewRecorder()
		handler.Start(rec, ctaRequest("feature:"+f.Icon.String(), ""))

		assert.Equal(t, http.StatusSeeOther, rec.Code, f.Title)
		assert.Equal(t, landing.RouteLogin, rec.Header().Get("Location"), f.Title)
	}
}

func TestLandingHandler_Start_LoginBetweenActivations(t *testing.T) {
	t.Parallel()

	handler, recorder := newTestHandler(t, signedInTokens(uuid.New()))

	first := httptest.NewRecorder()
	handler.Start(first, ctaRequest("hero", ""))

	// The auth service signs the user in between the two clicks.
	second := httptest.NewRecorder()
	handler.Start(second, ctaRequest("hero", "valid"))

	assert.Equal(t, "/login", first.Header().Get("Location"))
	assert.Equal(t, "/dashboard", second.Header().Get("Location"))
	assert.Len(t, recorder.Ended(), 2, "one activation per request")
}

func TestLandingHandler_Start_GetActivation(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t, &mocks.MockJWTService{})
	rec := httptest.NewRecorder()

	handler.Start(rec, httptest.NewRequest(http.MethodGet, "/start", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestLandingHandler_CallToAction(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name     string
		cookie   string
		wantBody CallToActionResponse
	}{
		{name: "signed in", cookie: "valid", wantBody: CallToActionResponse{Route: "/dashboard", Authenticated: true}},
		{name: "anonymous", wantBody: CallToActionResponse{Route: "/login", Authenticated: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler, _ := newTestHandler(t, signedInTokens(userID))
			req := httptest.NewRequest(http.MethodGet, "/api/cta", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: session.DefaultCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			handler.CallToAction(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

			var body CallToActionResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestLandingHandler_ListFeatures(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t, &mocks.MockJWTService{})
	rec := httptest.NewRecorder()

	handler.ListFeatures(rec, httptest.NewRequest(http.MethodGet, "/api/features", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body FeaturesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Features, landing.FeatureCount)
	for i, f := range landing.Features() {
		assert.Equal(t, f.Title, body.Features[i].Title)
		assert.Equal(t, f.Icon.String(), body.Features[i].Icon)
	}
}

func TestLandingHandler_ShowLanding(t *testing.T) {
	t.Parallel()

	tokens := &mocks.MockJWTService{}
	handler, recorder := newTestHandler(t, tokens)
	rec := httptest.NewRecorder()

	handler.ShowLanding(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Start Your Journey")
	assert.Empty(t, recorder.Ended(), "rendering the page is not an activation")
	assert.Empty(t, tokens.ValidatedTokens(), "rendering the page does not read the session")
}

func TestActivationSource(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unknown", activationSource(httptest.NewRequest(http.MethodGet, "/start", nil)))
	assert.Equal(t, "hero", activationSource(httptest.NewRequest(http.MethodGet, "/start?source=hero", nil)))

	long := strings.Repeat("x", 200)
	assert.Len(t, activationSource(httptest.NewRequest(http.MethodGet, "/start?source="+long, nil)), maxSourceLength)
}

func TestActivationSource_KeepsRunesWhole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "multi-byte rune straddles the limit",
			source: strings.Repeat("a", maxSourceLength-1) + "é",
			want:   strings.Repeat("a", maxSourceLength-1),
		},
		{
			name:   "multi-byte rune ends at the limit",
			source: strings.Repeat("a", maxSourceLength-2) + "éz",
			want:   strings.Repeat("a", maxSourceLength-2) + "é",
		},
		{
			name:   "invalid bytes are dropped",
			source: "hero\xff",
			want:   "hero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			form := url.Values{"source": {tt.source}}
			req := httptest.NewRequest(http.MethodPost, "/start", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			got := activationSource(req)

			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.LessOrEqual(t, len(got), maxSourceLength)
		})
	}
}

func TestLandingHandler_Start_UsesResolvedRequestState(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	tokens := &mocks.MockJWTService{}
	handler, recorder := newTestHandler(t, tokens)

	req := ctaRequest("hero", "valid")
	ctx := session.NewContext(req.Context(), session.State{UserID: userID})
	ctx = shared.SetUserID(ctx, userID)
	rec := httptest.NewRecorder()

	handler.Start(rec, req.WithContext(ctx))

	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	assert.Empty(t, tokens.ValidatedTokens(), "the session resolved earlier in the request is reused")

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, userID.String(), attrs["enduser.id"])
	assert.Equal(t, "true", attrs["landing.authenticated"])
}
