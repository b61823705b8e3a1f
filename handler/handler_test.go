package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluid/binder"
	"github.com/dmitrymomot/fluid/handler"
)

type greetRequest struct {
	Name  string `query:"name"`
	Times *int   `query:"times"`
}

func greet(ctx handler.Context, req greetRequest) handler.Response {
	return handler.JSON(map[string]string{"hello": req.Name}, handler.WithJSONMeta(map[string]any{"path": ctx.Request().URL.Path}))
}

func serve(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestWrap_BindsAndRenders(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(greet, handler.WithBinder[handler.Context, greetRequest](binder.BindQuery()))
	rec := serve(h, "/greet?name=fox")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"hello": "fox"}, body.Data)
	assert.Equal(t, "/greet", body.Meta["path"])
	assert.Nil(t, body.Error)
}

func TestWrap_BinderError(t *testing.T) {
	t.Parallel()

	var called bool
	h := handler.Wrap(func(handler.Context, greetRequest) handler.Response {
		called = true
		return handler.Text(http.StatusOK, "unreachable")
	}, handler.WithBinder[handler.Context, greetRequest](binder.BindQuery()))

	rec := serve(h, "/?times=many")
	assert.False(t, called)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWrap_BindersRunInOrder(t *testing.T) {
	t.Parallel()

	var order []string
	first := func(r *http.Request, v any) error {
		order = append(order, "first")
		v.(*greetRequest).Name = "first"
		return nil
	}
	second := func(r *http.Request, v any) error {
		order = append(order, "second")
		v.(*greetRequest).Name += "+second"
		return nil
	}

	h := handler.Wrap(greet,
		handler.WithBinder[handler.Context, greetRequest](first),
		handler.WithBinder[handler.Context, greetRequest](second),
	)
	rec := serve(h, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Contains(t, rec.Body.String(), "first+second")
}

func TestWrap_DecoratorOrder(t *testing.T) {
	t.Parallel()

	var order []string
	trace := func(name string) handler.Decorator[handler.Context, struct{}] {
		return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(func(handler.Context, struct{}) handler.Response {
		order = append(order, "handler")
		return handler.Text(http.StatusOK, "ok")
	}, handler.WithDecorators(trace("outer"), trace("inner")))

	rec := serve(h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestWrap_Errors(t *testing.T) {
	t.Parallel()

	var got error
	capture := handler.WithErrorHandler[handler.Context, struct{}](func(ctx handler.Context, err error) {
		got = err
		ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
	})

	t.Run("nil response", func(t *testing.T) {
		h := handler.Wrap(func(handler.Context, struct{}) handler.Response { return nil }, capture)
		rec := serve(h, "/")
		assert.ErrorIs(t, got, handler.ErrNilResponse)
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("error response", func(t *testing.T) {
		boom := errors.New("boom")
		h := handler.Wrap(func(handler.Context, struct{}) handler.Response { return handler.Error(boom) }, capture)
		rec := serve(h, "/")
		assert.ErrorIs(t, got, boom)
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("default handler", func(t *testing.T) {
		h := handler.Wrap(func(handler.Context, struct{}) handler.Response {
			return handler.Error(handler.ErrNotFound)
		})
		rec := serve(h, "/")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, handler.ErrNotFound.Message, strings.TrimSpace(rec.Body.String()))
	})
}

func TestContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), key{}, "v"))
	w := httptest.NewRecorder()

	ctx := handler.NewContext(w, r)
	assert.Same(t, r, ctx.Request())
	assert.Equal(t, w, ctx.ResponseWriter())
	assert.Equal(t, "v", ctx.Value(key{}))
	assert.NoError(t, ctx.Err())
}

func TestText(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.Text(http.StatusServiceUnavailable, "NOT_READY").Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "NOT_READY", rec.Body.String())
}
