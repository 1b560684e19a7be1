package preload

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreload_AllSucceed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pixels"))
	}))
	defer srv.Close()

	report := NewLoader().Preload(t.Context(), []string{
		srv.URL + "/hero.webp",
		srv.URL + "/about.webp",
	})

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.Loaded)
	assert.Empty(t, report.Failed)
	assert.True(t, report.AllSettled())
}

func TestPreload_OneFailureDoesNotBlockTheRest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.webp" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("pixels"))
	}))
	defer srv.Close()

	report := NewLoader().Preload(t.Context(), []string{
		srv.URL + "/hero.webp",
		srv.URL + "/missing.webp",
	})

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Loaded)
	require.Len(t, report.Failed, 1)
	assert.Contains(t, report.Failed, srv.URL+"/missing.webp")
	assert.True(t, report.AllSettled())
}

func TestPreload_UnreachableHostSettles(t *testing.T) {
	report := NewLoader().Preload(t.Context(), []string{
		"http://127.0.0.1:1/hero.webp",
	})

	assert.Equal(t, 0, report.Loaded)
	assert.Len(t, report.Failed, 1)
	assert.True(t, report.AllSettled())
}

func TestPreload_EmptyList(t *testing.T) {
	report := NewLoader().Preload(t.Context(), nil)
	assert.Equal(t, 0, report.Total)
	assert.True(t, report.AllSettled())
}
