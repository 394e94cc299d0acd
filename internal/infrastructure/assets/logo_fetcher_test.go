package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Allvasc/orcamento/internal/application/export"
)

func encodePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestFetch_PNG(t *testing.T) {
	data := encodePNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}))
	defer srv.Close()

	logo, err := NewHTTPLogoFetcher(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "png", logo.Ext)
	assert.Equal(t, data, logo.Bytes)
}

func TestFetch_JPEG(t *testing.T) {
	data := encodeJPEG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write(data)
	}))
	defer srv.Close()

	logo, err := NewHTTPLogoFetcher(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "jpg", logo.Ext)
}

func TestFetch_RespuestaNo200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewHTTPLogoFetcher(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, export.StageFetch, export.StageOf(err))
}

func TestFetch_ServidorInalcanzable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // cerrado a propósito

	_, err := NewHTTPLogoFetcher(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, export.StageFetch, export.StageOf(err))
}

func TestFetch_ContenidoNoImagen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>no soy un logo</html>"))
	}))
	defer srv.Close()

	_, err := NewHTTPLogoFetcher(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, export.StageDecode, export.StageOf(err))
}

func TestFetch_ContextoCancelado(t *testing.T) {
	data := encodePNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write(data)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPLogoFetcher(srv.URL).Fetch(ctx)
	require.Error(t, err)
	assert.Equal(t, export.StageFetch, export.StageOf(err))
}
