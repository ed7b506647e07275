package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductsWrapped(t *testing.T) {
	products, err := ParseProducts([]byte(`{"products":[{"id":1,"title":"Pen"},{"id":"2","title":"Mug"}],"total":2}`))
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, ID("1"), products[0].ID)
	assert.Equal(t, ID("2"), products[1].ID)
}

func TestParseProductsBareArray(t *testing.T) {
	products, err := ParseProducts([]byte(`[{"id":5,"title":"Lamp","price":12.5}]`))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Lamp", products[0].Title)
	assert.Equal(t, 12.5, products[0].Price)
}

func TestParseProductsGarbage(t *testing.T) {
	_, err := ParseProducts([]byte(`<html>not json</html>`))
	assert.Error(t, err)
}

func TestFetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[{"id":1,"title":"Pen"}]}`))
	}))
	defer srv.Close()

	products, err := NewClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Pen", products[0].Title)
}

func TestFetchBadStatusIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestFetchUnparseableIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}
