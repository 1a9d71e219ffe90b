package normalizer

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/princinho/menufront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElements(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"bare array", `[{"id":1},{"id":2}]`, 2},
		{"data envelope", `{"data":[{"id":1},{"id":2},{"id":3}]}`, 3},
		{"items envelope", `{"items":[{"id":1}],"page":1}`, 1},
		{"data wins over items", `{"data":[{"id":1}],"items":[{"id":1},{"id":2}]}`, 1},
		{"data not an array", `{"data":{"id":1}}`, 1},
		{"single object", `{"id":1,"name":"Mains"}`, 1},
		{"empty array", `[]`, 0},
		{"scalar", `"oops"`, 0},
		{"null", `null`, 0},
		{"malformed", `{"data":[`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Elements(Decode([]byte(tt.body))), tt.want)
		})
	}
}

func TestCategories(t *testing.T) {
	t.Run("name only gets a position based id", func(t *testing.T) {
		got := DecodeCategories([]byte(`[{"name":"Drinks"}]`))
		want := []models.Category{{ID: "local-0", Name: "Drinks", Description: ""}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("categories mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("json api style data envelope", func(t *testing.T) {
		got := DecodeCategories([]byte(`{"data":[{"id":5,"attributes":{"name":"Mains"}}]}`))
		want := []models.Category{{ID: "5", Name: "Mains", Description: ""}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("categories mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("fallback ids are distinct within a list", func(t *testing.T) {
		got := DecodeCategories([]byte(`[{"name":"A"},{"name":"B"},{"id":"x","name":"C"}]`))
		require.Len(t, got, 3)
		assert.Equal(t, "local-0", got[0].ID)
		assert.Equal(t, "local-1", got[1].ID)
		assert.Equal(t, "x", got[2].ID)
	})

	t.Run("name probe order", func(t *testing.T) {
		cases := map[string]string{
			`{"title":"T","attributes":{"name":"A"}}`:     "T",
			`{"name":"","title":"T"}`:                     "T",
			`{"attributes":{"title":"AT"}}`:               "AT",
			`{"data":{"attributes":{"name":"Nested"}}}`:   "Nested",
			`{"item":{"name":"Item"}}`:                    "Item",
			`{"name":null,"attributes":{"name":"Later"}}`: "Later",
			`{"name":"   "}`:                              models.DefaultCategoryName,
			`{"name":{"en":"object"}}`:                    models.DefaultCategoryName,
		}
		for body, want := range cases {
			got := DecodeCategories([]byte(body))
			require.Len(t, got, 1, body)
			assert.Equal(t, want, got[0].Name, body)
		}
	})

	t.Run("mongo style id and nested description", func(t *testing.T) {
		got := DecodeCategories([]byte(`{"items":[{"_id":"abc","name":"Desserts","attributes":{"description":"sweet"}}]}`))
		require.Len(t, got, 1)
		assert.Equal(t, models.Category{ID: "abc", Name: "Desserts", Description: "sweet"}, got[0])
	})

	t.Run("non object elements degrade to defaults", func(t *testing.T) {
		got := DecodeCategories([]byte(`[42, "x", null]`))
		require.Len(t, got, 3)
		for i, c := range got {
			assert.Equal(t, FallbackID(i), c.ID)
			assert.Equal(t, models.DefaultCategoryName, c.Name)
		}
	})
}

func TestProducts(t *testing.T) {
	body := `{"data":[
		{"id":7,"attributes":{"name":"Shawarma","description":"wrap","price":"12.50","image_url":"https://img/x.png","type":"ساخن","is_available":true},"relationship":{"menuCategory":{"id":3}}},
		{"id":8,"attributes":{"name":"Lemonade","type":"cold","is_available":"1"},"relationships":{"menuCategory":{"data":{"id":"4"}}}},
		{"name":"Bread","price":-3,"category_id":3,"type":"unknown"},
		{"id":9,"name":"Soup","price":"abc","type":"HOT"}
	]}`
	got := DecodeProducts([]byte(body))
	want := []models.Product{
		{ID: "7", Name: "Shawarma", Description: "wrap", Price: 12.5, Image: "https://img/x.png", Type: models.ProductTypeHot, Category: "3", IsAvailable: true},
		{ID: "8", Name: "Lemonade", Type: models.ProductTypeCold, Category: "4", IsAvailable: true},
		{ID: "local-2", Name: "Bread", Type: models.ProductTypeFood, Category: "3"},
		{ID: "9", Name: "Soup", Type: models.ProductTypeHot},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("products mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "12.50", got[0].DisplayPrice())
	assert.Equal(t, "0.00", got[1].DisplayPrice())
}

func TestNumericFieldsDropTrailingZeros(t *testing.T) {
	tests := []struct {
		name string
		body string
		want models.Product
	}{
		{"whole float id and category", `[{"id":3.0,"name":12,"relationship":{"menuCategory":{"id":2.0}}}]`,
			models.Product{ID: "3", Name: "12", Type: models.ProductTypeFood, Category: "2"}},
		{"fractional number kept", `[{"id":1.5,"name":"Tea"}]`,
			models.Product{ID: "1.5", Name: "Tea", Type: models.ProductTypeFood}},
		{"exponent form", `[{"id":1e3,"name":"Tea"}]`,
			models.Product{ID: "1000", Name: "Tea", Type: models.ProductTypeFood}},
		{"large integer is exact", `[{"id":9007199254740993,"name":"Tea"}]`,
			models.Product{ID: "9007199254740993", Name: "Tea", Type: models.ProductTypeFood}},
		{"numeric strings untouched", `[{"id":"3.0","name":"Tea"}]`,
			models.Product{ID: "3.0", Name: "Tea", Type: models.ProductTypeFood}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeProducts([]byte(tt.body))
			require.Len(t, got, 1)
			if diff := cmp.Diff(tt.want, got[0]); diff != "" {
				t.Errorf("product mismatch (-want +got):\n%s", diff)
			}
		})
	}

	cats := DecodeCategories([]byte(`[{"id":2.0,"name":"Drinks"}]`))
	require.Len(t, cats, 1)
	assert.Equal(t, "2", cats[0].ID)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	cats := DecodeCategories([]byte(`{"data":[{"id":5,"attributes":{"name":"Mains"}},{"title":"Sides","description":"small"}]}`))
	raw, err := json.Marshal(cats)
	require.NoError(t, err)
	if diff := cmp.Diff(cats, DecodeCategories(raw)); diff != "" {
		t.Errorf("category renormalization changed records (-first +second):\n%s", diff)
	}

	prods := DecodeProducts([]byte(`[{"id":1,"attributes":{"name":"Tea","price":"2.25","type":"بارد","image_url":"http://i"},"relationship":{"menuCategory":{"id":2}}},{"name":"Mystery"}]`))
	raw, err = json.Marshal(prods)
	require.NoError(t, err)
	if diff := cmp.Diff(prods, DecodeProducts(raw)); diff != "" {
		t.Errorf("product renormalization changed records (-first +second):\n%s", diff)
	}
}

func TestToken(t *testing.T) {
	for body, want := range map[string]string{
		`{"data":{"token":"abc"}}`:  "abc",
		`{"token":"t1"}`:            "t1",
		`{"access_token":"jwt"}`:    "jwt",
		`{"data":{"user":{}}}`:      "",
		`not json`:                  "",
	} {
		got, ok := Token(Decode([]byte(body)))
		assert.Equal(t, want, got, body)
		assert.Equal(t, want != "", ok, body)
	}
}

func TestErrorMessage(t *testing.T) {
	msg, ok := ErrorMessage(Decode([]byte(`{"message":"The name field is required."}`)))
	assert.True(t, ok)
	assert.Equal(t, "The name field is required.", msg)

	msg, ok = ErrorMessage(Decode([]byte(`{"error":"invalid or expired token"}`)))
	assert.True(t, ok)
	assert.Equal(t, "invalid or expired token", msg)

	msg, ok = ErrorMessage(Decode([]byte(`{"errors":[{"detail":"bad price"}]}`)))
	assert.True(t, ok)
	assert.Equal(t, "bad price", msg)

	_, ok = ErrorMessage(Decode([]byte(`<html>502</html>`)))
	assert.False(t, ok)
}
