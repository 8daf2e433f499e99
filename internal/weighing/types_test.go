package weighing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGramsDecodeLenient(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Grams
	}{
		{"number", `102.5`, 102.5},
		{"integer", `200`, 200},
		{"numeric string", `"99.9"`, 99.9},
		{"padded string", `" 42 "`, 42},
		{"garbage string", `"abc"`, 0},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
		{"bool", `true`, 0},
		{"object", `{"x":1}`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var g Grams
			err := json.Unmarshal([]byte(tc.raw), &g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, g)
		})
	}
}

func TestExpiryWeightDecodeObject(t *testing.T) {
	var e ExpiryWeight
	err := json.Unmarshal([]byte(`{"exp_date":"30/08/2027","actual_weight":50.5}`), &e)
	require.NoError(t, err)

	assert.Equal(t, "30/08/2027", e.ExpDate)
	assert.Equal(t, Grams(50.5), e.ActualWeight)
}

func TestExpiryWeightDecodeBareString(t *testing.T) {
	// eski format: sadece tarih, ağırlık 0 sayılır
	var e ExpiryWeight
	err := json.Unmarshal([]byte(`"30/08/2027"`), &e)
	require.NoError(t, err)

	assert.Equal(t, "30/08/2027", e.ExpDate)
	assert.Equal(t, Grams(0), e.ActualWeight)
}

func TestExpiryWeightDecodeNullDate(t *testing.T) {
	var e ExpiryWeight
	err := json.Unmarshal([]byte(`{"exp_date":null,"actual_weight":12}`), &e)
	require.NoError(t, err)

	assert.Equal(t, "", e.ExpDate)
	assert.Equal(t, Grams(12), e.ActualWeight)
}

func TestExpiryWeightDecodeStringWeight(t *testing.T) {
	var e ExpiryWeight
	err := json.Unmarshal([]byte(`{"exp_date":"x","actual_weight":"17.25"}`), &e)
	require.NoError(t, err)

	assert.Equal(t, Grams(17.25), e.ActualWeight)
}

func TestExpiryWeightListMixedShapes(t *testing.T) {
	var list []ExpiryWeight
	err := json.Unmarshal([]byte(`["30/08/2027", {"exp_date":"15/12/2025","actual_weight":10}]`), &list)
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, "30/08/2027", list[0].ExpDate)
	assert.Equal(t, Grams(0), list[0].ActualWeight)
	assert.Equal(t, Grams(10), list[1].ActualWeight)
}

func TestSessionEffectiveExpDate(t *testing.T) {
	explicit := "30/08/2027"
	notes := `{"exp_date":"15/12/2025"}`

	s := Session{ExpDate: &explicit, Notes: &notes}
	got, ok := s.EffectiveExpDate()
	assert.True(t, ok)
	assert.Equal(t, "30/08/2027", got)

	s = Session{Notes: &notes}
	got, ok = s.EffectiveExpDate()
	assert.True(t, ok)
	assert.Equal(t, "15/12/2025", got)

	bad := "serbest metin not"
	s = Session{Notes: &bad}
	_, ok = s.EffectiveExpDate()
	assert.False(t, ok)

	s = Session{}
	_, ok = s.EffectiveExpDate()
	assert.False(t, ok)

	empty := ""
	s = Session{ExpDate: &empty, Notes: &notes}
	got, ok = s.EffectiveExpDate()
	assert.True(t, ok)
	assert.Equal(t, "15/12/2025", got)
}

func TestDocumentMarshalFlat(t *testing.T) {
	end := "2025-01-01T08:00:00Z"
	doc := Document{
		WorkOrder: WorkOrder{
			WorkOrder:       "MO-1",
			SKU:             "SKU-1",
			PlannedQuantity: 100,
			Status:          StatusCompleted,
			EndTime:         &end,
		},
		Ingredients: []Ingredient{},
	}

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	// baş alanlar kökte düz olmalı, workOrder anahtarı olmamalı
	assert.Equal(t, "MO-1", m["work_order"])
	assert.Equal(t, "completed", m["status"])
	assert.NotContains(t, m, "workOrder")
	assert.Contains(t, m, "ingredients")
}
